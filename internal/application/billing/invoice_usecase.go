// Package billing contiene los casos de uso de facturación: emisión de
// facturas contra órdenes, registro de pagos y reconciliación del saldo.
package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Gestion-api/internal/application/audit"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	domainbilling "github.com/jhoicas/Gestion-api/internal/domain/billing"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// InvoiceUseCase casos de uso de facturas.
type InvoiceUseCase struct {
	txRunner     TxRunner
	invoiceRepo  repository.InvoiceRepository
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	auditRec     *audit.Recorder
	dueDays      int
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	txRunner TxRunner,
	invoiceRepo repository.InvoiceRepository,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	auditRec *audit.Recorder,
	dueDays int,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:     txRunner,
		invoiceRepo:  invoiceRepo,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		auditRec:     auditRec,
		dueDays:      dueDays,
	}
}

// Create emite una factura contra una orden existente. El número
// INV-<año>-<consecutivo> se genera una sola vez, dentro de la transacción
// que reserva el consecutivo del año, y nunca se regenera.
func (uc *InvoiceUseCase) Create(ctx context.Context, actorID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.OrderID == "" {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	dueDate := now.AddDate(0, 0, uc.dueDays)
	if in.DueDate != "" {
		parsed, err := time.Parse(dateLayout, in.DueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		dueDate = parsed
	}

	invoice := &entity.Invoice{
		ID:          uuid.New().String(),
		OrderID:     order.ID,
		Date:        now,
		DueDate:     dueDate,
		Status:      entity.InvoiceStatusDraft,
		PaidAmount:  decimal.Zero,
		TotalAmount: order.TotalAmount,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = uc.txRunner.Run(ctx, func(invoiceRepo repository.InvoiceRepository, _ repository.PaymentRepository) error {
		seq, err := invoiceRepo.NextSequence(now.Year())
		if err != nil {
			return err
		}
		invoice.SequenceNumber = seq
		invoice.Number = fmt.Sprintf("INV-%d-%04d", now.Year(), seq)
		return invoiceRepo.Create(invoice)
	})
	if err != nil {
		return nil, err
	}
	uc.auditRec.Record(actorID, audit.ActionCreate, "invoice", invoice.ID, invoice.Number)
	return toInvoiceResponse(invoice), nil
}

// GetByID obtiene una factura. Si ownCustomerID no es vacío, la factura debe
// pertenecer a una orden de ese cliente.
func (uc *InvoiceUseCase) GetByID(id, ownCustomerID string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if ownCustomerID != "" {
		order, err := uc.orderRepo.GetByID(invoice.OrderID)
		if err != nil || order == nil {
			return nil, domain.ErrNotFound
		}
		if order.CustomerID != ownCustomerID {
			return nil, domain.ErrForbidden
		}
	}
	return toInvoiceResponse(invoice), nil
}

// List lista facturas con filtros. ownCustomerID fuerza el filtro de cliente.
func (uc *InvoiceUseCase) List(orderID, customerID, status, ownCustomerID string, page dto.PageRequest) (*dto.InvoiceListResponse, error) {
	page.Normalize()
	if ownCustomerID != "" {
		customerID = ownCustomerID
	}
	filter := repository.InvoiceFilter{
		OrderID:    orderID,
		CustomerID: customerID,
		Status:     status,
		Limit:      page.Limit(),
		Offset:     page.Offset(),
	}
	list, err := uc.invoiceRepo.List(filter)
	if err != nil {
		return nil, err
	}
	total, err := uc.invoiceRepo.Count(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInvoiceResponse(inv))
	}
	return &dto.InvoiceListResponse{
		Items: items,
		Meta:  dto.PageResponse{Page: page.Page, PerPage: dto.PerPage, Total: total},
	}, nil
}

// Send marca una factura DRAFT como SENT (emitida al cliente).
func (uc *InvoiceUseCase) Send(ctx context.Context, actorID, id string) (*dto.InvoiceResponse, error) {
	return uc.transition(actorID, id, entity.InvoiceStatusDraft, entity.InvoiceStatusSent)
}

// Cancel cancela una factura no pagada.
func (uc *InvoiceUseCase) Cancel(ctx context.Context, actorID, id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if invoice.Status == entity.InvoiceStatusPaid || invoice.Status == entity.InvoiceStatusVoid {
		return nil, domain.ErrConflict
	}
	invoice.Status = entity.InvoiceStatusCancelled
	invoice.UpdatedAt = time.Now()
	if err := uc.invoiceRepo.Update(invoice); err != nil {
		return nil, err
	}
	uc.auditRec.Record(actorID, audit.ActionUpdate, "invoice", id, "status=CANCELLED")
	return toInvoiceResponse(invoice), nil
}

// Void anula una factura (corrección administrativa).
func (uc *InvoiceUseCase) Void(ctx context.Context, actorID, id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if invoice.Status == entity.InvoiceStatusVoid {
		return nil, domain.ErrConflict
	}
	invoice.Status = entity.InvoiceStatusVoid
	invoice.UpdatedAt = time.Now()
	if err := uc.invoiceRepo.Update(invoice); err != nil {
		return nil, err
	}
	uc.auditRec.Record(actorID, audit.ActionUpdate, "invoice", id, "status=VOID")
	return toInvoiceResponse(invoice), nil
}

// Refresh re-evalúa el estado de la factura sin mutar pagos (ej. para detectar
// vencimiento). Misma regla de precedencia que la reconciliación.
func (uc *InvoiceUseCase) Refresh(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	status := domainbilling.ResolveInvoiceStatus(invoice.Status, invoice.PaidAmount, invoice.TotalAmount, invoice.DueDate, time.Now())
	if status != invoice.Status {
		invoice.Status = status
		invoice.UpdatedAt = time.Now()
		if err := uc.invoiceRepo.UpdateReconciliation(invoice.ID, invoice.PaidAmount, status, invoice.UpdatedAt); err != nil {
			return nil, err
		}
	}
	return toInvoiceResponse(invoice), nil
}

func (uc *InvoiceUseCase) transition(actorID, id, from, to string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if invoice.Status != from {
		return nil, domain.ErrConflict
	}
	invoice.Status = to
	invoice.UpdatedAt = time.Now()
	if err := uc.invoiceRepo.Update(invoice); err != nil {
		return nil, err
	}
	uc.auditRec.Record(actorID, audit.ActionUpdate, "invoice", id, "status="+to)
	return toInvoiceResponse(invoice), nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:          inv.ID,
		OrderID:     inv.OrderID,
		Number:      inv.Number,
		Date:        inv.Date.Format(dateLayout),
		DueDate:     inv.DueDate.Format(dateLayout),
		Status:      inv.Status,
		TotalAmount: inv.TotalAmount,
		PaidAmount:  inv.PaidAmount,
		BalanceDue:  inv.BalanceDue(),
		Notes:       inv.Notes,
		CreatedAt:   inv.CreatedAt,
	}
}
