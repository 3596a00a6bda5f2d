package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Gestion-api/internal/application/audit"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	domainbilling "github.com/jhoicas/Gestion-api/internal/domain/billing"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// PaymentUseCase casos de uso de pagos: registro, cambio de estado y
// reconciliación del saldo de la factura en la misma transacción.
type PaymentUseCase struct {
	txRunner         TxRunner
	paymentRepo      repository.PaymentRepository
	invoiceRepo      repository.InvoiceRepository
	orderRepo        repository.OrderRepository
	customerRepo     repository.CustomerRepository
	methodRepo       repository.PaymentMethodRepository
	txTypeRepo       repository.TransactionTypeRepository
	notificationRepo repository.NotificationRepository
	auditRec         *audit.Recorder
	defaultCurrency  string
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(
	txRunner TxRunner,
	paymentRepo repository.PaymentRepository,
	invoiceRepo repository.InvoiceRepository,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	methodRepo repository.PaymentMethodRepository,
	txTypeRepo repository.TransactionTypeRepository,
	notificationRepo repository.NotificationRepository,
	auditRec *audit.Recorder,
	defaultCurrency string,
) *PaymentUseCase {
	return &PaymentUseCase{
		txRunner:         txRunner,
		paymentRepo:      paymentRepo,
		invoiceRepo:      invoiceRepo,
		orderRepo:        orderRepo,
		customerRepo:     customerRepo,
		methodRepo:       methodRepo,
		txTypeRepo:       txTypeRepo,
		notificationRepo: notificationRepo,
		auditRec:         auditRec,
		defaultCurrency:  defaultCurrency,
	}
}

// Create registra un pago contra una factura y reconcilia el saldo.
// Validación previa: un pago por encima del saldo pendiente se rechaza con el
// exceso; un reembolso sin pagos completados que lo cubran se rechaza.
func (uc *PaymentUseCase) Create(ctx context.Context, actorID string, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if in.InvoiceID == "" {
		return nil, domain.ErrInvalidInput
	}
	invoice, err := uc.invoiceRepo.GetByID(in.InvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if invoice.Status == entity.InvoiceStatusCancelled || invoice.Status == entity.InvoiceStatusVoid {
		return nil, domain.ErrConflict
	}
	if in.PaymentMethodID != "" {
		method, err := uc.methodRepo.GetByID(in.PaymentMethodID)
		if err != nil || method == nil {
			return nil, domain.ErrNotFound
		}
	}
	if in.TransactionTypeID != "" {
		txType, err := uc.txTypeRepo.GetByID(in.TransactionTypeID)
		if err != nil || txType == nil {
			return nil, domain.ErrNotFound
		}
	}
	status := in.Status
	if status == "" {
		status = entity.PaymentStatusCompleted
	}
	if !entity.ValidPaymentStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.paymentRepo.ListByInvoice(invoice.ID)
	if err != nil {
		return nil, err
	}
	completedPaid := domainbilling.SumCompleted(existing)
	balanceDue := invoice.TotalAmount.Sub(completedPaid)
	if err := domainbilling.ValidatePaymentAmount(in.Amount, balanceDue, completedPaid); err != nil {
		return nil, err
	}

	currency := in.Currency
	if currency == "" {
		currency = uc.defaultCurrency
	}
	now := time.Now()
	payment := &entity.Payment{
		ID:                uuid.New().String(),
		InvoiceID:         invoice.ID,
		PaymentMethodID:   in.PaymentMethodID,
		TransactionTypeID: in.TransactionTypeID,
		Amount:            in.Amount,
		Currency:          currency,
		Status:            status,
		Reference:         in.Reference,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	previousStatus := invoice.Status
	err = uc.txRunner.Run(ctx, func(invoiceRepo repository.InvoiceRepository, paymentRepo repository.PaymentRepository) error {
		if err := paymentRepo.Create(payment); err != nil {
			return err
		}
		return reconcileInvoice(invoiceRepo, paymentRepo, invoice)
	})
	if err != nil {
		return nil, err
	}
	uc.auditRec.Record(actorID, audit.ActionCreate, "payment", payment.ID, "invoice="+invoice.ID)
	uc.notifyIfPaid(invoice, previousStatus)
	return toPaymentResponse(payment), nil
}

// Update cambia el estado de un pago y reconcilia. Un pago COMPLETED es
// inmutable salvo su paso a REFUNDED; PENDING puede completarse o fallar.
func (uc *PaymentUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	payment, err := uc.paymentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status == "" || !entity.ValidPaymentStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	switch payment.Status {
	case entity.PaymentStatusPending:
		if in.Status != entity.PaymentStatusCompleted && in.Status != entity.PaymentStatusFailed {
			return nil, domain.ErrConflict
		}
	case entity.PaymentStatusCompleted:
		if in.Status != entity.PaymentStatusRefunded {
			return nil, domain.ErrPaymentImmutable
		}
	default:
		return nil, domain.ErrConflict
	}

	invoice, err := uc.invoiceRepo.GetByID(payment.InvoiceID)
	if err != nil || invoice == nil {
		return nil, domain.ErrNotFound
	}
	// Completar un pago pendiente revalida contra el saldo vigente
	if payment.Status == entity.PaymentStatusPending && in.Status == entity.PaymentStatusCompleted {
		existing, err := uc.paymentRepo.ListByInvoice(invoice.ID)
		if err != nil {
			return nil, err
		}
		completedPaid := domainbilling.SumCompleted(existing)
		balanceDue := invoice.TotalAmount.Sub(completedPaid)
		if err := domainbilling.ValidatePaymentAmount(payment.Amount, balanceDue, completedPaid); err != nil {
			return nil, err
		}
	}

	payment.Status = in.Status
	payment.UpdatedAt = time.Now()
	previousStatus := invoice.Status
	err = uc.txRunner.Run(ctx, func(invoiceRepo repository.InvoiceRepository, paymentRepo repository.PaymentRepository) error {
		if err := paymentRepo.Update(payment); err != nil {
			return err
		}
		return reconcileInvoice(invoiceRepo, paymentRepo, invoice)
	})
	if err != nil {
		return nil, err
	}
	uc.auditRec.Record(actorID, audit.ActionUpdate, "payment", id, "status="+in.Status)
	uc.notifyIfPaid(invoice, previousStatus)
	return toPaymentResponse(payment), nil
}

// Delete elimina un pago no completado y reconcilia. Un pago COMPLETED no se
// elimina: se supersede con un contraasiento REFUNDED.
func (uc *PaymentUseCase) Delete(ctx context.Context, actorID, id string) error {
	payment, err := uc.paymentRepo.GetByID(id)
	if err != nil {
		return err
	}
	if payment == nil {
		return domain.ErrNotFound
	}
	if payment.Status == entity.PaymentStatusCompleted {
		return domain.ErrPaymentImmutable
	}
	invoice, err := uc.invoiceRepo.GetByID(payment.InvoiceID)
	if err != nil || invoice == nil {
		return domain.ErrNotFound
	}
	err = uc.txRunner.Run(ctx, func(invoiceRepo repository.InvoiceRepository, paymentRepo repository.PaymentRepository) error {
		if err := paymentRepo.Delete(id); err != nil {
			return err
		}
		return reconcileInvoice(invoiceRepo, paymentRepo, invoice)
	})
	if err != nil {
		return err
	}
	uc.auditRec.Record(actorID, audit.ActionDelete, "payment", id, "invoice="+invoice.ID)
	return nil
}

// ListByInvoice lista los pagos de una factura.
func (uc *PaymentUseCase) ListByInvoice(invoiceID string) ([]*dto.PaymentResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.paymentRepo.ListByInvoice(invoiceID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPaymentResponse(p))
	}
	return out, nil
}

// ListMethods lista los medios de pago.
func (uc *PaymentUseCase) ListMethods() ([]*dto.PaymentMethodResponse, error) {
	list, err := uc.methodRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaymentMethodResponse, 0, len(list))
	for _, m := range list {
		out = append(out, &dto.PaymentMethodResponse{ID: m.ID, Name: m.Name, Active: m.Active})
	}
	return out, nil
}

// ListTransactionTypes lista los tipos de transacción.
func (uc *PaymentUseCase) ListTransactionTypes() ([]*dto.TransactionTypeResponse, error) {
	list, err := uc.txTypeRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TransactionTypeResponse, 0, len(list))
	for _, t := range list {
		out = append(out, &dto.TransactionTypeResponse{ID: t.ID, Name: t.Name})
	}
	return out, nil
}

// reconcileInvoice recalcula paid_amount = Σ pagos COMPLETED y aplica la regla
// de transición de estado, persistiendo de inmediato. Llamada explícita dentro
// de la transacción de cada mutación de pago.
func reconcileInvoice(invoiceRepo repository.InvoiceRepository, paymentRepo repository.PaymentRepository, invoice *entity.Invoice) error {
	payments, err := paymentRepo.ListByInvoice(invoice.ID)
	if err != nil {
		return err
	}
	paid := domainbilling.SumCompleted(payments)
	status := domainbilling.ResolveInvoiceStatus(invoice.Status, paid, invoice.TotalAmount, invoice.DueDate, time.Now())
	invoice.PaidAmount = paid
	invoice.Status = status
	invoice.UpdatedAt = time.Now()
	return invoiceRepo.UpdateReconciliation(invoice.ID, paid, status, invoice.UpdatedAt)
}

// notifyIfPaid crea una notificación para la cuenta del cliente cuando la
// factura quedó PAID en esta operación. Best-effort: un fallo no propaga.
func (uc *PaymentUseCase) notifyIfPaid(invoice *entity.Invoice, previousStatus string) {
	if invoice.Status != entity.InvoiceStatusPaid || previousStatus == entity.InvoiceStatusPaid {
		return
	}
	order, err := uc.orderRepo.GetByID(invoice.OrderID)
	if err != nil || order == nil {
		return
	}
	customer, err := uc.customerRepo.GetByID(order.CustomerID)
	if err != nil || customer == nil || customer.AccountID == "" {
		return
	}
	_ = uc.notificationRepo.Create(&entity.Notification{
		ID:        uuid.New().String(),
		AccountID: customer.AccountID,
		Type:      entity.NotificationTypeInvoicePaid,
		Message:   "Factura " + invoice.Number + " pagada en su totalidad",
		CreatedAt: time.Now(),
	})
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:                p.ID,
		InvoiceID:         p.InvoiceID,
		PaymentMethodID:   p.PaymentMethodID,
		TransactionTypeID: p.TransactionTypeID,
		Amount:            p.Amount,
		Currency:          p.Currency,
		Status:            p.Status,
		Reference:         p.Reference,
		CreatedAt:         p.CreatedAt,
	}
}
