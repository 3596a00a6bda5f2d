package billing

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// PDFUseCase arma la representación impresa de una factura: encabezado con los
// datos del cliente, líneas de la orden con el precio capturado y totales.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	serviceRepo  repository.ServiceRepository
	generator    InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	serviceRepo repository.ServiceRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo:  invoiceRepo,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		serviceRepo:  serviceRepo,
		generator:    generator,
	}
}

// GenerateInvoicePDF genera el PDF de la factura id. Si ownCustomerID no es
// vacío, la factura debe pertenecer a ese cliente.
func (uc *PDFUseCase) GenerateInvoicePDF(ctx context.Context, id, ownCustomerID string) ([]byte, string, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if invoice == nil {
		return nil, "", domain.ErrNotFound
	}
	order, err := uc.orderRepo.GetByID(invoice.OrderID)
	if err != nil {
		return nil, "", err
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}
	if ownCustomerID != "" && order.CustomerID != ownCustomerID {
		return nil, "", domain.ErrForbidden
	}
	customer, err := uc.customerRepo.GetByID(order.CustomerID)
	if err != nil {
		return nil, "", err
	}
	if customer == nil {
		return nil, "", domain.ErrNotFound
	}
	items, err := uc.orderRepo.ListItems(order.ID)
	if err != nil {
		return nil, "", err
	}
	lines := make([]InvoiceLineForPDF, 0, len(items))
	for _, item := range items {
		name := item.ServiceID
		if svc, err := uc.serviceRepo.GetByID(item.ServiceID); err == nil && svc != nil {
			name = svc.Name
		}
		lines = append(lines, InvoiceLineForPDF{
			ServiceName: name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal(),
		})
	}
	pdf, err := uc.generator.GenerateInvoicePDF(ctx, invoice, customer, lines)
	if err != nil {
		return nil, "", err
	}
	return pdf, invoice.Number + ".pdf", nil
}
