package billing

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con los repositorios de
// facturación atados a la tx. La emisión de factura (reserva de consecutivo)
// y la reconciliación pago→factura corren siempre aquí.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}

// InvoiceLineForPDF línea de la representación impresa de la factura.
type InvoiceLineForPDF struct {
	ServiceName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// InvoicePDFGenerator genera la representación PDF de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		customer *entity.Customer,
		lines []InvoiceLineForPDF,
	) ([]byte, error)
}
