package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Invoice. CANCELLED y VOID congelan la reconciliación.
const (
	InvoiceStatusDraft         = "DRAFT"
	InvoiceStatusSent          = "SENT"
	InvoiceStatusPartiallyPaid = "PARTIALLY_PAID"
	InvoiceStatusPaid          = "PAID"
	InvoiceStatusOverdue       = "OVERDUE"
	InvoiceStatusCancelled     = "CANCELLED"
	InvoiceStatusVoid          = "VOID"
)

// Invoice representa una factura emitida contra una orden.
// TotalAmount es lectura directa del total de la orden (no se almacena aparte);
// PaidAmount es derivado: Σ pagos COMPLETED. Number se genera una sola vez al
// primer guardado (INV-<año>-<consecutivo de 4 dígitos>) y nunca se regenera.
type Invoice struct {
	ID             string
	OrderID        string
	Number         string
	SequenceNumber int // consecutivo dentro del año, para generar Number
	Date           time.Time
	DueDate        time.Time
	Status         string
	PaidAmount     decimal.Decimal
	TotalAmount    decimal.Decimal // leído de la orden al cargar, no persistido aparte
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BalanceDue devuelve el saldo pendiente (total de la orden menos lo pagado).
func (i *Invoice) BalanceDue() decimal.Decimal {
	return i.TotalAmount.Sub(i.PaidAmount)
}
