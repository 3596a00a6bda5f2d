package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Payment. Solo COMPLETED cuenta para el saldo de la factura.
const (
	PaymentStatusPending   = "PENDING"
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusFailed    = "FAILED"
	PaymentStatusRefunded  = "REFUNDED"
)

// ValidPaymentStatus indica si s es un estado de pago conocido.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted,
		PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// Payment representa un pago aplicado a una factura. Amount es con signo:
// negativo para reembolsos, que netean contra los pagos completados.
type Payment struct {
	ID                string
	InvoiceID         string
	PaymentMethodID   string
	TransactionTypeID string
	Amount            decimal.Decimal
	Currency          string
	Status            string
	Reference         string // referencia externa del medio de pago
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsRefund indica si el pago es un reembolso (monto negativo).
func (p *Payment) IsRefund() bool {
	return p.Amount.IsNegative()
}

// PaymentMethod catálogo de medios de pago (efectivo, transferencia, tarjeta...).
type PaymentMethod struct {
	ID        string
	Name      string
	Active    bool
	CreatedAt time.Time
}

// TransactionType catálogo de tipos de transacción (pago, anticipo, reembolso...).
type TransactionType struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
