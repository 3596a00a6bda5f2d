// Package billing contiene los servicios de dominio de facturación:
// reconciliación de saldo de factura y validación de montos de pago.
// Funciones puras, sin acceso a persistencia.
package billing

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// SumCompleted devuelve Σ(amount) de los pagos con estado COMPLETED.
// Los reembolsos (montos negativos) netean contra los pagos.
func SumCompleted(payments []*entity.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.Status == entity.PaymentStatusCompleted {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// ResolveInvoiceStatus aplica la regla de transición de estado de factura
// tras recalcular paidAmount. Precedencia:
//
//  1. paidAmount ≥ total y total > 0        → PAID
//  2. paidAmount > 0                        → PARTIALLY_PAID
//  3. dueDate < hoy y estado actual SENT    → OVERDUE
//  4. estado actual DRAFT                   → DRAFT (no se auto-avanza)
//  5. estado no en {OVERDUE,PARTIALLY_PAID} → SENT
//
// CANCELLED y VOID congelan el estado: se devuelven tal cual.
// Nota: una factura DRAFT vencida permanece DRAFT (regla 4 antecede al
// fallback); OVERDUE solo se alcanza desde SENT.
func ResolveInvoiceStatus(current string, paidAmount, totalAmount decimal.Decimal, dueDate, today time.Time) string {
	if current == entity.InvoiceStatusCancelled || current == entity.InvoiceStatusVoid {
		return current
	}
	switch {
	case paidAmount.GreaterThanOrEqual(totalAmount) && totalAmount.GreaterThan(decimal.Zero):
		return entity.InvoiceStatusPaid
	case paidAmount.GreaterThan(decimal.Zero):
		return entity.InvoiceStatusPartiallyPaid
	case dueDate.Before(today) && current == entity.InvoiceStatusSent:
		return entity.InvoiceStatusOverdue
	case current == entity.InvoiceStatusDraft:
		return entity.InvoiceStatusDraft
	case current != entity.InvoiceStatusOverdue && current != entity.InvoiceStatusPartiallyPaid:
		return entity.InvoiceStatusSent
	default:
		return current
	}
}

// ValidatePaymentAmount valida el monto de un pago contra el estado de la factura.
//
//   - amount == 0                      → ErrInvalidInput
//   - pago > saldo pendiente           → OverpaymentError con el exceso
//   - reembolso > pagos completados    → ErrRefundExceedsPaid
//
// balanceDue es total - pagado; completedPaid es Σ pagos COMPLETED vigentes.
func ValidatePaymentAmount(amount, balanceDue, completedPaid decimal.Decimal) error {
	if amount.IsZero() {
		return domain.ErrInvalidInput
	}
	if amount.IsPositive() && amount.GreaterThan(balanceDue) {
		return &domain.OverpaymentError{Excess: amount.Sub(balanceDue)}
	}
	if amount.IsNegative() && amount.Abs().GreaterThan(completedPaid) {
		return domain.ErrRefundExceedsPaid
	}
	return nil
}
