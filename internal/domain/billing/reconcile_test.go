package billing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/billing"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// SumCompleted
// ──────────────────────────────────────────────────────────────────────────────

func pago(amount string, status string) *entity.Payment {
	return &entity.Payment{Amount: decimal.RequireFromString(amount), Status: status}
}

func TestSumCompleted_SoloCuentaCompletados(t *testing.T) {
	paid := billing.SumCompleted([]*entity.Payment{
		pago("40.00", entity.PaymentStatusCompleted),
		pago("25.00", entity.PaymentStatusPending),
		pago("10.00", entity.PaymentStatusFailed),
		pago("60.00", entity.PaymentStatusCompleted),
	})
	assert.True(t, paid.Equal(decimal.RequireFromString("100.00")),
		"solo los pagos COMPLETED deben sumar: esperado 100.00, calculado %s", paid)
}

func TestSumCompleted_ReembolsosNetean(t *testing.T) {
	paid := billing.SumCompleted([]*entity.Payment{
		pago("100.00", entity.PaymentStatusCompleted),
		pago("-30.00", entity.PaymentStatusCompleted),
	})
	assert.True(t, paid.Equal(decimal.RequireFromString("70.00")))
}

func TestSumCompleted_SinPagosEsCero(t *testing.T) {
	assert.True(t, billing.SumCompleted(nil).IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// ResolveInvoiceStatus: tabla de precedencia de estados de factura
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveInvoiceStatus_Precedencia(t *testing.T) {
	hoy := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	ayer := hoy.AddDate(0, 0, -1)
	manana := hoy.AddDate(0, 0, 1)
	d := decimal.RequireFromString

	cases := []struct {
		name     string
		current  string
		paid     string
		total    string
		dueDate  time.Time
		expected string
	}{
		{"pago total produce PAID", entity.InvoiceStatusSent, "100.00", "100.00", manana, entity.InvoiceStatusPaid},
		{"sobrepago registrado tambien es PAID", entity.InvoiceStatusSent, "120.00", "100.00", manana, entity.InvoiceStatusPaid},
		{"total cero nunca es PAID", entity.InvoiceStatusSent, "0", "0", manana, entity.InvoiceStatusSent},
		{"pago parcial produce PARTIALLY_PAID", entity.InvoiceStatusSent, "40.00", "100.00", manana, entity.InvoiceStatusPartiallyPaid},
		{"SENT vencida sin pagos pasa a OVERDUE", entity.InvoiceStatusSent, "0", "100.00", ayer, entity.InvoiceStatusOverdue},
		{"DRAFT vencida permanece DRAFT", entity.InvoiceStatusDraft, "0", "100.00", ayer, entity.InvoiceStatusDraft},
		{"DRAFT sin pagos no se auto-avanza", entity.InvoiceStatusDraft, "0", "100.00", manana, entity.InvoiceStatusDraft},
		{"OVERDUE sin pagos permanece OVERDUE", entity.InvoiceStatusOverdue, "0", "100.00", ayer, entity.InvoiceStatusOverdue},
		{"PARTIALLY_PAID con pagos revertidos permanece", entity.InvoiceStatusPartiallyPaid, "0", "100.00", manana, entity.InvoiceStatusPartiallyPaid},
		{"CANCELLED se congela", entity.InvoiceStatusCancelled, "100.00", "100.00", ayer, entity.InvoiceStatusCancelled},
		{"VOID se congela", entity.InvoiceStatusVoid, "100.00", "100.00", ayer, entity.InvoiceStatusVoid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := billing.ResolveInvoiceStatus(tc.current, d(tc.paid), d(tc.total), tc.dueDate, hoy)
			assert.Equal(t, tc.expected, got)
		})
	}
}

// Invariante: nunca PAID salvo paid ≥ total > 0.
func TestResolveInvoiceStatus_InvariantePaid(t *testing.T) {
	hoy := time.Now()
	got := billing.ResolveInvoiceStatus(entity.InvoiceStatusSent,
		decimal.RequireFromString("99.99"), decimal.RequireFromString("100.00"), hoy.AddDate(0, 0, 5), hoy)
	assert.NotEqual(t, entity.InvoiceStatusPaid, got,
		"una factura con pagado < total jamás debe quedar PAID")
}

// ──────────────────────────────────────────────────────────────────────────────
// ValidatePaymentAmount
// ──────────────────────────────────────────────────────────────────────────────

func TestValidatePaymentAmount_PagoExactoAceptado(t *testing.T) {
	d := decimal.RequireFromString
	err := billing.ValidatePaymentAmount(d("60.00"), d("60.00"), d("40.00"))
	assert.NoError(t, err, "un pago igual al saldo pendiente debe aceptarse")
}

func TestValidatePaymentAmount_UnCentavoDeMasRechazado(t *testing.T) {
	d := decimal.RequireFromString
	err := billing.ValidatePaymentAmount(d("60.01"), d("60.00"), d("40.00"))
	require.Error(t, err)

	var over *domain.OverpaymentError
	require.ErrorAs(t, err, &over, "debe ser OverpaymentError")
	assert.True(t, over.Excess.Equal(d("0.01")),
		"el error debe nombrar el exceso exacto: esperado 0.01, reportado %s", over.Excess)
}

func TestValidatePaymentAmount_ReembolsoSinPagosRechazado(t *testing.T) {
	d := decimal.RequireFromString
	err := billing.ValidatePaymentAmount(d("-10.00"), d("100.00"), decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrRefundExceedsPaid)
}

func TestValidatePaymentAmount_ReembolsoCubiertoAceptado(t *testing.T) {
	d := decimal.RequireFromString
	err := billing.ValidatePaymentAmount(d("-10.00"), d("90.00"), d("10.00"))
	assert.NoError(t, err)
}

func TestValidatePaymentAmount_MontoCeroRechazado(t *testing.T) {
	err := billing.ValidatePaymentAmount(decimal.Zero, decimal.RequireFromString("50.00"), decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
