package billing_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/Gestion-api/internal/application/billing"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// ── Fakes en memoria ──────────────────────────────────────────────────────────

type memInvoiceRepo struct {
	invoices  map[string]*entity.Invoice
	sequences map[int]int
}

func newMemInvoiceRepo() *memInvoiceRepo {
	return &memInvoiceRepo{
		invoices:  make(map[string]*entity.Invoice),
		sequences: make(map[int]int),
	}
}

func (r *memInvoiceRepo) Create(inv *entity.Invoice) error { r.invoices[inv.ID] = inv; return nil }
func (r *memInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	return r.invoices[id], nil
}
func (r *memInvoiceRepo) List(f repository.InvoiceFilter) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		if f.OrderID != "" && inv.OrderID != f.OrderID {
			continue
		}
		if f.Status != "" && inv.Status != f.Status {
			continue
		}
		out = append(out, inv)
	}
	return out, nil
}
func (r *memInvoiceRepo) Count(f repository.InvoiceFilter) (int, error) {
	list, err := r.List(f)
	return len(list), err
}
func (r *memInvoiceRepo) Update(inv *entity.Invoice) error { r.invoices[inv.ID] = inv; return nil }
func (r *memInvoiceRepo) NextSequence(year int) (int, error) {
	r.sequences[year]++
	return r.sequences[year], nil
}
func (r *memInvoiceRepo) UpdateReconciliation(id string, paid decimal.Decimal, status string, updatedAt time.Time) error {
	inv, ok := r.invoices[id]
	if !ok {
		return domain.ErrNotFound
	}
	inv.PaidAmount = paid
	inv.Status = status
	inv.UpdatedAt = updatedAt
	return nil
}

type memPaymentRepo struct {
	payments map[string]*entity.Payment
}

func newMemPaymentRepo() *memPaymentRepo {
	return &memPaymentRepo{payments: make(map[string]*entity.Payment)}
}

func (r *memPaymentRepo) Create(p *entity.Payment) error { r.payments[p.ID] = p; return nil }
func (r *memPaymentRepo) GetByID(id string) (*entity.Payment, error) {
	return r.payments[id], nil
}
func (r *memPaymentRepo) ListByInvoice(invoiceID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.payments {
		if p.InvoiceID == invoiceID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *memPaymentRepo) Update(p *entity.Payment) error { r.payments[p.ID] = p; return nil }
func (r *memPaymentRepo) Delete(id string) error         { delete(r.payments, id); return nil }

type billingTxRunner struct {
	invoiceRepo *memInvoiceRepo
	paymentRepo *memPaymentRepo
}

func (t *billingTxRunner) Run(_ context.Context, fn func(repository.InvoiceRepository, repository.PaymentRepository) error) error {
	return fn(t.invoiceRepo, t.paymentRepo)
}

type stubOrderRepo struct {
	repository.OrderRepository
	orders map[string]*entity.Order
}

func (r *stubOrderRepo) GetByID(id string) (*entity.Order, error) { return r.orders[id], nil }

type stubCustomerRepo struct {
	repository.CustomerRepository
	customers map[string]*entity.Customer
}

func (r *stubCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.customers[id], nil
}

type memNotificationRepo struct {
	repository.NotificationRepository
	created []*entity.Notification
}

func (r *memNotificationRepo) Create(n *entity.Notification) error {
	r.created = append(r.created, n)
	return nil
}

// ── Armado ────────────────────────────────────────────────────────────────────

type billingFixture struct {
	invoices      *memInvoiceRepo
	payments      *memPaymentRepo
	notifications *memNotificationRepo
	invoiceUC     *billing.InvoiceUseCase
	paymentUC     *billing.PaymentUseCase
}

func newBillingFixture() *billingFixture {
	invoiceRepo := newMemInvoiceRepo()
	paymentRepo := newMemPaymentRepo()
	notificationRepo := &memNotificationRepo{}
	tx := &billingTxRunner{invoiceRepo: invoiceRepo, paymentRepo: paymentRepo}
	orderRepo := &stubOrderRepo{orders: map[string]*entity.Order{
		"ord-1": {ID: "ord-1", CustomerID: "cust-1", TotalAmount: decimal.RequireFromString("100.00")},
	}}
	customerRepo := &stubCustomerRepo{customers: map[string]*entity.Customer{
		"cust-1": {ID: "cust-1", AccountID: "acc-1", Name: "Acme SAS"},
	}}
	return &billingFixture{
		invoices:      invoiceRepo,
		payments:      paymentRepo,
		notifications: notificationRepo,
		invoiceUC:     billing.NewInvoiceUseCase(tx, invoiceRepo, orderRepo, customerRepo, nil, 30),
		paymentUC: billing.NewPaymentUseCase(
			tx, paymentRepo, invoiceRepo, orderRepo, customerRepo,
			nil, nil, notificationRepo, nil, "COP",
		),
	}
}

// sentInvoice crea y envía una factura de 100.00 lista para recibir pagos.
func (f *billingFixture) sentInvoice(t *testing.T) *dto.InvoiceResponse {
	t.Helper()
	ctx := context.Background()
	inv, err := f.invoiceUC.Create(ctx, "actor", dto.CreateInvoiceRequest{OrderID: "ord-1"})
	require.NoError(t, err)
	sent, err := f.invoiceUC.Send(ctx, "actor", inv.ID)
	require.NoError(t, err)
	return sent
}

func pay(amount string) dto.CreatePaymentRequest {
	return dto.CreatePaymentRequest{Amount: decimal.RequireFromString(amount)}
}

// ── Tests de numeración ───────────────────────────────────────────────────────

func TestInvoiceCreate_NumeracionConsecutiva(t *testing.T) {
	f := newBillingFixture()
	ctx := context.Background()
	year := time.Now().Year()

	first, err := f.invoiceUC.Create(ctx, "actor", dto.CreateInvoiceRequest{OrderID: "ord-1"})
	require.NoError(t, err)
	second, err := f.invoiceUC.Create(ctx, "actor", dto.CreateInvoiceRequest{OrderID: "ord-1"})
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("INV-%d-0001", year), first.Number)
	assert.Equal(t, fmt.Sprintf("INV-%d-0002", year), second.Number)
	assert.Equal(t, entity.InvoiceStatusDraft, first.Status)
	assert.True(t, first.TotalAmount.Equal(decimal.RequireFromString("100.00")),
		"el total de la factura se lee del total de la orden")
}

func TestInvoiceList_MetaIncluyeTotal(t *testing.T) {
	f := newBillingFixture()
	ctx := context.Background()

	_, err := f.invoiceUC.Create(ctx, "actor", dto.CreateInvoiceRequest{OrderID: "ord-1"})
	require.NoError(t, err)
	_, err = f.invoiceUC.Create(ctx, "actor", dto.CreateInvoiceRequest{OrderID: "ord-1"})
	require.NoError(t, err)

	resp, err := f.invoiceUC.List("", "", "", "", dto.PageRequest{Page: 1})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, 2, resp.Meta.Total)
}

func TestInvoiceCreate_OrdenInexistente(t *testing.T) {
	f := newBillingFixture()
	_, err := f.invoiceUC.Create(context.Background(), "actor", dto.CreateInvoiceRequest{OrderID: "nada"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Tests de reconciliación ──────────────────────────────────────────────────

func TestPaymentCreate_ReconciliaParcialYTotal(t *testing.T) {
	f := newBillingFixture()
	ctx := context.Background()
	inv := f.sentInvoice(t)

	req := pay("40.00")
	req.InvoiceID = inv.ID
	_, err := f.paymentUC.Create(ctx, "actor", req)
	require.NoError(t, err)

	stored, _ := f.invoices.GetByID(inv.ID)
	assert.Equal(t, entity.InvoiceStatusPartiallyPaid, stored.Status)
	assert.True(t, stored.PaidAmount.Equal(decimal.RequireFromString("40.00")))

	req = pay("60.00")
	req.InvoiceID = inv.ID
	_, err = f.paymentUC.Create(ctx, "actor", req)
	require.NoError(t, err)

	stored, _ = f.invoices.GetByID(inv.ID)
	assert.Equal(t, entity.InvoiceStatusPaid, stored.Status)
	assert.True(t, stored.PaidAmount.Equal(decimal.RequireFromString("100.00")))

	// La transición a PAID notifica a la cuenta del cliente
	require.Len(t, f.notifications.created, 1)
	assert.Equal(t, "acc-1", f.notifications.created[0].AccountID)
	assert.Equal(t, entity.NotificationTypeInvoicePaid, f.notifications.created[0].Type)
}

func TestPaymentCreate_RechazaSobrepago(t *testing.T) {
	f := newBillingFixture()
	ctx := context.Background()
	inv := f.sentInvoice(t)

	req := pay("40.00")
	req.InvoiceID = inv.ID
	_, err := f.paymentUC.Create(ctx, "actor", req)
	require.NoError(t, err)

	req = pay("60.01")
	req.InvoiceID = inv.ID
	_, err = f.paymentUC.Create(ctx, "actor", req)

	var overErr *domain.OverpaymentError
	require.ErrorAs(t, err, &overErr)
	assert.True(t, overErr.Excess.Equal(decimal.RequireFromString("0.01")),
		"el exceso reportado es un centavo, obtuvo %s", overErr.Excess)

	// Nada quedó persistido y la factura no cambió
	stored, _ := f.invoices.GetByID(inv.ID)
	assert.Equal(t, entity.InvoiceStatusPartiallyPaid, stored.Status)
	assert.True(t, stored.PaidAmount.Equal(decimal.RequireFromString("40.00")))
}

func TestPaymentCreate_ReembolsoSinCobertura(t *testing.T) {
	f := newBillingFixture()
	ctx := context.Background()
	inv := f.sentInvoice(t)

	req := pay("-10.00")
	req.InvoiceID = inv.ID
	_, err := f.paymentUC.Create(ctx, "actor", req)
	assert.ErrorIs(t, err, domain.ErrRefundExceedsPaid,
		"un reembolso sin pagos completados que lo cubran se rechaza")
}

func TestPaymentCreate_ReembolsoReduceElSaldo(t *testing.T) {
	f := newBillingFixture()
	ctx := context.Background()
	inv := f.sentInvoice(t)

	req := pay("100.00")
	req.InvoiceID = inv.ID
	_, err := f.paymentUC.Create(ctx, "actor", req)
	require.NoError(t, err)

	req = pay("-40.00")
	req.InvoiceID = inv.ID
	_, err = f.paymentUC.Create(ctx, "actor", req)
	require.NoError(t, err)

	stored, _ := f.invoices.GetByID(inv.ID)
	assert.Equal(t, entity.InvoiceStatusPartiallyPaid, stored.Status)
	assert.True(t, stored.PaidAmount.Equal(decimal.RequireFromString("60.00")))
}

func TestPaymentCreate_FacturaCancelada(t *testing.T) {
	f := newBillingFixture()
	ctx := context.Background()
	inv := f.sentInvoice(t)
	_, err := f.invoiceUC.Cancel(ctx, "actor", inv.ID)
	require.NoError(t, err)

	req := pay("10.00")
	req.InvoiceID = inv.ID
	_, err = f.paymentUC.Create(ctx, "actor", req)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ── Tests de inmutabilidad de pagos ──────────────────────────────────────────

func TestPaymentUpdate_CompletadoSoloAdmiteReembolso(t *testing.T) {
	f := newBillingFixture()
	ctx := context.Background()
	inv := f.sentInvoice(t)

	req := pay("100.00")
	req.InvoiceID = inv.ID
	created, err := f.paymentUC.Create(ctx, "actor", req)
	require.NoError(t, err)

	_, err = f.paymentUC.Update(ctx, "actor", created.ID, dto.UpdatePaymentRequest{Status: entity.PaymentStatusFailed})
	assert.ErrorIs(t, err, domain.ErrPaymentImmutable)

	updated, err := f.paymentUC.Update(ctx, "actor", created.ID, dto.UpdatePaymentRequest{Status: entity.PaymentStatusRefunded})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusRefunded, updated.Status)

	// El pago revertido deja de contar y la reconciliación vuelve a SENT
	stored, _ := f.invoices.GetByID(inv.ID)
	assert.Equal(t, entity.InvoiceStatusSent, stored.Status)
	assert.True(t, stored.PaidAmount.IsZero())
}

func TestPaymentUpdate_PendienteSeCompletaYReconcilia(t *testing.T) {
	f := newBillingFixture()
	ctx := context.Background()
	inv := f.sentInvoice(t)

	req := pay("100.00")
	req.InvoiceID = inv.ID
	req.Status = entity.PaymentStatusPending
	created, err := f.paymentUC.Create(ctx, "actor", req)
	require.NoError(t, err)

	// Pendiente no cuenta para el saldo
	stored, _ := f.invoices.GetByID(inv.ID)
	assert.Equal(t, entity.InvoiceStatusSent, stored.Status)
	assert.True(t, stored.PaidAmount.IsZero())

	_, err = f.paymentUC.Update(ctx, "actor", created.ID, dto.UpdatePaymentRequest{Status: entity.PaymentStatusCompleted})
	require.NoError(t, err)
	stored, _ = f.invoices.GetByID(inv.ID)
	assert.Equal(t, entity.InvoiceStatusPaid, stored.Status)
}

func TestPaymentDelete_CompletadoEsInmutable(t *testing.T) {
	f := newBillingFixture()
	ctx := context.Background()
	inv := f.sentInvoice(t)

	req := pay("50.00")
	req.InvoiceID = inv.ID
	created, err := f.paymentUC.Create(ctx, "actor", req)
	require.NoError(t, err)

	err = f.paymentUC.Delete(ctx, "actor", created.ID)
	assert.ErrorIs(t, err, domain.ErrPaymentImmutable)
}

func TestPaymentDelete_PendienteReconcilia(t *testing.T) {
	f := newBillingFixture()
	ctx := context.Background()
	inv := f.sentInvoice(t)

	req := pay("50.00")
	req.InvoiceID = inv.ID
	req.Status = entity.PaymentStatusPending
	created, err := f.paymentUC.Create(ctx, "actor", req)
	require.NoError(t, err)

	require.NoError(t, f.paymentUC.Delete(ctx, "actor", created.ID))
	stored, _ := f.invoices.GetByID(inv.ID)
	assert.Equal(t, entity.InvoiceStatusSent, stored.Status)
}
