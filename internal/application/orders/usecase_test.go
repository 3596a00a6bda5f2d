package orders_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/orders"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// ── Fakes en memoria ──────────────────────────────────────────────────────────

type memOrderRepo struct {
	orders map[string]*entity.Order
	items  map[string]*entity.OrderService
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{
		orders: make(map[string]*entity.Order),
		items:  make(map[string]*entity.OrderService),
	}
}

func (r *memOrderRepo) Create(o *entity.Order) error { r.orders[o.ID] = o; return nil }
func (r *memOrderRepo) GetByID(id string) (*entity.Order, error) {
	return r.orders[id], nil
}
func (r *memOrderRepo) List(f repository.OrderFilter) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if f.CustomerID != "" && o.CustomerID != f.CustomerID {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}
func (r *memOrderRepo) Count(f repository.OrderFilter) (int, error) {
	list, _ := r.List(repository.OrderFilter{CustomerID: f.CustomerID, Status: f.Status})
	return len(list), nil
}
func (r *memOrderRepo) Update(o *entity.Order) error { r.orders[o.ID] = o; return nil }
func (r *memOrderRepo) Delete(id string) error       { delete(r.orders, id); return nil }

func (r *memOrderRepo) CreateItem(it *entity.OrderService) error { r.items[it.ID] = it; return nil }
func (r *memOrderRepo) GetItemByID(id string) (*entity.OrderService, error) {
	return r.items[id], nil
}
func (r *memOrderRepo) ListItems(orderID string) ([]*entity.OrderService, error) {
	var out []*entity.OrderService
	for _, it := range r.items {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	return out, nil
}
func (r *memOrderRepo) UpdateItem(it *entity.OrderService) error { r.items[it.ID] = it; return nil }
func (r *memOrderRepo) DeleteItem(id string) error               { delete(r.items, id); return nil }
func (r *memOrderRepo) UpdateTotal(orderID string, total decimal.Decimal, updatedAt time.Time) error {
	o, ok := r.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	o.TotalAmount = total
	o.UpdatedAt = updatedAt
	return nil
}

// orderTxRunner ejecuta la función directamente sobre el repo en memoria.
type orderTxRunner struct{ repo *memOrderRepo }

func (t *orderTxRunner) Run(_ context.Context, fn func(repository.OrderRepository) error) error {
	return fn(t.repo)
}

// Stubs de solo-lectura: incrustan la interfaz y sobreescriben lo que el caso
// de uso consulta.
type stubCustomerRepo struct {
	repository.CustomerRepository
	customers map[string]*entity.Customer
}

func (r *stubCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.customers[id], nil
}

type stubEmployeeRepo struct {
	repository.EmployeeRepository
	employees map[string]*entity.Employee
}

func (r *stubEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return r.employees[id], nil
}

type stubServiceRepo struct {
	repository.ServiceRepository
	services map[string]*entity.Service
}

func (r *stubServiceRepo) GetByID(id string) (*entity.Service, error) {
	return r.services[id], nil
}

type stubPriceRepo struct {
	repository.PriceRepository
	prices map[string][]*entity.Price
}

func (r *stubPriceRepo) ListByService(serviceID string) ([]*entity.Price, error) {
	return r.prices[serviceID], nil
}

type stubDeliverableRepo struct {
	repository.DeliverableRepository
}

func (r *stubDeliverableRepo) ListByOrder(string) ([]*entity.Deliverable, error) {
	return nil, nil
}

// ── Armado ────────────────────────────────────────────────────────────────────

func newOrderFixture() (*orders.OrderUseCase, *memOrderRepo, *stubPriceRepo) {
	orderRepo := newMemOrderRepo()
	priceRepo := &stubPriceRepo{prices: map[string][]*entity.Price{
		"svc-logo": {
			{ID: "p1", ServiceID: "svc-logo", Amount: decimal.RequireFromString("15.00"),
				Currency: "COP", EffectiveDate: time.Now().AddDate(0, -1, 0)},
		},
	}}
	uc := orders.NewOrderUseCase(
		&orderTxRunner{repo: orderRepo},
		orderRepo,
		&stubCustomerRepo{customers: map[string]*entity.Customer{
			"cust-1": {ID: "cust-1", Name: "Acme SAS"},
		}},
		&stubEmployeeRepo{employees: map[string]*entity.Employee{
			"emp-1": {ID: "emp-1", Name: "Laura Gómez"},
		}},
		&stubServiceRepo{services: map[string]*entity.Service{
			"svc-logo": {ID: "svc-logo", Name: "Diseño de logo"},
		}},
		priceRepo,
		&stubDeliverableRepo{},
		nil,
		"COP",
	)
	return uc, orderRepo, priceRepo
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestOrderCreate_SinLineasTotalCero(t *testing.T) {
	uc, _, _ := newOrderFixture()

	resp, err := uc.Create(context.Background(), "actor", dto.CreateOrderRequest{CustomerID: "cust-1"})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDraft, resp.Status)
	assert.Equal(t, 3, resp.Priority, "la prioridad omitida queda en el punto medio")
	assert.True(t, resp.TotalAmount.IsZero())
}

func TestOrderCreate_ClienteInexistente(t *testing.T) {
	uc, _, _ := newOrderFixture()

	_, err := uc.Create(context.Background(), "actor", dto.CreateOrderRequest{CustomerID: "nadie"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El total siempre es Σ(precio × cantidad) de las líneas vivas: agregar una
// línea de 2 × 15.00 da 30.00, subir el precio a 17.50 da 35.00, reemplazarla
// por una de 1 × 5.00 da 5.00.
func TestOrderTotal_RecalculoEnCadaMutacion(t *testing.T) {
	uc, orderRepo, _ := newOrderFixture()
	ctx := context.Background()

	resp, err := uc.Create(ctx, "actor", dto.CreateOrderRequest{CustomerID: "cust-1"})
	require.NoError(t, err)

	item, err := uc.AddItem(ctx, "actor", resp.ID, dto.CreateOrderItemRequest{
		ServiceID: "svc-logo",
		Quantity:  2,
		UnitPrice: decimal.RequireFromString("15.00"),
	})
	require.NoError(t, err)
	order, _ := orderRepo.GetByID(resp.ID)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("30.00")),
		"total tras agregar 2 × 15.00, obtuvo %s", order.TotalAmount)

	_, err = uc.UpdateItem(ctx, "actor", item.ID, dto.UpdateOrderItemRequest{
		UnitPrice: decimal.RequireFromString("17.50"),
	})
	require.NoError(t, err)
	order, _ = orderRepo.GetByID(resp.ID)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("35.00")),
		"total tras subir el precio a 17.50, obtuvo %s", order.TotalAmount)

	require.NoError(t, uc.DeleteItem(ctx, "actor", item.ID))
	_, err = uc.AddItem(ctx, "actor", resp.ID, dto.CreateOrderItemRequest{
		ServiceID: "svc-logo",
		Quantity:  1,
		UnitPrice: decimal.RequireFromString("5.00"),
	})
	require.NoError(t, err)
	order, _ = orderRepo.GetByID(resp.ID)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("5.00")),
		"total tras reemplazar la línea, obtuvo %s", order.TotalAmount)
}

// Una línea sin precio explícito captura el precio vigente del catálogo; un
// cambio posterior del catálogo no altera la línea ya capturada.
func TestOrderItem_CapturaPrecioHistorico(t *testing.T) {
	uc, orderRepo, priceRepo := newOrderFixture()
	ctx := context.Background()

	resp, err := uc.Create(ctx, "actor", dto.CreateOrderRequest{
		CustomerID: "cust-1",
		Items:      []dto.CreateOrderItemRequest{{ServiceID: "svc-logo", Quantity: 2}},
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].UnitPrice.Equal(decimal.RequireFromString("15.00")))

	// Nuevo precio vigente en el catálogo
	priceRepo.prices["svc-logo"] = append(priceRepo.prices["svc-logo"], &entity.Price{
		ID: "p2", ServiceID: "svc-logo",
		Amount: decimal.RequireFromString("99.00"), Currency: "COP",
		EffectiveDate: time.Now(),
	})

	order, _ := orderRepo.GetByID(resp.ID)
	items, _ := orderRepo.ListItems(order.ID)
	require.Len(t, items, 1)
	assert.True(t, items[0].UnitPrice.Equal(decimal.RequireFromString("15.00")),
		"la línea conserva la foto histórica del precio")
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("30.00")))
}

func TestOrderItem_SinPrecioVigente(t *testing.T) {
	uc, _, priceRepo := newOrderFixture()
	priceRepo.prices = map[string][]*entity.Price{}

	_, err := uc.Create(context.Background(), "actor", dto.CreateOrderRequest{
		CustomerID: "cust-1",
		Items:      []dto.CreateOrderItemRequest{{ServiceID: "svc-logo", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNoPrice)
}

func TestOrderUpdate_DeliveredSellaCompletedAt(t *testing.T) {
	uc, orderRepo, _ := newOrderFixture()
	ctx := context.Background()

	resp, err := uc.Create(ctx, "actor", dto.CreateOrderRequest{CustomerID: "cust-1"})
	require.NoError(t, err)

	_, err = uc.Update(ctx, "actor", resp.ID, dto.UpdateOrderRequest{Status: entity.OrderStatusDelivered})
	require.NoError(t, err)
	order, _ := orderRepo.GetByID(resp.ID)
	require.NotNil(t, order.CompletedAt, "entrar a DELIVERED sella completed_at")

	// Reabrir la orden limpia el sello
	_, err = uc.Update(ctx, "actor", resp.ID, dto.UpdateOrderRequest{Status: entity.OrderStatusInProgress})
	require.NoError(t, err)
	order, _ = orderRepo.GetByID(resp.ID)
	assert.Nil(t, order.CompletedAt, "salir de DELIVERED limpia completed_at")
}

func TestOrderUpdate_CanceladaEsTerminal(t *testing.T) {
	uc, _, _ := newOrderFixture()
	ctx := context.Background()

	resp, err := uc.Create(ctx, "actor", dto.CreateOrderRequest{CustomerID: "cust-1"})
	require.NoError(t, err)
	_, err = uc.Update(ctx, "actor", resp.ID, dto.UpdateOrderRequest{Status: entity.OrderStatusCancelled})
	require.NoError(t, err)

	_, err = uc.Update(ctx, "actor", resp.ID, dto.UpdateOrderRequest{Status: entity.OrderStatusConfirmed})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestOrderDelete_SoloBorradorOCancelada(t *testing.T) {
	uc, _, _ := newOrderFixture()
	ctx := context.Background()

	resp, err := uc.Create(ctx, "actor", dto.CreateOrderRequest{CustomerID: "cust-1"})
	require.NoError(t, err)
	_, err = uc.Update(ctx, "actor", resp.ID, dto.UpdateOrderRequest{Status: entity.OrderStatusConfirmed})
	require.NoError(t, err)

	err = uc.Delete(ctx, "actor", resp.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestOrderGetByID_AlcanceClientePropio(t *testing.T) {
	uc, _, _ := newOrderFixture()
	ctx := context.Background()

	resp, err := uc.Create(ctx, "actor", dto.CreateOrderRequest{CustomerID: "cust-1"})
	require.NoError(t, err)

	_, err = uc.GetByID(resp.ID, "otro-cliente")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, err := uc.GetByID(resp.ID, "cust-1")
	require.NoError(t, err)
	assert.Equal(t, resp.ID, got.ID)
}
