package orders_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/orders"
)

func linea(price string, qty int) *entity.OrderService {
	return &entity.OrderService{UnitPrice: decimal.RequireFromString(price), Quantity: qty}
}

func TestComputeTotal_SinLineasEsCero(t *testing.T) {
	assert.True(t, orders.ComputeTotal(nil).IsZero())
}

func TestComputeTotal_SumaPrecioPorCantidad(t *testing.T) {
	total := orders.ComputeTotal([]*entity.OrderService{
		linea("10.00", 3),
		linea("5.00", 1),
	})
	assert.True(t, total.Equal(decimal.RequireFromString("35.00")),
		"esperado 35.00, calculado %s", total)
}

// Recalcular dos veces sin tocar las líneas produce el mismo valor (idempotencia).
func TestComputeTotal_Idempotente(t *testing.T) {
	items := []*entity.OrderService{linea("12.50", 4), linea("3.00", 2)}
	primera := orders.ComputeTotal(items)
	segunda := orders.ComputeTotal(items)
	assert.True(t, primera.Equal(segunda))
}

func TestResolveCompletedAt_EntrarADeliveredFijaElInstante(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	got := orders.ResolveCompletedAt(entity.OrderStatusInProgress, entity.OrderStatusDelivered, nil, now)
	require.NotNil(t, got)
	assert.True(t, got.Equal(now))
}

func TestResolveCompletedAt_SalirDeDeliveredLimpia(t *testing.T) {
	antes := time.Now().Add(-time.Hour)
	got := orders.ResolveCompletedAt(entity.OrderStatusDelivered, entity.OrderStatusCancelled, &antes, time.Now())
	assert.Nil(t, got, "al salir de DELIVERED el sello debe limpiarse")
}

func TestResolveCompletedAt_OtroCambioConserva(t *testing.T) {
	antes := time.Now().Add(-time.Hour)
	got := orders.ResolveCompletedAt(entity.OrderStatusDraft, entity.OrderStatusConfirmed, &antes, time.Now())
	require.NotNil(t, got)
	assert.True(t, got.Equal(antes), "cambios que no tocan DELIVERED conservan el valor previo")
}

func TestResolveCompletedAt_PermanecerEnDeliveredNoRegenera(t *testing.T) {
	antes := time.Now().Add(-time.Hour)
	got := orders.ResolveCompletedAt(entity.OrderStatusDelivered, entity.OrderStatusDelivered, &antes, time.Now())
	require.NotNil(t, got)
	assert.True(t, got.Equal(antes))
}
