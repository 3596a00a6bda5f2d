package catalog_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/domain/catalog"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

var hoy = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

func precio(id, currency string, amount string, effective time.Time) *entity.Price {
	return &entity.Price{
		ID:            id,
		ServiceID:     "svc-1",
		Amount:        decimal.RequireFromString(amount),
		Currency:      currency,
		EffectiveDate: effective,
	}
}

func TestResolveCurrentPrice_TomaElVigenteMasReciente(t *testing.T) {
	candidatos := []*entity.Price{
		precio("p1", "COP", "100.00", hoy.AddDate(0, -6, 0)),
		precio("p2", "COP", "120.00", hoy.AddDate(0, -1, 0)), // el vigente
		precio("p3", "COP", "150.00", hoy.AddDate(0, 1, 0)),  // futuro, no aplica
	}
	got := catalog.ResolveCurrentPrice(candidatos, "COP", hoy)
	require.NotNil(t, got)
	assert.Equal(t, "p2", got.ID, "debe elegir la fecha efectiva más reciente no futura")
}

func TestResolveCurrentPrice_IgnoraOtrasMonedas(t *testing.T) {
	candidatos := []*entity.Price{
		precio("usd", "USD", "30.00", hoy.AddDate(0, -1, 0)),
		precio("cop", "COP", "110.00", hoy.AddDate(0, -3, 0)),
	}
	got := catalog.ResolveCurrentPrice(candidatos, "COP", hoy)
	require.NotNil(t, got)
	assert.Equal(t, "cop", got.ID)
}

// Solo hay un precio futuro: el fallback devuelve ese precio en lugar de nada.
func TestResolveCurrentPrice_SoloFuturoCaeAlMasReciente(t *testing.T) {
	candidatos := []*entity.Price{
		precio("fut", "COP", "200.00", hoy.AddDate(0, 2, 0)),
	}
	got := catalog.ResolveCurrentPrice(candidatos, "COP", hoy)
	require.NotNil(t, got, "con solo precios futuros debe caer al más reciente disponible")
	assert.Equal(t, "fut", got.ID)
}

func TestResolveCurrentPrice_SinCandidatosDevuelveNil(t *testing.T) {
	assert.Nil(t, catalog.ResolveCurrentPrice(nil, "COP", hoy),
		"sin precios el llamador debe recibir nil y manejarlo")
}

func TestResolveCurrentPrice_FechaEfectivaHoyAplica(t *testing.T) {
	candidatos := []*entity.Price{
		precio("hoy", "COP", "99.00", hoy),
	}
	got := catalog.ResolveCurrentPrice(candidatos, "COP", hoy)
	require.NotNil(t, got)
	assert.Equal(t, "hoy", got.ID, "una fecha efectiva igual a hoy no es futura")
}
