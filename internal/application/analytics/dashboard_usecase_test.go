package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/Gestion-api/internal/application/analytics"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
)

// fakeAnalyticsRepo registra los rangos consultados y devuelve valores fijos.
type fakeAnalyticsRepo struct {
	revenueFrom, revenueTo time.Time
	avgFrom, avgTo         time.Time
}

func (r *fakeAnalyticsRepo) RevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	r.revenueFrom, r.revenueTo = from, to
	return decimal.RequireFromString("1250.505"), nil
}
func (r *fakeAnalyticsRepo) AverageOrderValue(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	r.avgFrom, r.avgTo = from, to
	return decimal.RequireFromString("310.00"), nil
}
func (r *fakeAnalyticsRepo) TopServices(ctx context.Context, from, to time.Time, limit int) ([]dto.TopServiceDTO, error) {
	return []dto.TopServiceDTO{{ServiceID: "s1", Name: "Diseño web", Quantity: 4}}, nil
}
func (r *fakeAnalyticsRepo) TopCustomers(ctx context.Context, from, to time.Time, limit int) ([]dto.TopCustomerDTO, error) {
	return nil, nil
}
func (r *fakeAnalyticsRepo) InvoiceStatusCounts(ctx context.Context) ([]dto.StatusCountDTO, error) {
	return []dto.StatusCountDTO{{Status: "PAID", Count: 3}}, nil
}
func (r *fakeAnalyticsRepo) DeliverableStatusCounts(ctx context.Context) ([]dto.StatusCountDTO, error) {
	return nil, nil
}
func (r *fakeAnalyticsRepo) AverageCycleHours(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	return decimal.RequireFromString("36.27"), nil
}

func TestGetSummary_IngresosSobreMesCalendarioAnterior(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	uc := analytics.NewDashboardUseCase(repo)

	_, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	// los ingresos cubren el mes anterior completo
	assert.True(t, repo.revenueFrom.Equal(monthStart.AddDate(0, -1, 0)),
		"from = %s", repo.revenueFrom)
	assert.True(t, repo.revenueTo.Before(monthStart), "to = %s", repo.revenueTo)
	assert.True(t, monthStart.Sub(repo.revenueTo) <= time.Second)

	// los demás KPIs de rango siguen sobre el mes en curso
	assert.True(t, repo.avgFrom.Equal(monthStart), "avg from = %s", repo.avgFrom)
}

func TestGetSummary_RedondeaMontos(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeAnalyticsRepo{})

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, summary.RevenueLastMonth.Equal(decimal.RequireFromString("1250.51")))
	assert.True(t, summary.AvgCycleHours.Equal(decimal.RequireFromString("36.3")))
	require.Len(t, summary.TopServices, 1)
	assert.Equal(t, "Diseño web", summary.TopServices[0].Name)
}
