package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
)

// AnalyticsRepository define consultas read-only de agregación para el dashboard.
type AnalyticsRepository interface {
	// RevenueBetween devuelve Σ(amount) de pagos COMPLETED en el rango.
	RevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	// AverageOrderValue devuelve el promedio de total_amount de órdenes recibidas en el rango.
	AverageOrderValue(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	TopServices(ctx context.Context, from, to time.Time, limit int) ([]dto.TopServiceDTO, error)
	TopCustomers(ctx context.Context, from, to time.Time, limit int) ([]dto.TopCustomerDTO, error)
	InvoiceStatusCounts(ctx context.Context) ([]dto.StatusCountDTO, error)
	DeliverableStatusCounts(ctx context.Context) ([]dto.StatusCountDTO, error)
	// AverageCycleHours devuelve el promedio en horas de completed_at - date_received
	// sobre órdenes entregadas en el rango.
	AverageCycleHours(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}
