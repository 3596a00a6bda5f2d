package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para los KPIs del dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// RevenueBetween devuelve la suma de pagos COMPLETED registrados en el período.
// Incluye reembolsos (monto negativo): el ingreso reportado es el neto.
func (r *AnalyticsRepo) RevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(amount), 0)
	FROM payments
	WHERE status = 'COMPLETED' AND created_at BETWEEN $1 AND $2`

	var revenue decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, from, to).Scan(&revenue); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.RevenueBetween: %w", err)
	}
	return revenue, nil
}

// AverageOrderValue devuelve el promedio de total_amount de las órdenes no
// canceladas recibidas en el período.
func (r *AnalyticsRepo) AverageOrderValue(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(AVG(total_amount), 0)
	FROM orders
	WHERE status <> 'CANCELLED' AND date_received BETWEEN $1 AND $2`

	var avg decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, from, to).Scan(&avg); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.AverageOrderValue: %w", err)
	}
	return avg, nil
}

// TopServices agrupa las líneas de órdenes no canceladas del período por
// servicio, ordenadas por ingreso.
func (r *AnalyticsRepo) TopServices(ctx context.Context, from, to time.Time, limit int) ([]dto.TopServiceDTO, error) {
	const query = `
	SELECT
	    s.id,
	    s.name,
	    SUM(os.quantity)                   AS units,
	    SUM(os.unit_price * os.quantity)   AS revenue
	FROM order_services os
	JOIN orders   o ON o.id = os.order_id
	JOIN services s ON s.id = os.service_id
	WHERE o.status <> 'CANCELLED'
	  AND o.date_received BETWEEN $1 AND $2
	GROUP BY s.id, s.name
	ORDER BY revenue DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.TopServices: %w", err)
	}
	defer rows.Close()

	var results []dto.TopServiceDTO
	for rows.Next() {
		var row dto.TopServiceDTO
		if err := rows.Scan(&row.ServiceID, &row.Name, &row.Quantity, &row.Revenue); err != nil {
			return nil, fmt.Errorf("analytics.TopServices scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TopCustomers agrupa las órdenes no canceladas del período por cliente,
// ordenadas por facturación.
func (r *AnalyticsRepo) TopCustomers(ctx context.Context, from, to time.Time, limit int) ([]dto.TopCustomerDTO, error) {
	const query = `
	SELECT
	    c.id,
	    c.name,
	    SUM(o.total_amount) AS revenue
	FROM orders o
	JOIN customers c ON c.id = o.customer_id
	WHERE o.status <> 'CANCELLED'
	  AND o.date_received BETWEEN $1 AND $2
	GROUP BY c.id, c.name
	ORDER BY revenue DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.TopCustomers: %w", err)
	}
	defer rows.Close()

	var results []dto.TopCustomerDTO
	for rows.Next() {
		var row dto.TopCustomerDTO
		if err := rows.Scan(&row.CustomerID, &row.Name, &row.Revenue); err != nil {
			return nil, fmt.Errorf("analytics.TopCustomers scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// InvoiceStatusCounts cuenta facturas por estado.
func (r *AnalyticsRepo) InvoiceStatusCounts(ctx context.Context) ([]dto.StatusCountDTO, error) {
	const query = `SELECT status, COUNT(*) FROM invoices GROUP BY status ORDER BY status`
	return r.statusCounts(ctx, query, "analytics.InvoiceStatusCounts")
}

// DeliverableStatusCounts cuenta entregables por estado.
func (r *AnalyticsRepo) DeliverableStatusCounts(ctx context.Context) ([]dto.StatusCountDTO, error) {
	const query = `SELECT status, COUNT(*) FROM deliverables GROUP BY status ORDER BY status`
	return r.statusCounts(ctx, query, "analytics.DeliverableStatusCounts")
}

// AverageCycleHours devuelve el promedio en horas de completed_at -
// date_received sobre las órdenes entregadas en el período.
func (r *AnalyticsRepo) AverageCycleHours(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(AVG(EXTRACT(EPOCH FROM (completed_at - date_received)) / 3600), 0)
	FROM orders
	WHERE status = 'DELIVERED'
	  AND completed_at IS NOT NULL
	  AND completed_at BETWEEN $1 AND $2`

	var hours decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, from, to).Scan(&hours); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.AverageCycleHours: %w", err)
	}
	return hours, nil
}

func (r *AnalyticsRepo) statusCounts(ctx context.Context, query, op string) ([]dto.StatusCountDTO, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var results []dto.StatusCountDTO
	for rows.Next() {
		var row dto.StatusCountDTO
		if err := rows.Scan(&row.Status, &row.Count); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
