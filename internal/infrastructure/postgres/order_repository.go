package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
// total_amount es una columna derivada: solo la escribe UpdateTotal tras el
// recálculo sobre las líneas.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, customer_id, employee_id, status, priority, date_received, date_required, completed_at, total_amount, notes, created_at, updated_at`

// Create persiste una nueva orden.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CustomerID, nullable(order.EmployeeID), order.Status,
		order.Priority, order.DateReceived, nullableTime(order.DateRequired),
		order.CompletedAt, order.TotalAmount, order.Notes,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// List lista órdenes con filtros y paginación, más recientes primero.
func (r *OrderRepo) List(filter repository.OrderFilter) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	where, args := orderFilterClause(filter)
	query += where
	query += fmt.Sprintf(` ORDER BY date_received DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// Count devuelve el total de órdenes que cumplen el filtro.
func (r *OrderRepo) Count(filter repository.OrderFilter) (int, error) {
	query := `SELECT COUNT(*) FROM orders`
	where, args := orderFilterClause(filter)
	query += where
	var n int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

// Update actualiza la cabecera de una orden. No toca total_amount.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders
		SET employee_id = $2, status = $3, priority = $4, date_required = $5, completed_at = $6, notes = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, nullable(order.EmployeeID), order.Status, order.Priority,
		nullableTime(order.DateRequired), order.CompletedAt, order.Notes, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// Delete elimina una orden y sus líneas (cascade en DB).
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de orden.
func (r *OrderRepo) CreateItem(item *entity.OrderService) error {
	query := `
		INSERT INTO order_services (id, order_id, service_id, quantity, unit_price, currency, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.ServiceID, item.Quantity, item.UnitPrice,
		item.Currency, item.Note, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetItemByID obtiene una línea por ID.
func (r *OrderRepo) GetItemByID(id string) (*entity.OrderService, error) {
	query := `
		SELECT id, order_id, service_id, quantity, unit_price, currency, note, created_at, updated_at
		FROM order_services WHERE id = $1`
	var it entity.OrderService
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.OrderID, &it.ServiceID, &it.Quantity, &it.UnitPrice,
		&it.Currency, &it.Note, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order item: %w", err)
	}
	return &it, nil
}

// ListItems lista las líneas de una orden.
func (r *OrderRepo) ListItems(orderID string) ([]*entity.OrderService, error) {
	query := `
		SELECT id, order_id, service_id, quantity, unit_price, currency, note, created_at, updated_at
		FROM order_services WHERE order_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderService
	for rows.Next() {
		var it entity.OrderService
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ServiceID, &it.Quantity, &it.UnitPrice, &it.Currency, &it.Note, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// UpdateItem actualiza una línea.
func (r *OrderRepo) UpdateItem(item *entity.OrderService) error {
	query := `
		UPDATE order_services
		SET quantity = $2, unit_price = $3, currency = $4, note = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Quantity, item.UnitPrice, item.Currency, item.Note, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order item: %w", err)
	}
	return nil
}

// DeleteItem elimina una línea por ID.
func (r *OrderRepo) DeleteItem(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM order_services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order item: %w", err)
	}
	return nil
}

// UpdateTotal persiste el total derivado tras el recálculo.
func (r *OrderRepo) UpdateTotal(orderID string, total decimal.Decimal, updatedAt time.Time) error {
	query := `UPDATE orders SET total_amount = $2, updated_at = $3 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, orderID, total, updatedAt)
	if err != nil {
		return fmt.Errorf("update order total: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func orderFilterClause(filter repository.OrderFilter) (string, []any) {
	where := ""
	args := []any{}
	if filter.CustomerID != "" {
		args = append(args, filter.CustomerID)
		where += fmt.Sprintf(" AND customer_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if where != "" {
		where = " WHERE" + where[4:]
	}
	return where, args
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var employeeID *string
	var dateRequired *time.Time
	err := row.Scan(
		&o.ID, &o.CustomerID, &employeeID, &o.Status, &o.Priority,
		&o.DateReceived, &dateRequired, &o.CompletedAt, &o.TotalAmount,
		&o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.EmployeeID = fromNullable(employeeID)
	o.DateRequired = fromNullableTime(dateRequired)
	return &o, nil
}
