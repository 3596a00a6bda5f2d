package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.DeliverableRepository = (*DeliverableRepo)(nil)

// DeliverableRepo implementación de DeliverableRepository (usable con pool o tx).
type DeliverableRepo struct {
	q Querier
}

// NewDeliverableRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDeliverableRepository(q Querier) *DeliverableRepo {
	return &DeliverableRepo{q: q}
}

const deliverableColumns = `id, order_id, description, version, status, employee_id, provider_id, due_date, feedback, created_at, updated_at`

// Create persiste un nuevo entregable.
func (r *DeliverableRepo) Create(deliverable *entity.Deliverable) error {
	query := `
		INSERT INTO deliverables (` + deliverableColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		deliverable.ID, deliverable.OrderID, deliverable.Description,
		deliverable.Version, deliverable.Status,
		nullable(deliverable.EmployeeID), nullable(deliverable.ProviderID),
		nullableTime(deliverable.DueDate), deliverable.Feedback,
		deliverable.CreatedAt, deliverable.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert deliverable: %w", err)
	}
	return nil
}

// GetByID obtiene un entregable por ID.
func (r *DeliverableRepo) GetByID(id string) (*entity.Deliverable, error) {
	query := `SELECT ` + deliverableColumns + ` FROM deliverables WHERE id = $1`
	d, err := scanDeliverable(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get deliverable: %w", err)
	}
	return d, nil
}

// ListByOrder lista los entregables de una orden.
func (r *DeliverableRepo) ListByOrder(orderID string) ([]*entity.Deliverable, error) {
	query := `SELECT ` + deliverableColumns + ` FROM deliverables WHERE order_id = $1 ORDER BY created_at`
	return r.queryList(query, orderID)
}

// List lista entregables con paginación, más recientes primero.
func (r *DeliverableRepo) List(limit, offset int) ([]*entity.Deliverable, error) {
	query := `SELECT ` + deliverableColumns + ` FROM deliverables ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryList(query, limit, offset)
}

// Update actualiza un entregable.
func (r *DeliverableRepo) Update(deliverable *entity.Deliverable) error {
	query := `
		UPDATE deliverables
		SET description = $2, version = $3, status = $4, employee_id = $5, provider_id = $6, due_date = $7, feedback = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		deliverable.ID, deliverable.Description, deliverable.Version, deliverable.Status,
		nullable(deliverable.EmployeeID), nullable(deliverable.ProviderID),
		nullableTime(deliverable.DueDate), deliverable.Feedback, deliverable.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update deliverable: %w", err)
	}
	return nil
}

// Delete elimina un entregable por ID.
func (r *DeliverableRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM deliverables WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete deliverable: %w", err)
	}
	return nil
}

func (r *DeliverableRepo) queryList(query string, args ...any) ([]*entity.Deliverable, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list deliverables: %w", err)
	}
	defer rows.Close()
	var list []*entity.Deliverable
	for rows.Next() {
		d, err := scanDeliverable(rows)
		if err != nil {
			return nil, fmt.Errorf("scan deliverable: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func scanDeliverable(row pgx.Row) (*entity.Deliverable, error) {
	var d entity.Deliverable
	var employeeID, providerID *string
	var dueDate *time.Time
	err := row.Scan(
		&d.ID, &d.OrderID, &d.Description, &d.Version, &d.Status,
		&employeeID, &providerID, &dueDate, &d.Feedback, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	d.EmployeeID = fromNullable(employeeID)
	d.ProviderID = fromNullable(providerID)
	d.DueDate = fromNullableTime(dueDate)
	return &d, nil
}
