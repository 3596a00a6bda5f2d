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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
// total_amount no se persiste en invoices: toda lectura lo trae con join del
// total de la orden.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceSelect = `
	SELECT i.id, i.order_id, i.number, i.sequence_number, i.date, i.due_date,
	       i.status, i.paid_amount, o.total_amount, i.notes, i.created_at, i.updated_at
	FROM invoices i
	JOIN orders o ON o.id = i.order_id`

// Create persiste una nueva factura. Number y SequenceNumber ya deben venir
// generados dentro de la misma transacción que reservó el consecutivo.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, order_id, number, sequence_number, date, due_date, status, paid_amount, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.OrderID, invoice.Number, invoice.SequenceNumber,
		invoice.Date, invoice.DueDate, invoice.Status, invoice.PaidAmount,
		invoice.Notes, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID con el total leído de la orden.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := invoiceSelect + ` WHERE i.id = $1`
	inv, err := scanInvoice(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// invoiceFilterClause construye el WHERE parametrizado compartido por List y Count.
func invoiceFilterClause(filter repository.InvoiceFilter) (string, []any) {
	where := ""
	args := []any{}
	if filter.OrderID != "" {
		args = append(args, filter.OrderID)
		where += fmt.Sprintf(" AND i.order_id = $%d", len(args))
	}
	if filter.CustomerID != "" {
		args = append(args, filter.CustomerID)
		where += fmt.Sprintf(" AND o.customer_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND i.status = $%d", len(args))
	}
	if where != "" {
		where = " WHERE" + where[4:]
	}
	return where, args
}

// List lista facturas con filtros y paginación, más recientes primero.
func (r *InvoiceRepo) List(filter repository.InvoiceFilter) ([]*entity.Invoice, error) {
	query := invoiceSelect
	where, args := invoiceFilterClause(filter)
	query += where
	query += fmt.Sprintf(` ORDER BY i.date DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// Count devuelve el total de facturas que cumplen el filtro.
func (r *InvoiceRepo) Count(filter repository.InvoiceFilter) (int, error) {
	query := `SELECT COUNT(*) FROM invoices i JOIN orders o ON o.id = i.order_id`
	where, args := invoiceFilterClause(filter)
	query += where
	var n int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return n, nil
}

// Update actualiza estado, fechas y notas de una factura. Number nunca cambia.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET due_date = $2, status = $3, notes = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.DueDate, invoice.Status, invoice.Notes, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// NextSequence reserva el siguiente consecutivo del año. El upsert con
// RETURNING es atómico: dos emisiones concurrentes nunca reciben el mismo
// consecutivo.
func (r *InvoiceRepo) NextSequence(year int) (int, error) {
	query := `
		INSERT INTO invoice_sequences (year, last_value)
		VALUES ($1, 1)
		ON CONFLICT (year) DO UPDATE SET last_value = invoice_sequences.last_value + 1
		RETURNING last_value`
	var seq int
	if err := r.q.QueryRow(context.Background(), query, year).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next invoice sequence: %w", err)
	}
	return seq, nil
}

// UpdateReconciliation persiste paid_amount y status tras reconciliar pagos.
func (r *InvoiceRepo) UpdateReconciliation(id string, paidAmount decimal.Decimal, status string, updatedAt time.Time) error {
	query := `UPDATE invoices SET paid_amount = $2, status = $3, updated_at = $4 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, paidAmount, status, updatedAt)
	if err != nil {
		return fmt.Errorf("update invoice reconciliation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.OrderID, &inv.Number, &inv.SequenceNumber, &inv.Date,
		&inv.DueDate, &inv.Status, &inv.PaidAmount, &inv.TotalAmount,
		&inv.Notes, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
