package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)
var _ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)
var _ repository.TransactionTypeRepository = (*TransactionTypeRepo)(nil)

// PaymentRepo implementación de PaymentRepository (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

const paymentColumns = `id, invoice_id, payment_method_id, transaction_type_id, amount, currency, status, reference, created_at, updated_at`

// Create persiste un nuevo pago.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.InvoiceID, nullable(payment.PaymentMethodID),
		nullable(payment.TransactionTypeID), payment.Amount, payment.Currency,
		payment.Status, payment.Reference, payment.CreatedAt, payment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	p, err := scanPayment(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

// ListByInvoice lista los pagos de una factura en orden de registro.
func (r *PaymentRepo) ListByInvoice(invoiceID string) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE invoice_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza el estado de un pago. Monto y factura no cambian.
func (r *PaymentRepo) Update(payment *entity.Payment) error {
	query := `UPDATE payments SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, payment.ID, payment.Status, payment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	return nil
}

// Delete elimina un pago por ID.
func (r *PaymentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	return nil
}

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var p entity.Payment
	var methodID, txTypeID *string
	err := row.Scan(
		&p.ID, &p.InvoiceID, &methodID, &txTypeID, &p.Amount, &p.Currency,
		&p.Status, &p.Reference, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.PaymentMethodID = fromNullable(methodID)
	p.TransactionTypeID = fromNullable(txTypeID)
	return &p, nil
}

// PaymentMethodRepo catálogo de medios de pago.
type PaymentMethodRepo struct {
	q Querier
}

// NewPaymentMethodRepository construye el adaptador.
func NewPaymentMethodRepository(q Querier) *PaymentMethodRepo {
	return &PaymentMethodRepo{q: q}
}

// Create persiste un medio de pago.
func (r *PaymentMethodRepo) Create(method *entity.PaymentMethod) error {
	query := `INSERT INTO payment_methods (id, name, active, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, method.ID, method.Name, method.Active, method.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment method: %w", err)
	}
	return nil
}

// GetByID obtiene un medio de pago por ID.
func (r *PaymentMethodRepo) GetByID(id string) (*entity.PaymentMethod, error) {
	query := `SELECT id, name, active, created_at FROM payment_methods WHERE id = $1`
	var m entity.PaymentMethod
	err := r.q.QueryRow(context.Background(), query, id).Scan(&m.ID, &m.Name, &m.Active, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment method: %w", err)
	}
	return &m, nil
}

// List lista los medios de pago.
func (r *PaymentMethodRepo) List() ([]*entity.PaymentMethod, error) {
	query := `SELECT id, name, active, created_at FROM payment_methods ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentMethod
	for rows.Next() {
		var m entity.PaymentMethod
		if err := rows.Scan(&m.ID, &m.Name, &m.Active, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// TransactionTypeRepo catálogo de tipos de transacción.
type TransactionTypeRepo struct {
	q Querier
}

// NewTransactionTypeRepository construye el adaptador.
func NewTransactionTypeRepository(q Querier) *TransactionTypeRepo {
	return &TransactionTypeRepo{q: q}
}

// Create persiste un tipo de transacción.
func (r *TransactionTypeRepo) Create(txType *entity.TransactionType) error {
	query := `INSERT INTO transaction_types (id, name, created_at) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, txType.ID, txType.Name, txType.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert transaction type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo de transacción por ID.
func (r *TransactionTypeRepo) GetByID(id string) (*entity.TransactionType, error) {
	query := `SELECT id, name, created_at FROM transaction_types WHERE id = $1`
	var t entity.TransactionType
	err := r.q.QueryRow(context.Background(), query, id).Scan(&t.ID, &t.Name, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction type: %w", err)
	}
	return &t, nil
}

// List lista los tipos de transacción.
func (r *TransactionTypeRepo) List() ([]*entity.TransactionType, error) {
	query := `SELECT id, name, created_at FROM transaction_types ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list transaction types: %w", err)
	}
	defer rows.Close()
	var list []*entity.TransactionType
	for rows.Next() {
		var t entity.TransactionType
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction type: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
