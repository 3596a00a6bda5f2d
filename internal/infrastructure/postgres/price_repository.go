package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.PriceRepository = (*PriceRepo)(nil)

// PriceRepo implementación de PriceRepository. El precio vigente no se
// resuelve aquí: el dominio lo calcula sobre ListByService.
type PriceRepo struct {
	q Querier
}

// NewPriceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPriceRepository(q Querier) *PriceRepo {
	return &PriceRepo{q: q}
}

// Create persiste un precio con fecha efectiva.
func (r *PriceRepo) Create(price *entity.Price) error {
	query := `
		INSERT INTO prices (id, service_id, amount, currency, effective_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		price.ID, price.ServiceID, price.Amount, price.Currency,
		price.EffectiveDate, price.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert price: %w", err)
	}
	return nil
}

// ListByService lista los precios de un servicio, más reciente primero.
func (r *PriceRepo) ListByService(serviceID string) ([]*entity.Price, error) {
	query := `
		SELECT id, service_id, amount, currency, effective_date, created_at
		FROM prices WHERE service_id = $1 ORDER BY effective_date DESC`
	rows, err := r.q.Query(context.Background(), query, serviceID)
	if err != nil {
		return nil, fmt.Errorf("list prices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Price
	for rows.Next() {
		var p entity.Price
		if err := rows.Scan(&p.ID, &p.ServiceID, &p.Amount, &p.Currency, &p.EffectiveDate, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan price: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un precio por ID.
func (r *PriceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM prices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete price: %w", err)
	}
	return nil
}
