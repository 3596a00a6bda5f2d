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

var _ repository.ServiceCategoryRepository = (*ServiceCategoryRepo)(nil)

// ServiceCategoryRepo implementación de ServiceCategoryRepository.
type ServiceCategoryRepo struct {
	q Querier
}

// NewServiceCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServiceCategoryRepository(q Querier) *ServiceCategoryRepo {
	return &ServiceCategoryRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *ServiceCategoryRepo) Create(category *entity.ServiceCategory) error {
	query := `
		INSERT INTO service_categories (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert service category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *ServiceCategoryRepo) GetByID(id string) (*entity.ServiceCategory, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM service_categories WHERE id = $1`
	var c entity.ServiceCategory
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service category: %w", err)
	}
	return &c, nil
}

// List lista categorías con paginación.
func (r *ServiceCategoryRepo) List(limit, offset int) ([]*entity.ServiceCategory, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM service_categories ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list service categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.ServiceCategory
	for rows.Next() {
		var c entity.ServiceCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan service category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una categoría.
func (r *ServiceCategoryRepo) Update(category *entity.ServiceCategory) error {
	query := `UPDATE service_categories SET name = $2, description = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update service category: %w", err)
	}
	return nil
}

// Delete elimina una categoría por ID.
func (r *ServiceCategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM service_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service category: %w", err)
	}
	return nil
}
