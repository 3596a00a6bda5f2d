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

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementación de ServiceRepository (usable con pool o tx).
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

const serviceColumns = `id, category_id, name, description, active, created_at, updated_at`

// Create persiste un nuevo servicio.
func (r *ServiceRepo) Create(service *entity.Service) error {
	query := `
		INSERT INTO services (` + serviceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		service.ID, nullable(service.CategoryID), service.Name, service.Description,
		service.Active, service.CreatedAt, service.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio por ID.
func (r *ServiceRepo) GetByID(id string) (*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`
	s, err := scanService(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return s, nil
}

// List lista servicios, filtrando por categoría si categoryID no es vacío.
func (r *ServiceRepo) List(categoryID string, limit, offset int) ([]*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services`
	args := []any{}
	if categoryID != "" {
		query += ` WHERE category_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
		args = append(args, categoryID, limit, offset)
	} else {
		query += ` ORDER BY name LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()
	var list []*entity.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update actualiza un servicio.
func (r *ServiceRepo) Update(service *entity.Service) error {
	query := `
		UPDATE services
		SET category_id = $2, name = $3, description = $4, active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		service.ID, nullable(service.CategoryID), service.Name, service.Description,
		service.Active, service.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// Delete elimina un servicio por ID.
func (r *ServiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

// CreateFeature persiste una característica de un servicio.
func (r *ServiceRepo) CreateFeature(feature *entity.ServiceFeature) error {
	query := `
		INSERT INTO service_features (id, service_id, name, detail)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		feature.ID, feature.ServiceID, feature.Name, feature.Detail,
	)
	if err != nil {
		return fmt.Errorf("insert service feature: %w", err)
	}
	return nil
}

// ListFeatures lista las características de un servicio.
func (r *ServiceRepo) ListFeatures(serviceID string) ([]*entity.ServiceFeature, error) {
	query := `SELECT id, service_id, name, detail FROM service_features WHERE service_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, serviceID)
	if err != nil {
		return nil, fmt.Errorf("list service features: %w", err)
	}
	defer rows.Close()
	var list []*entity.ServiceFeature
	for rows.Next() {
		var f entity.ServiceFeature
		if err := rows.Scan(&f.ID, &f.ServiceID, &f.Name, &f.Detail); err != nil {
			return nil, fmt.Errorf("scan service feature: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// DeleteFeature elimina una característica por ID.
func (r *ServiceRepo) DeleteFeature(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM service_features WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service feature: %w", err)
	}
	return nil
}

func scanService(row pgx.Row) (*entity.Service, error) {
	var s entity.Service
	var categoryID *string
	err := row.Scan(&s.ID, &categoryID, &s.Name, &s.Description, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.CategoryID = fromNullable(categoryID)
	return &s, nil
}
