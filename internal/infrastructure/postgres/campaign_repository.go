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

var _ repository.CampaignRepository = (*CampaignRepo)(nil)

// CampaignRepo implementación de CampaignRepository (usable con pool o tx).
type CampaignRepo struct {
	q Querier
}

// NewCampaignRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCampaignRepository(q Querier) *CampaignRepo {
	return &CampaignRepo{q: q}
}

const campaignColumns = `id, name, description, discount_rate, start_date, end_date, active, created_at, updated_at`

// Create persiste una nueva campaña.
func (r *CampaignRepo) Create(campaign *entity.Campaign) error {
	query := `
		INSERT INTO campaigns (` + campaignColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		campaign.ID, campaign.Name, campaign.Description, campaign.DiscountRate,
		campaign.StartDate, campaign.EndDate, campaign.Active,
		campaign.CreatedAt, campaign.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

// GetByID obtiene una campaña por ID.
func (r *CampaignRepo) GetByID(id string) (*entity.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`
	var c entity.Campaign
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.DiscountRate, &c.StartDate,
		&c.EndDate, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return &c, nil
}

// List lista campañas con paginación.
func (r *CampaignRepo) List(limit, offset int) ([]*entity.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns ORDER BY start_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()
	var list []*entity.Campaign
	for rows.Next() {
		var c entity.Campaign
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.DiscountRate, &c.StartDate, &c.EndDate, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una campaña.
func (r *CampaignRepo) Update(campaign *entity.Campaign) error {
	query := `
		UPDATE campaigns
		SET name = $2, description = $3, discount_rate = $4, start_date = $5, end_date = $6, active = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		campaign.ID, campaign.Name, campaign.Description, campaign.DiscountRate,
		campaign.StartDate, campaign.EndDate, campaign.Active, campaign.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update campaign: %w", err)
	}
	return nil
}

// Delete elimina una campaña por ID.
func (r *CampaignRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	return nil
}

// AddService vincula un servicio a la campaña.
func (r *CampaignRepo) AddService(link *entity.CampaignService) error {
	query := `
		INSERT INTO campaign_services (id, campaign_id, service_id)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, link.ID, link.CampaignID, link.ServiceID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert campaign service: %w", err)
	}
	return nil
}

// RemoveService desvincula un servicio de la campaña.
func (r *CampaignRepo) RemoveService(campaignID, serviceID string) error {
	query := `DELETE FROM campaign_services WHERE campaign_id = $1 AND service_id = $2`
	_, err := r.q.Exec(context.Background(), query, campaignID, serviceID)
	if err != nil {
		return fmt.Errorf("delete campaign service: %w", err)
	}
	return nil
}

// ListServices lista los vínculos campaña-servicio de una campaña.
func (r *CampaignRepo) ListServices(campaignID string) ([]*entity.CampaignService, error) {
	query := `SELECT id, campaign_id, service_id FROM campaign_services WHERE campaign_id = $1`
	rows, err := r.q.Query(context.Background(), query, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list campaign services: %w", err)
	}
	defer rows.Close()
	var list []*entity.CampaignService
	for rows.Next() {
		var cs entity.CampaignService
		if err := rows.Scan(&cs.ID, &cs.CampaignID, &cs.ServiceID); err != nil {
			return nil, fmt.Errorf("scan campaign service: %w", err)
		}
		list = append(list, &cs)
	}
	return list, rows.Err()
}
