package party

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// ProviderUseCase casos de uso para proveedores.
type ProviderUseCase struct {
	repo repository.ProviderRepository
}

// NewProviderUseCase construye el caso de uso.
func NewProviderUseCase(repo repository.ProviderRepository) *ProviderUseCase {
	return &ProviderUseCase{repo: repo}
}

// Create crea un proveedor.
func (uc *ProviderUseCase) Create(in dto.CreateProviderRequest) (*dto.ProviderResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	provider := &entity.Provider{
		ID:          uuid.New().String(),
		Name:        in.Name,
		ContactName: in.ContactName,
		Email:       in.Email,
		Phone:       in.Phone,
		ServiceArea: in.ServiceArea,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(provider); err != nil {
		return nil, err
	}
	return toProviderResponse(provider), nil
}

// GetByID obtiene un proveedor.
func (uc *ProviderUseCase) GetByID(id string) (*dto.ProviderResponse, error) {
	provider, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, domain.ErrNotFound
	}
	return toProviderResponse(provider), nil
}

// List lista proveedores.
func (uc *ProviderUseCase) List(page dto.PageRequest) ([]*dto.ProviderResponse, error) {
	page.Normalize()
	list, err := uc.repo.List(page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProviderResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProviderResponse(p))
	}
	return out, nil
}

// Update actualiza un proveedor.
func (uc *ProviderUseCase) Update(id string, in dto.CreateProviderRequest) (*dto.ProviderResponse, error) {
	provider, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		provider.Name = in.Name
	}
	if in.ContactName != "" {
		provider.ContactName = in.ContactName
	}
	if in.Email != "" {
		provider.Email = in.Email
	}
	if in.Phone != "" {
		provider.Phone = in.Phone
	}
	if in.ServiceArea != "" {
		provider.ServiceArea = in.ServiceArea
	}
	provider.UpdatedAt = time.Now()
	if err := uc.repo.Update(provider); err != nil {
		return nil, err
	}
	return toProviderResponse(provider), nil
}

// Delete elimina un proveedor.
func (uc *ProviderUseCase) Delete(id string) error {
	provider, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if provider == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProviderResponse(p *entity.Provider) *dto.ProviderResponse {
	return &dto.ProviderResponse{
		ID:          p.ID,
		Name:        p.Name,
		ContactName: p.ContactName,
		Email:       p.Email,
		Phone:       p.Phone,
		ServiceArea: p.ServiceArea,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
	}
}
