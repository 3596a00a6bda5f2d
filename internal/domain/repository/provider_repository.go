package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// ProviderRepository define el puerto de persistencia para Provider.
type ProviderRepository interface {
	Create(provider *entity.Provider) error
	GetByID(id string) (*entity.Provider, error)
	List(limit, offset int) ([]*entity.Provider, error)
	Update(provider *entity.Provider) error
	Delete(id string) error
}
