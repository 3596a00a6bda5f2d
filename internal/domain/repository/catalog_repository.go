package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// ServiceCategoryRepository define el puerto de persistencia para ServiceCategory.
type ServiceCategoryRepository interface {
	Create(category *entity.ServiceCategory) error
	GetByID(id string) (*entity.ServiceCategory, error)
	List(limit, offset int) ([]*entity.ServiceCategory, error)
	Update(category *entity.ServiceCategory) error
	Delete(id string) error
}

// ServiceRepository define el puerto de persistencia para Service y sus características.
type ServiceRepository interface {
	Create(service *entity.Service) error
	GetByID(id string) (*entity.Service, error)
	// List filtra por categoría si categoryID no es vacío.
	List(categoryID string, limit, offset int) ([]*entity.Service, error)
	Update(service *entity.Service) error
	Delete(id string) error

	CreateFeature(feature *entity.ServiceFeature) error
	ListFeatures(serviceID string) ([]*entity.ServiceFeature, error)
	DeleteFeature(id string) error
}

// PriceRepository define el puerto de persistencia para Price.
// La resolución del precio vigente se hace en dominio sobre ListByService.
type PriceRepository interface {
	Create(price *entity.Price) error
	ListByService(serviceID string) ([]*entity.Price, error)
	Delete(id string) error
}

// CampaignRepository define el puerto de persistencia para Campaign.
type CampaignRepository interface {
	Create(campaign *entity.Campaign) error
	GetByID(id string) (*entity.Campaign, error)
	List(limit, offset int) ([]*entity.Campaign, error)
	Update(campaign *entity.Campaign) error
	Delete(id string) error

	AddService(link *entity.CampaignService) error
	RemoveService(campaignID, serviceID string) error
	ListServices(campaignID string) ([]*entity.CampaignService, error)
}
