package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// DeliverableRepository define el puerto de persistencia para Deliverable.
type DeliverableRepository interface {
	Create(deliverable *entity.Deliverable) error
	GetByID(id string) (*entity.Deliverable, error)
	ListByOrder(orderID string) ([]*entity.Deliverable, error)
	List(limit, offset int) ([]*entity.Deliverable, error)
	Update(deliverable *entity.Deliverable) error
	Delete(id string) error
}
