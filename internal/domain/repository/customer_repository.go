package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByTaxID(taxID string) (*entity.Customer, error)
	// GetByAccountID resuelve el perfil de cliente ligado a una cuenta (composición explícita).
	GetByAccountID(accountID string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
	Count() (int, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
