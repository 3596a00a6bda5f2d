package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	GetByAccountID(accountID string) (*entity.Employee, error)
	List(limit, offset int) ([]*entity.Employee, error)
	Update(employee *entity.Employee) error
	Delete(id string) error
}

// JobPositionRepository define el puerto de persistencia para JobPosition.
type JobPositionRepository interface {
	Create(position *entity.JobPosition) error
	GetByID(id string) (*entity.JobPosition, error)
	List(limit, offset int) ([]*entity.JobPosition, error)
	Update(position *entity.JobPosition) error
	Delete(id string) error
}
