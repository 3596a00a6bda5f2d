package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// OrderFilter filtros de listado de órdenes.
type OrderFilter struct {
	CustomerID string
	Status     string
	Limit      int
	Offset     int
}

// OrderRepository define el puerto de persistencia para Order y sus líneas.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	List(filter OrderFilter) ([]*entity.Order, error)
	Count(filter OrderFilter) (int, error)
	Update(order *entity.Order) error
	Delete(id string) error

	CreateItem(item *entity.OrderService) error
	GetItemByID(id string) (*entity.OrderService, error)
	ListItems(orderID string) ([]*entity.OrderService, error)
	UpdateItem(item *entity.OrderService) error
	DeleteItem(id string) error

	// UpdateTotal persiste el total derivado de la orden tras recalcularlo.
	UpdateTotal(orderID string, total decimal.Decimal, updatedAt time.Time) error
}
