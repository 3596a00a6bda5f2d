package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Order. DELIVERED y CANCELLED son terminales.
const (
	OrderStatusDraft      = "DRAFT"
	OrderStatusConfirmed  = "CONFIRMED"
	OrderStatusInProgress = "IN_PROGRESS"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusCancelled  = "CANCELLED"
)

// ValidOrderStatus indica si s es un estado de orden conocido.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusDraft, OrderStatusConfirmed, OrderStatusInProgress,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order representa una orden de un cliente compuesta por líneas de servicio.
// TotalAmount es derivado: siempre Σ(precio × cantidad) de sus líneas vivas;
// se recalcula en cada mutación de línea y nunca lo edita el cliente.
type Order struct {
	ID           string
	CustomerID   string
	EmployeeID   string // opcional, empleado responsable
	Status       string
	Priority     int // 1 (baja) a 5 (urgente)
	DateReceived time.Time
	DateRequired time.Time
	CompletedAt  *time.Time // solo con estado DELIVERED; se limpia al salir de él
	TotalAmount  decimal.Decimal
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderService es una línea de una orden: servicio del catálogo, cantidad y
// precio unitario capturado al momento de agregarla (foto histórica, no se
// vuelve a consultar el catálogo).
type OrderService struct {
	ID        string
	OrderID   string
	ServiceID string
	Quantity  int
	UnitPrice decimal.Decimal
	Currency  string
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Subtotal devuelve precio × cantidad de la línea.
func (os *OrderService) Subtotal() decimal.Decimal {
	return os.UnitPrice.Mul(decimal.NewFromInt(int64(os.Quantity)))
}
