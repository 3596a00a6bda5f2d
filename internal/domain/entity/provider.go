package entity

import "time"

// Provider representa un proveedor externo al que se le asignan entregables.
type Provider struct {
	ID          string
	Name        string
	ContactName string
	Email       string
	Phone       string
	ServiceArea string // área de servicio que cubre (ej. diseño, soporte)
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
