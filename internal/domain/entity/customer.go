package entity

import "time"

// Customer representa un cliente (perfil de negocio, opcionalmente ligado a una Account).
type Customer struct {
	ID        string
	AccountID string // vacío si el cliente no tiene acceso al sistema
	Name      string
	TaxID     string // NIT o Cédula
	Email     string
	Phone     string
	Address   string
	City      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
