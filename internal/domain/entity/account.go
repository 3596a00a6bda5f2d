package entity

import "time"

// Roles válidos para Account.
const (
	RoleAdmin       = "admin"
	RoleFinanzas    = "finanzas"
	RoleVentas      = "ventas"
	RoleOperaciones = "operaciones"
	RoleCliente     = "cliente"
)

// Account representa la cuenta base de acceso al sistema.
// Los perfiles de negocio (Customer, Employee) son extensiones por composición:
// referencian la cuenta vía AccountID y se consultan de forma explícita.
type Account struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, finanzas, ventas, operaciones, cliente
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
