package entity

import "time"

// Employee representa un empleado (perfil de negocio, opcionalmente ligado a una Account).
type Employee struct {
	ID            string
	AccountID     string // vacío si el empleado no tiene acceso al sistema
	JobPositionID string
	Name          string
	Email         string
	Phone         string
	HireDate      time.Time
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// JobPosition representa un cargo dentro de la organización.
type JobPosition struct {
	ID          string
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
