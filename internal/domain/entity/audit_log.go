package entity

import "time"

// AuditLog registra una acción de escritura sobre una entidad del sistema.
// Solo registro: nada en el flujo de negocio lo lee.
type AuditLog struct {
	ID         string
	AccountID  string // actor; vacío en acciones anónimas (ej. form-responses)
	Action     string // CREATE, UPDATE, DELETE
	EntityType string // order, invoice, payment, ...
	EntityID   string
	Detail     string
	CreatedAt  time.Time
}
