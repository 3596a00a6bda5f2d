package entity

import "time"

// Tipos de notificación.
const (
	NotificationTypeInfo        = "INFO"
	NotificationTypeInvoicePaid = "INVOICE_PAID"
	NotificationTypeOrderStatus = "ORDER_STATUS"
)

// Notification representa una notificación dirigida a una cuenta.
// Tabla de registro simple: la lógica de negocio no la consume.
type Notification struct {
	ID        string
	AccountID string
	Type      string
	Message   string
	Read      bool
	CreatedAt time.Time
}
