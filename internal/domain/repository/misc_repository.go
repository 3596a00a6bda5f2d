package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// NotificationRepository define el puerto de persistencia para Notification.
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	ListByAccount(accountID string, limit, offset int) ([]*entity.Notification, error)
	MarkRead(id string) error
	Delete(id string) error
}

// AuditLogRepository define el puerto de persistencia para AuditLog.
type AuditLogRepository interface {
	Create(log *entity.AuditLog) error
	List(limit, offset int) ([]*entity.AuditLog, error)
}

// FormResponseRepository define el puerto de persistencia para FormResponse.
type FormResponseRepository interface {
	Create(response *entity.FormResponse) error
	List(limit, offset int) ([]*entity.FormResponse, error)
	Delete(id string) error
}
