package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)
var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)
var _ repository.FormResponseRepository = (*FormResponseRepo)(nil)

// NotificationRepo implementación de NotificationRepository.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create persiste una notificación.
func (r *NotificationRepo) Create(notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, account_id, type, message, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		notification.ID, notification.AccountID, notification.Type,
		notification.Message, notification.Read, notification.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListByAccount lista las notificaciones de una cuenta, más recientes primero.
func (r *NotificationRepo) ListByAccount(accountID string, limit, offset int) ([]*entity.Notification, error) {
	query := `
		SELECT id, account_id, type, message, read, created_at
		FROM notifications WHERE account_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.AccountID, &n.Type, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// MarkRead marca una notificación como leída.
func (r *NotificationRepo) MarkRead(id string) error {
	_, err := r.q.Exec(context.Background(), `UPDATE notifications SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

// Delete elimina una notificación por ID.
func (r *NotificationRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}

// AuditLogRepo implementación de AuditLogRepository.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository construye el adaptador.
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create persiste una entrada de auditoría.
func (r *AuditLogRepo) Create(log *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, account_id, action, entity_type, entity_id, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, nullable(log.AccountID), log.Action, log.EntityType,
		log.EntityID, log.Detail, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// List lista las entradas de auditoría, más recientes primero.
func (r *AuditLogRepo) List(limit, offset int) ([]*entity.AuditLog, error) {
	query := `
		SELECT id, account_id, action, entity_type, entity_id, detail, created_at
		FROM audit_logs ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditLog
	for rows.Next() {
		var l entity.AuditLog
		var accountID *string
		if err := rows.Scan(&l.ID, &accountID, &l.Action, &l.EntityType, &l.EntityID, &l.Detail, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		l.AccountID = fromNullable(accountID)
		list = append(list, &l)
	}
	return list, rows.Err()
}

// FormResponseRepo implementación de FormResponseRepository.
type FormResponseRepo struct {
	q Querier
}

// NewFormResponseRepository construye el adaptador.
func NewFormResponseRepository(q Querier) *FormResponseRepo {
	return &FormResponseRepo{q: q}
}

// Create persiste una respuesta del formulario público.
func (r *FormResponseRepo) Create(response *entity.FormResponse) error {
	query := `
		INSERT INTO form_responses (id, name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		response.ID, response.Name, response.Email, response.Subject,
		response.Message, response.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert form response: %w", err)
	}
	return nil
}

// List lista las respuestas, más recientes primero.
func (r *FormResponseRepo) List(limit, offset int) ([]*entity.FormResponse, error) {
	query := `
		SELECT id, name, email, subject, message, created_at
		FROM form_responses ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list form responses: %w", err)
	}
	defer rows.Close()
	var list []*entity.FormResponse
	for rows.Next() {
		var f entity.FormResponse
		if err := rows.Scan(&f.ID, &f.Name, &f.Email, &f.Subject, &f.Message, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan form response: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Delete elimina una respuesta por ID.
func (r *FormResponseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM form_responses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete form response: %w", err)
	}
	return nil
}
