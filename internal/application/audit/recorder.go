// Package audit registra acciones de escritura en la tabla de auditoría.
// Registro best-effort: un fallo al auditar se loguea y no aborta la operación
// de negocio; nada del flujo de negocio consume estas filas.
package audit

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

// Acciones registradas.
const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// Recorder escribe entradas de auditoría.
type Recorder struct {
	repo repository.AuditLogRepository
	log  *logger.Logger
}

// NewRecorder construye el recorder.
func NewRecorder(repo repository.AuditLogRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record persiste una entrada; los errores se loguean y se descartan.
func (r *Recorder) Record(accountID, action, entityType, entityID, detail string) {
	if r == nil || r.repo == nil {
		return
	}
	err := r.repo.Create(&entity.AuditLog{
		ID:         uuid.New().String(),
		AccountID:  accountID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
		CreatedAt:  time.Now(),
	})
	if err != nil && r.log != nil {
		r.log.Warn().Err(err).
			Str("entity", entityType).
			Str("entity_id", entityID).
			Msg("no se pudo registrar auditoría")
	}
}

// List devuelve las entradas más recientes.
func (r *Recorder) List(page dto.PageRequest) ([]*dto.AuditLogResponse, error) {
	page.Normalize()
	list, err := r.repo.List(page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AuditLogResponse, 0, len(list))
	for _, l := range list {
		out = append(out, &dto.AuditLogResponse{
			ID:         l.ID,
			AccountID:  l.AccountID,
			Action:     l.Action,
			EntityType: l.EntityType,
			EntityID:   l.EntityID,
			Detail:     l.Detail,
			CreatedAt:  l.CreatedAt,
		})
	}
	return out, nil
}
