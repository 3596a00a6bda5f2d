// Package notify contiene los casos de uso de notificaciones a cuentas y del
// formulario público de contacto.
package notify

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// NotificationUseCase casos de uso de notificaciones de una cuenta.
type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(notificationRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notificationRepo: notificationRepo}
}

// ListByAccount lista las notificaciones de la cuenta autenticada.
func (uc *NotificationUseCase) ListByAccount(accountID string, page dto.PageRequest) ([]*dto.NotificationResponse, error) {
	page.Normalize()
	list, err := uc.notificationRepo.ListByAccount(accountID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]*dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, &dto.NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Message:   n.Message,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return out, nil
}

// MarkRead marca una notificación como leída.
func (uc *NotificationUseCase) MarkRead(id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.notificationRepo.MarkRead(id)
}

// FormResponseUseCase casos de uso del formulario público de contacto.
// La creación no requiere autenticación; la lectura sí.
type FormResponseUseCase struct {
	formRepo repository.FormResponseRepository
}

// NewFormResponseUseCase construye el caso de uso.
func NewFormResponseUseCase(formRepo repository.FormResponseRepository) *FormResponseUseCase {
	return &FormResponseUseCase{formRepo: formRepo}
}

// Create guarda una respuesta del formulario público.
func (uc *FormResponseUseCase) Create(in dto.CreateFormResponseRequest) (*dto.FormResponseResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || strings.TrimSpace(in.Message) == "" {
		return nil, domain.ErrInvalidInput
	}
	response := &entity.FormResponse{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Subject:   strings.TrimSpace(in.Subject),
		Message:   strings.TrimSpace(in.Message),
		CreatedAt: time.Now(),
	}
	if err := uc.formRepo.Create(response); err != nil {
		return nil, err
	}
	return toFormResponse(response), nil
}

// List lista las respuestas recibidas, más recientes primero.
func (uc *FormResponseUseCase) List(page dto.PageRequest) ([]*dto.FormResponseResponse, error) {
	page.Normalize()
	list, err := uc.formRepo.List(page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FormResponseResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toFormResponse(r))
	}
	return out, nil
}

// Delete elimina una respuesta.
func (uc *FormResponseUseCase) Delete(id string) error {
	return uc.formRepo.Delete(id)
}

func toFormResponse(r *entity.FormResponse) *dto.FormResponseResponse {
	return &dto.FormResponseResponse{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Subject:   r.Subject,
		Message:   r.Message,
		CreatedAt: r.CreatedAt,
	}
}
