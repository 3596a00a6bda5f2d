package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// DeliverableUseCase casos de uso de entregables por orden.
type DeliverableUseCase struct {
	repo         repository.DeliverableRepository
	orderRepo    repository.OrderRepository
	employeeRepo repository.EmployeeRepository
	providerRepo repository.ProviderRepository
}

// NewDeliverableUseCase construye el caso de uso.
func NewDeliverableUseCase(
	repo repository.DeliverableRepository,
	orderRepo repository.OrderRepository,
	employeeRepo repository.EmployeeRepository,
	providerRepo repository.ProviderRepository,
) *DeliverableUseCase {
	return &DeliverableUseCase{
		repo:         repo,
		orderRepo:    orderRepo,
		employeeRepo: employeeRepo,
		providerRepo: providerRepo,
	}
}

// Create crea un entregable para una orden. La asignación admite a lo sumo uno
// de empleado o proveedor; ambos a la vez es entrada inválida.
func (uc *DeliverableUseCase) Create(in dto.CreateDeliverableRequest) (*dto.DeliverableResponse, error) {
	if in.OrderID == "" || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.EmployeeID != "" && in.ProviderID != "" {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(in.OrderID)
	if err != nil || order == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.validateAssignee(in.EmployeeID, in.ProviderID); err != nil {
		return nil, err
	}
	var dueDate time.Time
	if in.DueDate != "" {
		parsed, err := time.Parse(dateLayout, in.DueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		dueDate = parsed
	}
	now := time.Now()
	deliverable := &entity.Deliverable{
		ID:          uuid.New().String(),
		OrderID:     in.OrderID,
		Description: in.Description,
		Version:     1,
		Status:      entity.DeliverableStatusPending,
		EmployeeID:  in.EmployeeID,
		ProviderID:  in.ProviderID,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(deliverable); err != nil {
		return nil, err
	}
	return toDeliverableResponse(deliverable), nil
}

// GetByID obtiene un entregable.
func (uc *DeliverableUseCase) GetByID(id string) (*dto.DeliverableResponse, error) {
	deliverable, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if deliverable == nil {
		return nil, domain.ErrNotFound
	}
	return toDeliverableResponse(deliverable), nil
}

// List lista entregables con paginación.
func (uc *DeliverableUseCase) List(page dto.PageRequest) ([]*dto.DeliverableResponse, error) {
	page.Normalize()
	list, err := uc.repo.List(page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DeliverableResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDeliverableResponse(d))
	}
	return out, nil
}

// ListByOrder lista los entregables de una orden.
func (uc *DeliverableUseCase) ListByOrder(orderID string) ([]*dto.DeliverableResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DeliverableResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDeliverableResponse(d))
	}
	return out, nil
}

// Update actualiza un entregable. Cambiar la descripción incrementa la versión;
// reasignar respeta la exclusión empleado/proveedor.
func (uc *DeliverableUseCase) Update(id string, in dto.UpdateDeliverableRequest) (*dto.DeliverableResponse, error) {
	deliverable, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if deliverable == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != "" {
		if !entity.ValidDeliverableStatus(in.Status) {
			return nil, domain.ErrInvalidInput
		}
		deliverable.Status = in.Status
	}
	if in.Description != "" && in.Description != deliverable.Description {
		deliverable.Description = in.Description
		deliverable.Version++
	}
	if in.EmployeeID != "" || in.ProviderID != "" {
		if in.EmployeeID != "" && in.ProviderID != "" {
			return nil, domain.ErrInvalidInput
		}
		if err := uc.validateAssignee(in.EmployeeID, in.ProviderID); err != nil {
			return nil, err
		}
		deliverable.EmployeeID = in.EmployeeID
		deliverable.ProviderID = in.ProviderID
	}
	if in.DueDate != "" {
		parsed, err := time.Parse(dateLayout, in.DueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		deliverable.DueDate = parsed
	}
	if in.Feedback != "" {
		deliverable.Feedback = in.Feedback
	}
	deliverable.UpdatedAt = time.Now()
	if err := uc.repo.Update(deliverable); err != nil {
		return nil, err
	}
	return toDeliverableResponse(deliverable), nil
}

// Delete elimina un entregable.
func (uc *DeliverableUseCase) Delete(id string) error {
	deliverable, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if deliverable == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func (uc *DeliverableUseCase) validateAssignee(employeeID, providerID string) error {
	if employeeID != "" {
		employee, err := uc.employeeRepo.GetByID(employeeID)
		if err != nil || employee == nil {
			return domain.ErrNotFound
		}
	}
	if providerID != "" {
		provider, err := uc.providerRepo.GetByID(providerID)
		if err != nil || provider == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

func toDeliverableResponse(d *entity.Deliverable) *dto.DeliverableResponse {
	resp := &dto.DeliverableResponse{
		ID:          d.ID,
		OrderID:     d.OrderID,
		Description: d.Description,
		Version:     d.Version,
		Status:      d.Status,
		EmployeeID:  d.EmployeeID,
		ProviderID:  d.ProviderID,
		Feedback:    d.Feedback,
	}
	if !d.DueDate.IsZero() {
		resp.DueDate = d.DueDate.Format(dateLayout)
	}
	return resp
}
