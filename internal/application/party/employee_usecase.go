package party

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// EmployeeUseCase casos de uso para empleados y cargos.
type EmployeeUseCase struct {
	repo         repository.EmployeeRepository
	positionRepo repository.JobPositionRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, positionRepo repository.JobPositionRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, positionRepo: positionRepo}
}

// Create crea un empleado validando que el cargo exista.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Name == "" || in.JobPositionID == "" {
		return nil, domain.ErrInvalidInput
	}
	position, err := uc.positionRepo.GetByID(in.JobPositionID)
	if err != nil {
		return nil, err
	}
	if position == nil {
		return nil, domain.ErrNotFound
	}
	hireDate := time.Now()
	if in.HireDate != "" {
		parsed, err := time.Parse(dateLayout, in.HireDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		hireDate = parsed
	}
	now := time.Now()
	employee := &entity.Employee{
		ID:            uuid.New().String(),
		AccountID:     in.AccountID,
		JobPositionID: in.JobPositionID,
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		HireDate:      hireDate,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// GetByID obtiene un empleado.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(employee), nil
}

// List lista empleados con paginación.
func (uc *EmployeeUseCase) List(page dto.PageRequest) ([]*dto.EmployeeResponse, error) {
	page.Normalize()
	list, err := uc.repo.List(page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEmployeeResponse(e))
	}
	return out, nil
}

// Update actualiza un empleado.
func (uc *EmployeeUseCase) Update(id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	if in.JobPositionID != "" {
		position, err := uc.positionRepo.GetByID(in.JobPositionID)
		if err != nil {
			return nil, err
		}
		if position == nil {
			return nil, domain.ErrNotFound
		}
		employee.JobPositionID = in.JobPositionID
	}
	if in.Name != "" {
		employee.Name = in.Name
	}
	if in.Email != "" {
		employee.Email = in.Email
	}
	if in.Phone != "" {
		employee.Phone = in.Phone
	}
	if in.Active != nil {
		employee.Active = *in.Active
	}
	employee.UpdatedAt = time.Now()
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// Delete elimina un empleado.
func (uc *EmployeeUseCase) Delete(id string) error {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ── Cargos ────────────────────────────────────────────────────────────────────

// CreatePosition crea un cargo.
func (uc *EmployeeUseCase) CreatePosition(in dto.CreateJobPositionRequest) (*dto.JobPositionResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	position := &entity.JobPosition{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.positionRepo.Create(position); err != nil {
		return nil, err
	}
	return toPositionResponse(position), nil
}

// ListPositions lista cargos.
func (uc *EmployeeUseCase) ListPositions(page dto.PageRequest) ([]*dto.JobPositionResponse, error) {
	page.Normalize()
	list, err := uc.positionRepo.List(page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]*dto.JobPositionResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPositionResponse(p))
	}
	return out, nil
}

// DeletePosition elimina un cargo.
func (uc *EmployeeUseCase) DeletePosition(id string) error {
	position, err := uc.positionRepo.GetByID(id)
	if err != nil {
		return err
	}
	if position == nil {
		return domain.ErrNotFound
	}
	return uc.positionRepo.Delete(id)
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:            e.ID,
		AccountID:     e.AccountID,
		JobPositionID: e.JobPositionID,
		Name:          e.Name,
		Email:         e.Email,
		Phone:         e.Phone,
		HireDate:      e.HireDate.Format(dateLayout),
		Active:        e.Active,
		CreatedAt:     e.CreatedAt,
	}
}

func toPositionResponse(p *entity.JobPosition) *dto.JobPositionResponse {
	return &dto.JobPositionResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
	}
}
