package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)
var _ repository.JobPositionRepository = (*JobPositionRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, account_id, job_position_id, name, email, phone, hire_date, active, created_at, updated_at`

// Create persiste un nuevo empleado.
func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		employee.ID, nullable(employee.AccountID), nullable(employee.JobPositionID),
		employee.Name, employee.Email, employee.Phone, nullableTime(employee.HireDate),
		employee.Active, employee.CreatedAt, employee.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByAccountID obtiene el perfil de empleado ligado a una cuenta.
func (r *EmployeeRepo) GetByAccountID(accountID string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE account_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, accountID))
}

// List lista empleados con paginación.
func (r *EmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Update actualiza un empleado.
func (r *EmployeeRepo) Update(employee *entity.Employee) error {
	query := `
		UPDATE employees
		SET account_id = $2, job_position_id = $3, name = $4, email = $5, phone = $6, hire_date = $7, active = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		employee.ID, nullable(employee.AccountID), nullable(employee.JobPositionID),
		employee.Name, employee.Email, employee.Phone, nullableTime(employee.HireDate),
		employee.Active, employee.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete elimina un empleado por ID.
func (r *EmployeeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) scanOne(row pgx.Row) (*entity.Employee, error) {
	e, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	var accountID, positionID *string
	var hireDate *time.Time
	err := row.Scan(&e.ID, &accountID, &positionID, &e.Name, &e.Email, &e.Phone, &hireDate, &e.Active, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.AccountID = fromNullable(accountID)
	e.JobPositionID = fromNullable(positionID)
	e.HireDate = fromNullableTime(hireDate)
	return &e, nil
}

// JobPositionRepo implementación de JobPositionRepository.
type JobPositionRepo struct {
	q Querier
}

// NewJobPositionRepository construye el adaptador.
func NewJobPositionRepository(q Querier) *JobPositionRepo {
	return &JobPositionRepo{q: q}
}

// Create persiste un nuevo cargo.
func (r *JobPositionRepo) Create(position *entity.JobPosition) error {
	query := `
		INSERT INTO job_positions (id, title, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		position.ID, position.Title, position.Description, position.CreatedAt, position.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert job position: %w", err)
	}
	return nil
}

// GetByID obtiene un cargo por ID.
func (r *JobPositionRepo) GetByID(id string) (*entity.JobPosition, error) {
	query := `SELECT id, title, description, created_at, updated_at FROM job_positions WHERE id = $1`
	var p entity.JobPosition
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job position: %w", err)
	}
	return &p, nil
}

// List lista cargos con paginación.
func (r *JobPositionRepo) List(limit, offset int) ([]*entity.JobPosition, error) {
	query := `SELECT id, title, description, created_at, updated_at FROM job_positions ORDER BY title LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list job positions: %w", err)
	}
	defer rows.Close()
	var list []*entity.JobPosition
	for rows.Next() {
		var p entity.JobPosition
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan job position: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un cargo.
func (r *JobPositionRepo) Update(position *entity.JobPosition) error {
	query := `UPDATE job_positions SET title = $2, description = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		position.ID, position.Title, position.Description, position.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update job position: %w", err)
	}
	return nil
}

// Delete elimina un cargo por ID.
func (r *JobPositionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM job_positions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job position: %w", err)
	}
	return nil
}
