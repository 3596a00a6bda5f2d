package dto

import "time"

// CreateCustomerRequest alta de cliente.
type CreateCustomerRequest struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	TaxID     string `json:"tax_id"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
}

// UpdateCustomerRequest actualización de cliente.
type UpdateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
}

// CustomerResponse representación de un cliente.
type CustomerResponse struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id,omitempty"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerListResponse listado paginado de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Meta  PageResponse       `json:"meta"`
}

// CreateEmployeeRequest alta de empleado.
type CreateEmployeeRequest struct {
	AccountID     string `json:"account_id"`
	JobPositionID string `json:"job_position_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	HireDate      string `json:"hire_date"` // YYYY-MM-DD
}

// UpdateEmployeeRequest actualización de empleado.
type UpdateEmployeeRequest struct {
	JobPositionID string `json:"job_position_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Active        *bool  `json:"active"`
}

// EmployeeResponse representación de un empleado.
type EmployeeResponse struct {
	ID            string    `json:"id"`
	AccountID     string    `json:"account_id,omitempty"`
	JobPositionID string    `json:"job_position_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	HireDate      string    `json:"hire_date"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateProviderRequest alta de proveedor.
type CreateProviderRequest struct {
	Name        string `json:"name"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ServiceArea string `json:"service_area"`
}

// ProviderResponse representación de un proveedor.
type ProviderResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContactName string    `json:"contact_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	ServiceArea string    `json:"service_area"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateJobPositionRequest alta de cargo.
type CreateJobPositionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// JobPositionResponse representación de un cargo.
type JobPositionResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
