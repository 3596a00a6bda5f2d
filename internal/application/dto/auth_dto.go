package dto

import "time"

// RegisterRequest alta de cuenta.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"` // vacío = cliente
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountResponse representación pública de una cuenta.
type AccountResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse par de tokens emitido más la cuenta autenticada.
type LoginResponse struct {
	Token        string          `json:"token"`
	RefreshToken string          `json:"refresh_token"`
	Account      AccountResponse `json:"account"`
}

// UpdateAccountRequest cambios administrativos sobre una cuenta.
// Los campos vacíos no se tocan.
type UpdateAccountRequest struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Status string `json:"status"` // active, inactive, suspended
}

// RefreshRequest solicitud de renovación del par de tokens.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// MeResponse respuesta del endpoint de identidad ("quién soy").
type MeResponse struct {
	Account     AccountResponse `json:"account"`
	Permissions []string        `json:"permissions"`
	CustomerID  string          `json:"customer_id,omitempty"`
}
