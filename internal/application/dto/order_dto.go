package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest alta de orden. Las líneas son opcionales en la creación;
// si vienen, se insertan en la misma transacción y el total queda consistente.
type CreateOrderRequest struct {
	CustomerID   string                   `json:"customer_id"`
	EmployeeID   string                   `json:"employee_id"`
	Priority     int                      `json:"priority"`
	DateRequired string                   `json:"date_required"` // YYYY-MM-DD
	Notes        string                   `json:"notes"`
	Items        []CreateOrderItemRequest `json:"items"`
}

// UpdateOrderRequest actualización de cabecera de orden. TotalAmount no es
// editable: siempre se deriva de las líneas.
type UpdateOrderRequest struct {
	EmployeeID   string `json:"employee_id"`
	Status       string `json:"status"`
	Priority     int    `json:"priority"`
	DateRequired string `json:"date_required"`
	Notes        string `json:"notes"`
}

// CreateOrderItemRequest alta de línea de orden. UnitPrice omitido o cero =
// capturar el precio vigente del catálogo en la moneda de referencia.
type CreateOrderItemRequest struct {
	ServiceID string          `json:"service_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Currency  string          `json:"currency"`
	Note      string          `json:"note"`
}

// UpdateOrderItemRequest actualización de línea (cantidad, precio, nota).
type UpdateOrderItemRequest struct {
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Note      string          `json:"note"`
}

// OrderItemResponse representación de una línea de orden.
type OrderItemResponse struct {
	ID        string          `json:"id"`
	ServiceID string          `json:"service_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Currency  string          `json:"currency"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Note      string          `json:"note,omitempty"`
}

// OrderResponse representación de una orden con líneas y entregables.
type OrderResponse struct {
	ID           string                `json:"id"`
	CustomerID   string                `json:"customer_id"`
	EmployeeID   string                `json:"employee_id,omitempty"`
	Status       string                `json:"status"`
	Priority     int                   `json:"priority"`
	DateReceived time.Time             `json:"date_received"`
	DateRequired string                `json:"date_required,omitempty"`
	CompletedAt  *time.Time            `json:"completed_at,omitempty"`
	TotalAmount  decimal.Decimal       `json:"total_amount"`
	Notes        string                `json:"notes,omitempty"`
	Items        []OrderItemResponse   `json:"items,omitempty"`
	Deliverables []DeliverableResponse `json:"deliverables,omitempty"`
}

// OrderListResponse listado paginado de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Meta  PageResponse    `json:"meta"`
}

// CreateDeliverableRequest alta de entregable de una orden.
type CreateDeliverableRequest struct {
	OrderID     string `json:"order_id"`
	Description string `json:"description"`
	EmployeeID  string `json:"employee_id"`
	ProviderID  string `json:"provider_id"`
	DueDate     string `json:"due_date"` // YYYY-MM-DD
}

// UpdateDeliverableRequest actualización de entregable.
type UpdateDeliverableRequest struct {
	Description string `json:"description"`
	Status      string `json:"status"`
	EmployeeID  string `json:"employee_id"`
	ProviderID  string `json:"provider_id"`
	DueDate     string `json:"due_date"`
	Feedback    string `json:"feedback"`
}

// DeliverableResponse representación de un entregable.
type DeliverableResponse struct {
	ID          string `json:"id"`
	OrderID     string `json:"order_id"`
	Description string `json:"description"`
	Version     int    `json:"version"`
	Status      string `json:"status"`
	EmployeeID  string `json:"employee_id,omitempty"`
	ProviderID  string `json:"provider_id,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	Feedback    string `json:"feedback,omitempty"`
}
