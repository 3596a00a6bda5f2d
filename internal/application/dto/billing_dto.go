package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest emisión de factura contra una orden existente.
// El número se genera en el servidor y no es aceptado del cliente.
type CreateInvoiceRequest struct {
	OrderID string `json:"order_id"`
	DueDate string `json:"due_date"` // YYYY-MM-DD; vacío = fecha + plazo configurado
	Notes   string `json:"notes"`
}

// InvoiceResponse representación de una factura. TotalAmount se lee del total
// de la orden; BalanceDue = TotalAmount - PaidAmount.
type InvoiceResponse struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id"`
	Number      string          `json:"number"`
	Date        string          `json:"date"`
	DueDate     string          `json:"due_date"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
	BalanceDue  decimal.Decimal `json:"balance_due"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// InvoiceListResponse listado paginado de facturas.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Meta  PageResponse      `json:"meta"`
}

// CreatePaymentRequest registro de pago contra una factura.
// Amount con signo: negativo = reembolso. Status vacío = COMPLETED.
type CreatePaymentRequest struct {
	InvoiceID         string          `json:"invoice_id"`
	PaymentMethodID   string          `json:"payment_method_id"`
	TransactionTypeID string          `json:"transaction_type_id"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	Status            string          `json:"status"`
	Reference         string          `json:"reference"`
}

// UpdatePaymentRequest cambio de estado de un pago (PENDING→COMPLETED/FAILED,
// COMPLETED→REFUNDED). Un pago COMPLETED es inmutable en monto.
type UpdatePaymentRequest struct {
	Status string `json:"status"`
}

// PaymentResponse representación de un pago.
type PaymentResponse struct {
	ID                string          `json:"id"`
	InvoiceID         string          `json:"invoice_id"`
	PaymentMethodID   string          `json:"payment_method_id"`
	TransactionTypeID string          `json:"transaction_type_id"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	Status            string          `json:"status"`
	Reference         string          `json:"reference,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// PaymentMethodResponse catálogo de medios de pago.
type PaymentMethodResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// TransactionTypeResponse catálogo de tipos de transacción.
type TransactionTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
