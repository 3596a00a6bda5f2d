package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Gestion-api/internal/application/billing"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
)

// PaymentHandler maneja pagos, medios de pago y tipos de transacción.
type PaymentHandler struct {
	uc *billing.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *billing.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Create POST /api/payments
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	payment, err := h.uc.Create(c.UserContext(), GetAccountID(c), in)
	if err != nil {
		return paymentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

// ListByInvoice GET /api/invoices/:id/payments
func (h *PaymentHandler) ListByInvoice(c *fiber.Ctx) error {
	list, err := h.uc.ListByInvoice(c.Params("id"))
	if err != nil {
		return paymentError(c, err)
	}
	return c.JSON(list)
}

// Update PUT /api/payments/:id
func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	payment, err := h.uc.Update(c.UserContext(), GetAccountID(c), c.Params("id"), in)
	if err != nil {
		return paymentError(c, err)
	}
	return c.JSON(payment)
}

// Delete DELETE /api/payments/:id
func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetAccountID(c), c.Params("id")); err != nil {
		return paymentError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListMethods GET /api/payment-methods
func (h *PaymentHandler) ListMethods(c *fiber.Ctx) error {
	list, err := h.uc.ListMethods()
	if err != nil {
		return paymentError(c, err)
	}
	return c.JSON(list)
}

// ListTransactionTypes GET /api/transaction-types
func (h *PaymentHandler) ListTransactionTypes(c *fiber.Ctx) error {
	list, err := h.uc.ListTransactionTypes()
	if err != nil {
		return paymentError(c, err)
	}
	return c.JSON(list)
}

// paymentError traduce errores de dominio de pagos a respuestas HTTP.
func paymentError(c *fiber.Ctx, err error) error {
	var overErr *domain.OverpaymentError
	if errors.As(err, &overErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "OVERPAYMENT", Message: overErr.Error()})
	}
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invoice_id y amount son requeridos"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pago o recurso no encontrado"})
	case domain.ErrRefundExceedsPaid:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "REFUND_EXCEEDS_PAID", Message: "el reembolso excede lo pagado hasta ahora"})
	case domain.ErrPaymentImmutable:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PAYMENT_IMMUTABLE", Message: "un pago completado sólo admite reembolso"})
	case domain.ErrConflict:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "la operación no es válida en el estado actual"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
