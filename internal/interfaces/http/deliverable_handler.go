package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/orders"
	"github.com/jhoicas/Gestion-api/internal/domain"
)

// DeliverableHandler maneja los entregables de los pedidos.
type DeliverableHandler struct {
	uc *orders.DeliverableUseCase
}

// NewDeliverableHandler construye el handler.
func NewDeliverableHandler(uc *orders.DeliverableUseCase) *DeliverableHandler {
	return &DeliverableHandler{uc: uc}
}

// Create POST /api/deliverables
func (h *DeliverableHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDeliverableRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	deliverable, err := h.uc.Create(in)
	if err != nil {
		return deliverableError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(deliverable)
}

// List GET /api/deliverables?page=1
func (h *DeliverableHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	list, err := h.uc.List(page)
	if err != nil {
		return deliverableError(c, err)
	}
	return c.JSON(list)
}

// ListByOrder GET /api/orders/:id/deliverables
func (h *DeliverableHandler) ListByOrder(c *fiber.Ctx) error {
	list, err := h.uc.ListByOrder(c.Params("id"))
	if err != nil {
		return deliverableError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/deliverables/:id
func (h *DeliverableHandler) GetByID(c *fiber.Ctx) error {
	deliverable, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return deliverableError(c, err)
	}
	return c.JSON(deliverable)
}

// Update PUT /api/deliverables/:id
func (h *DeliverableHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDeliverableRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	deliverable, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return deliverableError(c, err)
	}
	return c.JSON(deliverable)
}

// Delete DELETE /api/deliverables/:id
func (h *DeliverableHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return deliverableError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func deliverableError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "order_id y title son requeridos; el asignado debe existir"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entregable o recurso no encontrado"})
	case domain.ErrConflict:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "la transición de estado no es válida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
