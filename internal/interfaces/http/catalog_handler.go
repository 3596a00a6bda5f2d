package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Gestion-api/internal/application/catalog"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
)

// CatalogHandler maneja categorías, servicios, precios y campañas.
type CatalogHandler struct {
	uc *catalog.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ── Categorías ────────────────────────────────────────────────────────────────

// CreateCategory POST /api/service-categories
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	category, err := h.uc.CreateCategory(in)
	if err != nil {
		return catalogError(c, err, "name es requerido")
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// ListCategories GET /api/service-categories?page=1
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	list, err := h.uc.ListCategories(page)
	if err != nil {
		return catalogError(c, err, "")
	}
	return c.JSON(list)
}

// DeleteCategory DELETE /api/service-categories/:id
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.uc.DeleteCategory(c.Params("id")); err != nil {
		return catalogError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Servicios ─────────────────────────────────────────────────────────────────

// CreateService POST /api/services
func (h *CatalogHandler) CreateService(c *fiber.Ctx) error {
	var in dto.CreateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	service, err := h.uc.CreateService(in)
	if err != nil {
		return catalogError(c, err, "name y category_id son requeridos")
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// ListServices GET /api/services?category_id=&page=1
func (h *CatalogHandler) ListServices(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	list, err := h.uc.ListServices(c.Query("category_id"), page)
	if err != nil {
		return catalogError(c, err, "")
	}
	return c.JSON(list)
}

// GetService GET /api/services/:id
func (h *CatalogHandler) GetService(c *fiber.Ctx) error {
	service, err := h.uc.GetService(c.Params("id"))
	if err != nil {
		return catalogError(c, err, "")
	}
	return c.JSON(service)
}

// UpdateService PUT /api/services/:id
func (h *CatalogHandler) UpdateService(c *fiber.Ctx) error {
	var in dto.UpdateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	service, err := h.uc.UpdateService(c.Params("id"), in)
	if err != nil {
		return catalogError(c, err, "")
	}
	return c.JSON(service)
}

// DeleteService DELETE /api/services/:id
func (h *CatalogHandler) DeleteService(c *fiber.Ctx) error {
	if err := h.uc.DeleteService(c.Params("id")); err != nil {
		return catalogError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddFeature POST /api/services/:id/features
func (h *CatalogHandler) AddFeature(c *fiber.Ctx) error {
	var in dto.CreateFeatureRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	feature, err := h.uc.AddFeature(c.Params("id"), in)
	if err != nil {
		return catalogError(c, err, "name es requerido")
	}
	return c.Status(fiber.StatusCreated).JSON(feature)
}

// RemoveFeature DELETE /api/services/:id/features/:featureID
func (h *CatalogHandler) RemoveFeature(c *fiber.Ctx) error {
	if err := h.uc.RemoveFeature(c.Params("id"), c.Params("featureID")); err != nil {
		return catalogError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Precios ───────────────────────────────────────────────────────────────────

// AddPrice POST /api/services/:id/prices
func (h *CatalogHandler) AddPrice(c *fiber.Ctx) error {
	var in dto.CreatePriceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	price, err := h.uc.AddPrice(c.Params("id"), in)
	if err != nil {
		return catalogError(c, err, "amount debe ser mayor o igual a cero y currency válida")
	}
	return c.Status(fiber.StatusCreated).JSON(price)
}

// ListPrices GET /api/services/:id/prices
func (h *CatalogHandler) ListPrices(c *fiber.Ctx) error {
	list, err := h.uc.ListPrices(c.Params("id"))
	if err != nil {
		return catalogError(c, err, "")
	}
	return c.JSON(list)
}

// GetCurrentPrice GET /api/services/:id/current-price?currency=COP
func (h *CatalogHandler) GetCurrentPrice(c *fiber.Ctx) error {
	price, err := h.uc.GetCurrentPrice(c.Params("id"), c.Query("currency"))
	if err != nil {
		if err == domain.ErrNoPrice {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_PRICE", Message: "el servicio no tiene precio vigente"})
		}
		return catalogError(c, err, "")
	}
	return c.JSON(price)
}

// ── Campañas ──────────────────────────────────────────────────────────────────

// CreateCampaign POST /api/campaigns
func (h *CatalogHandler) CreateCampaign(c *fiber.Ctx) error {
	var in dto.CreateCampaignRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	campaign, err := h.uc.CreateCampaign(in)
	if err != nil {
		return catalogError(c, err, "name es requerido y end_date no puede ser anterior a start_date")
	}
	return c.Status(fiber.StatusCreated).JSON(campaign)
}

// ListCampaigns GET /api/campaigns?page=1
func (h *CatalogHandler) ListCampaigns(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	list, err := h.uc.ListCampaigns(page)
	if err != nil {
		return catalogError(c, err, "")
	}
	return c.JSON(list)
}

// GetCampaign GET /api/campaigns/:id
func (h *CatalogHandler) GetCampaign(c *fiber.Ctx) error {
	campaign, err := h.uc.GetCampaign(c.Params("id"))
	if err != nil {
		return catalogError(c, err, "")
	}
	return c.JSON(campaign)
}

// AddCampaignService POST /api/campaigns/:id/services/:serviceID
func (h *CatalogHandler) AddCampaignService(c *fiber.Ctx) error {
	campaign, err := h.uc.AddCampaignService(c.Params("id"), c.Params("serviceID"))
	if err != nil {
		return catalogError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(campaign)
}

// RemoveCampaignService DELETE /api/campaigns/:id/services/:serviceID
func (h *CatalogHandler) RemoveCampaignService(c *fiber.Ctx) error {
	if err := h.uc.RemoveCampaignService(c.Params("id"), c.Params("serviceID")); err != nil {
		return catalogError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteCampaign DELETE /api/campaigns/:id
func (h *CatalogHandler) DeleteCampaign(c *fiber.Ctx) error {
	if err := h.uc.DeleteCampaign(c.Params("id")); err != nil {
		return catalogError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// catalogError traduce errores de dominio del catálogo a respuestas HTTP.
func catalogError(c *fiber.Ctx, err error, validationMsg string) error {
	switch err {
	case domain.ErrInvalidInput:
		if validationMsg == "" {
			validationMsg = "entrada inválida"
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMsg})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un recurso con esos datos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
