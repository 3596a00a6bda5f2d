package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCategoryRequest alta de categoría de servicio.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryResponse representación de una categoría.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateServiceRequest alta de servicio del catálogo.
type CreateServiceRequest struct {
	CategoryID  string `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateServiceRequest actualización de servicio.
type UpdateServiceRequest struct {
	CategoryID  string `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
}

// ServiceResponse representación de un servicio con sus características.
type ServiceResponse struct {
	ID          string            `json:"id"`
	CategoryID  string            `json:"category_id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Active      bool              `json:"active"`
	Features    []FeatureResponse `json:"features,omitempty"`
	// CurrentPrice es el precio vigente resuelto; nil cuando no hay precio.
	CurrentPrice *PriceResponse `json:"current_price,omitempty"`
}

// CreateFeatureRequest alta de característica de servicio.
type CreateFeatureRequest struct {
	Name   string `json:"name"`
	Detail string `json:"detail"`
}

// FeatureResponse representación de una característica.
type FeatureResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Detail string `json:"detail"`
}

// CreatePriceRequest alta de precio con fecha efectiva.
type CreatePriceRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	EffectiveDate string          `json:"effective_date"` // YYYY-MM-DD
}

// PriceResponse representación de un precio.
type PriceResponse struct {
	ID            string          `json:"id"`
	ServiceID     string          `json:"service_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	EffectiveDate string          `json:"effective_date"`
}

// CreateCampaignRequest alta de campaña promocional.
type CreateCampaignRequest struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	DiscountRate decimal.Decimal `json:"discount_rate"`
	StartDate    string          `json:"start_date"` // YYYY-MM-DD
	EndDate      string          `json:"end_date"`   // YYYY-MM-DD
	ServiceIDs   []string        `json:"service_ids"`
}

// CampaignResponse representación de una campaña.
type CampaignResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	DiscountRate decimal.Decimal `json:"discount_rate"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	Active       bool            `json:"active"`
	ServiceIDs   []string        `json:"service_ids"`
	CreatedAt    time.Time       `json:"created_at"`
}
