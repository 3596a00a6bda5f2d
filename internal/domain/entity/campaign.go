package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campaign representa una campaña promocional sobre servicios del catálogo.
type Campaign struct {
	ID           string
	Name         string
	Description  string
	DiscountRate decimal.Decimal // fracción, ej. 0.15 = 15%
	StartDate    time.Time
	EndDate      time.Time
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CampaignService vincula una campaña con un servicio del catálogo.
type CampaignService struct {
	ID         string
	CampaignID string
	ServiceID  string
}
