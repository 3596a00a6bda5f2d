package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceCategory agrupa servicios del catálogo.
type ServiceCategory struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Service representa un servicio del catálogo. El precio vigente se resuelve
// desde Price por fecha efectiva; el servicio no guarda precio propio.
type Service struct {
	ID          string
	CategoryID  string
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ServiceFeature describe una característica incluida en un servicio.
type ServiceFeature struct {
	ID        string
	ServiceID string
	Name      string
	Detail    string
}

// Price representa un precio de un servicio con fecha efectiva.
// Puede haber varios precios por servicio y moneda con fechas distintas;
// el vigente es el de fecha efectiva más reciente no futura.
type Price struct {
	ID            string
	ServiceID     string
	Amount        decimal.Decimal
	Currency      string
	EffectiveDate time.Time
	CreatedAt     time.Time
}
