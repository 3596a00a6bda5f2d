// Package catalog contiene los servicios de dominio del catálogo,
// en particular la resolución del precio vigente de un servicio.
package catalog

import (
	"time"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// ResolveCurrentPrice devuelve el precio vigente entre candidates para la
// moneda dada: el de fecha efectiva más reciente que no sea futura.
// Si ninguno califica (todos futuros o ninguno en esa moneda), cae al precio
// de fecha más reciente sin importar fecha ni moneda. Sin candidatos → nil;
// el llamador debe manejar la ausencia de precio.
func ResolveCurrentPrice(candidates []*entity.Price, currency string, today time.Time) *entity.Price {
	var current *entity.Price
	for _, p := range candidates {
		if p.Currency != currency || p.EffectiveDate.After(today) {
			continue
		}
		if current == nil || p.EffectiveDate.After(current.EffectiveDate) {
			current = p
		}
	}
	if current != nil {
		return current
	}
	// Fallback: el más reciente disponible de cualquier fecha
	var latest *entity.Price
	for _, p := range candidates {
		if latest == nil || p.EffectiveDate.After(latest.EffectiveDate) {
			latest = p
		}
	}
	return latest
}
