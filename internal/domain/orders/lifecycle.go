// Package orders contiene los servicios de dominio de órdenes:
// cálculo del total y sello de tiempo de finalización.
package orders

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// ComputeTotal devuelve Σ(precio × cantidad) sobre las líneas de la orden.
// Una orden sin líneas totaliza cero.
func ComputeTotal(items []*entity.OrderService) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// ResolveCompletedAt compara estado anterior y nuevo en cada guardado:
// al entrar a DELIVERED fija el instante actual; al salir de DELIVERED lo
// limpia; en cualquier otro caso conserva el valor previo.
func ResolveCompletedAt(prevStatus, newStatus string, prev *time.Time, now time.Time) *time.Time {
	switch {
	case newStatus == entity.OrderStatusDelivered && prevStatus != entity.OrderStatusDelivered:
		return &now
	case newStatus != entity.OrderStatusDelivered && prevStatus == entity.OrderStatusDelivered:
		return nil
	default:
		return prev
	}
}
