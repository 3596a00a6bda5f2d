package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// InvoiceFilter filtros de listado de facturas.
type InvoiceFilter struct {
	OrderID    string
	CustomerID string
	Status     string
	Limit      int
	Offset     int
}

// InvoiceRepository define el puerto de persistencia para Invoice.
// GetByID y List devuelven TotalAmount leído del total de la orden (join),
// nunca de una columna propia de la factura.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	List(filter InvoiceFilter) ([]*entity.Invoice, error)
	Count(filter InvoiceFilter) (int, error)
	Update(invoice *entity.Invoice) error

	// NextSequence reserva el siguiente consecutivo del año para numerar
	// la factura. Debe llamarse dentro de la transacción de creación.
	NextSequence(year int) (int, error)

	// UpdateReconciliation persiste paid_amount y status tras reconciliar.
	UpdateReconciliation(id string, paidAmount decimal.Decimal, status string, updatedAt time.Time) error
}
