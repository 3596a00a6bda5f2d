package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrAccountNotFound    = errors.New("cuenta no encontrada")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrNoPrice            = errors.New("el servicio no tiene precio disponible")
	ErrRefundExceedsPaid  = errors.New("el reembolso excede lo pagado")
	ErrPaymentImmutable   = errors.New("un pago completado no se puede modificar")
)

// OverpaymentError indica que un pago supera el saldo pendiente de la factura.
// Excess es el monto por encima del saldo, para reportarlo al cliente.
type OverpaymentError struct {
	Excess decimal.Decimal
}

func (e *OverpaymentError) Error() string {
	return fmt.Sprintf("el pago excede el saldo pendiente por %s", e.Excess.StringFixed(2))
}
