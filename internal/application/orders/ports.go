package orders

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con el repositorio de órdenes
// atado a la tx. Toda mutación de líneas corre aquí para que el recálculo del
// total quede en la misma transacción que la escritura que lo disparó.
type TxRunner interface {
	Run(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error
}
