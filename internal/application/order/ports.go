package order

import (
	"context"

	"github.com/teopopescu15/Inventory-app/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad del motor de
// finalización: validar, descontar, asignar factura y transicionar estado
// son una sola unidad todo-o-nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
		historyRepo repository.StockHistoryRepository,
		seqRepo repository.InvoiceSequenceRepository,
	) error) error
}
