package repository

import (
	"time"

	"github.com/teopopescu15/Inventory-app/internal/domain/entity"
)

// StockHistoryRepository define el puerto del ledger append-only.
// No existe Update ni Delete por diseño.
type StockHistoryRepository interface {
	Create(entry *entity.StockHistoryEntry) error
	// ListByProduct devuelve las entradas de un producto, más recientes primero.
	ListByProduct(productID string) ([]*entity.StockHistoryEntry, error)
	// ListByCompanySince devuelve las entradas del tenant desde una fecha,
	// más recientes primero (join producto → categoría → empresa).
	ListByCompanySince(companyID string, since time.Time) ([]*entity.StockHistoryEntry, error)
}
