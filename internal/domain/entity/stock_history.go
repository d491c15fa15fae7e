package entity

import "time"

// Tipos de cambio de stock registrados en el ledger.
const (
	ChangeTypeInitial    = "INITIAL"    // alta del producto (old = 0)
	ChangeTypeSale       = "SALE"       // el conteo disminuyó
	ChangeTypeRestock    = "RESTOCK"    // el conteo aumentó
	ChangeTypeAdjustment = "ADJUSTMENT" // delta cero, registro explícito
)

// StockHistoryEntry es un registro append-only de un cambio de conteo de stock.
// Las entradas nunca se mutan ni se eliminan: son la fuente durable para
// reporting y análisis.
type StockHistoryEntry struct {
	ID           string
	ProductID    string
	OldCount     int64
	NewCount     int64
	ChangeAmount int64 // NewCount - OldCount
	ChangeType   string
	ChangedAt    time.Time
	Notes        string
}
