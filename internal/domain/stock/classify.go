// Package stock contiene la lógica pura de clasificación de cambios de conteo.
package stock

import "github.com/teopopescu15/Inventory-app/internal/domain/entity"

// Classify determina el tipo de cambio según el signo del delta:
// new < old ⇒ SALE, new > old ⇒ RESTOCK, new == old ⇒ ADJUSTMENT.
// Es una función pura: el alta de producto (INITIAL) se registra aparte.
func Classify(oldCount, newCount int64) string {
	switch {
	case newCount < oldCount:
		return entity.ChangeTypeSale
	case newCount > oldCount:
		return entity.ChangeTypeRestock
	default:
		return entity.ChangeTypeAdjustment
	}
}
