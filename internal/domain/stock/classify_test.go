package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/teopopescu15/Inventory-app/internal/domain/entity"
	"github.com/teopopescu15/Inventory-app/internal/domain/stock"
)

// La clasificación depende solo del signo del delta, nunca de la magnitud.
func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		oldCount int64
		newCount int64
		want     string
	}{
		{"disminucion es SALE", 10, 7, entity.ChangeTypeSale},
		{"disminucion a cero es SALE", 3, 0, entity.ChangeTypeSale},
		{"aumento es RESTOCK", 5, 20, entity.ChangeTypeRestock},
		{"aumento desde cero es RESTOCK", 0, 1, entity.ChangeTypeRestock},
		{"sin cambio es ADJUSTMENT", 8, 8, entity.ChangeTypeAdjustment},
		{"cero a cero es ADJUSTMENT", 0, 0, entity.ChangeTypeAdjustment},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stock.Classify(tc.oldCount, tc.newCount))
		})
	}
}
