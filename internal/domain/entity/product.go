package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un ítem del catálogo, acotado a un tenant vía su categoría.
// Count nunca es negativo; solo lo mutan el motor de finalización (venta) o una
// operación de restock/ajuste, jamás el borrador de órdenes.
type Product struct {
	ID         string
	CategoryID string
	CompanyID  string
	Title      string
	Image      string
	Price      decimal.Decimal // precio unitario de venta, positivo
	Count      int64           // stock disponible, >= 0
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
