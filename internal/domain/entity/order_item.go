package entity

import "github.com/shopspring/decimal"

// OrderItem es una línea de una orden. ProductTitle, ProductImage y UnitPrice
// son un snapshot del producto al momento del borrador: la factura de una orden
// FINALIZED no cambia aunque el producto se edite o elimine después.
type OrderItem struct {
	ID           string
	OrderID      string
	ProductID    string
	ProductTitle string
	ProductImage string
	Quantity     int64 // >= 1
	UnitPrice    decimal.Decimal
	Subtotal     decimal.Decimal // Quantity x UnitPrice
}

// NewOrderItemFromProduct captura el snapshot del producto y calcula el subtotal.
func NewOrderItemFromProduct(p *Product, quantity int64) *OrderItem {
	return &OrderItem{
		ProductID:    p.ID,
		ProductTitle: p.Title,
		ProductImage: p.Image,
		Quantity:     quantity,
		UnitPrice:    p.Price,
		Subtotal:     p.Price.Mul(decimal.NewFromInt(quantity)),
	}
}
