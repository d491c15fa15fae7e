package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden. La transición es one-shot: PENDING → FINALIZED,
// sin transición inversa ni estados intermedios visibles.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusFinalized = "FINALIZED"
)

// Order representa un documento de venta acotado a un tenant.
// InvoiceNumber es no vacío si y solo si Status = FINALIZED.
type Order struct {
	ID               string
	CompanyID        string
	ClientName       string
	ClientCompany    string
	ClientAddress    string
	ClientCity       string
	ClientPostalCode string
	ClientPhone      string
	ClientEmail      string
	Notes            string
	Status           string
	CreatedAt        time.Time
	FinalizedAt      *time.Time // nil hasta la finalización; se asigna una sola vez
	TotalItems       int64
	TotalAmount      decimal.Decimal
	InvoiceNumber    string
	Items            []*OrderItem
}

// Editable indica si la orden admite modificaciones (solo en PENDING).
func (o *Order) Editable() bool {
	return o.Status == OrderStatusPending
}

// CalculateTotals recalcula TotalItems y TotalAmount desde las líneas actuales.
// Los totales de la orden son siempre la suma de sus líneas vigentes.
func (o *Order) CalculateTotals() {
	var items int64
	amount := decimal.Zero
	for _, it := range o.Items {
		items += it.Quantity
		amount = amount.Add(it.Subtotal)
	}
	o.TotalItems = items
	o.TotalAmount = amount
}
