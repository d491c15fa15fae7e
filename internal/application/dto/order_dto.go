package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineRequest una línea solicitada al crear o editar un borrador.
type OrderLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity" validate:"min=1"`
}

// ClientInfo datos de contacto del cliente de la orden.
type ClientInfo struct {
	Name       string `json:"client_name"`
	Company    string `json:"client_company"`
	Address    string `json:"client_address"`
	City       string `json:"client_city"`
	PostalCode string `json:"client_postal_code"`
	Phone      string `json:"client_phone"`
	Email      string `json:"client_email"`
	Notes      string `json:"notes"`
}

// CreateOrderRequest crea o reedita un borrador: las líneas reemplazan
// al completo las existentes.
type CreateOrderRequest struct {
	ClientInfo
	Items []OrderLineRequest `json:"items"`
}

// OrderItemResponse línea con su snapshot de producto.
type OrderItemResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	ProductTitle string          `json:"product_title"`
	ProductImage string          `json:"product_image,omitempty"`
	Quantity     int64           `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// OrderResponse orden completa para respuestas HTTP.
type OrderResponse struct {
	ID               string              `json:"id"`
	CompanyID        string              `json:"company_id"`
	ClientName       string              `json:"client_name"`
	ClientCompany    string              `json:"client_company,omitempty"`
	ClientAddress    string              `json:"client_address"`
	ClientCity       string              `json:"client_city"`
	ClientPostalCode string              `json:"client_postal_code"`
	ClientPhone      string              `json:"client_phone"`
	ClientEmail      string              `json:"client_email,omitempty"`
	Notes            string              `json:"notes,omitempty"`
	Status           string              `json:"status"`
	CreatedAt        time.Time           `json:"created_at"`
	FinalizedAt      *time.Time          `json:"finalized_at,omitempty"`
	TotalItems       int64               `json:"total_items"`
	TotalAmount      decimal.Decimal     `json:"total_amount"`
	InvoiceNumber    string              `json:"invoice_number,omitempty"`
	Items            []OrderItemResponse `json:"items"`
}

// StockShortfallResponse un faltante reportado al rechazar la finalización.
type StockShortfallResponse struct {
	ProductID    string `json:"product_id"`
	ProductTitle string `json:"product_title"`
	Required     int64  `json:"required"`
	Available    int64  `json:"available"`
}
