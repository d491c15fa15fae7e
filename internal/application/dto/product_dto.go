package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto. Count es el stock inicial y genera
// una entrada INITIAL en el ledger.
type CreateProductRequest struct {
	CategoryID string          `json:"category_id"`
	Title      string          `json:"title"`
	Image      string          `json:"image"`
	Price      decimal.Decimal `json:"price"`
	Count      int64           `json:"count" validate:"min=0"`
}

// UpdateProductRequest edición de producto. Si Count cambia, el caso de uso
// registra la entrada clasificada (SALE/RESTOCK/ADJUSTMENT) en el ledger.
type UpdateProductRequest struct {
	Title string          `json:"title"`
	Image string          `json:"image"`
	Price decimal.Decimal `json:"price"`
	Count int64           `json:"count" validate:"min=0"`
	Notes string          `json:"notes"`
}

// ProductResponse producto para respuestas HTTP.
type ProductResponse struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"category_id"`
	Title      string          `json:"title"`
	Image      string          `json:"image,omitempty"`
	Price      decimal.Decimal `json:"price"`
	Count      int64           `json:"count"`
	CreatedAt  time.Time       `json:"created_at"`
}
