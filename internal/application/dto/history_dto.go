package dto

import "time"

// StockHistoryResponse una entrada del ledger para respuestas HTTP.
type StockHistoryResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	OldCount     int64     `json:"old_count"`
	NewCount     int64     `json:"new_count"`
	ChangeAmount int64     `json:"change_amount"`
	ChangeType   string    `json:"change_type"`
	ChangedAt    time.Time `json:"changed_at"`
	Notes        string    `json:"notes,omitempty"`
}
