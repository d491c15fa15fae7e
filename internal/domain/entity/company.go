package entity

import "time"

// Company representa una organización/tenant del sistema. Todo el catálogo y
// las órdenes están acotados a exactamente una Company.
type Company struct {
	ID        string
	Name      string
	Email     string
	Address   string
	Phone     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
