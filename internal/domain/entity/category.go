package entity

import "time"

// Category representa una categoría de productos de una empresa.
// Eliminar una categoría elimina en cascada sus productos (FK ON DELETE CASCADE).
type Category struct {
	ID        string
	CompanyID string
	Title     string
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
