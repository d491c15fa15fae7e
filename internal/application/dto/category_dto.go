package dto

import "time"

// CreateCategoryRequest alta de categoría.
type CreateCategoryRequest struct {
	Title string `json:"title"`
	Image string `json:"image"`
}

// UpdateCategoryRequest edición de categoría.
type UpdateCategoryRequest struct {
	Title string `json:"title"`
	Image string `json:"image"`
}

// CategoryResponse categoría para respuestas HTTP.
type CategoryResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Title     string    `json:"title"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
