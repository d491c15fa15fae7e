package repository

import "github.com/teopopescu15/Inventory-app/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Delete elimina en cascada los productos de la categoría (FK en el esquema).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByIDAndCompany(id, companyID string) (*entity.Category, error)
	Update(category *entity.Category) error
	ListByCompany(companyID string) ([]*entity.Category, error)
	Delete(id string) error
}
