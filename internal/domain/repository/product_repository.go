package repository

import "github.com/teopopescu15/Inventory-app/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas están acotadas al tenant: un producto de otra empresa se
// comporta como inexistente (no filtra existencia entre tenants).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByIDAndCompany(id, companyID string) (*entity.Product, error)
	// GetForUpdate obtiene el producto y bloquea su fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción del TxRunner.
	GetForUpdate(id, companyID string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateCount actualiza solo el conteo de stock (usado por el motor de finalización).
	UpdateCount(productID string, count int64) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error)
	ListByCategory(categoryID, companyID string) ([]*entity.Product, error)
	Delete(id string) error
}
