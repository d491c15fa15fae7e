package repository

import "github.com/teopopescu15/Inventory-app/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order y sus líneas (DIP).
// Las líneas se reemplazan al completo en cada edición del borrador, nunca se
// parchean de forma incremental.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByIDAndCompany(id, companyID string) (*entity.Order, error)
	// GetForUpdate obtiene la orden y bloquea su fila (SELECT FOR UPDATE) para
	// serializar finalizaciones concurrentes de la misma orden.
	GetForUpdate(id, companyID string) (*entity.Order, error)
	Update(order *entity.Order) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Order, error)
	ListByCompanyAndStatus(companyID, status string, limit, offset int) ([]*entity.Order, error)
	Delete(id string) error

	CreateItem(item *entity.OrderItem) error
	ListItemsByOrder(orderID string) ([]*entity.OrderItem, error)
	DeleteItemsByOrder(orderID string) error
}
