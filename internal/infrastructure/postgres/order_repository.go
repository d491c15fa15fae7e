package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/teopopescu15/Inventory-app/internal/domain"
	"github.com/teopopescu15/Inventory-app/internal/domain/entity"
	"github.com/teopopescu15/Inventory-app/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para órdenes. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, company_id, client_name, client_company, client_address, client_city,
		client_postal_code, client_phone, client_email, notes, status, created_at, finalized_at,
		total_items, total_amount, invoice_number`

// Create persiste una nueva orden (sin sus líneas; ver CreateItem).
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, company_id, client_name, client_company, client_address, client_city,
			client_postal_code, client_phone, client_email, notes, status, created_at, finalized_at,
			total_items, total_amount, invoice_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CompanyID, order.ClientName, order.ClientCompany, order.ClientAddress,
		order.ClientCity, order.ClientPostalCode, order.ClientPhone, order.ClientEmail, order.Notes,
		order.Status, order.CreatedAt, order.FinalizedAt, order.TotalItems, order.TotalAmount,
		nullableString(order.InvoiceNumber),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByIDAndCompany obtiene una orden acotada al tenant. Devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetByIDAndCompany(id, companyID string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 AND company_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, companyID))
}

// GetForUpdate obtiene la orden y bloquea su fila hasta el fin de la transacción,
// serializando finalizaciones concurrentes de la misma orden.
func (r *OrderRepo) GetForUpdate(id, companyID string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 AND company_id = $2 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, companyID))
}

// Update actualiza una orden existente, incluidos estado, totales y factura.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders SET client_name = $2, client_company = $3, client_address = $4, client_city = $5,
			client_postal_code = $6, client_phone = $7, client_email = $8, notes = $9, status = $10,
			finalized_at = $11, total_items = $12, total_amount = $13, invoice_number = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.ClientName, order.ClientCompany, order.ClientAddress, order.ClientCity,
		order.ClientPostalCode, order.ClientPhone, order.ClientEmail, order.Notes, order.Status,
		order.FinalizedAt, order.TotalItems, order.TotalAmount, nullableString(order.InvoiceNumber),
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// ListByCompany lista órdenes por empresa, más recientes primero.
func (r *OrderRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return r.scanAll(rows)
}

// ListByCompanyAndStatus lista órdenes por empresa filtradas por estado.
func (r *OrderRepo) ListByCompanyAndStatus(companyID, status string, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders WHERE company_id = $1 AND status = $2 ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, companyID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders by status: %w", err)
	}
	return r.scanAll(rows)
}

// Delete elimina una orden por ID. La FK ON DELETE CASCADE arrastra sus líneas.
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la orden con su snapshot de producto.
func (r *OrderRepo) CreateItem(item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, product_title, product_image, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.ProductID, item.ProductTitle, item.ProductImage,
		item.Quantity, item.UnitPrice, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// ListItemsByOrder devuelve las líneas de una orden en orden de inserción (seq).
func (r *OrderRepo) ListItemsByOrder(orderID string) ([]*entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, product_title, product_image, quantity, unit_price, subtotal
		FROM order_items WHERE order_id = $1 ORDER BY seq`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductTitle, &it.ProductImage,
			&it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// DeleteItemsByOrder elimina todas las líneas de una orden (reemplazo total en ediciones).
func (r *OrderRepo) DeleteItemsByOrder(orderID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM order_items WHERE order_id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	return nil
}

func (r *OrderRepo) scanOne(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var invoice *string
	err := row.Scan(
		&o.ID, &o.CompanyID, &o.ClientName, &o.ClientCompany, &o.ClientAddress, &o.ClientCity,
		&o.ClientPostalCode, &o.ClientPhone, &o.ClientEmail, &o.Notes, &o.Status, &o.CreatedAt,
		&o.FinalizedAt, &o.TotalItems, &o.TotalAmount, &invoice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if invoice != nil {
		o.InvoiceNumber = *invoice
	}
	return &o, nil
}

func (r *OrderRepo) scanAll(rows pgx.Rows) ([]*entity.Order, error) {
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		var invoice *string
		if err := rows.Scan(&o.ID, &o.CompanyID, &o.ClientName, &o.ClientCompany, &o.ClientAddress,
			&o.ClientCity, &o.ClientPostalCode, &o.ClientPhone, &o.ClientEmail, &o.Notes, &o.Status,
			&o.CreatedAt, &o.FinalizedAt, &o.TotalItems, &o.TotalAmount, &invoice); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if invoice != nil {
			o.InvoiceNumber = *invoice
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// nullableString mapea "" a NULL para columnas con UNIQUE parcial (invoice_number).
func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
