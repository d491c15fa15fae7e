package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/teopopescu15/Inventory-app/internal/domain/entity"
	"github.com/teopopescu15/Inventory-app/internal/domain/repository"
)

var _ repository.StockHistoryRepository = (*StockHistoryRepo)(nil)

// StockHistoryRepo implementación del ledger append-only sobre PostgreSQL.
// No expone Update ni Delete: las entradas son inmutables.
type StockHistoryRepo struct {
	q Querier
}

// NewStockHistoryRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewStockHistoryRepository(q Querier) *StockHistoryRepo {
	return &StockHistoryRepo{q: q}
}

// Create inserta una entrada. El id lo genera la base (gen_random_uuid) y se
// devuelve en entry.ID.
func (r *StockHistoryRepo) Create(entry *entity.StockHistoryEntry) error {
	query := `
		INSERT INTO product_count_history (product_id, old_count, new_count, change_amount, change_type, changed_at, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		entry.ProductID, entry.OldCount, entry.NewCount, entry.ChangeAmount,
		entry.ChangeType, entry.ChangedAt, entry.Notes,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("insert stock history: %w", err)
	}
	return nil
}

// ListByProduct devuelve las entradas de un producto, más recientes primero.
func (r *StockHistoryRepo) ListByProduct(productID string) ([]*entity.StockHistoryEntry, error) {
	query := `
		SELECT id, product_id, old_count, new_count, change_amount, change_type, changed_at, notes
		FROM product_count_history WHERE product_id = $1 ORDER BY changed_at DESC, seq DESC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock history: %w", err)
	}
	return r.scanAll(rows)
}

// ListByCompanySince devuelve las entradas del tenant desde una fecha, más
// recientes primero. Acota por tenant vía el join con products.
func (r *StockHistoryRepo) ListByCompanySince(companyID string, since time.Time) ([]*entity.StockHistoryEntry, error) {
	query := `
		SELECT h.id, h.product_id, h.old_count, h.new_count, h.change_amount, h.change_type, h.changed_at, h.notes
		FROM product_count_history h
		JOIN products p ON p.id = h.product_id
		WHERE p.company_id = $1 AND h.changed_at >= $2
		ORDER BY h.changed_at DESC, h.seq DESC`
	rows, err := r.q.Query(context.Background(), query, companyID, since)
	if err != nil {
		return nil, fmt.Errorf("list company stock history: %w", err)
	}
	return r.scanAll(rows)
}

func (r *StockHistoryRepo) scanAll(rows pgx.Rows) ([]*entity.StockHistoryEntry, error) {
	defer rows.Close()
	var list []*entity.StockHistoryEntry
	for rows.Next() {
		var e entity.StockHistoryEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.OldCount, &e.NewCount, &e.ChangeAmount,
			&e.ChangeType, &e.ChangedAt, &e.Notes); err != nil {
			return nil, fmt.Errorf("scan stock history: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
