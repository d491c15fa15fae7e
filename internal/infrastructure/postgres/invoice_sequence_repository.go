package postgres

import (
	"context"
	"fmt"

	"github.com/teopopescu15/Inventory-app/internal/domain/repository"
)

var _ repository.InvoiceSequenceRepository = (*InvoiceSequenceRepo)(nil)

// InvoiceSequenceRepo contador de facturación por tenant sobre PostgreSQL.
// Cada tenant tiene una fila en invoice_sequences; el upsert incrementa y
// devuelve el nuevo valor en una sola sentencia. El UPDATE bloquea la fila, por
// lo que dos transacciones concurrentes del mismo tenant se serializan aquí y
// nunca computan el mismo número. Debe usarse dentro de la transacción de la
// finalización: un rollback devuelve el número sin dejar hueco.
type InvoiceSequenceRepo struct {
	q Querier
}

// NewInvoiceSequenceRepository construye el adaptador del consecutivo. Pasar tx (Querier).
func NewInvoiceSequenceRepository(q Querier) *InvoiceSequenceRepo {
	return &InvoiceSequenceRepo{q: q}
}

// Next incrementa y devuelve el siguiente número de factura del tenant.
func (r *InvoiceSequenceRepo) Next(companyID string) (int64, error) {
	query := `
		INSERT INTO invoice_sequences (company_id, last_number)
		VALUES ($1, 1)
		ON CONFLICT (company_id) DO UPDATE SET last_number = invoice_sequences.last_number + 1
		RETURNING last_number`
	var n int64
	if err := r.q.QueryRow(context.Background(), query, companyID).Scan(&n); err != nil {
		return 0, fmt.Errorf("next invoice number: %w", err)
	}
	return n, nil
}
