package repository

// InvoiceSequenceRepository define el contador de facturación por tenant.
// Next incrementa y devuelve el siguiente número, serializado por el lock de la
// fila del tenant; debe consumirse dentro de la misma transacción que la
// finalización para que dos finalizaciones concurrentes no computen el mismo número.
type InvoiceSequenceRepository interface {
	Next(companyID string) (int64, error)
}
