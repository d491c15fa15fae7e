package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidQuantity    = errors.New("la cantidad debe ser al menos 1")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrOrderNotEditable   = errors.New("la orden ya fue finalizada y no es editable")
	ErrEmptyOrder         = errors.New("la orden no tiene líneas")
	ErrOrderNotFinalized  = errors.New("la orden aún no está finalizada")
	ErrTransactionFailed  = errors.New("la transacción no pudo completarse; reintentable")
)

// StockShortfall describe un producto con stock insuficiente para finalizar una orden.
type StockShortfall struct {
	ProductID    string
	ProductTitle string
	Required     int64
	Available    int64
}

// InsufficientStockError agrupa TODOS los faltantes detectados en la pasada de
// validación de Finalize, no solo el primero, para que el caller vea el cuadro completo.
type InsufficientStockError struct {
	Shortfalls []StockShortfall
}

func (e *InsufficientStockError) Error() string {
	var b strings.Builder
	b.WriteString("stock insuficiente:")
	for _, s := range e.Shortfalls {
		fmt.Fprintf(&b, " producto '%s' requiere %d y hay %d;", s.ProductTitle, s.Required, s.Available)
	}
	return strings.TrimSuffix(b.String(), ";")
}

// IsRetryable indica si el error corresponde a una falla transitoria del store
// (contención, timeout de lock) que el caller puede reintentar sin efectos parciales.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTransactionFailed)
}
