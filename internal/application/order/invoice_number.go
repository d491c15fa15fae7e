package order

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/teopopescu15/Inventory-app/internal/domain"
)

// InvoicePrefix prefijo de todos los números de factura emitidos.
const InvoicePrefix = "INV-"

// FormatInvoiceNumber formatea el consecutivo como INV- seguido de 5 dígitos
// con ceros a la izquierda: 1 → "INV-00001". Más allá de 99999 el número crece
// sin truncarse.
func FormatInvoiceNumber(n int64) string {
	return fmt.Sprintf("%s%05d", InvoicePrefix, n)
}

// ParseInvoiceNumber extrae el sufijo numérico de un número de factura.
// Los números se comparan por su sufijo numérico, no lexicográficamente:
// INV-00099 < INV-00100.
func ParseInvoiceNumber(s string) (int64, error) {
	if !strings.HasPrefix(s, InvoicePrefix) {
		return 0, fmt.Errorf("número de factura '%s': %w", s, domain.ErrInvalidInput)
	}
	n, err := strconv.ParseInt(strings.TrimPrefix(s, InvoicePrefix), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("número de factura '%s': %w", s, domain.ErrInvalidInput)
	}
	return n, nil
}
