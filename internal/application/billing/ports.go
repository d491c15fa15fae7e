package billing

import (
	"context"

	"github.com/teopopescu15/Inventory-app/internal/domain/entity"
)

// InvoicePDFGenerator define el puerto de salida para la representación gráfica
// de la factura. El adaptador concreto (maroto) vive en infraestructura; esta
// capa solo conoce el contrato.
type InvoicePDFGenerator interface {
	// GenerateInvoicePDF renderiza la factura de una orden FINALIZED. Las líneas
	// vienen en ord.Items con el snapshot de título y precio tomado al momento
	// de agregarlas, no con los valores actuales del catálogo.
	GenerateInvoicePDF(ctx context.Context, ord *entity.Order, company *entity.Company) ([]byte, error)
}
