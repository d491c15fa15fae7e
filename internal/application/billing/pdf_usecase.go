package billing

import (
	"context"
	"fmt"

	"github.com/teopopescu15/Inventory-app/internal/domain"
	"github.com/teopopescu15/Inventory-app/internal/domain/entity"
	"github.com/teopopescu15/Inventory-app/internal/domain/repository"
)

// PDFUseCase genera la representación gráfica (PDF) de la factura de una orden.
// Solo se permite generar el PDF si la orden ya fue finalizada (tiene número de
// factura); los borradores no tienen factura que representar.
type PDFUseCase struct {
	orderRepo   repository.OrderRepository
	companyRepo repository.CompanyRepository
	generator   InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	orderRepo repository.OrderRepository,
	companyRepo repository.CompanyRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{orderRepo: orderRepo, companyRepo: companyRepo, generator: generator}
}

// DownloadInvoicePDF recupera la orden con sus líneas, verifica que esté
// FINALIZED y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)     si todo sale bien.
//   - domain.ErrNotFound            si la orden no existe para ese tenant.
//   - domain.ErrOrderNotFinalized   si la orden sigue en PENDING.
func (uc *PDFUseCase) DownloadInvoicePDF(
	ctx context.Context,
	companyID, orderID string,
) (pdfBytes []byte, filename string, err error) {
	// ── 1. Cargar orden ───────────────────────────────────────────────────────
	ord, err := uc.orderRepo.GetByIDAndCompany(orderID, companyID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener orden: %w", err)
	}
	if ord == nil {
		return nil, "", domain.ErrNotFound
	}

	// ── 2. Validar que ya fue finalizada ──────────────────────────────────────
	if ord.Status != entity.OrderStatusFinalized || ord.InvoiceNumber == "" {
		return nil, "", domain.ErrOrderNotFinalized
	}

	// ── 3. Cargar líneas (snapshot de precios y títulos) ──────────────────────
	items, err := uc.orderRepo.ListItemsByOrder(ord.ID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener líneas: %w", err)
	}
	ord.Items = items

	// ── 4. Cargar empresa ─────────────────────────────────────────────────────
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, "", domain.ErrNotFound
	}

	// ── 5. Generar PDF ────────────────────────────────────────────────────────
	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, ord, company)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("invoice_%s.pdf", ord.InvoiceNumber)
	return pdfBytes, filename, nil
}
