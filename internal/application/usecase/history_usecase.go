package usecase

import (
	"time"

	"github.com/teopopescu15/Inventory-app/internal/application/dto"
	"github.com/teopopescu15/Inventory-app/internal/domain"
	"github.com/teopopescu15/Inventory-app/internal/domain/entity"
	"github.com/teopopescu15/Inventory-app/internal/domain/repository"
)

// HistoryUseCase lecturas del ledger de stock para reporting.
// El ledger no tiene operaciones de edición: solo lecturas ordenadas.
type HistoryUseCase struct {
	historyRepo repository.StockHistoryRepository
	productRepo repository.ProductRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(historyRepo repository.StockHistoryRepository, productRepo repository.ProductRepository) *HistoryUseCase {
	return &HistoryUseCase{historyRepo: historyRepo, productRepo: productRepo}
}

// ProductHistory devuelve las entradas de un producto del tenant, más recientes
// primero. Verifica la propiedad del producto antes de exponer el historial.
func (uc *HistoryUseCase) ProductHistory(companyID, productID string) ([]dto.StockHistoryResponse, error) {
	product, err := uc.productRepo.GetByIDAndCompany(productID, companyID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	entries, err := uc.historyRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toHistoryResponses(entries), nil
}

// CompanyHistoryLastMonths devuelve las entradas del tenant de los últimos N
// meses, más recientes primero.
func (uc *HistoryUseCase) CompanyHistoryLastMonths(companyID string, months int) ([]dto.StockHistoryResponse, error) {
	if months <= 0 {
		months = 6
	}
	since := time.Now().AddDate(0, -months, 0)
	entries, err := uc.historyRepo.ListByCompanySince(companyID, since)
	if err != nil {
		return nil, err
	}
	return toHistoryResponses(entries), nil
}

func toHistoryResponses(entries []*entity.StockHistoryEntry) []dto.StockHistoryResponse {
	out := make([]dto.StockHistoryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.StockHistoryResponse{
			ID:           e.ID,
			ProductID:    e.ProductID,
			OldCount:     e.OldCount,
			NewCount:     e.NewCount,
			ChangeAmount: e.ChangeAmount,
			ChangeType:   e.ChangeType,
			ChangedAt:    e.ChangedAt,
			Notes:        e.Notes,
		})
	}
	return out
}
