package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/teopopescu15/Inventory-app/internal/application/dto"
	"github.com/teopopescu15/Inventory-app/internal/application/ports"
	"github.com/teopopescu15/Inventory-app/internal/domain/entity"
)

// AnalysisUseCase orquesta el análisis de inventario asistido por IA.
// Junta el catálogo del tenant con los movimientos de los últimos seis meses,
// delega al puerto LLM y, si la llamada falla, degrada a un análisis local
// calculado sobre el propio ledger: el endpoint nunca propaga el error del LLM.
type AnalysisUseCase struct {
	llm       ports.LLMService
	productUC *ProductUseCase
	historyUC *HistoryUseCase
}

// NewAnalysisUseCase construye el caso de uso inyectando el puerto LLMService.
func NewAnalysisUseCase(llm ports.LLMService, productUC *ProductUseCase, historyUC *HistoryUseCase) *AnalysisUseCase {
	return &AnalysisUseCase{llm: llm, productUC: productUC, historyUC: historyUC}
}

// Analyze ejecuta el análisis para la empresa. Aplica un timeout de 10 s en la
// llamada al LLM para evitar que las latencias externas bloqueen los goroutines
// del servidor.
func (uc *AnalysisUseCase) Analyze(ctx context.Context, companyID string) (*dto.InventoryAnalysisDTO, error) {
	products, err := uc.productUC.List(companyID, 1000, 0)
	if err != nil {
		return nil, fmt.Errorf("análisis: catálogo: %w", err)
	}
	history, err := uc.historyUC.CompanyHistoryLastMonths(companyID, 6)
	if err != nil {
		return nil, fmt.Errorf("análisis: historial: %w", err)
	}

	if uc.llm != nil {
		llmCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if result, err := uc.llm.AnalyzeInventory(llmCtx, products, history); err == nil {
			return result, nil
		} else {
			log.Warn().Err(err).Str("company_id", companyID).
				Msg("LLM no disponible, usando análisis local")
		}
	}
	return localAnalysis(products, history), nil
}

// localAnalysis calcula el análisis de respaldo sobre los datos del ledger,
// sin dependencia externa.
func localAnalysis(products []dto.ProductResponse, history []dto.StockHistoryResponse) *dto.InventoryAnalysisDTO {
	byID := make(map[string]*dto.ProductResponse, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	soldUnits := make(map[string]int64)
	var totalSold int64
	for _, e := range history {
		if e.ChangeType != entity.ChangeTypeSale {
			continue
		}
		units := -e.ChangeAmount // SALE tiene delta negativo
		soldUnits[e.ProductID] += units
		totalSold += units
	}

	top := make([]dto.TopSellingProduct, 0, len(soldUnits))
	for id, units := range soldUnits {
		p, ok := byID[id]
		if !ok {
			continue
		}
		revenue := p.Price.Mul(decimal.NewFromInt(units))
		top = append(top, dto.TopSellingProduct{
			ProductID:    id,
			ProductTitle: p.Title,
			UnitsSold:    units,
			Revenue:      revenue.InexactFloat64(),
		})
	}
	sort.Slice(top, func(i, j int) bool { return top[i].UnitsSold > top[j].UnitsSold })
	if len(top) > 5 {
		top = top[:5]
	}

	var recs []dto.StockRecommendation
	outOfStock := 0
	for _, p := range products {
		if p.Count == 0 {
			outOfStock++
		}
		if p.Count >= 5 {
			continue
		}
		urgency := "Medium"
		reason := "Stock below reorder threshold"
		if p.Count == 0 {
			urgency = "High"
			reason = "Out of stock"
		}
		restock := soldUnits[p.ID]
		if restock < 10 {
			restock = 10
		}
		recs = append(recs, dto.StockRecommendation{
			ProductID:          p.ID,
			ProductTitle:       p.Title,
			CurrentStock:       p.Count,
			RecommendedRestock: restock,
			Urgency:            urgency,
			Reason:             reason,
		})
	}

	health := "Good"
	desc := "Inventory levels are healthy."
	switch {
	case len(products) == 0:
		health = "Warning"
		desc = "No products registered yet."
	case outOfStock > 0:
		health = "Warning"
		desc = fmt.Sprintf("%d product(s) are out of stock.", outOfStock)
	case len(recs) == 0 && totalSold > 0:
		health = "Excellent"
		desc = "All products are well stocked and sales are flowing."
	}

	insights := []dto.PatternInsight{
		{
			Category:    "Sales",
			Title:       "Sales activity",
			Description: fmt.Sprintf("%d units sold in the last 6 months across %d product(s).", totalSold, len(soldUnits)),
			Actionable:  false,
		},
	}
	if len(recs) > 0 {
		insights = append(insights, dto.PatternInsight{
			Category:    "Inventory",
			Title:       "Restock needed",
			Description: fmt.Sprintf("%d product(s) need restocking soon.", len(recs)),
			Actionable:  true,
		})
	}

	return &dto.InventoryAnalysisDTO{
		Summary: dto.AnalysisSummary{
			TotalProducts:  len(products),
			TotalUnitsSold: totalSold,
			HealthStatus:   health,
			Description:    desc,
		},
		TopSellingProducts: top,
		Recommendations:    recs,
		Insights:           insights,
	}
}
