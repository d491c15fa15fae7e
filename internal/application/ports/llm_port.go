package ports

import (
	"context"

	"github.com/teopopescu15/Inventory-app/internal/application/dto"
)

// LLMService define el puerto de salida para los servicios de inteligencia artificial.
// Cualquier adaptador (Gemini, OpenAI, Ollama, mock) debe implementar esta interfaz.
// Siguiendo el principio de inversión de dependencias (DIP), el dominio/aplicación
// solo conoce este contrato, no la implementación concreta.
type LLMService interface {
	// AnalyzeInventory recibe el catálogo actual y los movimientos recientes del
	// ledger y devuelve el análisis estructurado (resumen, más vendidos,
	// recomendaciones de reposición, insights). El contexto debe llevar un
	// timeout para evitar bloqueos en llamadas externas.
	AnalyzeInventory(
		ctx context.Context,
		products []dto.ProductResponse,
		history []dto.StockHistoryResponse,
	) (*dto.InventoryAnalysisDTO, error)
}
