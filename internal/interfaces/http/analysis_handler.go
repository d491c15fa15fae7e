package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/teopopescu15/Inventory-app/internal/application/usecase"
)

// AnalysisHandler expone el análisis de inventario asistido por IA (protegido).
type AnalysisHandler struct {
	uc *usecase.AnalysisUseCase
}

// NewAnalysisHandler construye el handler.
func NewAnalysisHandler(uc *usecase.AnalysisUseCase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

// Analyze godoc
// @Summary      Análisis de inventario con IA (con fallback local)
// @Description  Si el LLM no está disponible, devuelve un análisis calculado
// @Description  localmente sobre el ledger; nunca falla por el proveedor externo.
// @Tags         analysis
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryAnalysisDTO
// @Router       /api/analysis [get]
func (h *AnalysisHandler) Analyze(c *fiber.Ctx) error {
	out, err := h.uc.Analyze(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
