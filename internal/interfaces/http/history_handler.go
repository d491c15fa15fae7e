package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/teopopescu15/Inventory-app/internal/application/usecase"
)

// HistoryHandler expone las lecturas del ledger de stock (protegido).
type HistoryHandler struct {
	uc *usecase.HistoryUseCase
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(uc *usecase.HistoryUseCase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// ByProduct godoc
// @Summary      Historial de stock de un producto (más reciente primero)
// @Tags         history
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {array}  dto.StockHistoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/history [get]
func (h *HistoryHandler) ByProduct(c *fiber.Ctx) error {
	out, err := h.uc.ProductHistory(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ByCompany godoc
// @Summary      Historial de stock de la empresa (últimos N meses)
// @Tags         history
// @Security     Bearer
// @Produce      json
// @Param        months  query  int  false  "Meses hacia atrás"  default(6)
// @Success      200  {array}  dto.StockHistoryResponse
// @Router       /api/history [get]
func (h *HistoryHandler) ByCompany(c *fiber.Ctx) error {
	months := c.QueryInt("months", 6)
	out, err := h.uc.CompanyHistoryLastMonths(GetCompanyID(c), months)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
