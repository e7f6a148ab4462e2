package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/csm-sistemas/controlfin-api/internal/application/analytics"
)

// DashboardHandler maneja las peticiones HTTP del tablero principal.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen financiero del negocio
// @Description  Cash flow, total por cobrar, valor de inventario, gastos y
//
//	alertas de stock bajo.
//
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
