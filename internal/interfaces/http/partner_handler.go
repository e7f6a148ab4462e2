package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/csm-sistemas/controlfin-api/internal/application/dto"
	"github.com/csm-sistemas/controlfin-api/internal/application/partners"
)

// PartnerHandler maneja las peticiones HTTP del registro societario.
type PartnerHandler struct {
	uc *partners.PartnerUseCase
}

// NewPartnerHandler construye el handler.
func NewPartnerHandler(uc *partners.PartnerUseCase) *PartnerHandler {
	return &PartnerHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar movimiento societario
// @Description  Aporte Capital, Préstamo o Retiro; el monto va siempre
//
//	positivo y el signo lo define el tipo.
//
// @Tags         partners
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterContributionRequest  true  "datos del movimiento"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/partners/contributions [post]
func (h *PartnerHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterContributionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.RegisterContribution(c.Context(), in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "movimiento societario registrado"})
}

// Summary godoc
// @Summary      Saldos por socio
// @Tags         partners
// @Produce      json
// @Success      200  {object}  dto.PartnerSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/partners/summary [get]
func (h *PartnerHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
