package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/csm-sistemas/controlfin-api/internal/application/dto"
	"github.com/csm-sistemas/controlfin-api/internal/application/expenses"
)

// ExpenseHandler maneja las peticiones HTTP de gastos.
type ExpenseHandler struct {
	uc *expenses.ExpenseUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *expenses.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar gasto
// @Description  Un gasto Recurrente con meses_recurrencia = N genera,
//
//	además de la fila base, N cuotas futuras en estado Pendiente.
//
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterExpenseRequest  true  "datos del gasto"
// @Success      201   {object}  map[string]int
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/expenses [post]
func (h *ExpenseHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	count, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"filas_registradas": count})
}

// Summary godoc
// @Summary      Resumen de gastos
// @Description  Totales del año y mes indicados (query year, month; por
//
//	defecto los actuales), desglose por frecuencia, evolución
//	mensual y ranking por categoría.
//
// @Tags         expenses
// @Produce      json
// @Param        year   query  int  false  "Año (default actual)"
// @Param        month  query  int  false  "Mes 1-12 (default actual)"
// @Success      200  {object}  dto.ExpenseSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/expenses/summary [get]
func (h *ExpenseHandler) Summary(c *fiber.Ctx) error {
	year := c.QueryInt("year", 0)
	month := time.Month(c.QueryInt("month", 0))
	summary, err := h.uc.Summary(c.Context(), year, month)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
