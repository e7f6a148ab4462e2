package http

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/csm-sistemas/controlfin-api/internal/application/analytics"
	"github.com/csm-sistemas/controlfin-api/internal/application/dto"
)

// ClientHandler maneja las peticiones HTTP del directorio de clientes y la
// vista 360.
type ClientHandler struct {
	uc *analytics.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *analytics.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// List godoc
// @Summary      Directorio de clientes
// @Tags         clients
// @Produce      json
// @Success      200  {array}   dto.ClientDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	clients, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(clients)
}

// Create godoc
// @Summary      Alta de cliente
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClientRequest  true  "datos del cliente"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Create(c.Context(), in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "cliente creado"})
}

// Summary godoc
// @Summary      Vista 360 de un cliente
// @Description  Contacto, totales facturado/pagado/pendiente, comportamiento
//
//	de pago y estado de cuenta. El matching por nombre ignora
//	mayúsculas y tildes.
//
// @Tags         clients
// @Produce      json
// @Param        name  path  string  true  "Nombre del cliente"
// @Success      200  {object}  dto.ClientSummaryDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{name}/summary [get]
func (h *ClientHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.Context(), paramName(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// Statement godoc
// @Summary      Estado de cuenta en PDF
// @Tags         clients
// @Produce      application/pdf
// @Param        name  path  string  true  "Nombre del cliente"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{name}/statement [get]
func (h *ClientHandler) Statement(c *fiber.Ctx) error {
	name := paramName(c)
	pdfBytes, err := h.uc.StatementPDF(c.Context(), name)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "estado_cuenta_"+name+".pdf"))
	return c.Send(pdfBytes)
}

// paramName decodifica el nombre del cliente de la ruta (puede venir con
// espacios y tildes escapados).
func paramName(c *fiber.Ctx) string {
	raw := c.Params("name")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
