package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/csm-sistemas/controlfin-api/internal/application/dto"
	"github.com/csm-sistemas/controlfin-api/internal/application/sales"
)

// SalesHandler maneja las peticiones HTTP de ventas y cobranzas.
type SalesHandler struct {
	uc *sales.SaleTransaction
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *sales.SaleTransaction) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// RegisterSale godoc
// @Summary      Registrar venta multi-línea
// @Description  Descuenta stock, registra los movimientos y genera un único
//
//	cobro agregado. Cliente, vendedor y plazo salen de la
//	primera línea.
//
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterSaleRequest  true  "líneas de la venta"
// @Success      201   {object}  dto.SaleResultDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) RegisterSale(c *fiber.Ctx) error {
	var in dto.RegisterSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.RegisterSale(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// PendingCollections godoc
// @Summary      Panel de cobranzas
// @Description  Cobros pendientes ordenados por vencimiento con urgencia
//
//	(vencido, por_vencer, al_dia). El campo index referencia la
//	fila para marcar el pago.
//
// @Tags         sales
// @Produce      json
// @Success      200  {array}   dto.CollectionCardDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/collections [get]
func (h *SalesHandler) PendingCollections(c *fiber.Ctx) error {
	cards, err := h.uc.PendingCollections(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(cards), "cobros": cards})
}

// MarkPaid godoc
// @Summary      Marcar cobro como pagado
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        index  path  int  true  "Posición de la fila en la hoja Cobros"
// @Param        body   body  dto.MarkPaidRequest  true  "fecha_pago (opcional), forma_pago"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/collections/{index}/pay [post]
func (h *SalesHandler) MarkPaid(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "index inválido"})
	}
	var in dto.MarkPaidRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.MarkPaid(c.Context(), index, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "cobro registrado"})
}

// UploadSales godoc
// @Summary      Carga masiva de ventas
// @Description  Recibe un CSV con columnas Codigo_Big, Cantidad y
//
//	opcionalmente Descuento y Plazo. El precio sale del catálogo
//	con el descuento aplicado; cliente y vendedor van como campos
//	del formulario y aplican a todas las filas.
//
// @Tags         sales
// @Accept       multipart/form-data
// @Produce      json
// @Param        file     formData  file    true   "Archivo CSV de ventas"
// @Param        cliente  formData  string  true   "Cliente de la venta"
// @Param        vendedor formData  string  false  "Vendedor"
// @Success      201  {object}  dto.SaleResultDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/upload [post]
func (h *SalesHandler) UploadSales(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "falta el archivo 'file'"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "archivo ilegible"})
	}
	defer file.Close()

	meta := dto.SalesUploadRequest{
		Client:      c.FormValue("cliente"),
		Salesperson: c.FormValue("vendedor"),
	}
	result, err := h.uc.ProcessSalesUpload(c.Context(), meta, file)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}
