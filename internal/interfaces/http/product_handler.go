package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/csm-sistemas/controlfin-api/internal/application/dto"
	"github.com/csm-sistemas/controlfin-api/internal/application/inventory"
)

// ProductHandler maneja las peticiones HTTP del catálogo y el libro de stock.
type ProductHandler struct {
	ledger *inventory.StockLedger
}

// NewProductHandler construye el handler.
func NewProductHandler(ledger *inventory.StockLedger) *ProductHandler {
	return &ProductHandler{ledger: ledger}
}

// List godoc
// @Summary      Catálogo de productos
// @Description  Devuelve todos los productos con código de estantería,
//
//	valor de stock y alerta de stock bajo calculados.
//
// @Tags         products
// @Produce      json
// @Success      200  {array}   dto.ProductDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.ledger.ListProducts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// LowStock godoc
// @Summary      Productos con stock bajo
// @Tags         products
// @Produce      json
// @Success      200  {array}   dto.ProductDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products/low-stock [get]
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	products, err := h.ledger.LowStock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(products), "productos": products})
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock
// @Description  Compra suma stock, Venta resta y Ajuste registra sin mover.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "codigo_big, tipo, cantidad, documento_ref"
// @Success      201   {object}  dto.ProductDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *ProductHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.ledger.ApplyMovement(c.Context(), inventory.MovementInput{
		ProductCode: in.ProductCode,
		Type:        in.Type,
		Quantity:    in.Quantity,
		DocRef:      in.DocRef,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "movimiento registrado",
		"stock_actual": product.CurrentStock,
	})
}

// UploadPurchases godoc
// @Summary      Carga masiva de compras
// @Description  Recibe un CSV con columnas Codigo_Big y Cantidad_Comprada.
//
//	Todos los códigos se validan antes de escribir; un código
//	inexistente aborta la carga completa.
//
// @Tags         inventory
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo CSV de compras"
// @Success      200   {object}  dto.PurchaseUploadResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/purchases/upload [post]
func (h *ProductHandler) UploadPurchases(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "falta el archivo 'file'"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "archivo ilegible"})
	}
	defer file.Close()

	result, err := h.ledger.ProcessPurchaseUpload(c.Context(), fileHeader.Filename, file)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}
