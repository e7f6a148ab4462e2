// Package inventory implementa el libro de stock: movimientos manuales,
// cargas masivas de compras y las vistas de catálogo y stock bajo.
package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/csm-sistemas/controlfin-api/internal/application/dto"
	"github.com/csm-sistemas/controlfin-api/internal/domain"
	"github.com/csm-sistemas/controlfin-api/internal/domain/entity"
	"github.com/csm-sistemas/controlfin-api/internal/domain/repository"
)

// StockLedger aplica movimientos de stock sobre la hoja Productos y deja
// constancia en la hoja Movimientos. Las dos escrituras son independientes:
// si el registro del movimiento falla después de actualizar el producto no
// hay rollback, el stock queda aplicado y el historial incompleto.
type StockLedger struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
	now       func() time.Time
}

// NewStockLedger construye el caso de uso. now en nil usa time.Now.
func NewStockLedger(
	products repository.ProductRepository,
	movements repository.MovementRepository,
	now func() time.Time,
) *StockLedger {
	if now == nil {
		now = time.Now
	}
	return &StockLedger{products: products, movements: movements, now: now}
}

// MovementInput entrada para aplicar un movimiento de stock.
type MovementInput struct {
	ProductCode string
	Type        string // Compra | Venta | Ajuste
	Quantity    decimal.Decimal
	DocRef      string
}

// ApplyMovement valida la entrada, aplica el delta sobre Stock_Actual y
// registra el movimiento. La hoja Productos se reescribe siempre, incluso
// para Ajuste cuyo delta es cero. Devuelve el producto ya actualizado.
func (uc *StockLedger) ApplyMovement(ctx context.Context, input MovementInput) (*entity.Product, error) {
	switch input.Type {
	case entity.MovementTypePurchase, entity.MovementTypeSale, entity.MovementTypeAdjustment:
	default:
		return nil, fmt.Errorf("tipo de movimiento %q: %w", input.Type, domain.ErrInvalidInput)
	}
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("cantidad debe ser positiva: %w", domain.ErrInvalidInput)
	}
	code := strings.TrimSpace(input.ProductCode)
	if code == "" {
		return nil, fmt.Errorf("codigo_big vacío: %w", domain.ErrInvalidInput)
	}

	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range products {
		if strings.TrimSpace(products[i].Code) == code {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("codigo_big %s: %w", code, domain.ErrProductNotFound)
	}

	mov := entity.Movement{
		Date:        uc.now(),
		Type:        input.Type,
		ProductCode: code,
		Quantity:    input.Quantity,
		DocRef:      input.DocRef,
	}
	products[idx].CurrentStock = products[idx].CurrentStock.Add(mov.StockDelta())

	if err := uc.products.OverwriteAll(ctx, products); err != nil {
		return nil, err
	}
	if err := uc.movements.Append(ctx, mov); err != nil {
		return nil, err
	}
	updated := products[idx]
	return &updated, nil
}

// ListProducts devuelve el catálogo completo con los derivados de lectura.
func (uc *StockLedger) ListProducts(ctx context.Context) ([]dto.ProductDTO, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, toProductDTO(p))
	}
	return out, nil
}

// LowStock devuelve los productos con Stock_Actual <= Stock_Minimo.
func (uc *StockLedger) LowStock(ctx context.Context) ([]dto.ProductDTO, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []dto.ProductDTO
	for _, p := range products {
		if p.BelowMinimum() {
			out = append(out, toProductDTO(p))
		}
	}
	return out, nil
}

func toProductDTO(p entity.Product) dto.ProductDTO {
	return dto.ProductDTO{
		Code:         p.Code,
		ShelfCode:    p.ShelfCode(),
		Name:         p.Name,
		Description:  p.Description,
		UnitCost:     p.UnitCost,
		SalePrice:    p.SalePrice,
		CurrentStock: p.CurrentStock,
		MinStock:     p.MinStock,
		StockValue:   p.StockValue(),
		LowStock:     p.BelowMinimum(),
	}
}
