package entity

import "github.com/shopspring/decimal"

// Product representa una fila de la hoja Productos. Codigo_Big es la clave
// primaria lógica; Stock_Actual se mantiene por construcción: cada operación
// del libro de stock lee el valor vigente, aplica un delta y lo reescribe.
type Product struct {
	Code         string // Codigo_Big
	Name         string
	Description  string
	UnitCost     decimal.Decimal // Costo_Unitario
	SalePrice    decimal.Decimal // Precio_Venta
	CurrentStock decimal.Decimal // Stock_Actual
	MinStock     decimal.Decimal // Stock_Minimo
}

// ShelfCode es el código de estantería, derivado de Codigo_Big quitando sus
// dos primeros caracteres. Nunca se persiste: se calcula en el borde de
// lectura y queda fuera del esquema de la hoja.
func (p Product) ShelfCode() string {
	if len(p.Code) > 2 {
		return p.Code[2:]
	}
	return p.Code
}

// BelowMinimum indica si el producto está en alerta de stock bajo.
func (p Product) BelowMinimum() bool {
	return p.CurrentStock.LessThanOrEqual(p.MinStock)
}

// StockValue es el valor del inventario de este producto (costo × stock).
func (p Product) StockValue() decimal.Decimal {
	return p.UnitCost.Mul(p.CurrentStock)
}
