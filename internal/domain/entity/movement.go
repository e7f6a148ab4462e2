package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock (valores literales de la hoja Movimientos).
// Compra suma la cantidad al stock, Venta la resta y Ajuste deja el stock
// sin cambios: el ajuste se registra pero se aplica manualmente, tal como
// opera el negocio hoy.
const (
	MovementTypePurchase   = "Compra"
	MovementTypeSale       = "Venta"
	MovementTypeAdjustment = "Ajuste"
)

// Movement representa una fila del registro append-only de Movimientos.
type Movement struct {
	Date        time.Time
	Type        string // Compra | Venta | Ajuste
	ProductCode string // Codigo_Big, FK lógica a Productos
	Quantity    decimal.Decimal
	DocRef      string // Documento_Ref, texto libre
}

// StockDelta devuelve el efecto del movimiento sobre Stock_Actual.
func (m Movement) StockDelta() decimal.Decimal {
	switch m.Type {
	case MovementTypePurchase:
		return m.Quantity
	case MovementTypeSale:
		return m.Quantity.Neg()
	default:
		return decimal.Zero
	}
}
