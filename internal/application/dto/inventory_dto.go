package dto

import "github.com/shopspring/decimal"

// ProductDTO producto para listados, con los derivados de solo-lectura:
// código de estantería (calculado, nunca persistido) y valor de stock.
type ProductDTO struct {
	Code         string          `json:"codigo_big"`
	ShelfCode    string          `json:"codigo_estanteria"`
	Name         string          `json:"nombre"`
	Description  string          `json:"descripcion"`
	UnitCost     decimal.Decimal `json:"costo_unitario"`
	SalePrice    decimal.Decimal `json:"precio_venta"`
	CurrentStock decimal.Decimal `json:"stock_actual"`
	MinStock     decimal.Decimal `json:"stock_minimo"`
	StockValue   decimal.Decimal `json:"valor_stock"`
	LowStock     bool            `json:"stock_bajo"`
}

// RegisterMovementRequest alta manual de un movimiento de stock.
type RegisterMovementRequest struct {
	ProductCode string          `json:"codigo_big"`
	Type        string          `json:"tipo"` // Compra | Venta | Ajuste
	Quantity    decimal.Decimal `json:"cantidad"`
	DocRef      string          `json:"documento_ref"`
}

// PurchaseUploadResult resultado de una carga masiva de compras.
type PurchaseUploadResult struct {
	Processed int      `json:"procesados"`
	BatchRef  string   `json:"documento_ref"`
	Errors    []string `json:"errores,omitempty"`
}
