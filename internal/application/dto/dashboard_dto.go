package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary: los KPIs
// financieros del negocio más las alertas de stock bajo.
type DashboardSummaryDTO struct {
	CashFlow         decimal.Decimal `json:"cash_flow"`        // cobros pagados - gastos totales
	TotalReceivable  decimal.Decimal `json:"total_por_cobrar"` // cobros pendientes
	InventoryValue   decimal.Decimal `json:"valor_inventario"` // Σ costo × stock
	TotalExpenses    decimal.Decimal `json:"total_gastos"`
	LowStockProducts []ProductDTO    `json:"alertas_stock"`
}
