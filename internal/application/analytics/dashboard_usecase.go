// Package analytics calcula los indicadores del tablero principal y la
// vista 360 de clientes sobre los datos crudos de la planilla.
package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/csm-sistemas/controlfin-api/internal/application/dto"
	"github.com/csm-sistemas/controlfin-api/internal/domain/entity"
	"github.com/csm-sistemas/controlfin-api/internal/domain/repository"
)

// DashboardUseCase arma el resumen financiero del negocio. Las lecturas son
// secuenciales: con la caché del Store caliente, el resumen completo no
// genera llamadas remotas.
type DashboardUseCase struct {
	products    repository.ProductRepository
	expenses    repository.ExpenseRepository
	receivables repository.ReceivableRepository
	now         func() time.Time
}

// NewDashboardUseCase construye el caso de uso. now en nil usa time.Now.
func NewDashboardUseCase(
	products repository.ProductRepository,
	expenses repository.ExpenseRepository,
	receivables repository.ReceivableRepository,
	now func() time.Time,
) *DashboardUseCase {
	if now == nil {
		now = time.Now
	}
	return &DashboardUseCase{
		products:    products,
		expenses:    expenses,
		receivables: receivables,
		now:         now,
	}
}

// Summary devuelve los KPIs del tablero: cash flow (cobros pagados menos
// gastos), total por cobrar, valor de inventario, gastos acumulados y las
// alertas de stock bajo.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	receivables, err := uc.receivables.List(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.expenses.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}

	collected := decimal.Zero
	pending := decimal.Zero
	for _, r := range receivables {
		switch r.Status {
		case entity.StatusPaid:
			collected = collected.Add(r.TotalAmount)
		case entity.StatusPending:
			pending = pending.Add(r.TotalAmount)
		}
	}

	totalExpenses := decimal.Zero
	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(e.Amount)
	}

	inventoryValue := decimal.Zero
	var lowStock []dto.ProductDTO
	for _, p := range products {
		inventoryValue = inventoryValue.Add(p.StockValue())
		if p.BelowMinimum() {
			lowStock = append(lowStock, dto.ProductDTO{
				Code:         p.Code,
				ShelfCode:    p.ShelfCode(),
				Name:         p.Name,
				Description:  p.Description,
				UnitCost:     p.UnitCost,
				SalePrice:    p.SalePrice,
				CurrentStock: p.CurrentStock,
				MinStock:     p.MinStock,
				StockValue:   p.StockValue(),
				LowStock:     true,
			})
		}
	}

	return &dto.DashboardSummaryDTO{
		CashFlow:         collected.Sub(totalExpenses),
		TotalReceivable:  pending,
		InventoryValue:   inventoryValue,
		TotalExpenses:    totalExpenses,
		LowStockProducts: lowStock,
	}, nil
}
