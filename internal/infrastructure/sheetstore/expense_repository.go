package sheetstore

import (
	"context"

	"github.com/csm-sistemas/controlfin-api/internal/domain/entity"
	"github.com/csm-sistemas/controlfin-api/internal/domain/schema"
)

// ExpenseRepository persistencia de la hoja Gastos.
type ExpenseRepository struct {
	store *Store
}

// NewExpenseRepository construye el repositorio.
func NewExpenseRepository(store *Store) *ExpenseRepository {
	return &ExpenseRepository{store: store}
}

// List devuelve todos los gastos.
func (r *ExpenseRepository) List(ctx context.Context) ([]entity.Expense, error) {
	rows, err := r.store.Reader().Read(ctx, schema.TableExpenses)
	if err != nil {
		return nil, err
	}
	expenses := make([]entity.Expense, 0, len(rows))
	for _, row := range rows {
		expenses = append(expenses, entity.Expense{
			Date:          row.Date("Fecha"),
			Category:      row.Get("Categoria"),
			Recurrence:    row.Get("Tipo_Frecuencia"),
			Vendor:        row.Get("Proveedor"),
			Detail:        row.Get("Detalle"),
			Amount:        row.Decimal("Monto"),
			BillingPeriod: row.Get("Periodo_Facturacion"),
			PaymentMethod: row.Get("Metodo_Pago"),
			Payer:         row.Get("Responsable_Pago"),
			Status:        row.Get("Estado"),
		})
	}
	return expenses, nil
}

// Append agrega gastos (alta de formulario, incluidas las réplicas recurrentes).
func (r *ExpenseRepository) Append(ctx context.Context, expenses ...entity.Expense) error {
	rows := make([]Row, len(expenses))
	for i, g := range expenses {
		rows[i] = expenseToRow(g)
	}
	return r.store.Writer().Append(ctx, schema.TableExpenses, rows)
}

// OverwriteAll reemplaza la hoja completa (ediciones del historial).
func (r *ExpenseRepository) OverwriteAll(ctx context.Context, expenses []entity.Expense) error {
	rows := make([]Row, len(expenses))
	for i, g := range expenses {
		rows[i] = expenseToRow(g)
	}
	return r.store.Writer().Overwrite(ctx, schema.TableExpenses, rows)
}

func expenseToRow(g entity.Expense) Row {
	return Row{
		"Fecha":               FormatDate(g.Date),
		"Categoria":           g.Category,
		"Tipo_Frecuencia":     g.Recurrence,
		"Proveedor":           g.Vendor,
		"Detalle":             g.Detail,
		"Monto":               g.Amount,
		"Periodo_Facturacion": g.BillingPeriod,
		"Metodo_Pago":         g.PaymentMethod,
		"Responsable_Pago":    g.Payer,
		"Estado":              g.Status,
	}
}
