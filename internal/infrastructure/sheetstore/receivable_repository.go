package sheetstore

import (
	"context"
	"strconv"
	"strings"

	"github.com/csm-sistemas/controlfin-api/internal/domain/entity"
	"github.com/csm-sistemas/controlfin-api/internal/domain/schema"
)

// ReceivableRepository persistencia de la hoja Cobros.
type ReceivableRepository struct {
	store *Store
}

// NewReceivableRepository construye el repositorio.
func NewReceivableRepository(store *Store) *ReceivableRepository {
	return &ReceivableRepository{store: store}
}

// List devuelve todos los cobros, en el orden de la hoja.
func (r *ReceivableRepository) List(ctx context.Context) ([]entity.Receivable, error) {
	rows, err := r.store.Reader().Read(ctx, schema.TableReceivables)
	if err != nil {
		return nil, err
	}
	receivables := make([]entity.Receivable, 0, len(rows))
	for _, row := range rows {
		receivables = append(receivables, entity.Receivable{
			SaleDate:      row.Date("Fecha_Venta"),
			Client:        row.Get("Cliente"),
			TotalAmount:   row.Decimal("Monto_Total"),
			TermDays:      parseTermDays(row.Get("Plazo_Cobro")),
			DueDate:       row.Date("Fecha_Vencimiento"),
			Status:        row.Get("Estado"),
			PaymentDate:   row.Date("Fecha_Cobro_Real"),
			Salesperson:   row.Get("Vendedor"),
			PaymentMethod: row.Get("Forma_Pago"),
		})
	}
	return receivables, nil
}

// Append agrega cobros al final de la hoja (alta de ventas).
func (r *ReceivableRepository) Append(ctx context.Context, receivables ...entity.Receivable) error {
	rows := make([]Row, len(receivables))
	for i, c := range receivables {
		rows[i] = receivableToRow(c)
	}
	return r.store.Writer().Append(ctx, schema.TableReceivables, rows)
}

// OverwriteAll reemplaza la hoja completa (marcar pagos, ediciones de historial).
func (r *ReceivableRepository) OverwriteAll(ctx context.Context, receivables []entity.Receivable) error {
	rows := make([]Row, len(receivables))
	for i, c := range receivables {
		rows[i] = receivableToRow(c)
	}
	return r.store.Writer().Overwrite(ctx, schema.TableReceivables, rows)
}

func receivableToRow(c entity.Receivable) Row {
	return Row{
		"Fecha_Venta":       FormatDate(c.SaleDate),
		"Cliente":           c.Client,
		"Monto_Total":       c.TotalAmount,
		"Plazo_Cobro":       strconv.Itoa(c.TermDays),
		"Fecha_Vencimiento": FormatDate(c.DueDate),
		"Estado":            c.Status,
		"Fecha_Cobro_Real":  FormatDate(c.PaymentDate),
		"Vendedor":          c.Salesperson,
		"Forma_Pago":        c.PaymentMethod,
	}
}

// parseTermDays parsea Plazo_Cobro con tolerancia: ausente o no parseable
// vale el plazo por defecto de 30 días.
func parseTermDays(raw string) int {
	days, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || days < 0 {
		return entity.DefaultTermDays
	}
	return days
}
