package sheetstore

import (
	"context"

	"github.com/csm-sistemas/controlfin-api/internal/domain/entity"
	"github.com/csm-sistemas/controlfin-api/internal/domain/schema"
)

// MovementRepository persistencia de la hoja Movimientos (append-only).
type MovementRepository struct {
	store *Store
}

// NewMovementRepository construye el repositorio.
func NewMovementRepository(store *Store) *MovementRepository {
	return &MovementRepository{store: store}
}

// List devuelve el historial completo de movimientos.
func (r *MovementRepository) List(ctx context.Context) ([]entity.Movement, error) {
	rows, err := r.store.Reader().Read(ctx, schema.TableMovements)
	if err != nil {
		return nil, err
	}
	movements := make([]entity.Movement, 0, len(rows))
	for _, row := range rows {
		movements = append(movements, entity.Movement{
			Date:        row.Date("Fecha"),
			Type:        row.Get("Tipo"),
			ProductCode: row.Get("Codigo_Big"),
			Quantity:    row.Decimal("Cantidad"),
			DocRef:      row.Get("Documento_Ref"),
		})
	}
	return movements, nil
}

// Append agrega movimientos en un solo viaje al backend.
func (r *MovementRepository) Append(ctx context.Context, movements ...entity.Movement) error {
	rows := make([]Row, len(movements))
	for i, m := range movements {
		rows[i] = Row{
			"Fecha":         FormatDate(m.Date),
			"Tipo":          m.Type,
			"Codigo_Big":    m.ProductCode,
			"Cantidad":      m.Quantity,
			"Documento_Ref": m.DocRef,
		}
	}
	return r.store.Writer().Append(ctx, schema.TableMovements, rows)
}
