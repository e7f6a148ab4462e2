package sheetstore

import (
	"context"

	"github.com/csm-sistemas/controlfin-api/internal/domain/entity"
	"github.com/csm-sistemas/controlfin-api/internal/domain/schema"
)

// PartnerRepository persistencia de la hoja Socios (append-only).
type PartnerRepository struct {
	store *Store
}

// NewPartnerRepository construye el repositorio.
func NewPartnerRepository(store *Store) *PartnerRepository {
	return &PartnerRepository{store: store}
}

// List devuelve todos los aportes registrados.
func (r *PartnerRepository) List(ctx context.Context) ([]entity.PartnerContribution, error) {
	rows, err := r.store.Reader().Read(ctx, schema.TablePartners)
	if err != nil {
		return nil, err
	}
	contributions := make([]entity.PartnerContribution, 0, len(rows))
	for _, row := range rows {
		contributions = append(contributions, entity.PartnerContribution{
			Date:        row.Date("Fecha"),
			Partner:     row.Get("Socio"),
			Type:        row.Get("Tipo_Aporte"),
			Amount:      row.Decimal("Monto"),
			Description: row.Get("Descripcion"),
			ReceiptURL:  row.Get("Comprobante_URL"),
		})
	}
	return contributions, nil
}

// Append agrega aportes al final de la hoja.
func (r *PartnerRepository) Append(ctx context.Context, contributions ...entity.PartnerContribution) error {
	rows := make([]Row, len(contributions))
	for i, a := range contributions {
		rows[i] = Row{
			"Fecha":           FormatDate(a.Date),
			"Socio":           a.Partner,
			"Tipo_Aporte":     a.Type,
			"Monto":           a.Amount,
			"Descripcion":     a.Description,
			"Comprobante_URL": a.ReceiptURL,
		}
	}
	return r.store.Writer().Append(ctx, schema.TablePartners, rows)
}
