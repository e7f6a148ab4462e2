package sheetstore

import (
	"context"

	"github.com/csm-sistemas/controlfin-api/internal/domain/entity"
	"github.com/csm-sistemas/controlfin-api/internal/domain/schema"
)

// ProductRepository persistencia de la hoja Productos. El código de
// estantería derivado queda fuera del mapeo: no forma parte del esquema
// persistido y nunca se escribe de vuelta.
type ProductRepository struct {
	store *Store
}

// NewProductRepository construye el repositorio.
func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

// List devuelve todos los productos.
func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	rows, err := r.store.Reader().Read(ctx, schema.TableProducts)
	if err != nil {
		return nil, err
	}
	products := make([]entity.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, entity.Product{
			Code:         row.Get("Codigo_Big"),
			Name:         row.Get("Nombre"),
			Description:  row.Get("Descripcion"),
			UnitCost:     row.Decimal("Costo_Unitario"),
			SalePrice:    row.Decimal("Precio_Venta"),
			CurrentStock: row.Decimal("Stock_Actual"),
			MinStock:     row.Decimal("Stock_Minimo"),
		})
	}
	return products, nil
}

// OverwriteAll reemplaza la hoja completa: es el único primitivo de
// actualización que ofrece el backend. Cualquier producto ausente del
// conjunto se pierde.
func (r *ProductRepository) OverwriteAll(ctx context.Context, products []entity.Product) error {
	rows := make([]Row, len(products))
	for i, p := range products {
		rows[i] = Row{
			"Codigo_Big":     p.Code,
			"Nombre":         p.Name,
			"Descripcion":    p.Description,
			"Costo_Unitario": p.UnitCost,
			"Precio_Venta":   p.SalePrice,
			"Stock_Actual":   p.CurrentStock,
			"Stock_Minimo":   p.MinStock,
		}
	}
	return r.store.Writer().Overwrite(ctx, schema.TableProducts, rows)
}
