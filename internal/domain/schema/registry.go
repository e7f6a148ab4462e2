// Package schema declara el esquema lógico de cada hoja de la planilla:
// lista ordenada de columnas y subconjunto de columnas numéricas.
//
// Los nombres de hoja y de columna son el contrato externo con la planilla
// de Google Sheets; se mantienen en español tal como existen en producción.
package schema

import (
	"github.com/csm-sistemas/controlfin-api/internal/domain"
)

// Nombres de hoja.
const (
	TableClients     = "Clientes"
	TableExpenses    = "Gastos"
	TableProducts    = "Productos"
	TableMovements   = "Movimientos"
	TableReceivables = "Cobros"
	TablePartners    = "Socios"
)

// Table es el esquema de una hoja: columnas en orden y cuáles son numéricas.
type Table struct {
	Name    string
	Columns []string
	numeric map[string]bool
}

// IsNumeric indica si la columna se trata como decimal al normalizar.
func (t Table) IsNumeric(col string) bool { return t.numeric[col] }

// Registry resuelve esquemas por nombre de hoja. Es configuración pura:
// no hay algoritmo más allá del lookup.
type Registry struct {
	tables map[string]Table
}

func newTable(name string, columns []string, numeric ...string) Table {
	set := make(map[string]bool, len(numeric))
	for _, c := range numeric {
		set[c] = true
	}
	return Table{Name: name, Columns: columns, numeric: set}
}

// NewRegistry construye el registro con las hojas del sistema.
func NewRegistry() *Registry {
	tables := []Table{
		newTable(TableClients,
			[]string{"Nombre", "CUIT", "Telefono", "Email", "Direccion", "Localidad", "Notas"}),
		newTable(TableExpenses,
			[]string{"Fecha", "Categoria", "Tipo_Frecuencia", "Proveedor", "Detalle", "Monto", "Periodo_Facturacion", "Metodo_Pago", "Responsable_Pago", "Estado"},
			"Monto"),
		newTable(TableProducts,
			[]string{"Codigo_Big", "Nombre", "Descripcion", "Costo_Unitario", "Precio_Venta", "Stock_Actual", "Stock_Minimo"},
			"Costo_Unitario", "Precio_Venta", "Stock_Actual", "Stock_Minimo"),
		newTable(TableMovements,
			[]string{"Fecha", "Tipo", "Codigo_Big", "Cantidad", "Documento_Ref"},
			"Cantidad"),
		newTable(TableReceivables,
			[]string{"Fecha_Venta", "Cliente", "Monto_Total", "Plazo_Cobro", "Fecha_Vencimiento", "Estado", "Fecha_Cobro_Real", "Vendedor", "Forma_Pago"},
			"Monto_Total"),
		newTable(TablePartners,
			[]string{"Fecha", "Socio", "Tipo_Aporte", "Monto", "Descripcion", "Comprobante_URL"},
			"Monto"),
	}

	m := make(map[string]Table, len(tables))
	for _, t := range tables {
		m[t.Name] = t
	}
	return &Registry{tables: m}
}

// Lookup devuelve el esquema de la hoja o domain.ErrSchemaNotFound.
func (r *Registry) Lookup(name string) (Table, error) {
	t, ok := r.tables[name]
	if !ok {
		return Table{}, domain.ErrSchemaNotFound
	}
	return t, nil
}

// Names devuelve los nombres de hoja registrados (orden no garantizado).
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tables))
	for n := range r.tables {
		names = append(names, n)
	}
	return names
}
