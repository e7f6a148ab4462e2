package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csm-sistemas/controlfin-api/internal/domain"
	"github.com/csm-sistemas/controlfin-api/internal/domain/schema"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests Registry
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistry_HojasConocidas(t *testing.T) {
	reg := schema.NewRegistry()

	for _, name := range []string{
		schema.TableClients,
		schema.TableExpenses,
		schema.TableProducts,
		schema.TableMovements,
		schema.TableReceivables,
		schema.TablePartners,
	} {
		tab, err := reg.Lookup(name)
		require.NoError(t, err, "la hoja %s debe estar registrada", name)
		assert.Equal(t, name, tab.Name)
		assert.NotEmpty(t, tab.Columns, "la hoja %s debe declarar columnas", name)
	}
	assert.Len(t, reg.Names(), 6, "deben registrarse exactamente las seis hojas")
}

func TestRegistry_HojaDesconocida(t *testing.T) {
	reg := schema.NewRegistry()

	_, err := reg.Lookup("Inexistente")
	assert.ErrorIs(t, err, domain.ErrSchemaNotFound)
}

func TestRegistry_ColumnasProductosEnOrden(t *testing.T) {
	reg := schema.NewRegistry()

	tab, err := reg.Lookup(schema.TableProducts)
	require.NoError(t, err)

	// El orden de columnas es el contrato con la planilla: el overwrite
	// serializa en este orden exacto.
	assert.Equal(t, []string{
		"Codigo_Big", "Nombre", "Descripcion",
		"Costo_Unitario", "Precio_Venta", "Stock_Actual", "Stock_Minimo",
	}, tab.Columns)
}

func TestRegistry_ColumnasNumericas(t *testing.T) {
	reg := schema.NewRegistry()

	products, err := reg.Lookup(schema.TableProducts)
	require.NoError(t, err)
	assert.True(t, products.IsNumeric("Stock_Actual"))
	assert.True(t, products.IsNumeric("Costo_Unitario"))
	assert.False(t, products.IsNumeric("Codigo_Big"), "el código es texto, nunca numérico")

	receivables, err := reg.Lookup(schema.TableReceivables)
	require.NoError(t, err)
	assert.True(t, receivables.IsNumeric("Monto_Total"))
	// Plazo_Cobro queda como texto: las planillas históricas traen celdas
	// vacías o anotaciones, el parseo tolerante vive en el repositorio.
	assert.False(t, receivables.IsNumeric("Plazo_Cobro"))
}
