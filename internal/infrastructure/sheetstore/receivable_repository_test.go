package sheetstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csm-sistemas/controlfin-api/internal/domain/entity"
	"github.com/csm-sistemas/controlfin-api/internal/domain/schema"
	"github.com/csm-sistemas/controlfin-api/internal/infrastructure/sheetstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests ReceivableRepository
// ──────────────────────────────────────────────────────────────────────────────

func TestReceivableRepository_PlazoCobroTolerante(t *testing.T) {
	remote := newFakeRemote()
	remote.data[schema.TableReceivables] = []map[string]string{
		{"Cliente": "Distr. Norte", "Plazo_Cobro": "45", "Estado": "Pendiente"},
		{"Cliente": "Distr. Sur", "Plazo_Cobro": "", "Estado": "Pendiente"},
		{"Cliente": "Distr. Este", "Plazo_Cobro": "a convenir", "Estado": "Pendiente"},
		{"Cliente": "Distr. Oeste", "Plazo_Cobro": "-5", "Estado": "Pendiente"},
	}
	store, _ := newTestStore(remote, newFakeClock())
	repo := sheetstore.NewReceivableRepository(store)

	receivables, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, receivables, 4)

	assert.Equal(t, 45, receivables[0].TermDays, "un plazo numérico se respeta")
	assert.Equal(t, entity.DefaultTermDays, receivables[1].TermDays, "celda vacía usa el plazo por defecto")
	assert.Equal(t, entity.DefaultTermDays, receivables[2].TermDays, "anotación libre usa el plazo por defecto")
	assert.Equal(t, entity.DefaultTermDays, receivables[3].TermDays, "plazo negativo usa el plazo por defecto")
}

func TestReceivableRepository_PendienteSerializaFechaCobroVacia(t *testing.T) {
	remote := newFakeRemote()
	store, _ := newTestStore(remote, newFakeClock())
	repo := sheetstore.NewReceivableRepository(store)

	sale := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	err := repo.Append(context.Background(), entity.Receivable{
		SaleDate: sale,
		Client:   "Distr. Norte",
		TermDays: 30,
		DueDate:  sale.AddDate(0, 0, 30),
		Status:   entity.StatusPending,
		// PaymentDate en cero: todavía no se cobró
	})
	require.NoError(t, err)

	appended := remote.appends[schema.TableReceivables]
	require.Len(t, appended, 1)
	// Orden del esquema: Fecha_Venta, Cliente, Monto_Total, Plazo_Cobro,
	// Fecha_Vencimiento, Estado, Fecha_Cobro_Real, Vendedor, Forma_Pago.
	row := appended[0]
	assert.Equal(t, "2025-03-10", row[0])
	assert.Equal(t, "2025-04-09", row[4])
	assert.Equal(t, "Pendiente", row[5])
	assert.Equal(t, "", row[6], "la fecha de cobro de un pendiente es celda vacía")
}
