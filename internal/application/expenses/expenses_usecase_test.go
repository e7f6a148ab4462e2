package expenses_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csm-sistemas/controlfin-api/internal/application/dto"
	"github.com/csm-sistemas/controlfin-api/internal/application/expenses"
	"github.com/csm-sistemas/controlfin-api/internal/domain"
	"github.com/csm-sistemas/controlfin-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fakeExpenseRepo struct {
	expenses []entity.Expense
	appends  int
}

func (f *fakeExpenseRepo) List(context.Context) ([]entity.Expense, error) {
	out := make([]entity.Expense, len(f.expenses))
	copy(out, f.expenses)
	return out, nil
}

func (f *fakeExpenseRepo) Append(_ context.Context, expenses ...entity.Expense) error {
	f.expenses = append(f.expenses, expenses...)
	f.appends++
	return nil
}

func (f *fakeExpenseRepo) OverwriteAll(_ context.Context, expenses []entity.Expense) error {
	f.expenses = expenses
	return nil
}

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newExpenseUC() (*expenses.ExpenseUseCase, *fakeExpenseRepo) {
	repo := &fakeExpenseRepo{}
	return expenses.NewExpenseUseCase(repo, func() time.Time { return testNow }), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_GastoSimple(t *testing.T) {
	uc, repo := newExpenseUC()

	count, err := uc.Register(context.Background(), dto.RegisterExpenseRequest{
		Date:     "2025-03-05",
		Category: "Servicios",
		Vendor:   "Edenor",
		Detail:   "Luz local",
		Amount:   decimal.NewFromInt(45000),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.Len(t, repo.expenses, 1)
	e := repo.expenses[0]
	assert.Equal(t, entity.RecurrenceNone, e.Recurrence, "sin frecuencia explícita queda No Recurrente")
	assert.Equal(t, entity.StatusPaid, e.Status, "sin estado explícito queda Pagado")
	assert.Equal(t, "2025-03", e.BillingPeriod, "el período se deriva de la fecha")
}

func TestRegister_RecurrenteGeneraCuotas(t *testing.T) {
	uc, repo := newExpenseUC()

	count, err := uc.Register(context.Background(), dto.RegisterExpenseRequest{
		Date:             "2025-03-05",
		Category:         "Alquiler",
		Recurrence:       entity.RecurrenceRecurring,
		Detail:           "Local centro",
		Amount:           decimal.NewFromInt(300000),
		MonthsRecurrence: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, count, "el gasto original más tres cuotas futuras")
	assert.Equal(t, 1, repo.appends, "todas las cuotas en un único append")

	require.Len(t, repo.expenses, 4)
	assert.Equal(t, "Local centro", repo.expenses[0].Detail, "la fila base no lleva sufijo")

	cuota1 := repo.expenses[1]
	assert.Equal(t, "Local centro (Recurrente 1/3)", cuota1.Detail)
	assert.Equal(t, entity.StatusPending, cuota1.Status, "las cuotas futuras nacen pendientes")
	assert.Equal(t, time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC), cuota1.Date)
	assert.Equal(t, "2025-04", cuota1.BillingPeriod)

	cuota3 := repo.expenses[3]
	assert.Equal(t, "Local centro (Recurrente 3/3)", cuota3.Detail)
	assert.Equal(t, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), cuota3.Date)
}

func TestRegister_CuotaDeFinDeMesSeRecorta(t *testing.T) {
	uc, repo := newExpenseUC()

	// 31 de enero + 1 mes debe caer el 28 de febrero, no el 2/3 de marzo.
	count, err := uc.Register(context.Background(), dto.RegisterExpenseRequest{
		Date:             "2025-01-31",
		Category:         "Seguro",
		Recurrence:       entity.RecurrenceRecurring,
		Amount:           decimal.NewFromInt(50000),
		MonthsRecurrence: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), repo.expenses[1].Date)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), repo.expenses[2].Date,
		"el recorte no es pegajoso: marzo vuelve al día 31")
}

func TestRegister_EntradaInvalida(t *testing.T) {
	uc, repo := newExpenseUC()
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterExpenseRequest{Amount: decimal.NewFromInt(100)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "categoría vacía")

	_, err = uc.Register(ctx, dto.RegisterExpenseRequest{Category: "Servicios"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto cero")

	_, err = uc.Register(ctx, dto.RegisterExpenseRequest{
		Category: "Servicios", Amount: decimal.NewFromInt(100), Recurrence: "Semanal",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "frecuencia desconocida")

	_, err = uc.Register(ctx, dto.RegisterExpenseRequest{
		Category: "Servicios", Amount: decimal.NewFromInt(100), Date: "05/03/2025",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "formato de fecha inválido")

	assert.Empty(t, repo.expenses, "ninguna entrada inválida debe escribir")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Summary
// ──────────────────────────────────────────────────────────────────────────────

func expense(date string, category, recurrence string, amount int64) entity.Expense {
	d, _ := time.Parse("2006-01-02", date)
	return entity.Expense{
		Date:          d,
		Category:      category,
		Recurrence:    recurrence,
		Amount:        decimal.NewFromInt(amount),
		BillingPeriod: d.Format("2006-01"),
		Status:        entity.StatusPaid,
	}
}

func TestSummary_AgregadosDelAnio(t *testing.T) {
	uc, repo := newExpenseUC()
	repo.expenses = []entity.Expense{
		expense("2025-03-01", "Alquiler", entity.RecurrenceRecurring, 300),
		expense("2025-03-15", "Servicios", entity.RecurrenceNone, 100),
		expense("2025-02-01", "Alquiler", entity.RecurrenceRecurring, 300),
		expense("2025-01-20", "Maquinaria", entity.RecurrenceExtraordinary, 900),
		expense("2024-12-31", "Servicios", entity.RecurrenceNone, 9999), // otro año
	}

	summary, err := uc.Summary(context.Background(), 2025, time.March)
	require.NoError(t, err)

	assert.True(t, summary.MonthlyTotal.Equal(decimal.NewFromInt(400)), "solo marzo 2025")
	assert.True(t, summary.AnnualTotal.Equal(decimal.NewFromInt(1600)), "todo 2025")
	assert.True(t, summary.RecurringTotal.Equal(decimal.NewFromInt(600)))
	assert.True(t, summary.NonRecurringTotal.Equal(decimal.NewFromInt(100)))
	assert.True(t, summary.ExtraordinaryTotal.Equal(decimal.NewFromInt(900)))

	require.Len(t, summary.ByPeriod, 3)
	assert.Equal(t, "2025-01", summary.ByPeriod[0].Label, "la evolución va en orden cronológico")
	assert.Equal(t, "2025-03", summary.ByPeriod[2].Label)

	require.NotEmpty(t, summary.ByCategory)
	assert.Equal(t, "Maquinaria", summary.ByCategory[0].Label, "las categorías van por monto descendente")
}

func TestSummary_AnioYMesPorDefecto(t *testing.T) {
	uc, repo := newExpenseUC()
	repo.expenses = []entity.Expense{
		expense("2025-03-01", "Servicios", entity.RecurrenceNone, 100),
	}

	// year y month en cero toman la fecha actual (marzo 2025 en estos tests).
	summary, err := uc.Summary(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.True(t, summary.MonthlyTotal.Equal(decimal.NewFromInt(100)))
}
