// Package expenses implementa el registro de gastos con recurrencia mensual
// y el resumen para el tablero de gastos.
package expenses

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/csm-sistemas/controlfin-api/internal/application/dto"
	"github.com/csm-sistemas/controlfin-api/internal/domain"
	"github.com/csm-sistemas/controlfin-api/internal/domain/entity"
	"github.com/csm-sistemas/controlfin-api/internal/domain/repository"
)

const (
	dateLayout   = "2006-01-02"
	periodLayout = "2006-01"
)

// ExpenseUseCase registra gastos y calcula los agregados del tablero.
type ExpenseUseCase struct {
	expenses repository.ExpenseRepository
	now      func() time.Time
}

// NewExpenseUseCase construye el caso de uso. now en nil usa time.Now.
func NewExpenseUseCase(expenses repository.ExpenseRepository, now func() time.Time) *ExpenseUseCase {
	if now == nil {
		now = time.Now
	}
	return &ExpenseUseCase{expenses: expenses, now: now}
}

// addMonthsClamped suma meses manteniendo el día, recortado al último día
// del mes destino (31 de enero + 1 mes = 28/29 de febrero, no 2/3 de marzo).
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := first.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}

// Register da de alta un gasto. Si el tipo de frecuencia es Recurrente y
// MonthsRecurrence = N > 0, además de la fila base genera N cuotas en los
// meses siguientes, en estado Pendiente y con el detalle numerado 1/N..N/N,
// todas en un solo append. Devuelve la cantidad de filas escritas.
func (uc *ExpenseUseCase) Register(ctx context.Context, req dto.RegisterExpenseRequest) (int, error) {
	if strings.TrimSpace(req.Category) == "" {
		return 0, fmt.Errorf("categoría vacía: %w", domain.ErrInvalidInput)
	}
	if !req.Amount.GreaterThan(decimal.Zero) {
		return 0, fmt.Errorf("monto debe ser positivo: %w", domain.ErrInvalidInput)
	}
	date := uc.now()
	if strings.TrimSpace(req.Date) != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			return 0, fmt.Errorf("fecha %q: %w", req.Date, domain.ErrInvalidInput)
		}
		date = parsed
	}
	recurrence := strings.TrimSpace(req.Recurrence)
	if recurrence == "" {
		recurrence = entity.RecurrenceNone
	}
	switch recurrence {
	case entity.RecurrenceNone, entity.RecurrenceRecurring, entity.RecurrenceExtraordinary:
	default:
		return 0, fmt.Errorf("tipo_frecuencia %q: %w", recurrence, domain.ErrInvalidInput)
	}
	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = entity.StatusPaid
	}

	base := entity.Expense{
		Date:          date,
		Category:      strings.TrimSpace(req.Category),
		Recurrence:    recurrence,
		Vendor:        strings.TrimSpace(req.Vendor),
		Detail:        strings.TrimSpace(req.Detail),
		Amount:        req.Amount,
		BillingPeriod: date.Format(periodLayout),
		PaymentMethod: strings.TrimSpace(req.PaymentMethod),
		Payer:         strings.TrimSpace(req.Payer),
		Status:        status,
	}

	// MonthsRecurrence = N genera N cuotas futuras además de la fila base.
	batch := []entity.Expense{base}
	if recurrence == entity.RecurrenceRecurring && req.MonthsRecurrence > 0 {
		for i := 1; i <= req.MonthsRecurrence; i++ {
			copyDate := addMonthsClamped(date, i)
			cuota := base
			cuota.Date = copyDate
			cuota.BillingPeriod = copyDate.Format(periodLayout)
			cuota.Status = entity.StatusPending
			cuota.Detail = fmt.Sprintf("%s (Recurrente %d/%d)", base.Detail, i, req.MonthsRecurrence)
			batch = append(batch, cuota)
		}
	}

	if err := uc.expenses.Append(ctx, batch...); err != nil {
		return 0, err
	}
	return len(batch), nil
}

// List devuelve todos los gastos de la hoja.
func (uc *ExpenseUseCase) List(ctx context.Context) ([]entity.Expense, error) {
	return uc.expenses.List(ctx)
}

// Summary calcula los agregados del año indicado: total anual, total del
// mes, totales por tipo de frecuencia, evolución por período y desglose por
// categoría. year o month en cero toman el valor de la fecha actual.
func (uc *ExpenseUseCase) Summary(ctx context.Context, year int, month time.Month) (*dto.ExpenseSummaryDTO, error) {
	now := uc.now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}
	all, err := uc.expenses.List(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.ExpenseSummaryDTO{}
	byPeriod := map[string]decimal.Decimal{}
	byCategory := map[string]decimal.Decimal{}
	for _, e := range all {
		if e.Date.Year() != year {
			continue
		}
		out.AnnualTotal = out.AnnualTotal.Add(e.Amount)
		if e.Date.Month() == month {
			out.MonthlyTotal = out.MonthlyTotal.Add(e.Amount)
		}
		switch e.Recurrence {
		case entity.RecurrenceRecurring:
			out.RecurringTotal = out.RecurringTotal.Add(e.Amount)
		case entity.RecurrenceExtraordinary:
			out.ExtraordinaryTotal = out.ExtraordinaryTotal.Add(e.Amount)
		default:
			out.NonRecurringTotal = out.NonRecurringTotal.Add(e.Amount)
		}
		period := e.BillingPeriod
		if period == "" {
			period = e.Date.Format(periodLayout)
		}
		byPeriod[period] = byPeriod[period].Add(e.Amount)
		category := e.Category
		if category == "" {
			category = "Sin categoría"
		}
		byCategory[category] = byCategory[category].Add(e.Amount)
	}

	out.ByPeriod = sortedByLabel(byPeriod)
	out.ByCategory = sortedByAmount(byCategory)
	return out, nil
}

// sortedByLabel ordena por etiqueta ascendente (períodos año-mes).
func sortedByLabel(m map[string]decimal.Decimal) []dto.AmountByLabel {
	out := make([]dto.AmountByLabel, 0, len(m))
	for label, amount := range m {
		out = append(out, dto.AmountByLabel{Label: label, Amount: amount})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Label < out[b].Label })
	return out
}

// sortedByAmount ordena por monto descendente, etiqueta como desempate.
func sortedByAmount(m map[string]decimal.Decimal) []dto.AmountByLabel {
	out := make([]dto.AmountByLabel, 0, len(m))
	for label, amount := range m {
		out = append(out, dto.AmountByLabel{Label: label, Amount: amount})
	}
	sort.Slice(out, func(a, b int) bool {
		if !out[a].Amount.Equal(out[b].Amount) {
			return out[a].Amount.GreaterThan(out[b].Amount)
		}
		return out[a].Label < out[b].Label
	})
	return out
}
