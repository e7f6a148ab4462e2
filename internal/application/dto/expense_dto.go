package dto

import "github.com/shopspring/decimal"

// RegisterExpenseRequest alta de un gasto. Si el tipo de frecuencia es
// Recurrente, MonthsRecurrence indica cuántos meses extra se replica el
// gasto además del actual.
type RegisterExpenseRequest struct {
	Date             string          `json:"fecha"` // YYYY-MM-DD
	Category         string          `json:"categoria"`
	Recurrence       string          `json:"tipo_frecuencia"`
	Vendor           string          `json:"proveedor"`
	Detail           string          `json:"detalle"`
	Amount           decimal.Decimal `json:"monto"`
	PaymentMethod    string          `json:"metodo_pago"`
	Payer            string          `json:"responsable_pago"`
	Status           string          `json:"estado"`
	MonthsRecurrence int             `json:"meses_recurrencia"`
}

// AmountByLabel total agrupado (categoría, período o tipo de frecuencia).
type AmountByLabel struct {
	Label  string          `json:"etiqueta"`
	Amount decimal.Decimal `json:"monto"`
}

// ExpenseSummaryDTO respuesta de GET /api/expenses/summary.
type ExpenseSummaryDTO struct {
	MonthlyTotal       decimal.Decimal `json:"gasto_mensual"`
	AnnualTotal        decimal.Decimal `json:"gasto_anual"`
	RecurringTotal     decimal.Decimal `json:"recurrentes"`
	NonRecurringTotal  decimal.Decimal `json:"no_recurrentes"`
	ExtraordinaryTotal decimal.Decimal `json:"extraordinarios"`
	ByPeriod           []AmountByLabel `json:"evolucion_mensual"`
	ByCategory         []AmountByLabel `json:"por_categoria"`
}
