package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de frecuencia de un gasto (valores literales de la hoja Gastos).
const (
	RecurrenceNone          = "No Recurrente"
	RecurrenceRecurring     = "Recurrente"
	RecurrenceExtraordinary = "Extraordinario"
)

// Estados de pago compartidos por Gastos y Cobros.
const (
	StatusPaid    = "Pagado"
	StatusPending = "Pendiente"
)

// Expense representa una fila de la hoja Gastos.
type Expense struct {
	Date          time.Time
	Category      string
	Recurrence    string // No Recurrente, Recurrente, Extraordinario
	Vendor        string // Proveedor
	Detail        string
	Amount        decimal.Decimal
	BillingPeriod string // Periodo_Facturacion, derivado como año-mes de Fecha
	PaymentMethod string
	Payer         string // Responsable_Pago
	Status        string // Pagado | Pendiente
}
