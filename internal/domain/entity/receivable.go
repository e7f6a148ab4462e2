package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultTermDays es el plazo de cobro cuando la venta no trae uno válido.
const DefaultTermDays = 30

// Receivable representa una fila de la hoja Cobros: el dinero adeudado por
// un cliente por una venta agregada (todas las líneas de la venta suman en
// una sola fila).
type Receivable struct {
	SaleDate      time.Time
	Client        string // FK lógica a Clientes por nombre
	TotalAmount   decimal.Decimal
	TermDays      int       // Plazo_Cobro
	DueDate       time.Time // Fecha_Vencimiento = Fecha_Venta + Plazo_Cobro
	Status        string    // Pendiente | Pagado
	PaymentDate   time.Time // Fecha_Cobro_Real, cero si sigue pendiente
	Salesperson   string    // Vendedor
	PaymentMethod string    // Forma_Pago
}

// DaysUntilDue devuelve los días hasta el vencimiento respecto de now
// (negativo si ya venció).
func (r Receivable) DaysUntilDue(now time.Time) int {
	return int(r.DueDate.Sub(now).Hours() / 24)
}

// Overdue indica si el cobro pendiente ya pasó su fecha de vencimiento.
func (r Receivable) Overdue(now time.Time) bool {
	return r.Status == StatusPending && r.DueDate.Before(now)
}
