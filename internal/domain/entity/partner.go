package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de aporte de socios (hoja Socios).
const (
	ContributionCapital = "Aporte Capital"
	ContributionLoan    = "Préstamo"
	ContributionDrawing = "Retiro"
)

// PartnerContribution representa una fila del registro append-only de Socios:
// aportes de capital, préstamos y retiros de cada socio.
type PartnerContribution struct {
	Date        time.Time
	Partner     string // Socio
	Type        string // Aporte Capital | Préstamo | Retiro
	Amount      decimal.Decimal
	Description string
	ReceiptURL  string // Comprobante_URL
}
