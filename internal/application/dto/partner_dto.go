package dto

import "github.com/shopspring/decimal"

// RegisterContributionRequest alta de un aporte, préstamo o retiro de socio.
type RegisterContributionRequest struct {
	Date        string          `json:"fecha"`
	Partner     string          `json:"socio"`
	Type        string          `json:"tipo"` // Aporte Capital | Préstamo | Retiro
	Amount      decimal.Decimal `json:"monto"`
	Description string          `json:"descripcion"`
	ReceiptURL  string          `json:"comprobante_url"`
}

// ContributionDTO fila del registro de movimientos societarios.
type ContributionDTO struct {
	Date        string          `json:"fecha"`
	Partner     string          `json:"socio"`
	Type        string          `json:"tipo"`
	Amount      decimal.Decimal `json:"monto"`
	Description string          `json:"descripcion"`
	ReceiptURL  string          `json:"comprobante_url,omitempty"`
}

// PartnerTotalDTO saldo neto acumulado por socio.
type PartnerTotalDTO struct {
	Partner string          `json:"socio"`
	Total   decimal.Decimal `json:"total"`
}

// PartnerSummaryDTO saldos por socio más el detalle de movimientos.
type PartnerSummaryDTO struct {
	Totals        []PartnerTotalDTO `json:"totales"`
	Contributions []ContributionDTO `json:"movimientos"`
}
