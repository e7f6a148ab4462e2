// Package partners implementa el registro societario: aportes de capital,
// préstamos y retiros de cada socio, con el saldo neto acumulado.
package partners

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

const dateLayout = "2006-01-02"

// PartnerUseCase registra movimientos societarios sobre la hoja Socios
// (append-only) y calcula los saldos por socio.
type PartnerUseCase struct {
	partners repository.PartnerRepository
	now      func() time.Time
}

// NewPartnerUseCase construye el caso de uso. now en nil usa time.Now.
func NewPartnerUseCase(partners repository.PartnerRepository, now func() time.Time) *PartnerUseCase {
	if now == nil {
		now = time.Now
	}
	return &PartnerUseCase{partners: partners, now: now}
}

// RegisterContribution da de alta un movimiento societario. El monto se
// registra siempre positivo; el signo lo aporta el tipo al calcular saldos.
func (uc *PartnerUseCase) RegisterContribution(ctx context.Context, req dto.RegisterContributionRequest) error {
	partner := strings.TrimSpace(req.Partner)
	if partner == "" {
		return fmt.Errorf("socio vacío: %w", domain.ErrInvalidInput)
	}
	switch req.Type {
	case entity.ContributionCapital, entity.ContributionLoan, entity.ContributionDrawing:
	default:
		return fmt.Errorf("tipo de aporte %q: %w", req.Type, domain.ErrInvalidInput)
	}
	if !req.Amount.GreaterThan(decimal.Zero) {
		return fmt.Errorf("monto debe ser positivo: %w", domain.ErrInvalidInput)
	}
	date := uc.now()
	if strings.TrimSpace(req.Date) != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			return fmt.Errorf("fecha %q: %w", req.Date, domain.ErrInvalidInput)
		}
		date = parsed
	}
	return uc.partners.Append(ctx, entity.PartnerContribution{
		Date:        date,
		Partner:     partner,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: strings.TrimSpace(req.Description),
		ReceiptURL:  strings.TrimSpace(req.ReceiptURL),
	})
}

// Summary devuelve el saldo neto por socio (aportes y préstamos suman,
// retiros restan) ordenado de mayor a menor, más el detalle completo.
func (uc *PartnerUseCase) Summary(ctx context.Context) (*dto.PartnerSummaryDTO, error) {
	contributions, err := uc.partners.List(ctx)
	if err != nil {
		return nil, err
	}

	totals := map[string]decimal.Decimal{}
	out := &dto.PartnerSummaryDTO{}
	for _, c := range contributions {
		delta := c.Amount
		if c.Type == entity.ContributionDrawing {
			delta = delta.Neg()
		}
		totals[c.Partner] = totals[c.Partner].Add(delta)
		out.Contributions = append(out.Contributions, dto.ContributionDTO{
			Date:        c.Date.Format(dateLayout),
			Partner:     c.Partner,
			Type:        c.Type,
			Amount:      c.Amount,
			Description: c.Description,
			ReceiptURL:  c.ReceiptURL,
		})
	}
	for partner, total := range totals {
		out.Totals = append(out.Totals, dto.PartnerTotalDTO{Partner: partner, Total: total})
	}
	sort.Slice(out.Totals, func(a, b int) bool {
		if !out.Totals[a].Total.Equal(out.Totals[b].Total) {
			return out.Totals[a].Total.GreaterThan(out.Totals[b].Total)
		}
		return out.Totals[a].Partner < out.Totals[b].Partner
	})
	return out, nil
}
