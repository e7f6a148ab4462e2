package partners_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csm-sistemas/controlfin-api/internal/application/dto"
	"github.com/csm-sistemas/controlfin-api/internal/application/partners"
	"github.com/csm-sistemas/controlfin-api/internal/domain"
	"github.com/csm-sistemas/controlfin-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fakePartnerRepo struct {
	contributions []entity.PartnerContribution
}

func (f *fakePartnerRepo) List(context.Context) ([]entity.PartnerContribution, error) {
	return f.contributions, nil
}

func (f *fakePartnerRepo) Append(_ context.Context, contributions ...entity.PartnerContribution) error {
	f.contributions = append(f.contributions, contributions...)
	return nil
}

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newPartnerUC() (*partners.PartnerUseCase, *fakePartnerRepo) {
	repo := &fakePartnerRepo{}
	return partners.NewPartnerUseCase(repo, func() time.Time { return testNow }), repo
}

func contribution(partner, typ string, amount int64) entity.PartnerContribution {
	return entity.PartnerContribution{
		Date:    testNow,
		Partner: partner,
		Type:    typ,
		Amount:  decimal.NewFromInt(amount),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterContribution_Alta(t *testing.T) {
	uc, repo := newPartnerUC()

	err := uc.RegisterContribution(context.Background(), dto.RegisterContributionRequest{
		Date:        "2025-03-01",
		Partner:     "Marcos",
		Type:        entity.ContributionCapital,
		Amount:      decimal.NewFromInt(100000),
		Description: "Aporte inicial",
	})
	require.NoError(t, err)

	require.Len(t, repo.contributions, 1)
	assert.Equal(t, "Marcos", repo.contributions[0].Partner)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), repo.contributions[0].Date)
}

func TestRegisterContribution_FechaVaciaUsaHoy(t *testing.T) {
	uc, repo := newPartnerUC()

	err := uc.RegisterContribution(context.Background(), dto.RegisterContributionRequest{
		Partner: "Marcos",
		Type:    entity.ContributionLoan,
		Amount:  decimal.NewFromInt(5000),
	})
	require.NoError(t, err)
	assert.Equal(t, testNow, repo.contributions[0].Date)
}

func TestRegisterContribution_EntradaInvalida(t *testing.T) {
	uc, repo := newPartnerUC()
	ctx := context.Background()

	err := uc.RegisterContribution(ctx, dto.RegisterContributionRequest{
		Type: entity.ContributionCapital, Amount: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "socio vacío")

	err = uc.RegisterContribution(ctx, dto.RegisterContributionRequest{
		Partner: "Marcos", Type: "Donación", Amount: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo desconocido")

	err = uc.RegisterContribution(ctx, dto.RegisterContributionRequest{
		Partner: "Marcos", Type: entity.ContributionCapital,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto cero")

	assert.Empty(t, repo.contributions)
}

func TestSummary_SaldosPorSocio(t *testing.T) {
	uc, repo := newPartnerUC()
	repo.contributions = []entity.PartnerContribution{
		contribution("Marcos", entity.ContributionCapital, 100000),
		contribution("Marcos", entity.ContributionDrawing, 30000),
		contribution("Juli", entity.ContributionLoan, 50000),
		contribution("Juli", entity.ContributionCapital, 50000),
	}

	summary, err := uc.Summary(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.Totals, 2)
	// Juli: 50000+50000 = 100000; Marcos: 100000-30000 = 70000.
	assert.Equal(t, "Juli", summary.Totals[0].Partner, "ordenado por saldo descendente")
	assert.True(t, summary.Totals[0].Total.Equal(decimal.NewFromInt(100000)))
	assert.Equal(t, "Marcos", summary.Totals[1].Partner)
	assert.True(t, summary.Totals[1].Total.Equal(decimal.NewFromInt(70000)),
		"el retiro resta del saldo")

	assert.Len(t, summary.Contributions, 4, "el detalle completo acompaña los saldos")
}
