package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csm-sistemas/controlfin-api/internal/application/dto"
	"github.com/csm-sistemas/controlfin-api/internal/application/sales"
	"github.com/csm-sistemas/controlfin-api/internal/domain"
	"github.com/csm-sistemas/controlfin-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products   []entity.Product
	overwrites int
}

func (f *fakeProductRepo) List(context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, len(f.products))
	copy(out, f.products)
	return out, nil
}

func (f *fakeProductRepo) OverwriteAll(_ context.Context, products []entity.Product) error {
	f.products = products
	f.overwrites++
	return nil
}

type fakeMovementRepo struct {
	movements []entity.Movement
	appends   int
}

func (f *fakeMovementRepo) List(context.Context) ([]entity.Movement, error) {
	return f.movements, nil
}

func (f *fakeMovementRepo) Append(_ context.Context, movements ...entity.Movement) error {
	f.movements = append(f.movements, movements...)
	f.appends++
	return nil
}

type fakeReceivableRepo struct {
	receivables []entity.Receivable
	appends     int
	overwrites  int
}

func (f *fakeReceivableRepo) List(context.Context) ([]entity.Receivable, error) {
	out := make([]entity.Receivable, len(f.receivables))
	copy(out, f.receivables)
	return out, nil
}

func (f *fakeReceivableRepo) Append(_ context.Context, receivables ...entity.Receivable) error {
	f.receivables = append(f.receivables, receivables...)
	f.appends++
	return nil
}

func (f *fakeReceivableRepo) OverwriteAll(_ context.Context, receivables []entity.Receivable) error {
	f.receivables = receivables
	f.overwrites++
	return nil
}

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newSaleUC(products ...entity.Product) (*sales.SaleTransaction, *fakeProductRepo, *fakeMovementRepo, *fakeReceivableRepo) {
	productRepo := &fakeProductRepo{products: products}
	movementRepo := &fakeMovementRepo{}
	receivableRepo := &fakeReceivableRepo{}
	uc := sales.NewSaleTransaction(productRepo, movementRepo, receivableRepo, func() time.Time { return testNow })
	return uc, productRepo, movementRepo, receivableRepo
}

func product(code string, stock int64, price int64) entity.Product {
	return entity.Product{
		Code:         code,
		Name:         "Producto " + code,
		SalePrice:    decimal.NewFromInt(price),
		CurrentStock: decimal.NewFromInt(stock),
		MinStock:     decimal.NewFromInt(1),
	}
}

func line(client, code string, qty, total int64) dto.SaleLineRequest {
	return dto.SaleLineRequest{
		Client:      client,
		ProductCode: code,
		Quantity:    decimal.NewFromInt(qty),
		LineTotal:   decimal.NewFromInt(total),
		TermDays:    45,
		Salesperson: "Caro",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RegisterSale
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterSale_MultilineaGeneraUnSoloCobro(t *testing.T) {
	uc, productRepo, movementRepo, receivableRepo := newSaleUC(
		product("BG100", 10, 150),
		product("BG200", 8, 200),
	)

	result, err := uc.RegisterSale(context.Background(), dto.RegisterSaleRequest{
		Lines: []dto.SaleLineRequest{
			line("Distribuidora Norte", "BG100", 4, 600),
			line("Distribuidora Norte", "BG200", 2, 400),
		},
	})
	require.NoError(t, err)

	// Un único cobro agregado por el total de la venta.
	require.Len(t, receivableRepo.receivables, 1)
	cobro := receivableRepo.receivables[0]
	assert.True(t, cobro.TotalAmount.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, "Distribuidora Norte", cobro.Client)
	assert.Equal(t, entity.StatusPending, cobro.Status)
	assert.Equal(t, 45, cobro.TermDays)
	assert.Equal(t, testNow.AddDate(0, 0, 45), cobro.DueDate)
	assert.Equal(t, "Caro", cobro.Salesperson)

	// Stock descontado por línea, en una sola reescritura.
	assert.True(t, productRepo.products[0].CurrentStock.Equal(decimal.NewFromInt(6)))
	assert.True(t, productRepo.products[1].CurrentStock.Equal(decimal.NewFromInt(6)))
	assert.Equal(t, 1, productRepo.overwrites)
	assert.Equal(t, 1, movementRepo.appends, "todos los movimientos en un solo append")
	assert.Equal(t, 1, receivableRepo.appends)

	assert.Equal(t, 2, result.MovementsMade)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, "2025-04-24", result.DueDate)
}

func TestRegisterSale_CodigoInexistenteEsAdvertencia(t *testing.T) {
	uc, _, movementRepo, receivableRepo := newSaleUC(product("BG100", 10, 150))

	result, err := uc.RegisterSale(context.Background(), dto.RegisterSaleRequest{
		Lines: []dto.SaleLineRequest{
			line("Distribuidora Norte", "BG100", 4, 600),
			line("Distribuidora Norte", "NOEXISTE", 1, 500),
		},
	})
	require.NoError(t, err)

	// La línea inválida no aborta la venta ni participa del cobro.
	assert.Len(t, result.Warnings, 1)
	assert.True(t, result.TotalAmount.Equal(decimal.NewFromInt(600)),
		"el cobro suma solo las líneas con producto válido")
	require.Len(t, receivableRepo.receivables, 1)
	assert.True(t, receivableRepo.receivables[0].TotalAmount.Equal(decimal.NewFromInt(600)))
	assert.Len(t, movementRepo.movements, 1)
}

func TestRegisterSale_SinLineasValidasNoEscribe(t *testing.T) {
	uc, productRepo, movementRepo, receivableRepo := newSaleUC(product("BG100", 10, 150))

	_, err := uc.RegisterSale(context.Background(), dto.RegisterSaleRequest{
		Lines: []dto.SaleLineRequest{line("Distribuidora Norte", "NOEXISTE", 1, 500)},
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Equal(t, 0, productRepo.overwrites)
	assert.Equal(t, 0, movementRepo.appends)
	assert.Equal(t, 0, receivableRepo.appends)
}

func TestRegisterSale_PlazoPorDefecto(t *testing.T) {
	uc, _, _, receivableRepo := newSaleUC(product("BG100", 10, 150))

	l := line("Distribuidora Norte", "BG100", 1, 150)
	l.TermDays = 0
	_, err := uc.RegisterSale(context.Background(), dto.RegisterSaleRequest{
		Lines: []dto.SaleLineRequest{l},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultTermDays, receivableRepo.receivables[0].TermDays)
}

func TestRegisterSale_EntradaInvalida(t *testing.T) {
	uc, _, _, _ := newSaleUC(product("BG100", 10, 150))
	ctx := context.Background()

	_, err := uc.RegisterSale(ctx, dto.RegisterSaleRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "venta sin líneas")

	l := line("", "BG100", 1, 150)
	_, err = uc.RegisterSale(ctx, dto.RegisterSaleRequest{Lines: []dto.SaleLineRequest{l}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cliente vacío")

	l = line("Distribuidora Norte", "BG100", 0, 150)
	_, err = uc.RegisterSale(ctx, dto.RegisterSaleRequest{Lines: []dto.SaleLineRequest{l}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests cobranzas
// ──────────────────────────────────────────────────────────────────────────────

func pendingReceivable(client string, due time.Time) entity.Receivable {
	return entity.Receivable{
		SaleDate:    due.AddDate(0, 0, -30),
		Client:      client,
		TotalAmount: decimal.NewFromInt(1000),
		TermDays:    30,
		DueDate:     due,
		Status:      entity.StatusPending,
	}
}

func TestPendingCollections_OrdenYUrgencia(t *testing.T) {
	uc, _, _, receivableRepo := newSaleUC()
	receivableRepo.receivables = []entity.Receivable{
		pendingReceivable("Al Día", testNow.AddDate(0, 0, 20)),
		pendingReceivable("Vencido", testNow.AddDate(0, 0, -3)),
		{Client: "Pagado", Status: entity.StatusPaid, DueDate: testNow},
		pendingReceivable("Por Vencer", testNow.AddDate(0, 0, 5)),
	}

	cards, err := uc.PendingCollections(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 3, "los pagados quedan fuera del panel")

	assert.Equal(t, "Vencido", cards[0].Client)
	assert.Equal(t, "vencido", cards[0].Urgency)
	assert.Equal(t, "Por Vencer", cards[1].Client)
	assert.Equal(t, "por_vencer", cards[1].Urgency)
	assert.Equal(t, "Al Día", cards[2].Client)
	assert.Equal(t, "al_dia", cards[2].Urgency)

	assert.Equal(t, 1, cards[0].Index, "el índice referencia la fila original de la hoja")
	assert.Equal(t, 3, cards[1].Index)
}

func TestMarkPaid_RegistraElPago(t *testing.T) {
	uc, _, _, receivableRepo := newSaleUC()
	receivableRepo.receivables = []entity.Receivable{
		pendingReceivable("Distribuidora Norte", testNow.AddDate(0, 0, 5)),
	}

	err := uc.MarkPaid(context.Background(), 0, dto.MarkPaidRequest{
		PaymentDate:   "2025-03-09",
		PaymentMethod: "Transferencia",
	})
	require.NoError(t, err)

	paid := receivableRepo.receivables[0]
	assert.Equal(t, entity.StatusPaid, paid.Status)
	assert.Equal(t, "Transferencia", paid.PaymentMethod)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), paid.PaymentDate)
	assert.Equal(t, 1, receivableRepo.overwrites, "marcar pago reescribe la hoja completa")
}

func TestMarkPaid_FechaVaciaUsaHoy(t *testing.T) {
	uc, _, _, receivableRepo := newSaleUC()
	receivableRepo.receivables = []entity.Receivable{
		pendingReceivable("Distribuidora Norte", testNow.AddDate(0, 0, 5)),
	}

	err := uc.MarkPaid(context.Background(), 0, dto.MarkPaidRequest{PaymentMethod: "Efectivo"})
	require.NoError(t, err)
	assert.Equal(t, testNow, receivableRepo.receivables[0].PaymentDate)
}

func TestMarkPaid_IndiceInvalido(t *testing.T) {
	uc, _, _, receivableRepo := newSaleUC()
	receivableRepo.receivables = []entity.Receivable{
		pendingReceivable("Distribuidora Norte", testNow),
	}
	ctx := context.Background()

	err := uc.MarkPaid(ctx, 5, dto.MarkPaidRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.MarkPaid(ctx, -1, dto.MarkPaidRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMarkPaid_YaPagado(t *testing.T) {
	uc, _, _, receivableRepo := newSaleUC()
	paid := pendingReceivable("Distribuidora Norte", testNow)
	paid.Status = entity.StatusPaid
	receivableRepo.receivables = []entity.Receivable{paid}

	err := uc.MarkPaid(context.Background(), 0, dto.MarkPaidRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, receivableRepo.overwrites)
}
