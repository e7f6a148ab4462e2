// Package sales implementa las ventas multi-línea, el panel de cobranzas y
// la carga masiva de ventas.
package sales

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

// dateLayout formato de fecha de la planilla.
const dateLayout = "2006-01-02"

// SaleTransaction registra ventas de una o varias líneas contra un mismo
// cliente. Sin importar la cantidad de líneas, una venta son a lo sumo tres
// escrituras: una reescritura de Productos, un append de Movimientos y un
// append de Cobros con el monto agregado.
type SaleTransaction struct {
	products    repository.ProductRepository
	movements   repository.MovementRepository
	receivables repository.ReceivableRepository
	now         func() time.Time
}

// NewSaleTransaction construye el caso de uso. now en nil usa time.Now.
func NewSaleTransaction(
	products repository.ProductRepository,
	movements repository.MovementRepository,
	receivables repository.ReceivableRepository,
	now func() time.Time,
) *SaleTransaction {
	if now == nil {
		now = time.Now
	}
	return &SaleTransaction{
		products:    products,
		movements:   movements,
		receivables: receivables,
		now:         now,
	}
}

// RegisterSale procesa las líneas de la venta. Las líneas con código de
// producto inexistente se reportan como advertencias y no participan del
// monto del cobro; si ninguna línea es válida no se escribe nada. Cliente,
// vendedor y plazo se toman de la primera línea.
func (uc *SaleTransaction) RegisterSale(ctx context.Context, req dto.RegisterSaleRequest) (*dto.SaleResultDTO, error) {
	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("venta sin líneas: %w", domain.ErrInvalidInput)
	}
	client := strings.TrimSpace(req.Lines[0].Client)
	if client == "" {
		return nil, fmt.Errorf("cliente vacío: %w", domain.ErrInvalidInput)
	}
	for i, line := range req.Lines {
		if !line.Quantity.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("línea %d: cantidad debe ser positiva: %w", i+1, domain.ErrInvalidInput)
		}
		if line.LineTotal.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("línea %d: precio negativo: %w", i+1, domain.ErrInvalidInput)
		}
	}

	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	byCode := make(map[string]int, len(products))
	for i := range products {
		byCode[strings.TrimSpace(products[i].Code)] = i
	}

	now := uc.now()
	docRef := fmt.Sprintf("Venta a %s", client)

	var warnings []string
	var movements []entity.Movement
	total := decimal.Zero
	for _, line := range req.Lines {
		code := strings.TrimSpace(line.ProductCode)
		i, ok := byCode[code]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("producto no encontrado: %s", code))
			continue
		}
		mov := entity.Movement{
			Date:        now,
			Type:        entity.MovementTypeSale,
			ProductCode: code,
			Quantity:    line.Quantity,
			DocRef:      docRef,
		}
		products[i].CurrentStock = products[i].CurrentStock.Add(mov.StockDelta())
		movements = append(movements, mov)
		total = total.Add(line.LineTotal)
	}
	if len(movements) == 0 {
		return nil, fmt.Errorf("ninguna línea con producto válido: %w", domain.ErrProductNotFound)
	}

	termDays := req.Lines[0].TermDays
	if termDays <= 0 {
		termDays = entity.DefaultTermDays
	}
	receivable := entity.Receivable{
		SaleDate:    now,
		Client:      client,
		TotalAmount: total,
		TermDays:    termDays,
		DueDate:     now.AddDate(0, 0, termDays),
		Status:      entity.StatusPending,
		Salesperson: strings.TrimSpace(req.Lines[0].Salesperson),
	}

	if err := uc.products.OverwriteAll(ctx, products); err != nil {
		return nil, err
	}
	if err := uc.movements.Append(ctx, movements...); err != nil {
		return nil, err
	}
	if err := uc.receivables.Append(ctx, receivable); err != nil {
		return nil, err
	}
	return &dto.SaleResultDTO{
		TotalAmount:   total,
		DueDate:       receivable.DueDate.Format(dateLayout),
		MovementsMade: len(movements),
		Warnings:      warnings,
	}, nil
}

// PendingCollections devuelve los cobros pendientes ordenados por fecha de
// vencimiento ascendente, clasificados por urgencia: vencido (ya pasó),
// por_vencer (7 días o menos) y al_dia. Index referencia la fila en la hoja
// Cobros para marcar el pago después.
func (uc *SaleTransaction) PendingCollections(ctx context.Context) ([]dto.CollectionCardDTO, error) {
	receivables, err := uc.receivables.List(ctx)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	var cards []dto.CollectionCardDTO
	for i, r := range receivables {
		if r.Status != entity.StatusPending {
			continue
		}
		days := r.DaysUntilDue(now)
		urgency := "al_dia"
		switch {
		case days < 0:
			urgency = "vencido"
		case days <= 7:
			urgency = "por_vencer"
		}
		cards = append(cards, dto.CollectionCardDTO{
			Index:       i,
			Client:      r.Client,
			Amount:      r.TotalAmount,
			DueDate:     r.DueDate.Format(dateLayout),
			DaysLeft:    days,
			Urgency:     urgency,
			Salesperson: r.Salesperson,
		})
	}
	sort.SliceStable(cards, func(a, b int) bool {
		return cards[a].DueDate < cards[b].DueDate
	})
	return cards, nil
}

// MarkPaid marca como pagado el cobro en la posición index de la hoja Cobros
// y reescribe la hoja completa. La fila debe estar Pendiente.
func (uc *SaleTransaction) MarkPaid(ctx context.Context, index int, req dto.MarkPaidRequest) error {
	receivables, err := uc.receivables.List(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(receivables) {
		return fmt.Errorf("cobro %d: %w", index, domain.ErrNotFound)
	}
	if receivables[index].Status != entity.StatusPending {
		return fmt.Errorf("cobro %d ya está %s: %w", index, receivables[index].Status, domain.ErrInvalidInput)
	}

	paymentDate := uc.now()
	if strings.TrimSpace(req.PaymentDate) != "" {
		parsed, err := time.Parse(dateLayout, req.PaymentDate)
		if err != nil {
			return fmt.Errorf("fecha_pago %q: %w", req.PaymentDate, domain.ErrInvalidInput)
		}
		paymentDate = parsed
	}
	receivables[index].Status = entity.StatusPaid
	receivables[index].PaymentDate = paymentDate
	receivables[index].PaymentMethod = strings.TrimSpace(req.PaymentMethod)

	return uc.receivables.OverwriteAll(ctx, receivables)
}
