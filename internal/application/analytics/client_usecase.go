package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/csm-sistemas/controlfin-api/internal/application/dto"
	"github.com/csm-sistemas/controlfin-api/internal/application/ports"
	"github.com/csm-sistemas/controlfin-api/internal/domain"
	"github.com/csm-sistemas/controlfin-api/internal/domain/entity"
	"github.com/csm-sistemas/controlfin-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// Comportamiento de pago para la vista 360.
const (
	behaviorGood    = "Bueno"
	behaviorRegular = "Regular (Deuda Alta)"
	behaviorBad     = "Malo (Pagos Vencidos)"
)

// ClientUseCase gestiona el directorio de clientes y arma la vista 360:
// contacto, KPIs de facturación, comportamiento de pago y estado de cuenta.
type ClientUseCase struct {
	clients     repository.ClientRepository
	receivables repository.ReceivableRepository
	statements  ports.StatementGenerator
	now         func() time.Time
}

// NewClientUseCase construye el caso de uso. statements puede ser nil si no
// se exponen estados de cuenta en PDF; now en nil usa time.Now.
func NewClientUseCase(
	clients repository.ClientRepository,
	receivables repository.ReceivableRepository,
	statements ports.StatementGenerator,
	now func() time.Time,
) *ClientUseCase {
	if now == nil {
		now = time.Now
	}
	return &ClientUseCase{
		clients:     clients,
		receivables: receivables,
		statements:  statements,
		now:         now,
	}
}

// List devuelve el directorio completo de clientes.
func (uc *ClientUseCase) List(ctx context.Context) ([]dto.ClientDTO, error) {
	clients, err := uc.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientDTO, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientDTO(c))
	}
	return out, nil
}

// Create da de alta un cliente. El nombre es obligatorio y no puede repetir
// uno existente (comparación sin tildes ni mayúsculas).
func (uc *ClientUseCase) Create(ctx context.Context, req dto.CreateClientRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("nombre vacío: %w", domain.ErrInvalidInput)
	}
	existing, err := uc.clients.List(ctx)
	if err != nil {
		return err
	}
	folded := foldName(name)
	for _, c := range existing {
		if foldName(c.Name) == folded {
			return fmt.Errorf("cliente %q ya existe: %w", name, domain.ErrInvalidInput)
		}
	}
	return uc.clients.Append(ctx, entity.Client{
		Name:     name,
		TaxID:    strings.TrimSpace(req.TaxID),
		Phone:    strings.TrimSpace(req.Phone),
		Email:    strings.TrimSpace(req.Email),
		Address:  strings.TrimSpace(req.Address),
		Locality: strings.TrimSpace(req.Locality),
		Notes:    strings.TrimSpace(req.Notes),
	})
}

// Summary arma la vista 360 del cliente. El matching contra la hoja Cobros
// es por nombre normalizado; un cliente puede tener cobros aunque no figure
// en el directorio, en ese caso Client viene nil.
func (uc *ClientUseCase) Summary(ctx context.Context, name string) (*dto.ClientSummaryDTO, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("nombre vacío: %w", domain.ErrInvalidInput)
	}
	folded := foldName(name)

	clients, err := uc.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	var clientDTO *dto.ClientDTO
	displayName := name
	for _, c := range clients {
		if foldName(c.Name) == folded {
			d := toClientDTO(c)
			clientDTO = &d
			displayName = c.Name
			break
		}
	}

	receivables, err := uc.receivables.List(ctx)
	if err != nil {
		return nil, err
	}
	now := uc.now()

	out := &dto.ClientSummaryDTO{
		Client: clientDTO,
		Name:   displayName,
	}
	var own []entity.Receivable
	for _, r := range receivables {
		if foldName(r.Client) == folded {
			own = append(own, r)
		}
	}
	if clientDTO == nil && len(own) == 0 {
		return nil, fmt.Errorf("cliente %q: %w", name, domain.ErrNotFound)
	}

	sort.SliceStable(own, func(a, b int) bool { return own[a].SaleDate.Before(own[b].SaleDate) })

	anyOverdue := false
	var lastSale time.Time
	for _, r := range own {
		out.TotalBilled = out.TotalBilled.Add(r.TotalAmount)
		switch r.Status {
		case entity.StatusPaid:
			out.TotalPaid = out.TotalPaid.Add(r.TotalAmount)
		case entity.StatusPending:
			out.TotalPending = out.TotalPending.Add(r.TotalAmount)
		}
		if r.Overdue(now) {
			anyOverdue = true
		}
		if r.SaleDate.After(lastSale) {
			lastSale = r.SaleDate
		}
		out.Receivables = append(out.Receivables, toReceivableDTO(r, now))
	}

	out.PaymentBehavior = paymentBehavior(out.TotalBilled, out.TotalPending, anyOverdue)
	if !lastSale.IsZero() {
		out.DaysSinceLastPurchase = int(now.Sub(lastSale).Hours() / 24)
	}
	return out, nil
}

// StatementPDF renderiza el estado de cuenta del cliente como PDF.
func (uc *ClientUseCase) StatementPDF(ctx context.Context, name string) ([]byte, error) {
	if uc.statements == nil {
		return nil, fmt.Errorf("generación de PDF no configurada: %w", domain.ErrInvalidInput)
	}
	summary, err := uc.Summary(ctx, name)
	if err != nil {
		return nil, err
	}
	return uc.statements.ClientStatement(*summary, uc.now())
}

// paymentBehavior clasifica al cliente: Malo si tiene cobros vencidos,
// Regular si el saldo pendiente supera la mitad de lo facturado, Bueno en
// el resto de los casos.
func paymentBehavior(billed, pending decimal.Decimal, anyOverdue bool) string {
	if anyOverdue {
		return behaviorBad
	}
	if billed.GreaterThan(decimal.Zero) {
		half := billed.Div(decimal.NewFromInt(2))
		if pending.GreaterThan(half) {
			return behaviorRegular
		}
	}
	return behaviorGood
}

func toClientDTO(c entity.Client) dto.ClientDTO {
	return dto.ClientDTO{
		Name:     c.Name,
		TaxID:    c.TaxID,
		Phone:    c.Phone,
		Email:    c.Email,
		Address:  c.Address,
		Locality: c.Locality,
		Notes:    c.Notes,
	}
}

// toReceivableDTO aplica el estado visual: Pendiente vencido se muestra
// como Vencido, el valor persistido en la hoja no cambia.
func toReceivableDTO(r entity.Receivable, now time.Time) dto.ReceivableDTO {
	status := r.Status
	if r.Overdue(now) {
		status = "Vencido"
	}
	d := dto.ReceivableDTO{
		SaleDate:      r.SaleDate.Format(dateLayout),
		Amount:        r.TotalAmount,
		TermDays:      r.TermDays,
		DueDate:       r.DueDate.Format(dateLayout),
		Status:        status,
		PaymentMethod: r.PaymentMethod,
	}
	if !r.PaymentDate.IsZero() {
		d.PaymentDate = r.PaymentDate.Format(dateLayout)
	}
	return d
}
