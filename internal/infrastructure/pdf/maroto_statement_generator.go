// Package pdf implementa la generación del estado de cuenta de un cliente
// como documento descargable.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Estado de Cuenta  │  Fecha de emisión              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + CUIT + contacto + comportamiento de pago │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Vencimiento | Estado | Forma Pago | Monto   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Facturado / Pagado / SALDO PENDIENTE              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/csm-sistemas/controlfin-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 71, Blue: 61}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStatementGenerator implementa ports.StatementGenerator usando Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator construye el generador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

// ClientStatement genera el PDF del estado de cuenta y devuelve sus bytes.
func (g *MarotoStatementGenerator) ClientStatement(summary dto.ClientSummaryDTO, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de Cuenta "+summary.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(summary.Name, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range receivableRows(summary.Receivables) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(summary))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar estado de cuenta: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de emisión (der).
func headerRow(name string, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("ESTADO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 9,
			}),
		),
		col.New(4).Add(
			text.New("Emitido: "+generatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// clientRow: contacto del directorio (si existe) y comportamiento de pago.
func clientRow(summary dto.ClientSummaryDTO) core.Row {
	contact := "Cliente sin ficha en el directorio"
	if c := summary.Client; c != nil {
		contact = fmt.Sprintf("CUIT: %s   |   Tel: %s   |   Email: %s",
			nonEmpty(c.TaxID, "—"),
			nonEmpty(c.Phone, "—"),
			nonEmpty(c.Email, "—"),
		)
	}
	behaviorColor := colorPrimary
	if summary.PaymentBehavior != "Bueno" {
		behaviorColor = colorAlert
	}
	return row.New(12).Add(
		col.New(8).Add(
			text.New(contact, props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Comportamiento: "+summary.PaymentBehavior, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 2,
				Color: behaviorColor,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de cobros.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha Venta", 2, align.Left),
		h("Vencimiento", 2, align.Left),
		h("Estado", 2, align.Center),
		h("Forma de Pago", 3, align.Left),
		h("Monto", 3, align.Right),
	)
}

// receivableRows: una fila por cobro del estado de cuenta.
func receivableRows(receivables []dto.ReceivableDTO) []core.Row {
	result := make([]core.Row, 0, len(receivables))
	for _, r := range receivables {
		statusColor := colorGray
		if r.Status == "Vencido" {
			statusColor = colorAlert
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(r.SaleDate, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New(r.DueDate, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New(r.Status, props.Text{
				Size: 8, Align: align.Center, Top: 1, Color: statusColor,
			})),
			col.New(3).Add(text.New(nonEmpty(r.PaymentMethod, "—"), props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(3).Add(text.New("$"+formatMoney(r.Amount.StringFixed(2)), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// totalsRow: facturado, pagado y saldo pendiente destacado.
func totalsRow(summary dto.ClientSummaryDTO) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := text.New("SALDO PENDIENTE:", props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Right: 2,
	})
	grandValue := text.New("$"+formatMoney(summary.TotalPending.StringFixed(2)), props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Right: 1,
	})

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Total facturado:"),
			label("Total pagado:"),
			grandLabel,
		),
		col.New(4).Add(
			value("$"+formatMoney(summary.TotalBilled.StringFixed(2))),
			value("$"+formatMoney(summary.TotalPaid.StringFixed(2))),
			grandValue,
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en la parte entera de un string
// numérico con decimales separados por punto.
// Ej: "25000.00" → "25.000,00"
func formatMoney(s string) string {
	intPart, decPart := s, ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			intPart, decPart = s[:i], s[i+1:]
			break
		}
	}
	n := len(intPart)
	buf := make([]byte, 0, n+n/3+4)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, intPart[i])
	}
	if decPart != "" {
		buf = append(buf, ',')
		buf = append(buf, decPart...)
	}
	return string(buf)
}
