package sales

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/csm-sistemas/controlfin-api/internal/application/dto"
	"github.com/csm-sistemas/controlfin-api/internal/domain"
)

// Columnas del CSV de ventas. Descuento y Plazo son opcionales.
const (
	salesColCode     = "Codigo_Big"
	salesColQty      = "Cantidad"
	salesColDiscount = "Descuento"
	salesColTerm     = "Plazo"
)

// SalesRow una fila ya parseada del archivo de ventas. Discount es una
// fracción en [0, 1).
type SalesRow struct {
	ProductCode string
	Quantity    decimal.Decimal
	Discount    decimal.Decimal
	TermDays    int
}

// parseDiscount tolera los formatos habituales de las planillas: "10%",
// "0,10", "0.10" y vacío. Con sufijo % o valor >= 1 el número es un
// porcentaje; un número suelto menor a 1 es la fracción directa ("0.10"
// descuenta el 10%, no el 0.1%). Valores fuera de [0, 1) se rechazan.
func parseDiscount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	percent := strings.HasSuffix(raw, "%")
	raw = strings.TrimSuffix(raw, "%")
	raw = strings.ReplaceAll(raw, ",", ".")
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, err
	}
	if percent || d.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		d = d.Div(decimal.NewFromInt(100))
	}
	if d.LessThan(decimal.Zero) || d.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return decimal.Zero, fmt.Errorf("descuento fuera de rango: %s", raw)
	}
	return d, nil
}

// ParseSalesCSV lee el archivo de ventas. Requiere columnas Codigo_Big y
// Cantidad; Descuento y Plazo son opcionales. Las filas inválidas se
// devuelven como errores por fila sin abortar el parseo.
func ParseSalesCSV(r io.Reader) ([]SalesRow, []string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("archivo de ventas sin encabezado: %w", domain.ErrInvalidInput)
	}
	cols := map[string]int{}
	for i, col := range header {
		cols[strings.TrimSpace(col)] = i
	}
	codeIdx, okCode := cols[salesColCode]
	qtyIdx, okQty := cols[salesColQty]
	if !okCode || !okQty {
		return nil, nil, fmt.Errorf("el archivo debe tener columnas %s y %s: %w",
			salesColCode, salesColQty, domain.ErrInvalidInput)
	}
	discountIdx, hasDiscount := cols[salesColDiscount]
	termIdx, hasTerm := cols[salesColTerm]

	var rows []SalesRow
	var rowErrs []string
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("fila %d ilegible: %w", line, domain.ErrInvalidInput)
		}
		cell := func(idx int) string {
			if idx < 0 || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}
		code := cell(codeIdx)
		if code == "" {
			rowErrs = append(rowErrs, fmt.Sprintf("fila %d: codigo_big vacío", line))
			continue
		}
		qty, err := decimal.NewFromString(cell(qtyIdx))
		if err != nil || !qty.GreaterThan(decimal.Zero) {
			rowErrs = append(rowErrs, fmt.Sprintf("fila %d: cantidad inválida %q", line, cell(qtyIdx)))
			continue
		}
		row := SalesRow{ProductCode: code, Quantity: qty}
		if hasDiscount {
			d, err := parseDiscount(cell(discountIdx))
			if err != nil {
				rowErrs = append(rowErrs, fmt.Sprintf("fila %d: %v", line, err))
				continue
			}
			row.Discount = d
		}
		if hasTerm {
			if raw := cell(termIdx); raw != "" {
				if _, err := fmt.Sscanf(raw, "%d", &row.TermDays); err != nil || row.TermDays < 0 {
					row.TermDays = 0
				}
			}
		}
		rows = append(rows, row)
	}
	return rows, rowErrs, nil
}

// ProcessSalesUpload arma una venta multi-línea a partir del archivo. El
// precio de cada línea sale de Precio_Venta del catálogo con el descuento de
// la fila aplicado; cliente y vendedor vienen de los metadatos de la carga y
// aplican a todas las líneas.
func (uc *SaleTransaction) ProcessSalesUpload(ctx context.Context, meta dto.SalesUploadRequest, r io.Reader) (*dto.SaleResultDTO, error) {
	client := strings.TrimSpace(meta.Client)
	if client == "" {
		return nil, fmt.Errorf("cliente vacío: %w", domain.ErrInvalidInput)
	}
	rows, rowErrs, err := ParseSalesCSV(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("el archivo no tiene filas válidas: %w", domain.ErrInvalidInput)
	}

	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	priceByCode := make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		priceByCode[strings.TrimSpace(p.Code)] = p.SalePrice
	}

	one := decimal.NewFromInt(1)
	lines := make([]dto.SaleLineRequest, 0, len(rows))
	for _, row := range rows {
		total := decimal.Zero
		if price, ok := priceByCode[row.ProductCode]; ok {
			total = price.Mul(row.Quantity).Mul(one.Sub(row.Discount))
		}
		lines = append(lines, dto.SaleLineRequest{
			Client:      client,
			ProductCode: row.ProductCode,
			Quantity:    row.Quantity,
			LineTotal:   total,
			TermDays:    row.TermDays,
			Salesperson: strings.TrimSpace(meta.Salesperson),
		})
	}

	result, err := uc.RegisterSale(ctx, dto.RegisterSaleRequest{Lines: lines})
	if err != nil {
		return nil, err
	}
	result.Warnings = append(rowErrs, result.Warnings...)
	return result, nil
}
