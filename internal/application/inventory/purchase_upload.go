package inventory

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/csm-sistemas/controlfin-api/internal/application/dto"
	"github.com/csm-sistemas/controlfin-api/internal/domain"
	"github.com/csm-sistemas/controlfin-api/internal/domain/entity"
)

// Columnas obligatorias del CSV de compras.
const (
	purchaseColCode = "Codigo_Big"
	purchaseColQty  = "Cantidad_Comprada"
)

// PurchaseRow una fila ya parseada del archivo de compras.
type PurchaseRow struct {
	ProductCode string
	Quantity    decimal.Decimal
}

// ParsePurchaseCSV lee el archivo de compras. La primera fila es el
// encabezado y debe contener Codigo_Big y Cantidad_Comprada; las columnas
// extra se ignoran. Las filas con cantidad inválida o no positiva se
// devuelven como errores por fila sin abortar el parseo.
func ParsePurchaseCSV(r io.Reader) ([]PurchaseRow, []string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("archivo de compras sin encabezado: %w", domain.ErrInvalidInput)
	}
	codeIdx, qtyIdx := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case purchaseColCode:
			codeIdx = i
		case purchaseColQty:
			qtyIdx = i
		}
	}
	if codeIdx < 0 || qtyIdx < 0 {
		return nil, nil, fmt.Errorf("el archivo debe tener columnas %s y %s: %w",
			purchaseColCode, purchaseColQty, domain.ErrInvalidInput)
	}

	var rows []PurchaseRow
	var rowErrs []string
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("fila %d ilegible: %w", line, domain.ErrInvalidInput)
		}
		if codeIdx >= len(record) || qtyIdx >= len(record) {
			rowErrs = append(rowErrs, fmt.Sprintf("fila %d: columnas incompletas", line))
			continue
		}
		code := strings.TrimSpace(record[codeIdx])
		if code == "" {
			rowErrs = append(rowErrs, fmt.Sprintf("fila %d: codigo_big vacío", line))
			continue
		}
		qty, err := decimal.NewFromString(strings.TrimSpace(record[qtyIdx]))
		if err != nil || !qty.GreaterThan(decimal.Zero) {
			rowErrs = append(rowErrs, fmt.Sprintf("fila %d: cantidad inválida %q", line, record[qtyIdx]))
			continue
		}
		rows = append(rows, PurchaseRow{ProductCode: code, Quantity: qty})
	}
	return rows, rowErrs, nil
}

// ProcessPurchaseUpload aplica una carga masiva de compras en lote: valida
// todos los códigos contra la hoja Productos antes de escribir y, si alguno
// no existe, aborta sin tocar la planilla. Las filas válidas se aplican con
// una sola reescritura de Productos y un solo append de Movimientos.
func (uc *StockLedger) ProcessPurchaseUpload(ctx context.Context, filename string, r io.Reader) (*dto.PurchaseUploadResult, error) {
	rows, rowErrs, err := ParsePurchaseCSV(r)
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
	byCode := make(map[string]int, len(products))
	for i := range products {
		byCode[strings.TrimSpace(products[i].Code)] = i
	}

	var unknown []string
	for _, row := range rows {
		if _, ok := byCode[row.ProductCode]; !ok {
			unknown = append(unknown, row.ProductCode)
		}
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("códigos inexistentes: %s: %w",
			strings.Join(unknown, ", "), domain.ErrProductNotFound)
	}

	// El uuid del lote viaja en el Documento_Ref de cada movimiento para
	// poder rastrear en Movimientos qué filas salieron de la misma carga.
	batchRef := uuid.New().String()
	docRef := fmt.Sprintf("Carga Masiva %s [%s]", filename, batchRef)
	now := uc.now()

	movements := make([]entity.Movement, 0, len(rows))
	for _, row := range rows {
		mov := entity.Movement{
			Date:        now,
			Type:        entity.MovementTypePurchase,
			ProductCode: row.ProductCode,
			Quantity:    row.Quantity,
			DocRef:      docRef,
		}
		i := byCode[row.ProductCode]
		products[i].CurrentStock = products[i].CurrentStock.Add(mov.StockDelta())
		movements = append(movements, mov)
	}

	if err := uc.products.OverwriteAll(ctx, products); err != nil {
		return nil, err
	}
	if err := uc.movements.Append(ctx, movements...); err != nil {
		return nil, err
	}
	return &dto.PurchaseUploadResult{
		Processed: len(movements),
		BatchRef:  batchRef,
		Errors:    rowErrs,
	}, nil
}
