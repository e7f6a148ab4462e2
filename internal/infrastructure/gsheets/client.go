// Package gsheets implementa el colaborador RemoteTable sobre la API de
// Google Sheets, autenticado con una cuenta de servicio.
package gsheets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Config credenciales y planilla destino.
type Config struct {
	CredentialsFile string // JSON de cuenta de servicio
	SpreadsheetURL  string // URL completa o ID de la planilla
}

// Client adaptador de la planilla remota. Implementa sheetstore.RemoteTable.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
}

// New construye el cliente contra la API de Sheets.
func New(ctx context.Context, cfg Config) (*Client, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("gsheets: crear servicio: %w", err)
	}
	id, err := SpreadsheetID(cfg.SpreadsheetURL)
	if err != nil {
		return nil, err
	}
	return &Client{svc: svc, spreadsheetID: id}, nil
}

// SpreadsheetID extrae el ID de una URL de Google Sheets. Acepta también el
// ID pelado. La URL se limpia de query string, igual que hace la planilla de
// producción compartida por link.
func SpreadsheetID(raw string) (string, error) {
	clean := strings.SplitN(raw, "?", 2)[0]
	if !strings.Contains(clean, "/") {
		if clean == "" {
			return "", fmt.Errorf("gsheets: URL de planilla vacía")
		}
		return clean, nil
	}
	const marker = "/d/"
	i := strings.Index(clean, marker)
	if i < 0 {
		return "", fmt.Errorf("gsheets: URL de planilla inválida: %q", raw)
	}
	rest := clean[i+len(marker):]
	if j := strings.IndexByte(rest, '/'); j >= 0 {
		rest = rest[:j]
	}
	if rest == "" {
		return "", fmt.Errorf("gsheets: URL de planilla inválida: %q", raw)
	}
	return rest, nil
}

// ReadAll lee la hoja completa y la devuelve como registros columna → valor,
// usando la primera fila como encabezado (semántica get_all_records).
func (c *Client) ReadAll(ctx context.Context, table string) ([]map[string]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, sheetRange(table)).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("gsheets: leer %s: %w", table, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}

	header := make([]string, len(resp.Values[0]))
	for i, cell := range resp.Values[0] {
		header[i] = strings.TrimSpace(fmt.Sprint(cell))
	}

	records := make([]map[string]string, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		rec := make(map[string]string, len(header))
		for i, col := range header {
			if col == "" {
				continue
			}
			if i < len(raw) {
				rec[col] = fmt.Sprint(raw[i])
			} else {
				rec[col] = ""
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// OverwriteAll limpia la hoja y escribe encabezado + filas en una sola
// actualización RAW.
func (c *Client) OverwriteAll(ctx context.Context, table string, values [][]string) error {
	if _, err := c.svc.Spreadsheets.Values.Clear(c.spreadsheetID, sheetRange(table),
		&sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("gsheets: limpiar %s: %w", table, err)
	}
	vr := &sheets.ValueRange{Values: toInterfaces(values)}
	if _, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, sheetRange(table), vr).
		ValueInputOption("RAW").Context(ctx).Do(); err != nil {
		return fmt.Errorf("gsheets: escribir %s: %w", table, err)
	}
	return nil
}

// AppendRows agrega filas a continuación del contenido existente.
func (c *Client) AppendRows(ctx context.Context, table string, values [][]string) error {
	vr := &sheets.ValueRange{Values: toInterfaces(values)}
	if _, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, sheetRange(table), vr).
		ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do(); err != nil {
		return fmt.Errorf("gsheets: agregar a %s: %w", table, err)
	}
	return nil
}

// EnsureSheet crea la hoja si no existe (usada por cmd/seed). Un error 400
// por título duplicado se trata como éxito.
func (c *Client) EnsureSheet(ctx context.Context, title string) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: title},
			},
		}},
	}
	_, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && gerr.Code == 400 &&
			strings.Contains(gerr.Message, "already exists") {
			return nil
		}
		return fmt.Errorf("gsheets: crear hoja %s: %w", title, err)
	}
	return nil
}

// sheetRange referencia la hoja completa por título (rango A1 sin celdas).
func sheetRange(table string) string {
	return "'" + table + "'"
}

func toInterfaces(values [][]string) [][]interface{} {
	out := make([][]interface{}, len(values))
	for i, row := range values {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		out[i] = cells
	}
	return out
}
