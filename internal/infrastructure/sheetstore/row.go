package sheetstore

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout es el formato de fecha usado en todas las hojas.
const DateLayout = "2006-01-02"

// Row es una fila normalizada: clave = columna del esquema. Los valores son
// string, salvo las columnas declaradas numéricas, que son decimal.Decimal.
// El lector garantiza que toda fila entregada tiene todas las columnas del
// esquema presentes.
type Row map[string]any

// Get devuelve el valor de la columna como string ("" si falta).
func (r Row) Get(col string) string {
	switch v := r[col].(type) {
	case string:
		return v
	case decimal.Decimal:
		return v.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Decimal devuelve el valor numérico de la columna; valores ausentes o no
// parseables valen cero.
func (r Row) Decimal(col string) decimal.Decimal {
	if d, ok := r[col].(decimal.Decimal); ok {
		return d
	}
	d, err := decimal.NewFromString(strings.TrimSpace(r.Get(col)))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Date parsea la columna con DateLayout; devuelve el tiempo cero si la celda
// está vacía o no parsea.
func (r Row) Date(col string) time.Time {
	t, err := time.Parse(DateLayout, strings.TrimSpace(r.Get(col)))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Clone copia la fila. El lector entrega copias para que los llamadores
// puedan mutar libremente sin corromper la caché compartida.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// FormatDate serializa un tiempo para la planilla; el tiempo cero es celda
// vacía (ej. Fecha_Cobro_Real de un cobro pendiente).
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func cloneRows(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		out[i] = r.Clone()
	}
	return out
}
