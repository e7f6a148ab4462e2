package sheetstore

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/csm-sistemas/controlfin-api/internal/domain/schema"
	"github.com/csm-sistemas/controlfin-api/internal/metrics"
)

// CachedReader envuelve las lecturas de RemoteTable con caché por hoja y un
// único reintento ante fallo, y entrega filas normalizadas al esquema.
//
// Garantía: un llamador nunca ve filas parcialmente tipadas o divergentes del
// esquema. Un fallo de lectura (tras el reintento) degrada a un resultado
// vacío con la forma del esquema; nunca tumba al llamador.
type CachedReader struct {
	remote     RemoteTable
	schemas    *schema.Registry
	cache      *tableCache
	retryDelay time.Duration
	sleep      func(time.Duration)
	log        zerolog.Logger
}

// Read devuelve las filas normalizadas de la hoja. Sirve desde caché dentro
// de la ventana de frescura; si no, consulta la planilla remota y cachea.
// El único error posible es domain.ErrSchemaNotFound para hojas desconocidas.
func (r *CachedReader) Read(ctx context.Context, table string) ([]Row, error) {
	tab, err := r.schemas.Lookup(table)
	if err != nil {
		return nil, err
	}

	if rows, ok := r.cache.get(table); ok {
		metrics.CacheHits.WithLabelValues(table).Inc()
		return cloneRows(rows), nil
	}
	metrics.CacheMisses.WithLabelValues(table).Inc()

	records, err := r.fetch(ctx, table)
	if err != nil {
		// Los fallos del backend remoto degradan a datos vacíos: la capa de
		// presentación siempre recibe filas bien formadas, posiblemente cero.
		r.log.Error().Err(err).Str("table", table).
			Msg("lectura remota fallida tras reintento; se devuelve resultado vacío")
		records = nil
	}

	rows := normalize(tab, records)
	r.cache.put(table, rows)
	return cloneRows(rows), nil
}

// fetch llama a ReadAll con exactamente un reintento tras esperar retryDelay.
func (r *CachedReader) fetch(ctx context.Context, table string) ([]map[string]string, error) {
	records, err := r.remote.ReadAll(ctx, table)
	if err == nil {
		metrics.RemoteReads.WithLabelValues(table, "ok").Inc()
		return records, nil
	}
	metrics.RemoteReads.WithLabelValues(table, "error").Inc()
	metrics.ReadRetries.WithLabelValues(table).Inc()
	r.log.Warn().Err(err).Str("table", table).Msg("lectura remota fallida; reintentando")

	r.sleep(r.retryDelay)

	records, err = r.remote.ReadAll(ctx, table)
	if err != nil {
		metrics.RemoteReads.WithLabelValues(table, "error").Inc()
		return nil, err
	}
	metrics.RemoteReads.WithLabelValues(table, "ok").Inc()
	return records, nil
}

// normalize fuerza cada registro crudo a la forma del esquema: columnas
// numéricas coercionadas a decimal (no parseable = cero), columnas faltantes
// sintetizadas, columnas fuera del esquema descartadas.
func normalize(tab schema.Table, records []map[string]string) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		row := make(Row, len(tab.Columns))
		for _, col := range tab.Columns {
			raw := rec[col]
			if tab.IsNumeric(col) {
				d, err := decimal.NewFromString(strings.TrimSpace(raw))
				if err != nil {
					d = decimal.Zero
				}
				row[col] = d
				continue
			}
			row[col] = raw
		}
		rows = append(rows, row)
	}
	return rows
}
