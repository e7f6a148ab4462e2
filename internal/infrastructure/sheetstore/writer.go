package sheetstore

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/csm-sistemas/controlfin-api/internal/domain"
	"github.com/csm-sistemas/controlfin-api/internal/domain/schema"
	"github.com/csm-sistemas/controlfin-api/internal/metrics"
)

// WriteCoordinator ejecuta overwrite y append contra RemoteTable e invalida
// la caché completa en toda escritura exitosa. Las escrituras fallidas no se
// reintentan: el error se reporta como domain.ErrWriteFailed y el llamador
// no debe asumir que los efectos ocurrieron.
type WriteCoordinator struct {
	remote  RemoteTable
	schemas *schema.Registry
	cache   *tableCache
	log     zerolog.Logger
}

// Overwrite reemplaza el contenido completo de la hoja con las filas dadas
// (encabezado + datos). Es un reemplazo destructivo: toda fila que no esté
// en el conjunto se pierde. Se usa para hojas que se mutan editando filas.
func (w *WriteCoordinator) Overwrite(ctx context.Context, table string, rows []Row) error {
	tab, err := w.schemas.Lookup(table)
	if err != nil {
		return err
	}

	values := make([][]string, 0, len(rows)+1)
	values = append(values, tab.Columns)
	for _, row := range rows {
		values = append(values, cellValues(tab, row))
	}

	if err := w.remote.OverwriteAll(ctx, table, values); err != nil {
		metrics.RemoteWrites.WithLabelValues(table, "overwrite", "error").Inc()
		w.log.Error().Err(err).Str("table", table).Int("rows", len(rows)).
			Msg("overwrite fallido")
		return fmt.Errorf("overwrite de %s: %v: %w", table, err, domain.ErrWriteFailed)
	}
	metrics.RemoteWrites.WithLabelValues(table, "overwrite", "ok").Inc()

	w.cache.invalidateAll()
	w.log.Debug().Str("table", table).Int("rows", len(rows)).Msg("hoja reemplazada; caché invalidada")
	return nil
}

// Append agrega filas a continuación del contenido existente; se usa para
// las hojas que son registros puramente aditivos.
func (w *WriteCoordinator) Append(ctx context.Context, table string, rows []Row) error {
	tab, err := w.schemas.Lookup(table)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	values := make([][]string, 0, len(rows))
	for _, row := range rows {
		values = append(values, cellValues(tab, row))
	}

	if err := w.remote.AppendRows(ctx, table, values); err != nil {
		metrics.RemoteWrites.WithLabelValues(table, "append", "error").Inc()
		w.log.Error().Err(err).Str("table", table).Int("rows", len(rows)).
			Msg("append fallido")
		return fmt.Errorf("append a %s: %v: %w", table, err, domain.ErrWriteFailed)
	}
	metrics.RemoteWrites.WithLabelValues(table, "append", "ok").Inc()

	w.cache.invalidateAll()
	w.log.Debug().Str("table", table).Int("rows", len(rows)).Msg("filas agregadas; caché invalidada")
	return nil
}

// cellValues serializa una fila al orden del esquema: todo celda string,
// valores ausentes como cadena vacía, decimales con su representación exacta.
func cellValues(tab schema.Table, row Row) []string {
	cells := make([]string, len(tab.Columns))
	for i, col := range tab.Columns {
		if _, ok := row[col]; !ok {
			cells[i] = ""
			continue
		}
		cells[i] = row.Get(col)
	}
	return cells
}
