// Package sheetstore implementa el Store: la capa de lectura/escritura sobre
// la planilla remota, con caché por hoja, normalización de esquema y
// coordinación de escrituras por lotes.
//
// El Store convierte un backend tabular sin esquema y eventualmente
// desactualizado en un conjunto de filas tipado y con columnas garantizadas,
// y es el único lugar donde escrituras multi-hoja deben parecer atómicas
// para el resto de la aplicación.
package sheetstore

import "context"

// RemoteTable es el colaborador externo: una hoja de la planilla remota
// direccionable por nombre. La autenticación, el descubrimiento de hojas y
// los reintentos de transporte adicionales son responsabilidad del adaptador.
type RemoteTable interface {
	// ReadAll devuelve todas las filas como mapas columna → valor crudo.
	ReadAll(ctx context.Context, table string) ([]map[string]string, error)

	// OverwriteAll reemplaza el contenido completo de la hoja; values[0] es
	// la fila de encabezado. Desde la perspectiva del Store aplica todo o
	// reporta error, nunca un estado parcial.
	OverwriteAll(ctx context.Context, table string, values [][]string) error

	// AppendRows agrega filas a continuación del contenido existente sin
	// leer ni reescribir las filas previas.
	AppendRows(ctx context.Context, table string, values [][]string) error
}
