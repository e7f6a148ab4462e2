package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrSchemaNotFound indica un nombre de hoja desconocido para el registro
	// de esquemas. Es un error de programación: las hojas se declaran en código.
	ErrSchemaNotFound = errors.New("esquema de hoja no encontrado")

	// ErrProductNotFound indica que el código de producto referenciado no
	// existe en la hoja Productos. Se reporta por ítem y no aborta un lote.
	ErrProductNotFound = errors.New("producto no encontrado")

	// ErrWriteFailed indica que un overwrite/append contra la planilla remota
	// no se completó. No se reintenta ni se asume estado parcial de caché.
	ErrWriteFailed = errors.New("escritura en la planilla remota fallida")

	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
)
