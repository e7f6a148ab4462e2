package sheetstore

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/csm-sistemas/controlfin-api/internal/domain/schema"
)

// Valores por defecto del Store. 60s de frescura y un único reintento tras
// 2s acotan el peor caso de una interacción a dos llamadas remotas.
const (
	DefaultTTL        = 60 * time.Second
	DefaultRetryDelay = 2 * time.Second
)

// Config opciones del Store. Now y Sleep existen para que los tests controlen
// el reloj de la caché y el retardo del reintento.
type Config struct {
	TTL        time.Duration
	RetryDelay time.Duration
	Now        func() time.Time
	Sleep      func(time.Duration)
	Logger     zerolog.Logger
}

// Store agrupa el lector cacheado y el coordinador de escrituras sobre una
// misma caché compartida: toda escritura exitosa invalida lo que el lector
// tiene cacheado.
type Store struct {
	reader *CachedReader
	writer *WriteCoordinator
}

// New construye el Store sobre el colaborador remoto y el registro de esquemas.
func New(remote RemoteTable, schemas *schema.Registry, cfg Config) *Store {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}

	cache := newTableCache(cfg.TTL, cfg.Now)
	log := cfg.Logger.With().Str("component", "sheetstore").Logger()

	return &Store{
		reader: &CachedReader{
			remote:     remote,
			schemas:    schemas,
			cache:      cache,
			retryDelay: cfg.RetryDelay,
			sleep:      cfg.Sleep,
			log:        log,
		},
		writer: &WriteCoordinator{
			remote:  remote,
			schemas: schemas,
			cache:   cache,
			log:     log,
		},
	}
}

// Reader devuelve el lector cacheado.
func (s *Store) Reader() *CachedReader { return s.reader }

// Writer devuelve el coordinador de escrituras.
func (s *Store) Writer() *WriteCoordinator { return s.writer }
