package sheetstore

import (
	"sync"
	"time"
)

// tableCache es la caché de proceso, con ventana de frescura fija y clave por
// nombre de hoja. El reloj es inyectable para que los tests controlen la
// expiración (y reproduzcan la carrera de lost-update con lecturas viejas).
//
// El mutex protege el mapa, no las operaciones de negocio: dos interacciones
// concurrentes pueden leer el mismo stock viejo y la segunda sobreescritura
// gana. Esa carrera es propiedad del modo de escritura por reemplazo total y
// se preserva tal cual.
type tableCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

type cacheEntry struct {
	rows      []Row
	fetchedAt time.Time
}

func newTableCache(ttl time.Duration, now func() time.Time) *tableCache {
	return &tableCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     now,
	}
}

// get devuelve las filas cacheadas si son más jóvenes que la ventana.
func (c *tableCache) get(table string) ([]Row, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[table]
	if !ok || c.now().Sub(e.fetchedAt) >= c.ttl {
		return nil, false
	}
	return e.rows, true
}

func (c *tableCache) put(table string, rows []Row) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[table] = cacheEntry{rows: rows, fetchedAt: c.now()}
}

// invalidateAll vacía la caché completa. Se invalida todo y no solo la hoja
// escrita porque hay derivados que cruzan hojas (ej. alertas de stock).
func (c *tableCache) invalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
