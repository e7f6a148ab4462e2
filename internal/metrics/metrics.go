// Package metrics expone los contadores Prometheus del Store. Se publican
// en /metrics vía promhttp sobre el registro por defecto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RemoteReads cuenta llamadas de lectura a la planilla remota.
	RemoteReads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "controlfin_remote_reads_total",
			Help: "Lecturas contra la planilla remota por hoja y resultado",
		},
		[]string{"table", "result"},
	)

	// ReadRetries cuenta los reintentos de lectura tras un fallo de transporte.
	ReadRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "controlfin_read_retries_total",
			Help: "Reintentos de lectura tras fallo de transporte",
		},
		[]string{"table"},
	)

	// CacheHits cuenta lecturas servidas desde la caché dentro de la ventana.
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "controlfin_cache_hits_total",
			Help: "Lecturas servidas desde la caché de hojas",
		},
		[]string{"table"},
	)

	// CacheMisses cuenta lecturas que fueron a la planilla remota.
	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "controlfin_cache_misses_total",
			Help: "Lecturas que no encontraron caché fresca",
		},
		[]string{"table"},
	)

	// RemoteWrites cuenta escrituras por hoja, modo (overwrite/append) y resultado.
	RemoteWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "controlfin_remote_writes_total",
			Help: "Escrituras contra la planilla remota por hoja, modo y resultado",
		},
		[]string{"table", "mode", "result"},
	)
)
