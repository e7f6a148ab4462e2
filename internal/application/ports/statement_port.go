package ports

import (
	"time"

	"github.com/csm-sistemas/controlfin-api/internal/application/dto"
)

// StatementGenerator define el puerto de salida para renderizar el estado de
// cuenta de un cliente como documento descargable. El adaptador concreto
// (maroto, mock) implementa esta interfaz; la capa de aplicación solo conoce
// el contrato.
type StatementGenerator interface {
	// ClientStatement renderiza el resumen 360 del cliente como PDF.
	ClientStatement(summary dto.ClientSummaryDTO, generatedAt time.Time) ([]byte, error)
}
