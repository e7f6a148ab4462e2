package dto

import "github.com/shopspring/decimal"

// SaleLineRequest una línea de venta. Cliente, vendedor y plazo se toman de
// la primera línea para el cobro agregado.
type SaleLineRequest struct {
	Client      string          `json:"cliente"`
	ProductCode string          `json:"codigo_big"`
	Quantity    decimal.Decimal `json:"cantidad"`
	LineTotal   decimal.Decimal `json:"precio_total"`
	TermDays    int             `json:"plazo_dias"`
	Salesperson string          `json:"vendedor"`
}

// RegisterSaleRequest alta de una venta (una o varias líneas).
type RegisterSaleRequest struct {
	Lines []SaleLineRequest `json:"lineas"`
}

// SaleResultDTO resultado de registrar una venta.
type SaleResultDTO struct {
	TotalAmount   decimal.Decimal `json:"monto_total"`
	DueDate       string          `json:"fecha_vencimiento"`
	MovementsMade int             `json:"movimientos_registrados"`
	Warnings      []string        `json:"advertencias,omitempty"`
}

// CollectionCardDTO cobro pendiente para el panel de cobranzas, ordenado por
// vencimiento. Index es la posición de la fila en la hoja Cobros: la planilla
// no tiene IDs únicos, así que el pago se referencia por índice.
type CollectionCardDTO struct {
	Index       int             `json:"index"`
	Client      string          `json:"cliente"`
	Amount      decimal.Decimal `json:"monto_total"`
	DueDate     string          `json:"fecha_vencimiento"`
	DaysLeft    int             `json:"dias_restantes"`
	Urgency     string          `json:"urgencia"` // vencido | por_vencer | al_dia
	Salesperson string          `json:"vendedor"`
}

// MarkPaidRequest registra el pago de un cobro pendiente.
type MarkPaidRequest struct {
	PaymentDate   string `json:"fecha_pago"` // YYYY-MM-DD; vacío = hoy
	PaymentMethod string `json:"forma_pago"` // Transferencia, Efectivo, Cheque, Otro
}

// SalesUploadRequest metadatos de la carga masiva de ventas: cliente y
// vendedor aplican a todas las filas del archivo.
type SalesUploadRequest struct {
	Client      string `json:"cliente" form:"cliente"`
	Salesperson string `json:"vendedor" form:"vendedor"`
}
