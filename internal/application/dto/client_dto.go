package dto

import "github.com/shopspring/decimal"

// ClientDTO fila del directorio de clientes.
type ClientDTO struct {
	Name     string `json:"nombre"`
	TaxID    string `json:"cuit"`
	Phone    string `json:"telefono"`
	Email    string `json:"email"`
	Address  string `json:"direccion"`
	Locality string `json:"localidad"`
	Notes    string `json:"notas"`
}

// CreateClientRequest alta de un cliente en el directorio.
type CreateClientRequest struct {
	Name     string `json:"nombre"`
	TaxID    string `json:"cuit"`
	Phone    string `json:"telefono"`
	Email    string `json:"email"`
	Address  string `json:"direccion"`
	Locality string `json:"localidad"`
	Notes    string `json:"notas"`
}

// ReceivableDTO fila del estado de cuenta de un cliente.
type ReceivableDTO struct {
	SaleDate      string          `json:"fecha_venta"`
	Amount        decimal.Decimal `json:"monto_total"`
	TermDays      int             `json:"plazo_cobro"`
	DueDate       string          `json:"fecha_vencimiento"`
	Status        string          `json:"estado"` // con vencimiento aplicado: Pagado | Pendiente | Vencido
	PaymentDate   string          `json:"fecha_cobro_real,omitempty"`
	PaymentMethod string          `json:"forma_pago,omitempty"`
}

// ClientSummaryDTO vista 360 de un cliente: contacto, KPIs de facturación y
// estado de cuenta detallado.
type ClientSummaryDTO struct {
	Client                *ClientDTO      `json:"cliente,omitempty"` // nil si no está en el directorio
	Name                  string          `json:"nombre"`
	TotalBilled           decimal.Decimal `json:"total_facturado"`
	TotalPaid             decimal.Decimal `json:"total_pagado"`
	TotalPending          decimal.Decimal `json:"saldo_pendiente"`
	PaymentBehavior       string          `json:"comportamiento_pago"` // Bueno | Regular (Deuda Alta) | Malo (Pagos Vencidos)
	DaysSinceLastPurchase int             `json:"dias_ultima_compra"`
	Receivables           []ReceivableDTO `json:"estado_de_cuenta"`
}
