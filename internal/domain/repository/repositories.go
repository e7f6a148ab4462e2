// Package repository define los puertos de persistencia sobre la planilla.
//
// Hay dos modos de escritura, elegidos por convención según la hoja:
// OverwriteAll (reemplazo total, para hojas que se editan: Clientes, Gastos,
// Productos, Cobros) y Append (hojas puramente aditivas: Movimientos, Socios).
// Una fila que no esté en el conjunto pasado a OverwriteAll se pierde.
package repository

import (
	"context"

	"github.com/csm-sistemas/controlfin-api/internal/domain/entity"
)

// ClientRepository acceso a la hoja Clientes.
type ClientRepository interface {
	List(ctx context.Context) ([]entity.Client, error)
	Append(ctx context.Context, clients ...entity.Client) error
}

// ExpenseRepository acceso a la hoja Gastos.
type ExpenseRepository interface {
	List(ctx context.Context) ([]entity.Expense, error)
	Append(ctx context.Context, expenses ...entity.Expense) error
	OverwriteAll(ctx context.Context, expenses []entity.Expense) error
}

// ProductRepository acceso a la hoja Productos. No hay Append: los productos
// se mutan siempre por reemplazo total de la hoja.
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	OverwriteAll(ctx context.Context, products []entity.Product) error
}

// MovementRepository acceso a la hoja Movimientos (append-only).
type MovementRepository interface {
	List(ctx context.Context) ([]entity.Movement, error)
	Append(ctx context.Context, movements ...entity.Movement) error
}

// ReceivableRepository acceso a la hoja Cobros: Append al registrar ventas,
// OverwriteAll al marcar pagos o editar el historial.
type ReceivableRepository interface {
	List(ctx context.Context) ([]entity.Receivable, error)
	Append(ctx context.Context, receivables ...entity.Receivable) error
	OverwriteAll(ctx context.Context, receivables []entity.Receivable) error
}

// PartnerRepository acceso a la hoja Socios (append-only).
type PartnerRepository interface {
	List(ctx context.Context) ([]entity.PartnerContribution, error)
	Append(ctx context.Context, contributions ...entity.PartnerContribution) error
}
