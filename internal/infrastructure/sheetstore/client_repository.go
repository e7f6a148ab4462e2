package sheetstore

import (
	"context"

	"github.com/csm-sistemas/controlfin-api/internal/domain/entity"
	"github.com/csm-sistemas/controlfin-api/internal/domain/schema"
)

// ClientRepository persistencia de la hoja Clientes.
type ClientRepository struct {
	store *Store
}

// NewClientRepository construye el repositorio.
func NewClientRepository(store *Store) *ClientRepository {
	return &ClientRepository{store: store}
}

// List devuelve todos los clientes.
func (r *ClientRepository) List(ctx context.Context) ([]entity.Client, error) {
	rows, err := r.store.Reader().Read(ctx, schema.TableClients)
	if err != nil {
		return nil, err
	}
	clients := make([]entity.Client, 0, len(rows))
	for _, row := range rows {
		clients = append(clients, entity.Client{
			Name:     row.Get("Nombre"),
			TaxID:    row.Get("CUIT"),
			Phone:    row.Get("Telefono"),
			Email:    row.Get("Email"),
			Address:  row.Get("Direccion"),
			Locality: row.Get("Localidad"),
			Notes:    row.Get("Notas"),
		})
	}
	return clients, nil
}

// Append agrega clientes al final de la hoja.
func (r *ClientRepository) Append(ctx context.Context, clients ...entity.Client) error {
	rows := make([]Row, len(clients))
	for i, c := range clients {
		rows[i] = clientToRow(c)
	}
	return r.store.Writer().Append(ctx, schema.TableClients, rows)
}

func clientToRow(c entity.Client) Row {
	return Row{
		"Nombre":    c.Name,
		"CUIT":      c.TaxID,
		"Telefono":  c.Phone,
		"Email":     c.Email,
		"Direccion": c.Address,
		"Localidad": c.Locality,
		"Notas":     c.Notes,
	}
}
