package entity

// Client representa una fila de la hoja Clientes. El nombre actúa como
// identificador dentro de la hoja (la planilla no lo hace único).
type Client struct {
	Name     string // Nombre, clave de matching contra Cobros.Cliente
	TaxID    string // CUIT
	Phone    string
	Email    string
	Address  string
	Locality string
	Notes    string
}
