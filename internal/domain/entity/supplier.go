package entity

// Supplier proveedor de uno o varios productos.
type Supplier struct {
	ID           string
	Name         string
	ContactEmail string
}
