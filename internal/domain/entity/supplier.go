package entity

import "time"

// Supplier representa un proveedor de repuestos. Referenciado opcionalmente por Part.
type Supplier struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
