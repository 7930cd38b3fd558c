package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part representa un repuesto del inventario del taller.
// Quantity solo se modifica como efecto de registrar un Movement;
// CategoryID y SupplierID son referencias opcionales (nil = sin asignar).
type Part struct {
	ID           string
	Name         string
	PartNumber   string // número de parte, único
	Description  string
	CategoryID   *string
	SupplierID   *string
	Quantity     int
	MinimumStock int
	UnitPrice    decimal.Decimal
	Location     string // ubicación física en bodega (estante, cajón)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
