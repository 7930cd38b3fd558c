package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de una orden de compra.
const (
	PurchaseOrderStatusPending   = "pending"
	PurchaseOrderStatusOrdered   = "ordered"
	PurchaseOrderStatusReceived  = "received"
	PurchaseOrderStatusCancelled = "cancelled"
)

// PurchaseOrder es una orden de compra a un proveedor. Al recibirla se registra
// un movimiento de entrada por cada línea (único camino que muta stock).
type PurchaseOrder struct {
	ID         string
	Number     string // OC-000001, único
	SupplierID string
	Status     string // pending, ordered, received, cancelled
	Items      []PurchaseOrderItem
	Total      decimal.Decimal
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PurchaseOrderItem es una línea de la orden. Subtotal = Quantity × UnitCost.
type PurchaseOrderItem struct {
	ID              string
	PurchaseOrderID string
	PartID          string
	Quantity        int
	UnitCost        decimal.Decimal
	Subtotal        decimal.Decimal
}
