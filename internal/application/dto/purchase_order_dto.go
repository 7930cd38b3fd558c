package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderItemRequest línea de orden de compra.
type PurchaseOrderItemRequest struct {
	PartID   string          `json:"part_id"`
	Quantity int             `json:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}

// CreatePurchaseOrderRequest entrada para crear una orden de compra.
type CreatePurchaseOrderRequest struct {
	SupplierID string                     `json:"supplier_id"`
	Notes      string                     `json:"notes"`
	Items      []PurchaseOrderItemRequest `json:"items"`
}

// UpdatePurchaseOrderStatusRequest cambio de estado de la orden (sin recepción;
// recibir es POST /purchase-orders/:id/receive porque además mueve stock).
type UpdatePurchaseOrderStatusRequest struct {
	Status string `json:"status"` // pending | ordered | cancelled
}

// PurchaseOrderItemResponse línea de orden en la salida.
type PurchaseOrderItemResponse struct {
	ID       string          `json:"id"`
	PartID   string          `json:"part_id"`
	Quantity int             `json:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// PurchaseOrderResponse salida de una orden de compra.
type PurchaseOrderResponse struct {
	ID         string                      `json:"id"`
	Number     string                      `json:"number"`
	SupplierID string                      `json:"supplier_id"`
	Status     string                      `json:"status"`
	Items      []PurchaseOrderItemResponse `json:"items,omitempty"`
	Total      decimal.Decimal             `json:"total"`
	Notes      string                      `json:"notes"`
	CreatedAt  time.Time                   `json:"created_at"`
	UpdatedAt  time.Time                   `json:"updated_at"`
}
