package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuotationItemRequest línea de cotización. Si UnitPrice es nil se usa el precio
// del repuesto; si Description es vacía se usa el nombre del repuesto.
type QuotationItemRequest struct {
	PartID      string           `json:"part_id"`
	Description string           `json:"description"`
	Quantity    int              `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
}

// CreateQuotationRequest entrada para crear una cotización.
type CreateQuotationRequest struct {
	CustomerName  string                 `json:"customer_name"`
	CustomerEmail string                 `json:"customer_email"`
	ValidUntil    *time.Time             `json:"valid_until"`
	Items         []QuotationItemRequest `json:"items"`
}

// UpdateQuotationStatusRequest cambio de estado de la cotización.
type UpdateQuotationStatusRequest struct {
	Status string `json:"status"` // draft | sent | accepted | rejected
}

// QuotationItemResponse línea de cotización en la salida.
type QuotationItemResponse struct {
	ID          string          `json:"id"`
	PartID      string          `json:"part_id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// QuotationResponse salida de una cotización.
type QuotationResponse struct {
	ID            string                  `json:"id"`
	Number        string                  `json:"number"`
	CustomerName  string                  `json:"customer_name"`
	CustomerEmail string                  `json:"customer_email"`
	Status        string                  `json:"status"`
	ValidUntil    *time.Time              `json:"valid_until"`
	Items         []QuotationItemResponse `json:"items,omitempty"`
	Total         decimal.Decimal         `json:"total"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}
