package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de una cotización.
const (
	QuotationStatusDraft    = "draft"
	QuotationStatusSent     = "sent"
	QuotationStatusAccepted = "accepted"
	QuotationStatusRejected = "rejected"
)

// Quotation es una cotización de repuestos para un cliente del taller.
type Quotation struct {
	ID            string
	Number        string // COT-000001, único
	CustomerName  string
	CustomerEmail string
	Status        string // draft, sent, accepted, rejected
	ValidUntil    *time.Time
	Items         []QuotationItem
	Total         decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// QuotationItem es una línea de la cotización. Subtotal = Quantity × UnitPrice.
type QuotationItem struct {
	ID          string
	QuotationID string
	PartID      string
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}
