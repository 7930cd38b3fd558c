package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePartRequest entrada para crear un repuesto.
type CreatePartRequest struct {
	Name         string          `json:"name"`
	PartNumber   string          `json:"part_number"`
	Description  string          `json:"description"`
	CategoryID   *string         `json:"category_id"`
	SupplierID   *string         `json:"supplier_id"`
	Quantity     int             `json:"quantity"`
	MinimumStock int             `json:"minimum_stock"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Location     string          `json:"location"`
}

// UpdatePartRequest entrada para actualizar un repuesto (parcial: solo los campos
// presentes se validan y aplican). Quantity aquí es un ajuste directo sin registro
// de movimiento; el flujo normal de stock va por /movements.
type UpdatePartRequest struct {
	Name         *string          `json:"name"`
	PartNumber   *string          `json:"part_number"`
	Description  *string          `json:"description"`
	CategoryID   *string          `json:"category_id"`
	SupplierID   *string          `json:"supplier_id"`
	Quantity     *int             `json:"quantity"`
	MinimumStock *int             `json:"minimum_stock"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	Location     *string          `json:"location"`
}

// PartResponse salida de un repuesto, con el estado de stock derivado.
type PartResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	PartNumber   string          `json:"part_number"`
	Description  string          `json:"description"`
	CategoryID   *string         `json:"category_id"`
	SupplierID   *string         `json:"supplier_id"`
	Quantity     int             `json:"quantity"`
	MinimumStock int             `json:"minimum_stock"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Location     string          `json:"location"`
	StockStatus  string          `json:"stock_status"` // out-of-stock | low-stock | in-stock
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
