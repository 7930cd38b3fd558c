package dto

import "time"

// CreateMovementRequest entrada para registrar un movimiento de inventario.
type CreateMovementRequest struct {
	PartID   string `json:"part_id"`
	Type     string `json:"type"` // in | out
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason"`
}

// MovementResponse salida de un movimiento, enriquecida con datos del repuesto
// y el estado resultante de stock (forma lista para reportes).
type MovementResponse struct {
	ID         string    `json:"id"`
	PartID     string    `json:"part_id"`
	PartName   string    `json:"part_name"`
	PartNumber string    `json:"part_number"`
	Type       string    `json:"type"`
	Quantity   int       `json:"quantity"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
	// Estado del repuesto después de aplicar el movimiento; solo en la respuesta de creación.
	ResultingQuantity *int   `json:"resulting_quantity,omitempty"`
	StockStatus       string `json:"stock_status,omitempty"`
}
