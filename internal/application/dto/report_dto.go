package dto

import "time"

// CreateReportRequest entrada para registrar los metadatos de un reporte generado.
type CreateReportRequest struct {
	Name      string `json:"name"`
	Type      string `json:"type"` // inventory | low-stock | movements | supplier-analysis
	DateRange string `json:"date_range"`
}

// ReportResponse salida de los metadatos de un reporte.
type ReportResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	DateRange string    `json:"date_range"`
	CreatedAt time.Time `json:"created_at"`
}
