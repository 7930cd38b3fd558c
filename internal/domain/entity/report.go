package entity

import "time"

// Tipos válidos de reporte.
const (
	ReportTypeInventory        = "inventory"
	ReportTypeLowStock         = "low-stock"
	ReportTypeMovements        = "movements"
	ReportTypeSupplierAnalysis = "supplier-analysis"
)

// Report es el registro de auditoría de una exportación generada (PDF o CSV).
// No guarda el contenido del archivo, solo los metadatos.
type Report struct {
	ID        string
	Name      string
	Type      string // inventory | low-stock | movements | supplier-analysis
	DateRange string
	CreatedAt time.Time
}
