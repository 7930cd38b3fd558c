package entity

import "time"

// Category agrupa repuestos por tipo (frenos, motor, eléctrico, etc.). Name es único.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
