package entity

import "time"

// Tipos válidos de movimiento de inventario.
const (
	MovementTypeIn  = "in"
	MovementTypeOut = "out"
)

// Movement registra una entrada o salida de stock para un repuesto.
// Es append-only: no existe actualización ni su cantidad cambia después de creado.
type Movement struct {
	ID        string
	PartID    string
	Type      string // in | out
	Quantity  int    // siempre positivo; el signo lo da Type
	Reason    string
	CreatedAt time.Time
}

// MovementWithPart es la forma de lectura del movimiento, enriquecida con los
// campos de presentación del repuesto. PartName queda vacío si el repuesto fue
// eliminado (las referencias huérfanas no se limpian).
type MovementWithPart struct {
	Movement
	PartName   string
	PartNumber string
}
