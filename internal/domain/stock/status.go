// Package stock contiene las reglas puras de clasificación y ajuste de
// existencias, sin dependencias de persistencia.
package stock

// Estados derivados de stock para un repuesto.
const (
	StatusOutOfStock = "out-of-stock"
	StatusLowStock   = "low-stock"
	StatusInStock    = "in-stock"
)

// Classify clasifica el estado de stock según cantidad y mínimo configurado:
// out-of-stock si quantity = 0; low-stock si quantity <= minimumStock; in-stock en otro caso.
// Un repuesto en cero siempre es out-of-stock sin importar el mínimo.
func Classify(quantity, minimumStock int) string {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case quantity <= minimumStock:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// Apply aplica un delta a la cantidad actual con piso en cero: una salida mayor
// al stock disponible deja la cantidad en 0, nunca negativa.
func Apply(current, delta int) int {
	next := current + delta
	if next < 0 {
		return 0
	}
	return next
}
