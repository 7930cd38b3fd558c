package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Autopartes-api/internal/domain/stock"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		minimum  int
		want     string
	}{
		{"cero es agotado", 0, 5, stock.StatusOutOfStock},
		{"cero con mínimo cero sigue siendo agotado", 0, 0, stock.StatusOutOfStock},
		{"igual al mínimo es stock bajo", 5, 5, stock.StatusLowStock},
		{"bajo el mínimo es stock bajo", 3, 5, stock.StatusLowStock},
		{"sobre el mínimo es disponible", 6, 5, stock.StatusInStock},
		{"uno con mínimo cero es disponible", 1, 0, stock.StatusInStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stock.Classify(tc.quantity, tc.minimum))
		})
	}
}

func TestApply(t *testing.T) {
	cases := []struct {
		name    string
		current int
		delta   int
		want    int
	}{
		{"entrada suma", 5, 10, 15},
		{"salida resta", 15, -5, 10},
		{"salida exacta deja cero", 5, -5, 0},
		{"salida mayor al stock clava en cero", 3, -9999, 0},
		{"entrada desde cero", 0, 7, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stock.Apply(tc.current, tc.delta))
		})
	}
}
