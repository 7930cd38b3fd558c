package repository

import (
	"context"

	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
)

// PartRepository define el puerto de persistencia para Part (DIP).
// Los métodos Get* devuelven (nil, nil) cuando no existe el registro.
type PartRepository interface {
	Create(ctx context.Context, part *entity.Part) error
	GetByID(ctx context.Context, id string) (*entity.Part, error)
	GetByPartNumber(ctx context.Context, partNumber string) (*entity.Part, error)
	// GetForUpdate bloquea la fila del repuesto (SELECT FOR UPDATE); usar dentro de transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Part, error)
	// List devuelve todos los repuestos, más recientes primero. search filtra por
	// subcadena (case-insensitive) sobre name, part_number y description.
	List(ctx context.Context, search string) ([]*entity.Part, error)
	// ListLowStock devuelve los repuestos con quantity <= minimum_stock (incluye agotados).
	ListLowStock(ctx context.Context) ([]*entity.Part, error)
	Update(ctx context.Context, part *entity.Part) error
	// UpdateQuantity fija la cantidad resultante de un movimiento (solo el motor de inventario la usa).
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	// Delete elimina el repuesto y reporta si existía.
	Delete(ctx context.Context, id string) (bool, error)
}
