package repository

import (
	"context"

	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
)

// PurchaseOrderRepository define el puerto de persistencia para PurchaseOrder y sus líneas.
type PurchaseOrderRepository interface {
	// NextNumber devuelve el siguiente consecutivo de orden de compra (secuencia de BD).
	NextNumber(ctx context.Context) (int64, error)
	// Create persiste la orden con sus líneas.
	Create(ctx context.Context, order *entity.PurchaseOrder) error
	GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	List(ctx context.Context, search string) ([]*entity.PurchaseOrder, error)
	UpdateStatus(ctx context.Context, id, status string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
