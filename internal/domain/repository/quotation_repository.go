package repository

import (
	"context"

	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
)

// QuotationRepository define el puerto de persistencia para Quotation y sus líneas.
type QuotationRepository interface {
	// NextNumber devuelve el siguiente consecutivo de cotización (secuencia de BD).
	NextNumber(ctx context.Context) (int64, error)
	// Create persiste la cotización con sus líneas.
	Create(ctx context.Context, quotation *entity.Quotation) error
	GetByID(ctx context.Context, id string) (*entity.Quotation, error)
	List(ctx context.Context, search string) ([]*entity.Quotation, error)
	UpdateStatus(ctx context.Context, id, status string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
