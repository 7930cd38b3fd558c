package repository

import (
	"context"

	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para Movement (append-only:
// sin Update ni Delete; las lecturas vienen enriquecidas con datos del repuesto).
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	GetByID(ctx context.Context, id string) (*entity.MovementWithPart, error)
	List(ctx context.Context) ([]*entity.MovementWithPart, error)
	ListByPart(ctx context.Context, partID string) ([]*entity.MovementWithPart, error)
}
