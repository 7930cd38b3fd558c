package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Autopartes-api/internal/application/dto"
	"github.com/jhoicas/Autopartes-api/internal/domain"
	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
	"github.com/jhoicas/Autopartes-api/internal/domain/stock"
)

// RegisterMovementUseCase registra movimientos de inventario de forma transaccional
// (in/out) con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// Es el único camino que muta Part.Quantity.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	partRepo repository.PartRepository
	movRepo  repository.MovementRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	partRepo repository.PartRepository,
	movRepo repository.MovementRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, partRepo: partRepo, movRepo: movRepo}
}

// Register valida la entrada, inicia una transacción, bloquea la fila del
// repuesto, inserta el movimiento y fija la nueva cantidad con piso en cero.
// Una salida mayor al stock disponible deja la cantidad en 0, sin error
// (política permisiva del modelo; el resultado aplicado viaja en la respuesta).
func (uc *RegisterMovementUseCase) Register(ctx context.Context, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	v := domain.NewValidation()
	if in.PartID == "" {
		v.Add("part_id", "es requerido")
	}
	if in.Type != entity.MovementTypeIn && in.Type != entity.MovementTypeOut {
		v.Add("type", "debe ser 'in' o 'out'")
	}
	if in.Quantity <= 0 {
		v.Add("quantity", "debe ser un número positivo")
	}
	if v.HasErrors() {
		return nil, v
	}

	// Verificar existencia antes de abrir la transacción
	part, err := uc.partRepo.GetByID(ctx, in.PartID)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}

	var out *dto.MovementResponse
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		partRepo repository.PartRepository,
	) error {
		mov, locked, newQty, err := applyMovement(ctx, movRepo, partRepo,
			in.PartID, in.Type, in.Quantity, in.Reason, time.Now())
		if err != nil {
			return err
		}
		out = &dto.MovementResponse{
			ID:                mov.ID,
			PartID:            mov.PartID,
			PartName:          locked.Name,
			PartNumber:        locked.PartNumber,
			Type:              mov.Type,
			Quantity:          mov.Quantity,
			Reason:            mov.Reason,
			CreatedAt:         mov.CreatedAt,
			ResultingQuantity: &newQty,
			StockStatus:       stock.Classify(newQty, locked.MinimumStock),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ApplyInTx registra un movimiento usando los repositorios proporcionados
// (misma transacción del caller). Lo usa la recepción de órdenes de compra
// para que todas las entradas y el cambio de estado queden en una sola tx.
func (uc *RegisterMovementUseCase) ApplyInTx(
	ctx context.Context,
	movRepo repository.MovementRepository,
	partRepo repository.PartRepository,
	partID, movType string,
	quantity int,
	reason string,
	now time.Time,
) error {
	_, _, _, err := applyMovement(ctx, movRepo, partRepo, partID, movType, quantity, reason, now)
	return err
}

// applyMovement bloquea la fila del repuesto, inserta el movimiento y fija la
// cantidad resultante (clamp en cero). Devuelve el movimiento, el repuesto
// bloqueado y la cantidad nueva.
func applyMovement(
	ctx context.Context,
	movRepo repository.MovementRepository,
	partRepo repository.PartRepository,
	partID, movType string,
	quantity int,
	reason string,
	now time.Time,
) (*entity.Movement, *entity.Part, int, error) {
	locked, err := partRepo.GetForUpdate(ctx, partID)
	if err != nil {
		return nil, nil, 0, err
	}
	if locked == nil {
		return nil, nil, 0, domain.ErrNotFound
	}

	delta := quantity
	if movType == entity.MovementTypeOut {
		delta = -quantity
	}
	newQty := stock.Apply(locked.Quantity, delta)

	mov := &entity.Movement{
		ID:        uuid.New().String(),
		PartID:    partID,
		Type:      movType,
		Quantity:  quantity,
		Reason:    reason,
		CreatedAt: now,
	}
	if err := movRepo.Create(ctx, mov); err != nil {
		return nil, nil, 0, err
	}
	if err := partRepo.UpdateQuantity(ctx, partID, newQty); err != nil {
		return nil, nil, 0, err
	}
	return mov, locked, newQty, nil
}

// GetByID obtiene un movimiento por ID, enriquecido con datos del repuesto.
func (uc *RegisterMovementUseCase) GetByID(ctx context.Context, id string) (*dto.MovementResponse, error) {
	mov, err := uc.movRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, nil
	}
	return toMovementResponse(mov), nil
}

// List lista movimientos, más recientes primero. partID filtra opcionalmente por repuesto.
func (uc *RegisterMovementUseCase) List(ctx context.Context, partID string) ([]dto.MovementResponse, error) {
	var (
		list []*entity.MovementWithPart
		err  error
	)
	if partID != "" {
		list, err = uc.movRepo.ListByPart(ctx, partID)
	} else {
		list, err = uc.movRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return items, nil
}

func toMovementResponse(m *entity.MovementWithPart) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:         m.ID,
		PartID:     m.PartID,
		PartName:   m.PartName,
		PartNumber: m.PartNumber,
		Type:       m.Type,
		Quantity:   m.Quantity,
		Reason:     m.Reason,
		CreatedAt:  m.CreatedAt,
	}
}
