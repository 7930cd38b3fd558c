package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Autopartes-api/internal/application/dto"
	"github.com/jhoicas/Autopartes-api/internal/application/inventory"
	"github.com/jhoicas/Autopartes-api/internal/domain"
	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// PurchaseOrderUseCase casos de uso de órdenes de compra. Recibir una orden
// registra un movimiento de entrada por línea y marca la orden como recibida,
// todo en una sola transacción.
type PurchaseOrderUseCase struct {
	txRunner     PurchasingTxRunner
	repo         repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
	partRepo     repository.PartRepository
	movements    *inventory.RegisterMovementUseCase
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(
	txRunner PurchasingTxRunner,
	repo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
	partRepo repository.PartRepository,
	movements *inventory.RegisterMovementUseCase,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{
		txRunner:     txRunner,
		repo:         repo,
		supplierRepo: supplierRepo,
		partRepo:     partRepo,
		movements:    movements,
	}
}

// Create valida las líneas y persiste la orden con consecutivo OC-NNNNNN en
// estado pending.
func (uc *PurchaseOrderUseCase) Create(ctx context.Context, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	v := domain.NewValidation()
	if in.SupplierID == "" {
		v.Add("supplier_id", "es requerido")
	}
	if len(in.Items) == 0 {
		v.Add("items", "debe tener al menos una línea")
	}
	for i, item := range in.Items {
		field := fmt.Sprintf("items[%d]", i)
		if item.PartID == "" {
			v.Add(field+".part_id", "es requerido")
		}
		if item.Quantity <= 0 {
			v.Add(field+".quantity", "debe ser un número positivo")
		}
		if item.UnitCost.LessThan(decimal.Zero) {
			v.Add(field+".unit_cost", "no puede ser negativo")
		}
	}
	if v.HasErrors() {
		return nil, v
	}

	supplier, err := uc.supplierRepo.GetByID(ctx, in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		v.Add("supplier_id", "proveedor no encontrado")
	}
	for i, item := range in.Items {
		part, err := uc.partRepo.GetByID(ctx, item.PartID)
		if err != nil {
			return nil, err
		}
		if part == nil {
			v.Add(fmt.Sprintf("items[%d].part_id", i), "repuesto no encontrado")
		}
	}
	if v.HasErrors() {
		return nil, v
	}

	now := time.Now()
	orderID := uuid.New().String()
	total := decimal.Zero
	items := make([]entity.PurchaseOrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		subtotal := item.UnitCost.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(subtotal)
		items = append(items, entity.PurchaseOrderItem{
			ID:              uuid.New().String(),
			PurchaseOrderID: orderID,
			PartID:          item.PartID,
			Quantity:        item.Quantity,
			UnitCost:        item.UnitCost,
			Subtotal:        subtotal,
		})
	}

	var order *entity.PurchaseOrder
	err = uc.txRunner.RunPurchasing(ctx, func(
		orderRepo repository.PurchaseOrderRepository,
		_ repository.MovementRepository,
		_ repository.PartRepository,
	) error {
		seq, err := orderRepo.NextNumber(ctx)
		if err != nil {
			return err
		}
		order = &entity.PurchaseOrder{
			ID:         orderID,
			Number:     fmt.Sprintf("OC-%06d", seq),
			SupplierID: in.SupplierID,
			Status:     entity.PurchaseOrderStatusPending,
			Items:      items,
			Total:      total,
			Notes:      in.Notes,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		return orderRepo.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(order), nil
}

// GetByID obtiene una orden con sus líneas.
func (uc *PurchaseOrderUseCase) GetByID(ctx context.Context, id string) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toPurchaseOrderResponse(order), nil
}

// List lista órdenes, más recientes primero, con búsqueda opcional por número.
func (uc *PurchaseOrderUseCase) List(ctx context.Context, search string) ([]dto.PurchaseOrderResponse, error) {
	list, err := uc.repo.List(ctx, search)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseOrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toPurchaseOrderResponse(o))
	}
	return items, nil
}

// UpdateStatus cambia el estado de la orden entre pending, ordered y cancelled.
// El paso a received solo ocurre vía Receive porque además mueve stock.
func (uc *PurchaseOrderUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdatePurchaseOrderStatusRequest) (*dto.PurchaseOrderResponse, error) {
	switch in.Status {
	case entity.PurchaseOrderStatusPending, entity.PurchaseOrderStatusOrdered, entity.PurchaseOrderStatusCancelled:
	default:
		return nil, domain.NewValidation().Add("status", "debe ser pending, ordered o cancelled")
	}
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status == entity.PurchaseOrderStatusReceived {
		return nil, domain.ErrConflict
	}
	existed, err := uc.repo.UpdateStatus(ctx, id, in.Status)
	if err != nil {
		return nil, err
	}
	if !existed {
		return nil, domain.ErrNotFound
	}
	order.Status = in.Status
	order.UpdatedAt = time.Now()
	return toPurchaseOrderResponse(order), nil
}

// Receive marca la orden como recibida y registra un movimiento de entrada por
// cada línea en la misma transacción. Una orden cancelada o ya recibida no se
// puede recibir.
func (uc *PurchaseOrderUseCase) Receive(ctx context.Context, id string) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status == entity.PurchaseOrderStatusReceived ||
		order.Status == entity.PurchaseOrderStatusCancelled {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	err = uc.txRunner.RunPurchasing(ctx, func(
		orderRepo repository.PurchaseOrderRepository,
		movRepo repository.MovementRepository,
		partRepo repository.PartRepository,
	) error {
		reason := "Recepción orden de compra " + order.Number
		for _, item := range order.Items {
			if err := uc.movements.ApplyInTx(ctx, movRepo, partRepo,
				item.PartID, entity.MovementTypeIn, item.Quantity, reason, now); err != nil {
				return err
			}
		}
		existed, err := orderRepo.UpdateStatus(ctx, id, entity.PurchaseOrderStatusReceived)
		if err != nil {
			return err
		}
		if !existed {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	order.Status = entity.PurchaseOrderStatusReceived
	order.UpdatedAt = now
	return toPurchaseOrderResponse(order), nil
}

// Delete elimina una orden con sus líneas. Devuelve ErrNotFound si no existía.
func (uc *PurchaseOrderUseCase) Delete(ctx context.Context, id string) error {
	existed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return domain.ErrNotFound
	}
	return nil
}

func toPurchaseOrderResponse(o *entity.PurchaseOrder) *dto.PurchaseOrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.PurchaseOrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.PurchaseOrderItemResponse{
			ID:       it.ID,
			PartID:   it.PartID,
			Quantity: it.Quantity,
			UnitCost: it.UnitCost,
			Subtotal: it.Subtotal,
		})
	}
	return &dto.PurchaseOrderResponse{
		ID:         o.ID,
		Number:     o.Number,
		SupplierID: o.SupplierID,
		Status:     o.Status,
		Items:      items,
		Total:      o.Total,
		Notes:      o.Notes,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}
