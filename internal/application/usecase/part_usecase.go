package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Autopartes-api/internal/application/dto"
	"github.com/jhoicas/Autopartes-api/internal/domain"
	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
	"github.com/jhoicas/Autopartes-api/internal/domain/stock"
)

// PartUseCase casos de uso CRUD para repuestos.
type PartUseCase struct {
	repo repository.PartRepository
}

// NewPartUseCase construye el caso de uso.
func NewPartUseCase(repo repository.PartRepository) *PartUseCase {
	return &PartUseCase{repo: repo}
}

// Create valida todos los campos requeridos y persiste un nuevo repuesto.
// Un part_number ya existente se reporta como error de validación de campo,
// no como 500 genérico.
func (uc *PartUseCase) Create(ctx context.Context, in dto.CreatePartRequest) (*dto.PartResponse, error) {
	v := domain.NewValidation()
	if in.Name == "" {
		v.Add("name", "es requerido")
	}
	if in.PartNumber == "" {
		v.Add("part_number", "es requerido")
	}
	if in.Quantity < 0 {
		v.Add("quantity", "no puede ser negativo")
	}
	if in.MinimumStock < 0 {
		v.Add("minimum_stock", "no puede ser negativo")
	}
	if in.UnitPrice.LessThan(decimal.Zero) {
		v.Add("unit_price", "no puede ser negativo")
	}
	if !v.HasErrors() && in.PartNumber != "" {
		existing, err := uc.repo.GetByPartNumber(ctx, in.PartNumber)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			v.Add("part_number", "ya existe")
		}
	}
	if v.HasErrors() {
		return nil, v
	}

	now := time.Now()
	part := &entity.Part{
		ID:           uuid.New().String(),
		Name:         in.Name,
		PartNumber:   in.PartNumber,
		Description:  in.Description,
		CategoryID:   in.CategoryID,
		SupplierID:   in.SupplierID,
		Quantity:     in.Quantity,
		MinimumStock: in.MinimumStock,
		UnitPrice:    in.UnitPrice,
		Location:     in.Location,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, part); err != nil {
		// Carrera entre el chequeo y el insert: normalizar a error de validación
		if err == domain.ErrDuplicate {
			return nil, domain.NewValidation().Add("part_number", "ya existe")
		}
		return nil, err
	}
	return toPartResponse(part), nil
}

// GetByID obtiene un repuesto por ID.
func (uc *PartUseCase) GetByID(ctx context.Context, id string) (*dto.PartResponse, error) {
	part, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, nil
	}
	return toPartResponse(part), nil
}

// Update aplica una actualización parcial: solo los campos presentes se validan y cambian.
func (uc *PartUseCase) Update(ctx context.Context, id string, in dto.UpdatePartRequest) (*dto.PartResponse, error) {
	part, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, nil
	}

	v := domain.NewValidation()
	if in.Name != nil && *in.Name == "" {
		v.Add("name", "no puede ser vacío")
	}
	if in.PartNumber != nil {
		if *in.PartNumber == "" {
			v.Add("part_number", "no puede ser vacío")
		} else if *in.PartNumber != part.PartNumber {
			existing, err := uc.repo.GetByPartNumber(ctx, *in.PartNumber)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				v.Add("part_number", "ya existe")
			}
		}
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		v.Add("quantity", "no puede ser negativo")
	}
	if in.MinimumStock != nil && *in.MinimumStock < 0 {
		v.Add("minimum_stock", "no puede ser negativo")
	}
	if in.UnitPrice != nil && in.UnitPrice.LessThan(decimal.Zero) {
		v.Add("unit_price", "no puede ser negativo")
	}
	if v.HasErrors() {
		return nil, v
	}

	if in.Name != nil {
		part.Name = *in.Name
	}
	if in.PartNumber != nil {
		part.PartNumber = *in.PartNumber
	}
	if in.Description != nil {
		part.Description = *in.Description
	}
	if in.CategoryID != nil {
		part.CategoryID = in.CategoryID
	}
	if in.SupplierID != nil {
		part.SupplierID = in.SupplierID
	}
	// Ajuste directo de cantidad, sin registro de movimiento
	if in.Quantity != nil {
		part.Quantity = *in.Quantity
	}
	if in.MinimumStock != nil {
		part.MinimumStock = *in.MinimumStock
	}
	if in.UnitPrice != nil {
		part.UnitPrice = *in.UnitPrice
	}
	if in.Location != nil {
		part.Location = *in.Location
	}
	part.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, part); err != nil {
		if err == domain.ErrDuplicate {
			return nil, domain.NewValidation().Add("part_number", "ya existe")
		}
		return nil, err
	}
	return toPartResponse(part), nil
}

// List lista repuestos, más recientes primero, con búsqueda opcional por subcadena.
func (uc *PartUseCase) List(ctx context.Context, search string) ([]dto.PartResponse, error) {
	list, err := uc.repo.List(ctx, search)
	if err != nil {
		return nil, err
	}
	return toPartResponses(list), nil
}

// ListLowStock lista repuestos con cantidad en o bajo el mínimo (incluye agotados).
func (uc *PartUseCase) ListLowStock(ctx context.Context) ([]dto.PartResponse, error) {
	list, err := uc.repo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	return toPartResponses(list), nil
}

// Delete elimina un repuesto por ID. Devuelve ErrNotFound si no existía.
func (uc *PartUseCase) Delete(ctx context.Context, id string) error {
	existed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return domain.ErrNotFound
	}
	return nil
}

func toPartResponses(list []*entity.Part) []dto.PartResponse {
	items := make([]dto.PartResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPartResponse(p))
	}
	return items
}

func toPartResponse(p *entity.Part) *dto.PartResponse {
	if p == nil {
		return nil
	}
	return &dto.PartResponse{
		ID:           p.ID,
		Name:         p.Name,
		PartNumber:   p.PartNumber,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		SupplierID:   p.SupplierID,
		Quantity:     p.Quantity,
		MinimumStock: p.MinimumStock,
		UnitPrice:    p.UnitPrice,
		Location:     p.Location,
		StockStatus:  stock.Classify(p.Quantity, p.MinimumStock),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
