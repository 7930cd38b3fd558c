package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Autopartes-api/internal/application/dto"
	"github.com/jhoicas/Autopartes-api/internal/domain"
	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías. Name es único.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create valida y persiste una nueva categoría. Un nombre repetido se reporta
// como error de validación de campo.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	v := domain.NewValidation()
	if in.Name == "" {
		v.Add("name", "es requerido")
	} else {
		existing, err := uc.repo.GetByName(ctx, in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			v.Add("name", "ya existe")
		}
	}
	if v.HasErrors() {
		return nil, v
	}
	now := time.Now()
	c := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		if err == domain.ErrDuplicate {
			return nil, domain.NewValidation().Add("name", "ya existe")
		}
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toCategoryResponse(c), nil
}

// Update aplica una actualización parcial a la categoría.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	v := domain.NewValidation()
	if in.Name != nil {
		if *in.Name == "" {
			v.Add("name", "no puede ser vacío")
		} else if *in.Name != c.Name {
			existing, err := uc.repo.GetByName(ctx, *in.Name)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				v.Add("name", "ya existe")
			}
		}
	}
	if v.HasErrors() {
		return nil, v
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		if err == domain.ErrDuplicate {
			return nil, domain.NewValidation().Add("name", "ya existe")
		}
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// List lista categorías con búsqueda opcional.
func (uc *CategoryUseCase) List(ctx context.Context, search string) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx, search)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// Delete elimina una categoría. Devuelve ErrNotFound si no existía.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	existed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return domain.ErrNotFound
	}
	return nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
