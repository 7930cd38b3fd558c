package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Autopartes-api/internal/application/dto"
	"github.com/jhoicas/Autopartes-api/internal/application/usecase"
	"github.com/jhoicas/Autopartes-api/internal/domain"
	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
	"github.com/jhoicas/Autopartes-api/internal/domain/stock"
)

// memPartRepo fake en memoria del puerto PartRepository.
type memPartRepo struct {
	parts map[string]*entity.Part
}

func newMemPartRepo() *memPartRepo {
	return &memPartRepo{parts: map[string]*entity.Part{}}
}

func (r *memPartRepo) Create(_ context.Context, p *entity.Part) error {
	for _, existing := range r.parts {
		if existing.PartNumber == p.PartNumber {
			return domain.ErrDuplicate
		}
	}
	r.parts[p.ID] = p
	return nil
}

func (r *memPartRepo) GetByID(_ context.Context, id string) (*entity.Part, error) {
	return r.parts[id], nil
}

func (r *memPartRepo) GetByPartNumber(_ context.Context, partNumber string) (*entity.Part, error) {
	for _, p := range r.parts {
		if p.PartNumber == partNumber {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memPartRepo) GetForUpdate(_ context.Context, id string) (*entity.Part, error) {
	return r.parts[id], nil
}

func (r *memPartRepo) List(_ context.Context, _ string) ([]*entity.Part, error) {
	out := make([]*entity.Part, 0, len(r.parts))
	for _, p := range r.parts {
		out = append(out, p)
	}
	return out, nil
}

func (r *memPartRepo) ListLowStock(_ context.Context) ([]*entity.Part, error) {
	var out []*entity.Part
	for _, p := range r.parts {
		if p.Quantity <= p.MinimumStock {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPartRepo) Update(_ context.Context, p *entity.Part) error {
	r.parts[p.ID] = p
	return nil
}

func (r *memPartRepo) UpdateQuantity(_ context.Context, id string, quantity int) error {
	if p, ok := r.parts[id]; ok {
		p.Quantity = quantity
	}
	return nil
}

func (r *memPartRepo) Delete(_ context.Context, id string) (bool, error) {
	_, ok := r.parts[id]
	delete(r.parts, id)
	return ok, nil
}

func validCreateRequest() dto.CreatePartRequest {
	return dto.CreatePartRequest{
		Name:         "Pastillas de freno",
		PartNumber:   "FRN-210",
		Description:  "Juego delantero",
		Quantity:     12,
		MinimumStock: 4,
		UnitPrice:    decimal.NewFromInt(85000),
		Location:     "Estante B3",
	}
}

func TestPartCreate_AsignaIDYEstadoDeStock(t *testing.T) {
	uc := usecase.NewPartUseCase(newMemPartRepo())

	out, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "FRN-210", out.PartNumber)
	assert.Equal(t, stock.StatusInStock, out.StockStatus)
	assert.False(t, out.CreatedAt.IsZero())
}

func TestPartCreate_PartNumberDuplicado_EsErrorDeValidacion(t *testing.T) {
	repo := newMemPartRepo()
	uc := usecase.NewPartUseCase(repo)

	_, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), validCreateRequest())
	require.Error(t, err)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve, "el duplicado debe ser error de validación, no 500")
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, "part_number", ve.Fields[0].Field)
}

func TestPartCreate_CamposRequeridos_SeAcumulan(t *testing.T) {
	uc := usecase.NewPartUseCase(newMemPartRepo())

	_, err := uc.Create(context.Background(), dto.CreatePartRequest{
		Quantity:  -1,
		UnitPrice: decimal.NewFromInt(-5),
	})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)

	fields := make([]string, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		fields = append(fields, f.Field)
	}
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "part_number")
	assert.Contains(t, fields, "quantity")
	assert.Contains(t, fields, "unit_price")
}

func TestPartUpdate_ParcialSoloCambiaLoEnviado(t *testing.T) {
	repo := newMemPartRepo()
	uc := usecase.NewPartUseCase(repo)

	created, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	newLocation := "Estante C1"
	out, err := uc.Update(context.Background(), created.ID, dto.UpdatePartRequest{
		Location: &newLocation,
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "Estante C1", out.Location)
	assert.Equal(t, created.Name, out.Name, "los campos no enviados no deben cambiar")
	assert.Equal(t, created.PartNumber, out.PartNumber)
	assert.Equal(t, created.Quantity, out.Quantity)
}

func TestPartUpdate_CantidadDirectaSoloCambiaCantidad(t *testing.T) {
	repo := newMemPartRepo()
	uc := usecase.NewPartUseCase(repo)

	created, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	qty := 42
	out, err := uc.Update(context.Background(), created.ID, dto.UpdatePartRequest{
		Quantity: &qty,
	})
	require.NoError(t, err)

	assert.Equal(t, 42, out.Quantity)
	assert.Equal(t, created.Name, out.Name)
	assert.Equal(t, created.Location, out.Location)
	assert.Equal(t, created.UnitPrice.String(), out.UnitPrice.String())

	negative := -1
	_, err = uc.Update(context.Background(), created.ID, dto.UpdatePartRequest{
		Quantity: &negative,
	})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "quantity", ve.Fields[0].Field)
}

func TestPartUpdate_PartNumberOcupado_EsErrorDeValidacion(t *testing.T) {
	repo := newMemPartRepo()
	uc := usecase.NewPartUseCase(repo)

	first, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	second := validCreateRequest()
	second.PartNumber = "FRN-211"
	other, err := uc.Create(context.Background(), second)
	require.NoError(t, err)

	taken := first.PartNumber
	_, err = uc.Update(context.Background(), other.ID, dto.UpdatePartRequest{
		PartNumber: &taken,
	})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "part_number", ve.Fields[0].Field)
}

func TestPartUpdate_Inexistente_RetornaNil(t *testing.T) {
	uc := usecase.NewPartUseCase(newMemPartRepo())

	name := "otro"
	out, err := uc.Update(context.Background(), "no-existe", dto.UpdatePartRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out, "el handler traduce nil a 404")
}

func TestPartDelete_Inexistente_RetornaNotFound(t *testing.T) {
	uc := usecase.NewPartUseCase(newMemPartRepo())

	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPartListLowStock_IncluyeAgotadosYEnElMinimo(t *testing.T) {
	repo := newMemPartRepo()
	now := time.Now()
	repo.parts["a"] = &entity.Part{ID: "a", Name: "A", PartNumber: "A-1", Quantity: 0, MinimumStock: 5, CreatedAt: now, UpdatedAt: now}
	repo.parts["b"] = &entity.Part{ID: "b", Name: "B", PartNumber: "B-1", Quantity: 5, MinimumStock: 5, CreatedAt: now, UpdatedAt: now}
	repo.parts["c"] = &entity.Part{ID: "c", Name: "C", PartNumber: "C-1", Quantity: 9, MinimumStock: 5, CreatedAt: now, UpdatedAt: now}
	uc := usecase.NewPartUseCase(repo)

	out, err := uc.ListLowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, p := range out {
		assert.NotEqual(t, "c", p.ID)
		assert.NotEqual(t, stock.StatusInStock, p.StockStatus)
	}
}
