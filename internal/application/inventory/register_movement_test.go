package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Autopartes-api/internal/application/dto"
	"github.com/jhoicas/Autopartes-api/internal/application/inventory"
	"github.com/jhoicas/Autopartes-api/internal/domain"
	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
	"github.com/jhoicas/Autopartes-api/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakePartRepo struct {
	parts map[string]*entity.Part
}

func newFakePartRepo(parts ...*entity.Part) *fakePartRepo {
	r := &fakePartRepo{parts: map[string]*entity.Part{}}
	for _, p := range parts {
		r.parts[p.ID] = p
	}
	return r
}

func (r *fakePartRepo) Create(_ context.Context, p *entity.Part) error {
	r.parts[p.ID] = p
	return nil
}

func (r *fakePartRepo) GetByID(_ context.Context, id string) (*entity.Part, error) {
	return r.parts[id], nil
}

func (r *fakePartRepo) GetByPartNumber(_ context.Context, partNumber string) (*entity.Part, error) {
	for _, p := range r.parts {
		if p.PartNumber == partNumber {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePartRepo) GetForUpdate(_ context.Context, id string) (*entity.Part, error) {
	return r.parts[id], nil
}

func (r *fakePartRepo) List(_ context.Context, _ string) ([]*entity.Part, error) {
	out := make([]*entity.Part, 0, len(r.parts))
	for _, p := range r.parts {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePartRepo) ListLowStock(_ context.Context) ([]*entity.Part, error) {
	var out []*entity.Part
	for _, p := range r.parts {
		if p.Quantity <= p.MinimumStock {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePartRepo) Update(_ context.Context, p *entity.Part) error {
	r.parts[p.ID] = p
	return nil
}

func (r *fakePartRepo) UpdateQuantity(_ context.Context, id string, quantity int) error {
	if p, ok := r.parts[id]; ok {
		p.Quantity = quantity
		p.UpdatedAt = time.Now()
	}
	return nil
}

func (r *fakePartRepo) Delete(_ context.Context, id string) (bool, error) {
	_, ok := r.parts[id]
	delete(r.parts, id)
	return ok, nil
}

type fakeMovementRepo struct {
	created []*entity.Movement
	parts   *fakePartRepo
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	r.created = append(r.created, m)
	return nil
}

func (r *fakeMovementRepo) GetByID(_ context.Context, id string) (*entity.MovementWithPart, error) {
	for _, m := range r.created {
		if m.ID == id {
			return r.enrich(m), nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) List(_ context.Context) ([]*entity.MovementWithPart, error) {
	out := make([]*entity.MovementWithPart, 0, len(r.created))
	for i := len(r.created) - 1; i >= 0; i-- {
		out = append(out, r.enrich(r.created[i]))
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByPart(_ context.Context, partID string) ([]*entity.MovementWithPart, error) {
	var out []*entity.MovementWithPart
	for i := len(r.created) - 1; i >= 0; i-- {
		if r.created[i].PartID == partID {
			out = append(out, r.enrich(r.created[i]))
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) enrich(m *entity.Movement) *entity.MovementWithPart {
	out := &entity.MovementWithPart{Movement: *m}
	if r.parts != nil {
		if p := r.parts.parts[m.PartID]; p != nil {
			out.PartName = p.Name
			out.PartNumber = p.PartNumber
		}
	}
	return out
}

// fakeTxRunner ejecuta la función directamente con los repos en memoria;
// no hay transacción real que abrir.
type fakeTxRunner struct {
	movRepo  *fakeMovementRepo
	partRepo *fakePartRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	partRepo repository.PartRepository,
) error) error {
	return fn(f.movRepo, f.partRepo)
}

func buildUseCase(parts ...*entity.Part) (*inventory.RegisterMovementUseCase, *fakePartRepo, *fakeMovementRepo) {
	partRepo := newFakePartRepo(parts...)
	movRepo := &fakeMovementRepo{parts: partRepo}
	tx := &fakeTxRunner{movRepo: movRepo, partRepo: partRepo}
	return inventory.NewRegisterMovementUseCase(tx, partRepo, movRepo), partRepo, movRepo
}

func testPart(id string, quantity, minimum int) *entity.Part {
	now := time.Now()
	return &entity.Part{
		ID:           id,
		Name:         "Filtro de aceite",
		PartNumber:   "FIL-001",
		Quantity:     quantity,
		MinimumStock: minimum,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_EntradaSumaYClasifica(t *testing.T) {
	uc, partRepo, movRepo := buildUseCase(testPart("p1", 5, 8))

	out, err := uc.Register(context.Background(), dto.CreateMovementRequest{
		PartID:   "p1",
		Type:     entity.MovementTypeIn,
		Quantity: 10,
		Reason:   "compra",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	// 5 + 10 = 15, sobre el mínimo de 8 → disponible
	require.NotNil(t, out.ResultingQuantity)
	assert.Equal(t, 15, *out.ResultingQuantity)
	assert.Equal(t, stock.StatusInStock, out.StockStatus)
	assert.Equal(t, 15, partRepo.parts["p1"].Quantity)
	assert.Len(t, movRepo.created, 1)
	assert.Equal(t, entity.MovementTypeIn, movRepo.created[0].Type)
}

func TestRegister_SalidaMayorAlStockClavaEnCero(t *testing.T) {
	uc, partRepo, movRepo := buildUseCase(testPart("p1", 3, 5))

	out, err := uc.Register(context.Background(), dto.CreateMovementRequest{
		PartID:   "p1",
		Type:     entity.MovementTypeOut,
		Quantity: 9999,
		Reason:   "ajuste",
	})
	require.NoError(t, err, "una salida mayor al stock no es error: la cantidad queda en cero")
	require.NotNil(t, out)

	require.NotNil(t, out.ResultingQuantity)
	assert.Equal(t, 0, *out.ResultingQuantity)
	assert.Equal(t, stock.StatusOutOfStock, out.StockStatus)
	assert.Equal(t, 0, partRepo.parts["p1"].Quantity)

	// El movimiento conserva la cantidad pedida, no la aplicada
	require.Len(t, movRepo.created, 1)
	assert.Equal(t, 9999, movRepo.created[0].Quantity)
}

func TestRegister_SalidaNormalResta(t *testing.T) {
	uc, partRepo, _ := buildUseCase(testPart("p1", 10, 3))

	out, err := uc.Register(context.Background(), dto.CreateMovementRequest{
		PartID:   "p1",
		Type:     entity.MovementTypeOut,
		Quantity: 7,
		Reason:   "venta",
	})
	require.NoError(t, err)

	require.NotNil(t, out.ResultingQuantity)
	assert.Equal(t, 3, *out.ResultingQuantity)
	assert.Equal(t, stock.StatusLowStock, out.StockStatus, "3 con mínimo 3 es stock bajo")
	assert.Equal(t, 3, partRepo.parts["p1"].Quantity)
}

func TestRegister_RepuestoInexistente_RetornaNotFound(t *testing.T) {
	uc, _, movRepo := buildUseCase()

	_, err := uc.Register(context.Background(), dto.CreateMovementRequest{
		PartID:   "no-existe",
		Type:     entity.MovementTypeIn,
		Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, movRepo.created, "no debe registrarse ningún movimiento")
}

func TestRegister_EntradaInvalida_AcumulaCampos(t *testing.T) {
	uc, _, _ := buildUseCase()

	_, err := uc.Register(context.Background(), dto.CreateMovementRequest{
		PartID:   "",
		Type:     "transfer",
		Quantity: 0,
	})
	require.Error(t, err)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	fields := make([]string, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		fields = append(fields, f.Field)
	}
	assert.Contains(t, fields, "part_id")
	assert.Contains(t, fields, "type")
	assert.Contains(t, fields, "quantity")
}

func TestRegister_CantidadNegativa_EsInvalida(t *testing.T) {
	uc, partRepo, _ := buildUseCase(testPart("p1", 5, 2))

	_, err := uc.Register(context.Background(), dto.CreateMovementRequest{
		PartID:   "p1",
		Type:     entity.MovementTypeIn,
		Quantity: -4,
	})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, 5, partRepo.parts["p1"].Quantity, "la cantidad no debe cambiar")
}

func TestList_FiltraPorRepuesto(t *testing.T) {
	uc, _, _ := buildUseCase(testPart("p1", 5, 2), testPart("p2", 5, 2))

	for _, partID := range []string{"p1", "p2", "p1"} {
		_, err := uc.Register(context.Background(), dto.CreateMovementRequest{
			PartID:   partID,
			Type:     entity.MovementTypeIn,
			Quantity: 1,
		})
		require.NoError(t, err)
	}

	all, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	onlyP1, err := uc.List(context.Background(), "p1")
	require.NoError(t, err)
	assert.Len(t, onlyP1, 2)
	for _, m := range onlyP1 {
		assert.Equal(t, "p1", m.PartID)
	}
}
