package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Autopartes-api/internal/application/dto"
	"github.com/jhoicas/Autopartes-api/internal/application/inventory"
	"github.com/jhoicas/Autopartes-api/internal/application/usecase"
	"github.com/jhoicas/Autopartes-api/internal/domain"
	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes adicionales
// ──────────────────────────────────────────────────────────────────────────────

type memSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (r *memSupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *memSupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}

func (r *memSupplierRepo) List(_ context.Context, _ string) ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		out = append(out, s)
	}
	return out, nil
}

func (r *memSupplierRepo) Update(_ context.Context, s *entity.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *memSupplierRepo) Delete(_ context.Context, id string) (bool, error) {
	_, ok := r.suppliers[id]
	delete(r.suppliers, id)
	return ok, nil
}

type memMovementRepo struct {
	created []*entity.Movement
}

func (r *memMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	r.created = append(r.created, m)
	return nil
}

func (r *memMovementRepo) GetByID(_ context.Context, _ string) (*entity.MovementWithPart, error) {
	return nil, nil
}

func (r *memMovementRepo) List(_ context.Context) ([]*entity.MovementWithPart, error) {
	return nil, nil
}

func (r *memMovementRepo) ListByPart(_ context.Context, _ string) ([]*entity.MovementWithPart, error) {
	return nil, nil
}

type memOrderRepo struct {
	orders map[string]*entity.PurchaseOrder
	seq    int64
}

func (r *memOrderRepo) NextNumber(_ context.Context) (int64, error) {
	r.seq++
	return r.seq, nil
}

func (r *memOrderRepo) Create(_ context.Context, o *entity.PurchaseOrder) error {
	r.orders[o.ID] = o
	return nil
}

func (r *memOrderRepo) GetByID(_ context.Context, id string) (*entity.PurchaseOrder, error) {
	return r.orders[id], nil
}

func (r *memOrderRepo) List(_ context.Context, _ string) ([]*entity.PurchaseOrder, error) {
	out := make([]*entity.PurchaseOrder, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, nil
}

func (r *memOrderRepo) UpdateStatus(_ context.Context, id, status string) (bool, error) {
	o, ok := r.orders[id]
	if !ok {
		return false, nil
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	return true, nil
}

func (r *memOrderRepo) Delete(_ context.Context, id string) (bool, error) {
	_, ok := r.orders[id]
	delete(r.orders, id)
	return ok, nil
}

// memTxRunner satisface inventory.TxRunner y usecase.PurchasingTxRunner sin
// transacción real: ejecuta la función directamente con los repos en memoria.
type memTxRunner struct {
	orderRepo *memOrderRepo
	movRepo   *memMovementRepo
	partRepo  *memPartRepo
}

func (f *memTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	partRepo repository.PartRepository,
) error) error {
	return fn(f.movRepo, f.partRepo)
}

func (f *memTxRunner) RunPurchasing(ctx context.Context, fn func(
	orderRepo repository.PurchaseOrderRepository,
	movRepo repository.MovementRepository,
	partRepo repository.PartRepository,
) error) error {
	return fn(f.orderRepo, f.movRepo, f.partRepo)
}

type orderFixture struct {
	uc       *usecase.PurchaseOrderUseCase
	partRepo *memPartRepo
	movRepo  *memMovementRepo
}

func buildOrderFixture(t *testing.T) orderFixture {
	t.Helper()
	partRepo := newMemPartRepo()
	now := time.Now()
	partRepo.parts["p1"] = &entity.Part{
		ID: "p1", Name: "Bujía", PartNumber: "BUJ-01",
		Quantity: 2, MinimumStock: 4,
		UnitPrice: decimal.NewFromInt(12000),
		CreatedAt: now, UpdatedAt: now,
	}
	supplierRepo := &memSupplierRepo{suppliers: map[string]*entity.Supplier{
		"s1": {ID: "s1", Name: "Importadora Andina", CreatedAt: now, UpdatedAt: now},
	}}
	orderRepo := &memOrderRepo{orders: map[string]*entity.PurchaseOrder{}}
	movRepo := &memMovementRepo{}
	tx := &memTxRunner{orderRepo: orderRepo, movRepo: movRepo, partRepo: partRepo}

	movements := inventory.NewRegisterMovementUseCase(tx, partRepo, movRepo)
	uc := usecase.NewPurchaseOrderUseCase(tx, orderRepo, supplierRepo, partRepo, movements)
	return orderFixture{uc: uc, partRepo: partRepo, movRepo: movRepo}
}

func createOrderRequest() dto.CreatePurchaseOrderRequest {
	return dto.CreatePurchaseOrderRequest{
		SupplierID: "s1",
		Notes:      "reposición mensual",
		Items: []dto.PurchaseOrderItemRequest{
			{PartID: "p1", Quantity: 10, UnitCost: decimal.NewFromInt(9500)},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestPurchaseOrderCreate_NumeraYTotaliza(t *testing.T) {
	f := buildOrderFixture(t)

	out, err := f.uc.Create(context.Background(), createOrderRequest())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, strings.HasPrefix(out.Number, "OC-"), "el consecutivo lleva prefijo OC-")
	assert.Equal(t, entity.PurchaseOrderStatusPending, out.Status)
	require.Len(t, out.Items, 1)
	assert.True(t, out.Items[0].Subtotal.Equal(decimal.NewFromInt(95000)))
	assert.True(t, out.Total.Equal(decimal.NewFromInt(95000)))
}

func TestPurchaseOrderCreate_ProveedorInexistente_EsValidacion(t *testing.T) {
	f := buildOrderFixture(t)

	in := createOrderRequest()
	in.SupplierID = "no-existe"
	_, err := f.uc.Create(context.Background(), in)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "supplier_id", ve.Fields[0].Field)
}

func TestPurchaseOrderReceive_RegistraEntradasYMarcaRecibida(t *testing.T) {
	f := buildOrderFixture(t)

	created, err := f.uc.Create(context.Background(), createOrderRequest())
	require.NoError(t, err)

	out, err := f.uc.Receive(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseOrderStatusReceived, out.Status)

	// 2 existentes + 10 recibidos
	assert.Equal(t, 12, f.partRepo.parts["p1"].Quantity)
	require.Len(t, f.movRepo.created, 1)
	assert.Equal(t, entity.MovementTypeIn, f.movRepo.created[0].Type)
	assert.Equal(t, 10, f.movRepo.created[0].Quantity)
	assert.Contains(t, f.movRepo.created[0].Reason, created.Number)
}

func TestPurchaseOrderReceive_DosVeces_EsConflicto(t *testing.T) {
	f := buildOrderFixture(t)

	created, err := f.uc.Create(context.Background(), createOrderRequest())
	require.NoError(t, err)

	_, err = f.uc.Receive(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = f.uc.Receive(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 12, f.partRepo.parts["p1"].Quantity, "la segunda recepción no debe duplicar stock")
}

func TestPurchaseOrderUpdateStatus_NoPermiteReceived(t *testing.T) {
	f := buildOrderFixture(t)

	created, err := f.uc.Create(context.Background(), createOrderRequest())
	require.NoError(t, err)

	_, err = f.uc.UpdateStatus(context.Background(), created.ID, dto.UpdatePurchaseOrderStatusRequest{
		Status: entity.PurchaseOrderStatusReceived,
	})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve, "received solo se alcanza vía Receive")
}

func TestPurchaseOrderUpdateStatus_OrdenRecibidaEsInmutable(t *testing.T) {
	f := buildOrderFixture(t)

	created, err := f.uc.Create(context.Background(), createOrderRequest())
	require.NoError(t, err)

	_, err = f.uc.Receive(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = f.uc.UpdateStatus(context.Background(), created.ID, dto.UpdatePurchaseOrderStatusRequest{
		Status: entity.PurchaseOrderStatusCancelled,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}
