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
	"github.com/jhoicas/Autopartes-api/internal/application/usecase"
	"github.com/jhoicas/Autopartes-api/internal/domain"
	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
)

type memQuotationRepo struct {
	quotations map[string]*entity.Quotation
	seq        int64
}

func (r *memQuotationRepo) NextNumber(_ context.Context) (int64, error) {
	r.seq++
	return r.seq, nil
}

func (r *memQuotationRepo) Create(_ context.Context, q *entity.Quotation) error {
	r.quotations[q.ID] = q
	return nil
}

func (r *memQuotationRepo) GetByID(_ context.Context, id string) (*entity.Quotation, error) {
	return r.quotations[id], nil
}

func (r *memQuotationRepo) List(_ context.Context, _ string) ([]*entity.Quotation, error) {
	out := make([]*entity.Quotation, 0, len(r.quotations))
	for _, q := range r.quotations {
		out = append(out, q)
	}
	return out, nil
}

func (r *memQuotationRepo) UpdateStatus(_ context.Context, id, status string) (bool, error) {
	q, ok := r.quotations[id]
	if !ok {
		return false, nil
	}
	q.Status = status
	q.UpdatedAt = time.Now()
	return true, nil
}

func (r *memQuotationRepo) Delete(_ context.Context, id string) (bool, error) {
	_, ok := r.quotations[id]
	delete(r.quotations, id)
	return ok, nil
}

type memQuotationTx struct {
	repo *memQuotationRepo
}

func (f *memQuotationTx) RunQuotation(ctx context.Context, fn func(
	quotationRepo repository.QuotationRepository,
) error) error {
	return fn(f.repo)
}

func buildQuotationUC(t *testing.T) (*usecase.QuotationUseCase, *memQuotationRepo) {
	t.Helper()
	partRepo := newMemPartRepo()
	now := time.Now()
	partRepo.parts["p1"] = &entity.Part{
		ID: "p1", Name: "Amortiguador delantero", PartNumber: "AMR-30",
		Quantity: 8, MinimumStock: 2,
		UnitPrice: decimal.NewFromInt(180000),
		CreatedAt: now, UpdatedAt: now,
	}
	repo := &memQuotationRepo{quotations: map[string]*entity.Quotation{}}
	return usecase.NewQuotationUseCase(&memQuotationTx{repo: repo}, repo, partRepo), repo
}

func TestQuotationCreate_TomaDefaultsDelRepuesto(t *testing.T) {
	uc, _ := buildQuotationUC(t)

	out, err := uc.Create(context.Background(), dto.CreateQuotationRequest{
		CustomerName: "Carlos Pérez",
		Items: []dto.QuotationItemRequest{
			{PartID: "p1", Quantity: 2}, // sin precio ni descripción
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, strings.HasPrefix(out.Number, "COT-"))
	assert.Equal(t, entity.QuotationStatusDraft, out.Status)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Amortiguador delantero", out.Items[0].Description)
	assert.True(t, out.Items[0].UnitPrice.Equal(decimal.NewFromInt(180000)))
	assert.True(t, out.Total.Equal(decimal.NewFromInt(360000)))
}

func TestQuotationCreate_PrecioExplicitoPesaMas(t *testing.T) {
	uc, _ := buildQuotationUC(t)

	price := decimal.NewFromInt(150000)
	out, err := uc.Create(context.Background(), dto.CreateQuotationRequest{
		CustomerName: "Carlos Pérez",
		Items: []dto.QuotationItemRequest{
			{PartID: "p1", Quantity: 1, UnitPrice: &price, Description: "Amortiguador con descuento"},
		},
	})
	require.NoError(t, err)

	assert.True(t, out.Items[0].UnitPrice.Equal(price))
	assert.Equal(t, "Amortiguador con descuento", out.Items[0].Description)
	assert.True(t, out.Total.Equal(price))
}

func TestQuotationCreate_SinLineas_EsValidacion(t *testing.T) {
	uc, _ := buildQuotationUC(t)

	_, err := uc.Create(context.Background(), dto.CreateQuotationRequest{
		CustomerName: "Carlos Pérez",
	})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "items", ve.Fields[0].Field)
}

func TestQuotationCreate_RepuestoInexistente_EsValidacion(t *testing.T) {
	uc, _ := buildQuotationUC(t)

	_, err := uc.Create(context.Background(), dto.CreateQuotationRequest{
		CustomerName: "Carlos Pérez",
		Items: []dto.QuotationItemRequest{
			{PartID: "no-existe", Quantity: 1},
		},
	})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields[0].Field, "part_id")
}

func TestQuotationUpdateStatus_TransicionesTerminalesSonInmutables(t *testing.T) {
	uc, _ := buildQuotationUC(t)

	created, err := uc.Create(context.Background(), dto.CreateQuotationRequest{
		CustomerName: "Carlos Pérez",
		Items:        []dto.QuotationItemRequest{{PartID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	out, err := uc.UpdateStatus(context.Background(), created.ID, dto.UpdateQuotationStatusRequest{
		Status: entity.QuotationStatusSent,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.QuotationStatusSent, out.Status)

	_, err = uc.UpdateStatus(context.Background(), created.ID, dto.UpdateQuotationStatusRequest{
		Status: entity.QuotationStatusAccepted,
	})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), created.ID, dto.UpdateQuotationStatusRequest{
		Status: entity.QuotationStatusDraft,
	})
	assert.ErrorIs(t, err, domain.ErrConflict, "una cotización aceptada no vuelve a draft")
}

func TestQuotationUpdateStatus_EstadoInvalido(t *testing.T) {
	uc, _ := buildQuotationUC(t)

	_, err := uc.UpdateStatus(context.Background(), "cualquiera", dto.UpdateQuotationStatusRequest{
		Status: "archived",
	})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
}
