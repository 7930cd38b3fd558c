package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Autopartes-api/internal/application/dto"
	"github.com/jhoicas/Autopartes-api/internal/domain"
	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var quotationStatuses = map[string]bool{
	entity.QuotationStatusDraft:    true,
	entity.QuotationStatusSent:     true,
	entity.QuotationStatusAccepted: true,
	entity.QuotationStatusRejected: true,
}

// QuotationUseCase casos de uso de cotizaciones. La creación resuelve precio y
// descripción por defecto desde el repuesto y escribe cabecera + líneas en una
// sola transacción.
type QuotationUseCase struct {
	txRunner QuotationTxRunner
	repo     repository.QuotationRepository
	partRepo repository.PartRepository
}

// NewQuotationUseCase construye el caso de uso.
func NewQuotationUseCase(
	txRunner QuotationTxRunner,
	repo repository.QuotationRepository,
	partRepo repository.PartRepository,
) *QuotationUseCase {
	return &QuotationUseCase{txRunner: txRunner, repo: repo, partRepo: partRepo}
}

// Create valida las líneas, resuelve los valores por defecto desde el repuesto
// y persiste la cotización con consecutivo COT-NNNNNN.
func (uc *QuotationUseCase) Create(ctx context.Context, in dto.CreateQuotationRequest) (*dto.QuotationResponse, error) {
	v := domain.NewValidation()
	if in.CustomerName == "" {
		v.Add("customer_name", "es requerido")
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
		if item.UnitPrice != nil && item.UnitPrice.LessThan(decimal.Zero) {
			v.Add(field+".unit_price", "no puede ser negativo")
		}
	}
	if v.HasErrors() {
		return nil, v
	}

	now := time.Now()
	quotationID := uuid.New().String()
	total := decimal.Zero
	items := make([]entity.QuotationItem, 0, len(in.Items))
	for i, item := range in.Items {
		part, err := uc.partRepo.GetByID(ctx, item.PartID)
		if err != nil {
			return nil, err
		}
		if part == nil {
			v.Add(fmt.Sprintf("items[%d].part_id", i), "repuesto no encontrado")
			continue
		}
		price := part.UnitPrice
		if item.UnitPrice != nil {
			price = *item.UnitPrice
		}
		description := item.Description
		if description == "" {
			description = part.Name
		}
		subtotal := price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(subtotal)
		items = append(items, entity.QuotationItem{
			ID:          uuid.New().String(),
			QuotationID: quotationID,
			PartID:      item.PartID,
			Description: description,
			Quantity:    item.Quantity,
			UnitPrice:   price,
			Subtotal:    subtotal,
		})
	}
	if v.HasErrors() {
		return nil, v
	}

	var q *entity.Quotation
	err := uc.txRunner.RunQuotation(ctx, func(repo repository.QuotationRepository) error {
		seq, err := repo.NextNumber(ctx)
		if err != nil {
			return err
		}
		q = &entity.Quotation{
			ID:            quotationID,
			Number:        fmt.Sprintf("COT-%06d", seq),
			CustomerName:  in.CustomerName,
			CustomerEmail: in.CustomerEmail,
			Status:        entity.QuotationStatusDraft,
			ValidUntil:    in.ValidUntil,
			Items:         items,
			Total:         total,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		return repo.Create(ctx, q)
	})
	if err != nil {
		return nil, err
	}
	return toQuotationResponse(q), nil
}

// GetByID obtiene una cotización con sus líneas.
func (uc *QuotationUseCase) GetByID(ctx context.Context, id string) (*dto.QuotationResponse, error) {
	q, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, nil
	}
	return toQuotationResponse(q), nil
}

// List lista cotizaciones, más recientes primero, con búsqueda opcional por
// número o cliente.
func (uc *QuotationUseCase) List(ctx context.Context, search string) ([]dto.QuotationResponse, error) {
	list, err := uc.repo.List(ctx, search)
	if err != nil {
		return nil, err
	}
	items := make([]dto.QuotationResponse, 0, len(list))
	for _, q := range list {
		items = append(items, *toQuotationResponse(q))
	}
	return items, nil
}

// UpdateStatus cambia el estado de la cotización. Una cotización aceptada o
// rechazada ya no cambia de estado.
func (uc *QuotationUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateQuotationStatusRequest) (*dto.QuotationResponse, error) {
	if !quotationStatuses[in.Status] {
		return nil, domain.NewValidation().Add("status", "debe ser draft, sent, accepted o rejected")
	}
	q, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	if q.Status == entity.QuotationStatusAccepted || q.Status == entity.QuotationStatusRejected {
		return nil, domain.ErrConflict
	}
	existed, err := uc.repo.UpdateStatus(ctx, id, in.Status)
	if err != nil {
		return nil, err
	}
	if !existed {
		return nil, domain.ErrNotFound
	}
	q.Status = in.Status
	q.UpdatedAt = time.Now()
	return toQuotationResponse(q), nil
}

// Delete elimina una cotización con sus líneas. Devuelve ErrNotFound si no existía.
func (uc *QuotationUseCase) Delete(ctx context.Context, id string) error {
	existed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return domain.ErrNotFound
	}
	return nil
}

func toQuotationResponse(q *entity.Quotation) *dto.QuotationResponse {
	if q == nil {
		return nil
	}
	items := make([]dto.QuotationItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, dto.QuotationItemResponse{
			ID:          it.ID,
			PartID:      it.PartID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return &dto.QuotationResponse{
		ID:            q.ID,
		Number:        q.Number,
		CustomerName:  q.CustomerName,
		CustomerEmail: q.CustomerEmail,
		Status:        q.Status,
		ValidUntil:    q.ValidUntil,
		Items:         items,
		Total:         q.Total,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}
