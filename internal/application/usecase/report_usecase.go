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

// reportTypes tipos de reporte válidos.
var reportTypes = map[string]bool{
	entity.ReportTypeInventory:        true,
	entity.ReportTypeLowStock:         true,
	entity.ReportTypeMovements:        true,
	entity.ReportTypeSupplierAnalysis: true,
}

// ReportUseCase casos de uso para los metadatos de reportes generados
// (registro de auditoría; el contenido del archivo no se guarda).
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// Create registra los metadatos de un reporte generado.
func (uc *ReportUseCase) Create(ctx context.Context, in dto.CreateReportRequest) (*dto.ReportResponse, error) {
	v := domain.NewValidation()
	if in.Name == "" {
		v.Add("name", "es requerido")
	}
	if !reportTypes[in.Type] {
		v.Add("type", "debe ser inventory, low-stock, movements o supplier-analysis")
	}
	if v.HasErrors() {
		return nil, v
	}
	rep := &entity.Report{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Type:      in.Type,
		DateRange: in.DateRange,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, rep); err != nil {
		return nil, err
	}
	return toReportResponse(rep), nil
}

// GetByID obtiene los metadatos de un reporte.
func (uc *ReportUseCase) GetByID(ctx context.Context, id string) (*dto.ReportResponse, error) {
	rep, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, nil
	}
	return toReportResponse(rep), nil
}

// List lista los reportes generados, más recientes primero.
func (uc *ReportUseCase) List(ctx context.Context) ([]dto.ReportResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReportResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReportResponse(r))
	}
	return items, nil
}

// Delete elimina los metadatos de un reporte. Devuelve ErrNotFound si no existía.
func (uc *ReportUseCase) Delete(ctx context.Context, id string) error {
	existed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return domain.ErrNotFound
	}
	return nil
}

func toReportResponse(r *entity.Report) *dto.ReportResponse {
	if r == nil {
		return nil
	}
	return &dto.ReportResponse{
		ID:        r.ID,
		Name:      r.Name,
		Type:      r.Type,
		DateRange: r.DateRange,
		CreatedAt: r.CreatedAt,
	}
}
