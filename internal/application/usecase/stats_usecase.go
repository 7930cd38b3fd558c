package usecase

import (
	"context"

	"github.com/jhoicas/Autopartes-api/internal/application/dto"
	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
)

// StatsUseCase contadores agregados del inventario para el dashboard.
type StatsUseCase struct {
	repo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// Overview devuelve los contadores generales en una sola consulta.
func (uc *StatsUseCase) Overview(ctx context.Context) (*dto.StatsResponse, error) {
	res, err := uc.repo.Overview(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StatsResponse{
		TotalParts:     res.TotalParts,
		TotalUnits:     res.TotalUnits,
		InventoryValue: res.InventoryValue,
		LowStockCount:  res.LowStockCount,
		OutOfStock:     res.OutOfStock,
		SupplierCount:  res.SupplierCount,
		CategoryCount:  res.CategoryCount,
		MovementsToday: res.MovementsToday,
		PendingOrders:  res.PendingOrders,
	}, nil
}
