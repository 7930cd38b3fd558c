package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StatsResult agrega los contadores generales del inventario para el dashboard.
type StatsResult struct {
	TotalParts     int64
	TotalUnits     int64
	InventoryValue decimal.Decimal // SUM(quantity × unit_price)
	LowStockCount  int64           // quantity <= minimum_stock (incluye agotados)
	OutOfStock     int64
	SupplierCount  int64
	CategoryCount  int64
	MovementsToday int64
	PendingOrders  int64
}

// SupplierStatsRow agrega inventario por proveedor para el reporte supplier-analysis.
type SupplierStatsRow struct {
	SupplierID     string
	SupplierName   string
	PartCount      int64
	TotalUnits     int64
	InventoryValue decimal.Decimal
}

// StatsRepository consultas agregadas de solo lectura (dashboard y reportes).
type StatsRepository interface {
	Overview(ctx context.Context) (*StatsResult, error)
	SupplierBreakdown(ctx context.Context) ([]SupplierStatsRow, error)
}
