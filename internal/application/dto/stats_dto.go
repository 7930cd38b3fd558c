package dto

import "github.com/shopspring/decimal"

// StatsResponse contadores generales del inventario para el dashboard.
type StatsResponse struct {
	TotalParts     int64           `json:"total_parts"`
	TotalUnits     int64           `json:"total_units"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	LowStockCount  int64           `json:"low_stock_count"`
	OutOfStock     int64           `json:"out_of_stock"`
	SupplierCount  int64           `json:"supplier_count"`
	CategoryCount  int64           `json:"category_count"`
	MovementsToday int64           `json:"movements_today"`
	PendingOrders  int64           `json:"pending_orders"`
}
