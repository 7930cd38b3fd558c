package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas de solo lectura para dashboard y reportes.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// Overview devuelve los contadores generales del inventario.
// Usa COALESCE para devolver cero cuando no hay filas.
func (r *StatsRepo) Overview(ctx context.Context) (*repository.StatsResult, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM parts)                                                   AS total_parts,
	    (SELECT COALESCE(SUM(quantity), 0) FROM parts)                                 AS total_units,
	    (SELECT COALESCE(SUM(quantity * unit_price), 0) FROM parts)                    AS inventory_value,
	    (SELECT COUNT(*) FROM parts WHERE quantity <= minimum_stock)                   AS low_stock_count,
	    (SELECT COUNT(*) FROM parts WHERE quantity = 0)                                AS out_of_stock,
	    (SELECT COUNT(*) FROM suppliers)                                               AS supplier_count,
	    (SELECT COUNT(*) FROM categories)                                              AS category_count,
	    (SELECT COUNT(*) FROM movements WHERE created_at >= date_trunc('day', now()))  AS movements_today,
	    (SELECT COUNT(*) FROM purchase_orders WHERE status IN ('pending', 'ordered'))  AS pending_orders`

	var s repository.StatsResult
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.TotalParts, &s.TotalUnits, &s.InventoryValue, &s.LowStockCount, &s.OutOfStock,
		&s.SupplierCount, &s.CategoryCount, &s.MovementsToday, &s.PendingOrders,
	)
	if err != nil {
		return nil, fmt.Errorf("stats.Overview: %w", err)
	}
	return &s, nil
}

// SupplierBreakdown agrupa repuestos, unidades y valor de inventario por proveedor.
// Los repuestos sin proveedor se consolidan en el grupo "Sin proveedor".
func (r *StatsRepo) SupplierBreakdown(ctx context.Context) ([]repository.SupplierStatsRow, error) {
	const query = `
	SELECT
	    COALESCE(s.id::TEXT, '')                        AS supplier_id,
	    COALESCE(s.name, 'Sin proveedor')               AS supplier_name,
	    COUNT(p.id)                                     AS part_count,
	    COALESCE(SUM(p.quantity), 0)                    AS total_units,
	    COALESCE(SUM(p.quantity * p.unit_price), 0)     AS inventory_value
	FROM parts p
	LEFT JOIN suppliers s ON s.id = p.supplier_id
	GROUP BY s.id, s.name
	ORDER BY inventory_value DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stats.SupplierBreakdown: %w", err)
	}
	defer rows.Close()

	var results []repository.SupplierStatsRow
	for rows.Next() {
		var row repository.SupplierStatsRow
		if err := rows.Scan(
			&row.SupplierID, &row.SupplierName, &row.PartCount, &row.TotalUnits, &row.InventoryValue,
		); err != nil {
			return nil, fmt.Errorf("stats.SupplierBreakdown scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
