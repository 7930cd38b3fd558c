package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Autopartes-api/internal/domain"
	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository sobre PostgreSQL.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Acepta pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// NextNumber devuelve el siguiente consecutivo de orden de compra.
func (r *PurchaseOrderRepo) NextNumber(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT nextval('purchase_order_number_seq')`).Scan(&n); err != nil {
		return 0, fmt.Errorf("next purchase order number: %w", err)
	}
	return n, nil
}

// Create persiste la orden con sus líneas. Llamar dentro de transacción
// (TxRunner.RunPurchasing) para que cabecera y líneas queden atómicas.
func (r *PurchaseOrderRepo) Create(ctx context.Context, po *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (id, number, supplier_id, status, total, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		po.ID, po.Number, po.SupplierID, po.Status, po.Total, po.Notes, po.CreatedAt, po.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}
	for _, item := range po.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO purchase_order_items (id, purchase_order_id, part_id, quantity, unit_cost, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID, po.ID, item.PartID, item.Quantity, item.UnitCost, item.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert purchase order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una orden con sus líneas.
func (r *PurchaseOrderRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	query := `
		SELECT id, number, supplier_id, status, total, notes, created_at, updated_at
		FROM purchase_orders WHERE id = $1`
	var po entity.PurchaseOrder
	err := r.q.QueryRow(ctx, query, id).Scan(
		&po.ID, &po.Number, &po.SupplierID, &po.Status, &po.Total, &po.Notes,
		&po.CreatedAt, &po.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	items, err := r.loadItems(ctx, po.ID)
	if err != nil {
		return nil, err
	}
	po.Items = items
	return &po, nil
}

func (r *PurchaseOrderRepo) loadItems(ctx context.Context, orderID string) ([]entity.PurchaseOrderItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, purchase_order_id, part_id, quantity, unit_cost, subtotal
		FROM purchase_order_items WHERE purchase_order_id = $1`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list purchase order items: %w", err)
	}
	defer rows.Close()
	var items []entity.PurchaseOrderItem
	for rows.Next() {
		var it entity.PurchaseOrderItem
		if err := rows.Scan(&it.ID, &it.PurchaseOrderID, &it.PartID, &it.Quantity,
			&it.UnitCost, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan purchase order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// List lista órdenes (sin líneas), más recientes primero, con filtro opcional por número.
func (r *PurchaseOrderRepo) List(ctx context.Context, search string) ([]*entity.PurchaseOrder, error) {
	query := `
		SELECT id, number, supplier_id, status, total, notes, created_at, updated_at
		FROM purchase_orders`
	var args []any
	if search != "" {
		query += ` WHERE number ILIKE $1 OR notes ILIKE $1`
		args = append(args, likePattern(search))
	}
	query += ` ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		var po entity.PurchaseOrder
		if err := rows.Scan(&po.ID, &po.Number, &po.SupplierID, &po.Status, &po.Total, &po.Notes,
			&po.CreatedAt, &po.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, &po)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de la orden y reporta si existía.
func (r *PurchaseOrderRepo) UpdateStatus(ctx context.Context, id, status string) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE purchase_orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return false, fmt.Errorf("update purchase order status: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina la orden; las líneas caen por ON DELETE CASCADE.
func (r *PurchaseOrderRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete purchase order: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
