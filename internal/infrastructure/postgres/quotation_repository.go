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

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// QuotationRepo implementación del puerto QuotationRepository sobre PostgreSQL.
type QuotationRepo struct {
	q Querier
}

// NewQuotationRepository construye el adaptador. Acepta pool o tx (Querier).
func NewQuotationRepository(q Querier) *QuotationRepo {
	return &QuotationRepo{q: q}
}

// NextNumber devuelve el siguiente consecutivo de cotización.
func (r *QuotationRepo) NextNumber(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT nextval('quotation_number_seq')`).Scan(&n); err != nil {
		return 0, fmt.Errorf("next quotation number: %w", err)
	}
	return n, nil
}

// Create persiste la cotización con sus líneas. Llamar dentro de transacción
// (TxRunner.RunQuotation) para que cabecera y líneas queden atómicas.
func (r *QuotationRepo) Create(ctx context.Context, qt *entity.Quotation) error {
	query := `
		INSERT INTO quotations (id, number, customer_name, customer_email, status, valid_until, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		qt.ID, qt.Number, qt.CustomerName, qt.CustomerEmail, qt.Status, qt.ValidUntil,
		qt.Total, qt.CreatedAt, qt.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert quotation: %w", err)
	}
	for _, item := range qt.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO quotation_items (id, quotation_id, part_id, description, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			item.ID, qt.ID, item.PartID, item.Description, item.Quantity, item.UnitPrice, item.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert quotation item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una cotización con sus líneas.
func (r *QuotationRepo) GetByID(ctx context.Context, id string) (*entity.Quotation, error) {
	query := `
		SELECT id, number, customer_name, customer_email, status, valid_until, total, created_at, updated_at
		FROM quotations WHERE id = $1`
	var qt entity.Quotation
	err := r.q.QueryRow(ctx, query, id).Scan(
		&qt.ID, &qt.Number, &qt.CustomerName, &qt.CustomerEmail, &qt.Status, &qt.ValidUntil,
		&qt.Total, &qt.CreatedAt, &qt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	items, err := r.loadItems(ctx, qt.ID)
	if err != nil {
		return nil, err
	}
	qt.Items = items
	return &qt, nil
}

func (r *QuotationRepo) loadItems(ctx context.Context, quotationID string) ([]entity.QuotationItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, quotation_id, part_id, description, quantity, unit_price, subtotal
		FROM quotation_items WHERE quotation_id = $1 ORDER BY description`, quotationID)
	if err != nil {
		return nil, fmt.Errorf("list quotation items: %w", err)
	}
	defer rows.Close()
	var items []entity.QuotationItem
	for rows.Next() {
		var it entity.QuotationItem
		if err := rows.Scan(&it.ID, &it.QuotationID, &it.PartID, &it.Description,
			&it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan quotation item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// List lista cotizaciones (sin líneas), más recientes primero, con filtro opcional.
func (r *QuotationRepo) List(ctx context.Context, search string) ([]*entity.Quotation, error) {
	query := `
		SELECT id, number, customer_name, customer_email, status, valid_until, total, created_at, updated_at
		FROM quotations`
	var args []any
	if search != "" {
		query += ` WHERE number ILIKE $1 OR customer_name ILIKE $1`
		args = append(args, likePattern(search))
	}
	query += ` ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quotation
	for rows.Next() {
		var qt entity.Quotation
		if err := rows.Scan(&qt.ID, &qt.Number, &qt.CustomerName, &qt.CustomerEmail, &qt.Status,
			&qt.ValidUntil, &qt.Total, &qt.CreatedAt, &qt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan quotation: %w", err)
		}
		list = append(list, &qt)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de la cotización y reporta si existía.
func (r *QuotationRepo) UpdateStatus(ctx context.Context, id, status string) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE quotations SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return false, fmt.Errorf("update quotation status: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina la cotización; las líneas caen por ON DELETE CASCADE.
func (r *QuotationRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM quotations WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete quotation: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
