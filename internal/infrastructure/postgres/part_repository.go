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

var _ repository.PartRepository = (*PartRepo)(nil)

const partColumns = `id, name, part_number, description, category_id, supplier_id,
	quantity, minimum_stock, unit_price, location, created_at, updated_at`

// PartRepo implementación del puerto PartRepository sobre PostgreSQL (usable con pool o tx).
type PartRepo struct {
	q Querier
}

// NewPartRepository construye el adaptador de persistencia para repuestos. Pasar pool o tx (Querier).
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

// Create persiste un nuevo repuesto.
func (r *PartRepo) Create(ctx context.Context, part *entity.Part) error {
	query := `
		INSERT INTO parts (` + partColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		part.ID, part.Name, part.PartNumber, part.Description, part.CategoryID, part.SupplierID,
		part.Quantity, part.MinimumStock, part.UnitPrice, part.Location, part.CreatedAt, part.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert part: %w", err)
	}
	return nil
}

// GetByID obtiene un repuesto por ID.
func (r *PartRepo) GetByID(ctx context.Context, id string) (*entity.Part, error) {
	return r.getOne(ctx, `SELECT `+partColumns+` FROM parts WHERE id = $1`, id)
}

// GetByPartNumber obtiene un repuesto por número de parte (único).
func (r *PartRepo) GetByPartNumber(ctx context.Context, partNumber string) (*entity.Part, error) {
	return r.getOne(ctx, `SELECT `+partColumns+` FROM parts WHERE part_number = $1`, partNumber)
}

// GetForUpdate bloquea la fila del repuesto dentro de la transacción actual.
func (r *PartRepo) GetForUpdate(ctx context.Context, id string) (*entity.Part, error) {
	return r.getOne(ctx, `SELECT `+partColumns+` FROM parts WHERE id = $1 FOR UPDATE`, id)
}

func (r *PartRepo) getOne(ctx context.Context, query string, arg any) (*entity.Part, error) {
	var p entity.Part
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.Name, &p.PartNumber, &p.Description, &p.CategoryID, &p.SupplierID,
		&p.Quantity, &p.MinimumStock, &p.UnitPrice, &p.Location, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part: %w", err)
	}
	return &p, nil
}

// List lista repuestos, más recientes primero. search filtra por subcadena
// (case-insensitive) sobre name, part_number y description.
func (r *PartRepo) List(ctx context.Context, search string) ([]*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts`
	var args []any
	if search != "" {
		query += ` WHERE name ILIKE $1 OR part_number ILIKE $1 OR description ILIKE $1`
		args = append(args, likePattern(search))
	}
	query += ` ORDER BY created_at DESC`
	return r.queryMany(ctx, query, args...)
}

// ListLowStock lista repuestos con quantity <= minimum_stock (incluye agotados).
// El predicado se recalcula en cada lectura; no hay materialización.
func (r *PartRepo) ListLowStock(ctx context.Context) ([]*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts
		WHERE quantity <= minimum_stock ORDER BY created_at DESC`
	return r.queryMany(ctx, query)
}

func (r *PartRepo) queryMany(ctx context.Context, query string, args ...any) ([]*entity.Part, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Part
	for rows.Next() {
		var p entity.Part
		if err := rows.Scan(&p.ID, &p.Name, &p.PartNumber, &p.Description, &p.CategoryID, &p.SupplierID,
			&p.Quantity, &p.MinimumStock, &p.UnitPrice, &p.Location, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un repuesto existente, incluida la cantidad.
func (r *PartRepo) Update(ctx context.Context, part *entity.Part) error {
	query := `
		UPDATE parts SET name = $2, part_number = $3, description = $4, category_id = $5,
			supplier_id = $6, quantity = $7, minimum_stock = $8, unit_price = $9,
			location = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		part.ID, part.Name, part.PartNumber, part.Description, part.CategoryID,
		part.SupplierID, part.Quantity, part.MinimumStock, part.UnitPrice,
		part.Location, part.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update part: %w", err)
	}
	return nil
}

// UpdateQuantity fija la cantidad del repuesto (solo el motor de movimientos la usa).
func (r *PartRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	_, err := r.q.Exec(ctx,
		`UPDATE parts SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update part quantity: %w", err)
	}
	return nil
}

// Delete elimina un repuesto por ID y reporta si existía. No cascada a movements:
// las referencias huérfanas quedan (brecha aceptada del modelo).
func (r *PartRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM parts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete part: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
