package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// Las lecturas hacen LEFT JOIN con parts: si el repuesto fue eliminado,
// los campos de presentación quedan vacíos (referencias huérfanas aceptadas).
const movementSelect = `
	SELECT m.id, m.part_id, m.type, m.quantity, m.reason, m.created_at,
	       COALESCE(p.name, ''), COALESCE(p.part_number, '')
	FROM movements m
	LEFT JOIN parts p ON p.id = m.part_id`

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Acepta pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento (append-only; no existe UPDATE ni DELETE).
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movements (id, part_id, type, quantity, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, m.ID, m.PartID, m.Type, m.Quantity, m.Reason, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID, enriquecido con datos del repuesto.
func (r *MovementRepo) GetByID(ctx context.Context, id string) (*entity.MovementWithPart, error) {
	var m entity.MovementWithPart
	err := r.q.QueryRow(ctx, movementSelect+` WHERE m.id = $1`, id).Scan(
		&m.ID, &m.PartID, &m.Type, &m.Quantity, &m.Reason, &m.CreatedAt,
		&m.PartName, &m.PartNumber,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// List lista todos los movimientos, más recientes primero.
func (r *MovementRepo) List(ctx context.Context) ([]*entity.MovementWithPart, error) {
	return r.queryMany(ctx, movementSelect+` ORDER BY m.created_at DESC`)
}

// ListByPart lista los movimientos de un repuesto, más recientes primero.
func (r *MovementRepo) ListByPart(ctx context.Context, partID string) ([]*entity.MovementWithPart, error) {
	return r.queryMany(ctx, movementSelect+` WHERE m.part_id = $1 ORDER BY m.created_at DESC`, partID)
}

func (r *MovementRepo) queryMany(ctx context.Context, query string, args ...any) ([]*entity.MovementWithPart, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementWithPart
	for rows.Next() {
		var m entity.MovementWithPart
		if err := rows.Scan(&m.ID, &m.PartID, &m.Type, &m.Quantity, &m.Reason, &m.CreatedAt,
			&m.PartName, &m.PartNumber); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
