package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementación del puerto ReportRepository sobre PostgreSQL.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Acepta pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// Create persiste los metadatos de un reporte generado.
func (r *ReportRepo) Create(ctx context.Context, rep *entity.Report) error {
	query := `
		INSERT INTO reports (id, name, type, date_range, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, rep.ID, rep.Name, rep.Type, rep.DateRange, rep.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// GetByID obtiene un reporte por ID.
func (r *ReportRepo) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	query := `SELECT id, name, type, date_range, created_at FROM reports WHERE id = $1`
	var rep entity.Report
	err := r.q.QueryRow(ctx, query, id).Scan(&rep.ID, &rep.Name, &rep.Type, &rep.DateRange, &rep.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get report: %w", err)
	}
	return &rep, nil
}

// List lista los reportes generados, más recientes primero.
func (r *ReportRepo) List(ctx context.Context) ([]*entity.Report, error) {
	query := `SELECT id, name, type, date_range, created_at FROM reports ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()
	var list []*entity.Report
	for rows.Next() {
		var rep entity.Report
		if err := rows.Scan(&rep.ID, &rep.Name, &rep.Type, &rep.DateRange, &rep.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		list = append(list, &rep)
	}
	return list, rows.Err()
}

// Delete elimina los metadatos de un reporte y reporta si existía.
func (r *ReportRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete report: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
