package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

const appointmentColumns = `id, customer_name, customer_phone, vehicle, service_type,
	scheduled_at, status, notes, created_at, updated_at`

// AppointmentRepo implementación del puerto AppointmentRepository sobre PostgreSQL.
type AppointmentRepo struct {
	q Querier
}

// NewAppointmentRepository construye el adaptador. Acepta pool o tx (Querier).
func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

// Create persiste una nueva cita.
func (r *AppointmentRepo) Create(ctx context.Context, a *entity.Appointment) error {
	query := `
		INSERT INTO appointments (` + appointmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.CustomerName, a.CustomerPhone, a.Vehicle, a.ServiceType,
		a.ScheduledAt, a.Status, a.Notes, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

// GetByID obtiene una cita por ID.
func (r *AppointmentRepo) GetByID(ctx context.Context, id string) (*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`
	var a entity.Appointment
	err := r.q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.CustomerName, &a.CustomerPhone, &a.Vehicle, &a.ServiceType,
		&a.ScheduledAt, &a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return &a, nil
}

// List lista citas, más recientes primero, con filtro opcional por subcadena.
func (r *AppointmentRepo) List(ctx context.Context, search string) ([]*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments`
	var args []any
	if search != "" {
		query += ` WHERE customer_name ILIKE $1 OR vehicle ILIKE $1 OR service_type ILIKE $1`
		args = append(args, likePattern(search))
	}
	query += ` ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Appointment
	for rows.Next() {
		var a entity.Appointment
		if err := rows.Scan(&a.ID, &a.CustomerName, &a.CustomerPhone, &a.Vehicle, &a.ServiceType,
			&a.ScheduledAt, &a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza una cita existente.
func (r *AppointmentRepo) Update(ctx context.Context, a *entity.Appointment) error {
	query := `
		UPDATE appointments SET customer_name = $2, customer_phone = $3, vehicle = $4,
			service_type = $5, scheduled_at = $6, status = $7, notes = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.CustomerName, a.CustomerPhone, a.Vehicle, a.ServiceType,
		a.ScheduledAt, a.Status, a.Notes, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	return nil
}

// Delete elimina una cita por ID y reporta si existía.
func (r *AppointmentRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete appointment: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
