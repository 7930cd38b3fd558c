package repository

import (
	"context"

	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
)

// AppointmentRepository define el puerto de persistencia para Appointment.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	GetByID(ctx context.Context, id string) (*entity.Appointment, error)
	List(ctx context.Context, search string) ([]*entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id string) (bool, error)
}
