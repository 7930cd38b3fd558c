package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Autopartes-api/internal/application/dto"
	"github.com/jhoicas/Autopartes-api/internal/domain"
	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
)

var appointmentStatuses = map[string]bool{
	entity.AppointmentStatusScheduled:  true,
	entity.AppointmentStatusInProgress: true,
	entity.AppointmentStatusCompleted:  true,
	entity.AppointmentStatusCancelled:  true,
}

// AppointmentUseCase casos de uso CRUD para citas de servicio vehicular.
type AppointmentUseCase struct {
	repo repository.AppointmentRepository
}

// NewAppointmentUseCase construye el caso de uso.
func NewAppointmentUseCase(repo repository.AppointmentRepository) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo}
}

// Create valida y agenda una nueva cita en estado scheduled.
func (uc *AppointmentUseCase) Create(ctx context.Context, in dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	v := domain.NewValidation()
	if in.CustomerName == "" {
		v.Add("customer_name", "es requerido")
	}
	if in.Vehicle == "" {
		v.Add("vehicle", "es requerido")
	}
	if in.ServiceType == "" {
		v.Add("service_type", "es requerido")
	}
	if in.ScheduledAt.IsZero() {
		v.Add("scheduled_at", "es requerido")
	}
	if v.HasErrors() {
		return nil, v
	}
	now := time.Now()
	a := &entity.Appointment{
		ID:            uuid.New().String(),
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		Vehicle:       in.Vehicle,
		ServiceType:   in.ServiceType,
		ScheduledAt:   in.ScheduledAt,
		Status:        entity.AppointmentStatusScheduled,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return toAppointmentResponse(a), nil
}

// GetByID obtiene una cita por ID.
func (uc *AppointmentUseCase) GetByID(ctx context.Context, id string) (*dto.AppointmentResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	return toAppointmentResponse(a), nil
}

// Update aplica una actualización parcial a la cita.
func (uc *AppointmentUseCase) Update(ctx context.Context, id string, in dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	v := domain.NewValidation()
	if in.CustomerName != nil && *in.CustomerName == "" {
		v.Add("customer_name", "no puede ser vacío")
	}
	if in.Vehicle != nil && *in.Vehicle == "" {
		v.Add("vehicle", "no puede ser vacío")
	}
	if in.Status != nil && !appointmentStatuses[*in.Status] {
		v.Add("status", "debe ser scheduled, in-progress, completed o cancelled")
	}
	if v.HasErrors() {
		return nil, v
	}
	if in.CustomerName != nil {
		a.CustomerName = *in.CustomerName
	}
	if in.CustomerPhone != nil {
		a.CustomerPhone = *in.CustomerPhone
	}
	if in.Vehicle != nil {
		a.Vehicle = *in.Vehicle
	}
	if in.ServiceType != nil {
		a.ServiceType = *in.ServiceType
	}
	if in.ScheduledAt != nil {
		a.ScheduledAt = *in.ScheduledAt
	}
	if in.Status != nil {
		a.Status = *in.Status
	}
	if in.Notes != nil {
		a.Notes = *in.Notes
	}
	a.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return toAppointmentResponse(a), nil
}

// List lista citas con búsqueda opcional por cliente, vehículo o tipo de servicio.
func (uc *AppointmentUseCase) List(ctx context.Context, search string) ([]dto.AppointmentResponse, error) {
	list, err := uc.repo.List(ctx, search)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AppointmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAppointmentResponse(a))
	}
	return items, nil
}

// Delete elimina una cita. Devuelve ErrNotFound si no existía.
func (uc *AppointmentUseCase) Delete(ctx context.Context, id string) error {
	existed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return domain.ErrNotFound
	}
	return nil
}

func toAppointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AppointmentResponse{
		ID:            a.ID,
		CustomerName:  a.CustomerName,
		CustomerPhone: a.CustomerPhone,
		Vehicle:       a.Vehicle,
		ServiceType:   a.ServiceType,
		ScheduledAt:   a.ScheduledAt,
		Status:        a.Status,
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
