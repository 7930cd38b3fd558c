package entity

import "time"

// Estados válidos de una cita de servicio.
const (
	AppointmentStatusScheduled  = "scheduled"
	AppointmentStatusInProgress = "in-progress"
	AppointmentStatusCompleted  = "completed"
	AppointmentStatusCancelled  = "cancelled"
)

// Appointment es una cita de servicio vehicular agendada en el taller.
type Appointment struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	Vehicle       string // placa o descripción del vehículo
	ServiceType   string
	ScheduledAt   time.Time
	Status        string // scheduled, in-progress, completed, cancelled
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
