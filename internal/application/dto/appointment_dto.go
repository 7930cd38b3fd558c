package dto

import "time"

// CreateAppointmentRequest entrada para agendar una cita de servicio.
type CreateAppointmentRequest struct {
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	Vehicle       string    `json:"vehicle"`
	ServiceType   string    `json:"service_type"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	Notes         string    `json:"notes"`
}

// UpdateAppointmentRequest entrada parcial para actualizar una cita.
type UpdateAppointmentRequest struct {
	CustomerName  *string    `json:"customer_name"`
	CustomerPhone *string    `json:"customer_phone"`
	Vehicle       *string    `json:"vehicle"`
	ServiceType   *string    `json:"service_type"`
	ScheduledAt   *time.Time `json:"scheduled_at"`
	Status        *string    `json:"status"`
	Notes         *string    `json:"notes"`
}

// AppointmentResponse salida de una cita.
type AppointmentResponse struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	Vehicle       string    `json:"vehicle"`
	ServiceType   string    `json:"service_type"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
