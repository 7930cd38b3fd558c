package dto

import "github.com/jhoicas/Autopartes-api/internal/domain"

// ErrorResponse cuerpo de error HTTP. Fields solo se llena en errores de validación.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}
