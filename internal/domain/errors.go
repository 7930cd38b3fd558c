package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

// FieldError describe la falla de validación de un campo concreto.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError acumula todas las fallas de validación de una petición,
// para que el cliente reciba la lista completa de campos y no solo el primero.
type ValidationError struct {
	Fields []FieldError
}

// Error implementa error con un resumen legible.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidInput.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validación: " + strings.Join(parts, "; ")
}

// Add registra una falla de campo y devuelve el mismo error para encadenar.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
	return e
}

// HasErrors indica si se acumuló al menos una falla.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// NewValidation crea un acumulador de fallas de validación vacío.
func NewValidation() *ValidationError {
	return &ValidationError{}
}
