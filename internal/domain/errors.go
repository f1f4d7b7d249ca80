package domain

import (
	"errors"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// StatusError error de regla de negocio: el almacén u otra validación devolvió un estado distinto de SUCCESS.
// El mensaje que ve el cliente es Status; Data viaja opcionalmente en el sobre de respuesta.
type StatusError struct {
	Status string
	Data   any
}

func (e *StatusError) Error() string { return e.Status }

// NewStatusError construye un error de negocio con el estado indicado.
func NewStatusError(status string) *StatusError {
	return &StatusError{Status: status}
}

// NewStatusErrorWithData construye un error de negocio con datos adicionales.
func NewStatusErrorWithData(status string, data any) *StatusError {
	return &StatusError{Status: status, Data: data}
}

// IsStatus indica si err es un StatusError con el estado dado.
func IsStatus(err error, status string) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == status
}

// ValidationError entrada inválida detectada antes de ejecutar un flujo; Fields es campo -> mensajes.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "validación fallida: " + strings.Join(keys, ", ")
}

// NewValidationError crea un ValidationError para un único campo.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string][]string{field: {msg}}}
}
