// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// Error is a typed service-layer error carrying the HTTP status it should be
// reported with. Handlers resolve the status via Status(); anything that is
// not an *Error maps to 500.
type Error struct {
	HTTPStatus int
	Detail     string
}

func (e *Error) Error() string { return e.Detail }

// Validacion: missing or invalid required fields (400).
func Validacion(format string, args ...interface{}) *Error {
	return &Error{HTTPStatus: http.StatusBadRequest, Detail: fmt.Sprintf(format, args...)}
}

// NoEncontrado: referenced entity absent (404).
func NoEncontrado(format string, args ...interface{}) *Error {
	return &Error{HTTPStatus: http.StatusNotFound, Detail: fmt.Sprintf(format, args...)}
}

// Conflicto: duplicate keys or state that forbids the operation (409).
func Conflicto(format string, args ...interface{}) *Error {
	return &Error{HTTPStatus: http.StatusConflict, Detail: fmt.Sprintf(format, args...)}
}

// StockInsuficiente: lot allocation cannot satisfy the requested quantity.
// Reported as 409 — a client error, not a server fault.
func StockInsuficiente(producto string, faltante int) *Error {
	return &Error{
		HTTPStatus: http.StatusConflict,
		Detail:     fmt.Sprintf("Stock insuficiente para el producto %s (faltan %d unidades)", producto, faltante),
	}
}

// Interno: datastore or other unexpected failure (500).
func Interno(format string, args ...interface{}) *Error {
	return &Error{HTTPStatus: http.StatusInternalServerError, Detail: fmt.Sprintf(format, args...)}
}

// Status returns the HTTP status an error should be reported with.
func Status(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatus
	}
	return http.StatusInternalServerError
}
