package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is implemented by every failure the inventory core hands back to callers.
// The HTTP layer only needs the category and status to render a response.
type AppError interface {
	error
	Category() string
	HTTPStatus() int
}

const (
	CategoryValidation        = "VALIDATION_ERROR"
	CategoryNotFound          = "NOT_FOUND"
	CategoryInsufficientStock = "INSUFFICIENT_STOCK"
	CategoryStoreUnavailable  = "STORE_UNAVAILABLE"
	CategoryInternal          = "INTERNAL_ERROR"
)

// ValidationError reports a field that failed its constraints. No mutation happened.
type ValidationError struct {
	Op     string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("%s: %s %s", e.Op, e.Field, e.Reason)
}
func (e *ValidationError) Category() string { return CategoryValidation }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest }

// Validation is a shortcut for building a *ValidationError.
func Validation(op, field, reason string) *ValidationError {
	return &ValidationError{Op: op, Field: field, Reason: reason}
}

// ValidationErrors collects every field failure of a single operation.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	return fmt.Sprintf("%s (and %d more)", e[0].Error(), len(e)-1)
}
func (e ValidationErrors) Category() string { return CategoryValidation }
func (e ValidationErrors) HTTPStatus() int  { return http.StatusBadRequest }

// NotFoundError means the product id did not resolve.
type NotFoundError struct {
	Op string
	ID string
}

func (e *NotFoundError) Error() string    { return fmt.Sprintf("%s: product %q not found", e.Op, e.ID) }
func (e *NotFoundError) Category() string { return CategoryNotFound }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound }

// InsufficientStockError is the business rejection of a sale larger than the available stock.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("record sale: insufficient stock for product %q: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}
func (e *InsufficientStockError) Category() string { return CategoryInsufficientStock }
func (e *InsufficientStockError) HTTPStatus() int  { return http.StatusConflict }

// StoreUnavailableError wraps any failure of the underlying store. It is never retried here.
type StoreUnavailableError struct {
	Op  string
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("%s: store unavailable: %v", e.Op, e.Err)
}
func (e *StoreUnavailableError) Category() string { return CategoryStoreUnavailable }
func (e *StoreUnavailableError) HTTPStatus() int  { return http.StatusServiceUnavailable }
func (e *StoreUnavailableError) Unwrap() error    { return e.Err }

// Map translates an error into status code, category and a human readable message.
func Map(err error) (int, string, string) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus(), appErr.Category(), appErr.Error()
	}
	return http.StatusInternalServerError, CategoryInternal, "unexpected error"
}

// IsValidation reports whether err carries a validation failure.
func IsValidation(err error) bool {
	var one *ValidationError
	var many ValidationErrors
	return errors.As(err, &one) || errors.As(err, &many)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsInsufficientStock reports whether err is an InsufficientStockError.
func IsInsufficientStock(err error) bool {
	var is *InsufficientStockError
	return errors.As(err, &is)
}

// IsStoreUnavailable reports whether err is a StoreUnavailableError.
func IsStoreUnavailable(err error) bool {
	var su *StoreUnavailableError
	return errors.As(err, &su)
}
