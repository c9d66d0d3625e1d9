package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		category string
	}{
		{"validation", Validation("create product", "title", "is required"), http.StatusBadRequest, CategoryValidation},
		{"validation list", ValidationErrors{Validation("op", "a", "b")}, http.StatusBadRequest, CategoryValidation},
		{"not found", &NotFoundError{Op: "get", ID: "x"}, http.StatusNotFound, CategoryNotFound},
		{"insufficient stock", &InsufficientStockError{ProductID: "x", Requested: 2, Available: 1}, http.StatusConflict, CategoryInsufficientStock},
		{"store unavailable", &StoreUnavailableError{Op: "op", Err: errors.New("down")}, http.StatusServiceUnavailable, CategoryStoreUnavailable},
		{"wrapped", fmt.Errorf("handler: %w", &NotFoundError{Op: "get", ID: "x"}), http.StatusNotFound, CategoryNotFound},
		{"untyped", errors.New("boom"), http.StatusInternalServerError, CategoryInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, category, _ := Map(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.category, category)
		})
	}
}

func TestMap_HidesUntypedMessages(t *testing.T) {
	_, _, msg := Map(errors.New("pq: password authentication failed"))
	assert.Equal(t, "unexpected error", msg)
}

func TestStoreUnavailableUnwraps(t *testing.T) {
	cause := errors.New("dial tcp")
	err := &StoreUnavailableError{Op: "list", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsStoreUnavailable(err))
	assert.False(t, IsValidation(err))
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{Validation("op", "title", "is short"), Validation("op", "unit_price", "is zero")}
	assert.Equal(t, "op: title is short (and 1 more)", errs.Error())
	assert.True(t, IsValidation(errs))
}
