package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/hospitalkit/hospital-api/pkg/errors"
)

func TestStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, apperrors.NotFound("patient", nil).StatusCode())
	assert.Equal(t, http.StatusBadRequest, apperrors.InvalidInput("bad", nil).StatusCode())
	assert.Equal(t, http.StatusConflict, apperrors.SlotConflict("taken").StatusCode())
	assert.Equal(t, http.StatusConflict, apperrors.InvalidTransition("terminal").StatusCode())
	assert.Equal(t, http.StatusInternalServerError, apperrors.Store(stderrors.New("boom")).StatusCode())
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("booking failed: %w", apperrors.SlotConflict("this time slot is already booked"))

	assert.True(t, apperrors.IsSlotConflict(err))
	assert.False(t, apperrors.IsNotFound(err))
	assert.False(t, apperrors.IsSlotConflict(stderrors.New("plain")))
	assert.False(t, apperrors.IsSlotConflict(nil))
}

func TestErrorMessageIncludesCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := apperrors.Store(cause)

	assert.Contains(t, err.Error(), "storage failure")
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, cause, stderrors.Unwrap(err))

	bare := apperrors.SlotConflict("taken")
	assert.Equal(t, "taken", bare.Error())
}
