package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"innkeep/shared/failure"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "bad request",
			err:      failure.BadRequest(errors.New("bad input")),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "bad request from string",
			err:      failure.BadRequestFromString("bad input"),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unauthorized",
			err:      failure.Unauthorized("missing token"),
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "forbidden",
			err:      failure.Forbidden("no access"),
			wantCode: http.StatusForbidden,
		},
		{
			name:     "not found",
			err:      failure.NotFound("booking not found"),
			wantCode: http.StatusNotFound,
		},
		{
			name:     "conflict",
			err:      failure.Conflict("room number is already in use"),
			wantCode: http.StatusConflict,
		},
		{
			name:     "unprocessable entity",
			err:      failure.UnprocessableEntity("booking is already in a terminal state"),
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "internal error",
			err:      failure.InternalError(errors.New("boom")),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.err)
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestNilErrorsPassThrough(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestGetCode_UnknownError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain error")))
}

func TestGetCode_WrappedFailure(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", failure.NotFound("booking not found"))
	assert.Equal(t, http.StatusNotFound, failure.GetCode(wrapped))
}

func TestConflictWithDetails(t *testing.T) {
	type interval struct {
		CheckInDate  string `json:"check_in_date"`
		CheckOutDate string `json:"check_out_date"`
	}

	blocking := interval{CheckInDate: "2026-03-11", CheckOutDate: "2026-03-14"}
	err := failure.ConflictWithDetails("room is already booked", blocking)

	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.False(t, failure.IsRetryable(err))

	details, ok := failure.GetDetails(err).(interval)
	assert.True(t, ok)
	assert.Equal(t, blocking, details)
}

func TestRetryableConflict(t *testing.T) {
	err := failure.RetryableConflict("write lost a race, please retry")

	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.True(t, failure.IsRetryable(err))
	assert.Nil(t, failure.GetDetails(err))
}

func TestIsRetryable_PlainErrors(t *testing.T) {
	assert.False(t, failure.IsRetryable(errors.New("plain error")))
	assert.False(t, failure.IsRetryable(failure.Conflict("conflict")))
}
