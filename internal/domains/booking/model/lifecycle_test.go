package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"innkeep/internal/domains/booking/model"
)

func TestBooking_NextStatus(t *testing.T) {
	now := date("2026-03-12")

	tests := []struct {
		name          string
		status        string
		event         string
		adminOverride bool
		want          string
		wantErr       bool
	}{
		{
			name:   "check in during stay",
			status: model.StatusReserved,
			event:  model.EventCheckIn,
			want:   model.StatusCheckedIn,
		},
		{
			name:   "check out after check in",
			status: model.StatusCheckedIn,
			event:  model.EventCheckOut,
			want:   model.StatusCheckedOut,
		},
		{
			name:   "cancel reserved booking",
			status: model.StatusReserved,
			event:  model.EventCancel,
			want:   model.StatusCancelled,
		},
		{
			name:    "cancel checked in booking without override",
			status:  model.StatusCheckedIn,
			event:   model.EventCancel,
			wantErr: true,
		},
		{
			name:          "cancel checked in booking with override",
			status:        model.StatusCheckedIn,
			event:         model.EventCancel,
			adminOverride: true,
			want:          model.StatusCancelled,
		},
		{
			name:   "no show after missed arrival",
			status: model.StatusReserved,
			event:  model.EventNoShow,
			want:   model.StatusNoShow,
		},
		{
			name:    "check out while still reserved",
			status:  model.StatusReserved,
			event:   model.EventCheckOut,
			wantErr: true,
		},
		{
			name:    "check in twice",
			status:  model.StatusCheckedIn,
			event:   model.EventCheckIn,
			wantErr: true,
		},
		{
			name:    "event from checked out",
			status:  model.StatusCheckedOut,
			event:   model.EventCancel,
			wantErr: true,
		},
		{
			name:    "event from cancelled",
			status:  model.StatusCancelled,
			event:   model.EventCheckIn,
			wantErr: true,
		},
		{
			name:    "event from no show",
			status:  model.StatusNoShow,
			event:   model.EventCheckIn,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := model.Booking{
				Status:       tt.status,
				CheckInDate:  date("2026-03-10"),
				CheckOutDate: date("2026-03-15"),
			}

			next, err := booking.NextStatus(tt.event, now, tt.adminOverride)

			if tt.wantErr {
				var transitionErr *model.TransitionError
				assert.ErrorAs(t, err, &transitionErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, next)
			}
		})
	}
}

func TestBooking_NextStatus_DateGuards(t *testing.T) {
	booking := model.Booking{
		Status:       model.StatusReserved,
		CheckInDate:  date("2026-03-10"),
		CheckOutDate: date("2026-03-15"),
	}

	t.Run("check in before stay begins", func(t *testing.T) {
		_, err := booking.NextStatus(model.EventCheckIn, date("2026-03-09"), false)
		assert.Error(t, err)
	})

	t.Run("check in on check out day", func(t *testing.T) {
		_, err := booking.NextStatus(model.EventCheckIn, date("2026-03-15"), false)
		assert.Error(t, err)
	})

	t.Run("check in on arrival day", func(t *testing.T) {
		next, err := booking.NextStatus(model.EventCheckIn, date("2026-03-10"), false)
		assert.NoError(t, err)
		assert.Equal(t, model.StatusCheckedIn, next)
	})

	t.Run("no show before arrival day has passed", func(t *testing.T) {
		_, err := booking.NextStatus(model.EventNoShow, date("2026-03-10"), false)
		assert.Error(t, err)
	})

	t.Run("no show once arrival day has passed", func(t *testing.T) {
		next, err := booking.NextStatus(model.EventNoShow, date("2026-03-11"), false)
		assert.NoError(t, err)
		assert.Equal(t, model.StatusNoShow, next)
	})
}

// The guards compare calendar days, not instants, so a hotel west of UTC must
// not admit arrivals on the evening before the stay just because UTC has
// already rolled over, and one east of UTC must not hold guests in the lobby
// until UTC catches up with the local morning.
func TestBooking_NextStatus_LocalDayBoundary(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	assert.NoError(t, err)

	jakarta, err := time.LoadLocation("Asia/Jakarta")
	assert.NoError(t, err)

	booking := model.Booking{
		Status:       model.StatusReserved,
		CheckInDate:  date("2026-03-10"),
		CheckOutDate: date("2026-03-13"),
	}

	t.Run("evening before arrival west of utc", func(t *testing.T) {
		now := time.Date(2026, 3, 9, 20, 30, 0, 0, newYork)

		_, err := booking.NextStatus(model.EventCheckIn, now, false)
		assert.Error(t, err)

		_, err = booking.NextStatus(model.EventNoShow, now, false)
		assert.Error(t, err)
	})

	t.Run("early morning of arrival east of utc", func(t *testing.T) {
		now := time.Date(2026, 3, 10, 6, 0, 0, 0, jakarta)

		next, err := booking.NextStatus(model.EventCheckIn, now, false)
		assert.NoError(t, err)
		assert.Equal(t, model.StatusCheckedIn, next)
	})

	t.Run("no show the local morning after arrival", func(t *testing.T) {
		now := time.Date(2026, 3, 11, 1, 0, 0, 0, newYork)

		next, err := booking.NextStatus(model.EventNoShow, now, false)
		assert.NoError(t, err)
		assert.Equal(t, model.StatusNoShow, next)
	})
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, model.IsTerminal(model.StatusReserved))
	assert.False(t, model.IsTerminal(model.StatusCheckedIn))
	assert.True(t, model.IsTerminal(model.StatusCheckedOut))
	assert.True(t, model.IsTerminal(model.StatusCancelled))
	assert.True(t, model.IsTerminal(model.StatusNoShow))
}
