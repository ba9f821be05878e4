package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"innkeep/internal/domains/booking/model"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return parsed
}

func TestNewInterval(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		wantErr  bool
	}{
		{
			name:     "one night stay",
			checkIn:  date("2026-03-10"),
			checkOut: date("2026-03-11"),
			wantErr:  false,
		},
		{
			name:     "week long stay",
			checkIn:  date("2026-03-10"),
			checkOut: date("2026-03-17"),
			wantErr:  false,
		},
		{
			name:     "zero length stay",
			checkIn:  date("2026-03-10"),
			checkOut: date("2026-03-10"),
			wantErr:  true,
		},
		{
			name:     "check out before check in",
			checkIn:  date("2026-03-11"),
			checkOut: date("2026-03-10"),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ivl, err := model.NewInterval(tt.checkIn, tt.checkOut)

			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidInterval)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.checkIn, ivl.CheckIn)
				assert.Equal(t, tt.checkOut, ivl.CheckOut)
			}
		})
	}
}

func TestInterval_Overlaps(t *testing.T) {
	base := model.Interval{CheckIn: date("2026-03-10"), CheckOut: date("2026-03-15")}

	tests := []struct {
		name  string
		other model.Interval
		want  bool
	}{
		{
			name:  "identical interval",
			other: model.Interval{CheckIn: date("2026-03-10"), CheckOut: date("2026-03-15")},
			want:  true,
		},
		{
			name:  "contained interval",
			other: model.Interval{CheckIn: date("2026-03-11"), CheckOut: date("2026-03-13")},
			want:  true,
		},
		{
			name:  "partial overlap at start",
			other: model.Interval{CheckIn: date("2026-03-08"), CheckOut: date("2026-03-11")},
			want:  true,
		},
		{
			name:  "partial overlap at end",
			other: model.Interval{CheckIn: date("2026-03-14"), CheckOut: date("2026-03-20")},
			want:  true,
		},
		{
			name:  "back to back after",
			other: model.Interval{CheckIn: date("2026-03-15"), CheckOut: date("2026-03-18")},
			want:  false,
		},
		{
			name:  "back to back before",
			other: model.Interval{CheckIn: date("2026-03-05"), CheckOut: date("2026-03-10")},
			want:  false,
		},
		{
			name:  "disjoint",
			other: model.Interval{CheckIn: date("2026-04-01"), CheckOut: date("2026-04-05")},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestInterval_Contains(t *testing.T) {
	ivl := model.Interval{CheckIn: date("2026-03-10"), CheckOut: date("2026-03-15")}

	assert.True(t, ivl.Contains(date("2026-03-10")))
	assert.True(t, ivl.Contains(date("2026-03-14")))
	assert.False(t, ivl.Contains(date("2026-03-15")))
	assert.False(t, ivl.Contains(date("2026-03-09")))
}

func TestInterval_IntersectsWindow(t *testing.T) {
	ivl := model.Interval{CheckIn: date("2026-03-10"), CheckOut: date("2026-03-15")}

	tests := []struct {
		name        string
		windowStart time.Time
		windowEnd   time.Time
		want        bool
	}{
		{
			name:        "window covers interval",
			windowStart: date("2026-03-01"),
			windowEnd:   date("2026-03-31"),
			want:        true,
		},
		{
			name:        "window ends on check in day",
			windowStart: date("2026-03-01"),
			windowEnd:   date("2026-03-10"),
			want:        true,
		},
		{
			name:        "window starts on check out day",
			windowStart: date("2026-03-15"),
			windowEnd:   date("2026-03-20"),
			want:        true,
		},
		{
			name:        "window entirely before",
			windowStart: date("2026-03-01"),
			windowEnd:   date("2026-03-09"),
			want:        false,
		},
		{
			name:        "window entirely after",
			windowStart: date("2026-03-16"),
			windowEnd:   date("2026-03-20"),
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ivl.IntersectsWindow(tt.windowStart, tt.windowEnd))
		})
	}
}

func TestInterval_Nights(t *testing.T) {
	oneNight := model.Interval{CheckIn: date("2026-03-10"), CheckOut: date("2026-03-11")}
	week := model.Interval{CheckIn: date("2026-03-10"), CheckOut: date("2026-03-17")}

	assert.Equal(t, 1, oneNight.Nights())
	assert.Equal(t, 7, week.Nights())
}
