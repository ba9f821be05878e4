package model

import (
	"errors"
	"time"
)

var ErrInvalidInterval = errors.New("check-out date must be after check-in date")

// Interval is a half-open stay range: the check-in day is occupied, the
// check-out day is free for a new arrival.
type Interval struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

func NewInterval(checkIn, checkOut time.Time) (Interval, error) {
	ivl := Interval{CheckIn: checkIn, CheckOut: checkOut}
	if err := ivl.Validate(); err != nil {
		return Interval{}, err
	}

	return ivl, nil
}

func (i Interval) Validate() error {
	if !i.CheckOut.After(i.CheckIn) {
		return ErrInvalidInterval
	}

	return nil
}

// Overlaps reports whether two half-open intervals intersect. Back-to-back
// stays (one guest leaving the morning another arrives) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(i.CheckOut)
}

// Contains reports whether t falls inside the interval. The check-out
// instant itself is outside.
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.CheckIn) && t.Before(i.CheckOut)
}

// IntersectsWindow is the display-query variant used by the calendar: both
// window boundaries are inclusive.
func (i Interval) IntersectsWindow(windowStart, windowEnd time.Time) bool {
	return !i.CheckIn.After(windowEnd) && !windowStart.After(i.CheckOut)
}

func (i Interval) Nights() int {
	return int(i.CheckOut.Sub(i.CheckIn).Hours() / 24)
}
