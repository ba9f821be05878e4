package model

import "time"

// transitions maps current status to the lifecycle events legal from it and
// the status each event produces. Guards that depend on more than the pair
// (dates, admin override) live in NextStatus.
var transitions = map[string]map[string]string{
	StatusReserved: {
		EventCheckIn: StatusCheckedIn,
		EventCancel:  StatusCancelled,
		EventNoShow:  StatusNoShow,
	},
	StatusCheckedIn: {
		EventCheckOut: StatusCheckedOut,
		EventCancel:   StatusCancelled,
	},
}

// TransitionError describes a lifecycle event that is not legal from the
// booking's current status.
type TransitionError struct {
	From  string
	Event string
}

func (e *TransitionError) Error() string {
	return "invalid transition: event " + e.Event + " is not allowed from status " + e.From
}

// civilDay truncates t to midnight of its calendar day, read in t's own
// location. Stay dates are day-granular values carrying a meaningless
// midnight, and now arrives in the application timezone, so each side is
// reduced to its own calendar day before they are compared.
func civilDay(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NextStatus resolves the status a lifecycle event leads to, enforcing the
// date guards that go with it. now is the instant the event is applied and
// must carry the timezone the hotel operates in; an evening west of UTC is
// still the local day, not the next UTC one.
func (b *Booking) NextStatus(event string, now time.Time, adminOverride bool) (string, error) {
	next, ok := transitions[b.Status][event]
	if !ok {
		return "", &TransitionError{From: b.Status, Event: event}
	}

	today := civilDay(now)

	switch {
	case event == EventCheckIn && (today.Before(civilDay(b.CheckInDate)) || !today.Before(civilDay(b.CheckOutDate))):
		return "", &TransitionError{From: b.Status, Event: event}
	case event == EventNoShow && !today.After(civilDay(b.CheckInDate)):
		return "", &TransitionError{From: b.Status, Event: event}
	case event == EventCancel && b.Status == StatusCheckedIn && !adminOverride:
		return "", &TransitionError{From: b.Status, Event: event}
	}

	return next, nil
}
