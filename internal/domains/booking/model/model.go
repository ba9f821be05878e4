package model

import (
	"innkeep/shared/model"
	"time"
)

const (
	TableName      = "bookings"
	EntityName     = "booking"
	NotesTableName = "booking_notes"

	FieldID           = "id"
	FieldRoomID       = "room_id"
	FieldGuestName    = "guest_name"
	FieldGuestContact = "guest_contact"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldStatus       = "status"
	FieldTotalAmount  = "total_amount"
	FieldPayment      = "payment_status"
	FieldCreatedBy    = "created_by"
)

// Booking statuses. Reserved and checked_in are the active statuses that
// participate in conflict checks; the rest are terminal.
const (
	StatusReserved   = "reserved"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
	StatusNoShow     = "no_show"
)

// Lifecycle events accepted by the transition endpoint.
const (
	EventCheckIn  = "check-in"
	EventCheckOut = "check-out"
	EventNoShow   = "no-show"
	EventCancel   = "cancel"
)

const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

func ActiveStatuses() []string {
	return []string{StatusReserved, StatusCheckedIn}
}

func IsTerminal(status string) bool {
	return status == StatusCheckedOut || status == StatusCancelled || status == StatusNoShow
}

type Booking struct {
	ID            string    `db:"id"`
	RoomID        string    `db:"room_id"`
	GuestName     string    `db:"guest_name"`
	GuestContact  string    `db:"guest_contact"`
	CheckInDate   time.Time `db:"check_in_date"`
	CheckOutDate  time.Time `db:"check_out_date"`
	Status        string    `db:"status"`
	TotalAmount   float64   `db:"total_amount"`
	PaymentStatus string    `db:"payment_status"`
	model.Metadata
}

func (b *Booking) Interval() Interval {
	return Interval{CheckIn: b.CheckInDate, CheckOut: b.CheckOutDate}
}

func (b *Booking) IsActive() bool {
	return b.Status == StatusReserved || b.Status == StatusCheckedIn
}

// Note is one entry in a booking's append-only note log.
type Note struct {
	ID        string    `db:"id"`
	BookingID string    `db:"booking_id"`
	Author    string    `db:"author"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}
