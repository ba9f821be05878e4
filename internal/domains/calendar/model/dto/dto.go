package dto

import (
	bookingModel "innkeep/internal/domains/booking/model"
	"innkeep/shared/constant"
)

// CalendarEvent is one display entry on the scheduling grid: an active
// booking clipped to the queried window.
type CalendarEvent struct {
	BookingID string `json:"booking_id"`
	RoomID    string `json:"room_id"`
	Title     string `json:"title"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Status    string `json:"status"`
}

func (e *CalendarEvent) FromModel(booking bookingModel.Booking) {
	e.BookingID = booking.ID
	e.RoomID = booking.RoomID
	e.Title = booking.GuestName
	e.Start = booking.CheckInDate.Format(constant.DateOnlyFormat)
	e.End = booking.CheckOutDate.Format(constant.DateOnlyFormat)
	e.Status = booking.Status
}

type GetCalendarResponse struct {
	Events []CalendarEvent `json:"events"`
}

func (r *GetCalendarResponse) FromModels(bookings []bookingModel.Booking) {
	r.Events = make([]CalendarEvent, len(bookings))
	for i, booking := range bookings {
		r.Events[i].FromModel(booking)
	}
}
