package dto

import (
	"innkeep/internal/domains/booking/model"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID        string  `json:"room_id"        validate:"required,uuid4"`
	GuestName     string  `json:"guest_name"     validate:"required,max=100"`
	GuestContact  string  `json:"guest_contact"  validate:"required,max=100"`
	CheckInDate   string  `json:"check_in_date"  validate:"required"`
	CheckOutDate  string  `json:"check_out_date" validate:"required"`
	TotalAmount   float64 `json:"total_amount"   validate:"omitempty,gte=0"`
	PaymentStatus string  `json:"payment_status" validate:"omitempty,oneof=pending paid refunded"`
	Notes         string  `json:"notes"          validate:"omitempty,max=1000"`
}

func (c *CreateBookingRequest) Interval() (model.Interval, error) {
	checkIn, err := timezone.Parse(constant.DateOnlyFormat, c.CheckInDate)
	if err != nil {
		return model.Interval{}, failure.BadRequestFromString("check_in_date must be formatted as YYYY-MM-DD")
	}

	checkOut, err := timezone.Parse(constant.DateOnlyFormat, c.CheckOutDate)
	if err != nil {
		return model.Interval{}, failure.BadRequestFromString("check_out_date must be formatted as YYYY-MM-DD")
	}

	ivl, err := model.NewInterval(checkIn, checkOut)
	if err != nil {
		return model.Interval{}, failure.BadRequestFromString(err.Error())
	}

	return ivl, nil
}

func (c *CreateBookingRequest) ToModel(ivl model.Interval, user string) model.Booking {
	payment := model.PaymentPending
	if c.PaymentStatus != constant.Empty {
		payment = c.PaymentStatus
	}

	return model.Booking{
		ID:            uuid.NewString(),
		RoomID:        c.RoomID,
		GuestName:     c.GuestName,
		GuestContact:  c.GuestContact,
		CheckInDate:   ivl.CheckIn,
		CheckOutDate:  ivl.CheckOut,
		Status:        model.StatusReserved,
		TotalAmount:   c.TotalAmount,
		PaymentStatus: payment,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBookingRequest struct {
	RoomID        string   `db:"room_id"        json:"room_id"        validate:"omitempty,uuid4"`
	GuestName     string   `db:"guest_name"     json:"guest_name"     validate:"omitempty,max=100"`
	GuestContact  string   `db:"guest_contact"  json:"guest_contact"  validate:"omitempty,max=100"`
	CheckInDate   string   `json:"check_in_date"  validate:"omitempty"`
	CheckOutDate  string   `json:"check_out_date" validate:"omitempty"`
	TotalAmount   *float64 `db:"total_amount"   json:"total_amount"   validate:"omitempty,gte=0"`
	PaymentStatus string   `db:"payment_status" json:"payment_status" validate:"omitempty,oneof=pending paid refunded"`
}

// ChangesInterval reports whether the patch touches the fields guarded by
// the conflict check.
func (u *UpdateBookingRequest) ChangesInterval() bool {
	return u.RoomID != constant.Empty || u.CheckInDate != constant.Empty || u.CheckOutDate != constant.Empty
}

// Interval resolves the patched interval against the booking's current
// dates, so a request may move just one endpoint.
func (u *UpdateBookingRequest) Interval(current model.Booking) (model.Interval, error) {
	checkIn := current.CheckInDate
	checkOut := current.CheckOutDate

	if u.CheckInDate != constant.Empty {
		parsed, err := timezone.Parse(constant.DateOnlyFormat, u.CheckInDate)
		if err != nil {
			return model.Interval{}, failure.BadRequestFromString("check_in_date must be formatted as YYYY-MM-DD")
		}

		checkIn = parsed
	}

	if u.CheckOutDate != constant.Empty {
		parsed, err := timezone.Parse(constant.DateOnlyFormat, u.CheckOutDate)
		if err != nil {
			return model.Interval{}, failure.BadRequestFromString("check_out_date must be formatted as YYYY-MM-DD")
		}

		checkOut = parsed
	}

	ivl, err := model.NewInterval(checkIn, checkOut)
	if err != nil {
		return model.Interval{}, failure.BadRequestFromString(err.Error())
	}

	return ivl, nil
}

type TransitionRequest struct {
	Event         string `json:"event"          validate:"required,oneof=check-in check-out no-show cancel"`
	Reason        string `json:"reason"         validate:"omitempty,max=500"`
	AdminOverride bool   `json:"admin_override" validate:"omitempty"`
}

type CancelBookingRequest struct {
	Reason        string `json:"reason"         validate:"omitempty,max=500"`
	AdminOverride bool   `json:"admin_override" validate:"omitempty"`
}

type NoteResponse struct {
	Author    string `json:"author"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

func (n *NoteResponse) FromModel(note model.Note) {
	n.Author = note.Author
	n.Body = note.Body
	n.CreatedAt = timezone.Format(note.CreatedAt, constant.DateFormat)
}

type BookingResponse struct {
	ID            string         `json:"id"`
	RoomID        string         `json:"room_id"`
	GuestName     string         `json:"guest_name"`
	GuestContact  string         `json:"guest_contact"`
	CheckInDate   string         `json:"check_in_date"`
	CheckOutDate  string         `json:"check_out_date"`
	Status        string         `json:"status"`
	TotalAmount   float64        `json:"total_amount"`
	PaymentStatus string         `json:"payment_status"`
	Notes         []NoteResponse `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.RoomID = booking.RoomID
	r.GuestName = booking.GuestName
	r.GuestContact = booking.GuestContact
	r.CheckInDate = booking.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOutDate = booking.CheckOutDate.Format(constant.DateOnlyFormat)
	r.Status = booking.Status
	r.TotalAmount = booking.TotalAmount
	r.PaymentStatus = booking.PaymentStatus
	r.Metadata.FromModel(booking.Metadata)
}

func (r *BookingResponse) WithNotes(notes []model.Note) {
	r.Notes = make([]NoteResponse, len(notes))
	for i, note := range notes {
		r.Notes[i].FromModel(note)
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// IntervalResponse is the date range attached to conflict rejections so the
// caller can show which stay blocked the request.
type IntervalResponse struct {
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
}

func IntervalResponseFromModel(ivl model.Interval) IntervalResponse {
	return IntervalResponse{
		CheckInDate:  ivl.CheckIn.Format(constant.DateOnlyFormat),
		CheckOutDate: ivl.CheckOut.Format(constant.DateOnlyFormat),
	}
}

type AvailabilityResponse struct {
	Available           bool              `json:"available"`
	Reason              string            `json:"reason,omitempty"`
	ConflictingInterval *IntervalResponse `json:"conflicting_interval,omitempty"`
}
