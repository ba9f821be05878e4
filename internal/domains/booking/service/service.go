package service

import (
	"context"
	"fmt"

	"innkeep/config"
	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/internal/domains/booking/event"
	"innkeep/internal/domains/booking/model"
	"innkeep/internal/domains/booking/model/dto"
	"innkeep/internal/domains/booking/repository"
	roomModel "innkeep/internal/domains/room/model"
	roomRepo "innkeep/internal/domains/room/repository"
	"innkeep/shared"
	"innkeep/shared/cache"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	"innkeep/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheCalendar      = "calendar:project"

	msgDateConflict    = "room is already booked for an overlapping date range"
	msgRoomNotBookable = "room is not bookable for the requested dates"
	msgAlreadyTerminal = "booking is already in a terminal state"
	msgWriteConflict   = "booking write lost a race with a concurrent request, please retry"

	defaultCancelReason = "Booking cancelled"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Transition(ctx context.Context, id string, req dto.TransitionRequest) error
	Cancel(ctx context.Context, id string, req dto.CancelBookingRequest) error
	Purge(ctx context.Context, id string) error
	CheckAvailability(ctx context.Context, roomID, checkInDate, checkOutDate string) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepo.Room
	publisher event.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepo.Room, publisher event.Publisher, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Create reserves a room for the requested interval. The interval is
// validated before anything touches storage; the conflict check and insert
// run atomically in the repository under the room's lock.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	ivl, err := req.Interval()
	if err != nil {
		return res, err
	}

	room, err := s.getRoom(ctx, req.RoomID)
	if err != nil {
		return res, err
	}

	if !room.IsBookable(ivl.CheckIn) {
		return res, failure.UnprocessableEntity(msgRoomNotBookable) // nolint:wrapcheck
	}

	booking := req.ToModel(ivl, user)

	conflict, err := s.repo.CreateReserved(ctx, booking)
	if err != nil {
		if postgres.IsTransientConflict(err) {
			return res, failure.RetryableConflict(msgWriteConflict) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	if conflict.ID != constant.Empty {
		return res, failure.ConflictWithDetails(msgDateConflict, dto.IntervalResponseFromModel(conflict.Interval())) // nolint:wrapcheck
	}

	if req.Notes != constant.Empty {
		if noteErr := s.repo.InsertNote(ctx, newNote(booking.ID, user, req.Notes)); noteErr != nil {
			log.Error().Err(noteErr).Str("bookingID", booking.ID).Msg("failed to append initial booking note")
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.publisher.BookingCreated(c, bookingEvent(booking, constant.Empty))
		s.invalidateListCaches(c)
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	notes, err := s.repo.GetNotes(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking notes")

		return res, fmt.Errorf("failed to get booking notes: %w", err)
	}

	res.FromModel(booking)
	res.WithNotes(notes)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Update patches a booking. Guest details may change in any active status;
// dates and room may only change while the booking is reserved, and re-enter
// the same conflict guard as creation.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if model.IsTerminal(booking.Status) {
		return failure.UnprocessableEntity(msgAlreadyTerminal) // nolint:wrapcheck
	}

	if !req.ChangesInterval() {
		fields := shared.TransformFields(req, user)
		if err := s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to update booking")

			return fmt.Errorf("failed to update booking: %w", err)
		}

		s.invalidateBookingCaches(ctx, id)

		return nil
	}

	if booking.Status != model.StatusReserved {
		return failure.UnprocessableEntity("dates and room can only change while the booking is reserved") // nolint:wrapcheck
	}

	ivl, err := req.Interval(booking)
	if err != nil {
		return err
	}

	roomID := booking.RoomID
	if req.RoomID != constant.Empty {
		roomID = req.RoomID
	}

	room, err := s.getRoom(ctx, roomID)
	if err != nil {
		return err
	}

	if !room.IsBookable(ivl.CheckIn) {
		return failure.UnprocessableEntity(msgRoomNotBookable) // nolint:wrapcheck
	}

	fields := shared.TransformFields(req, user)
	fields[model.FieldRoomID] = roomID
	fields[model.FieldCheckInDate] = ivl.CheckIn
	fields[model.FieldCheckOutDate] = ivl.CheckOut

	conflict, err := s.repo.Reschedule(ctx, id, booking.RoomID, roomID, ivl, fields)
	if err != nil {
		if postgres.IsTransientConflict(err) {
			return failure.RetryableConflict(msgWriteConflict) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to reschedule booking")

		return fmt.Errorf("failed to reschedule booking: %w", err)
	}

	if conflict.ID != constant.Empty {
		return failure.ConflictWithDetails(msgDateConflict, dto.IntervalResponseFromModel(conflict.Interval())) // nolint:wrapcheck
	}

	s.invalidateBookingCaches(ctx, id)

	return nil
}

// Transition applies a lifecycle event. The booking status, the room's
// checked_in projection, and the transition note are committed together.
func (s *serviceImpl) Transition(ctx context.Context, id string, req dto.TransitionRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if model.IsTerminal(booking.Status) {
		return failure.UnprocessableEntity(msgAlreadyTerminal) // nolint:wrapcheck
	}

	next, err := booking.NextStatus(req.Event, timezone.Now(), req.AdminOverride)
	if err != nil {
		return failure.UnprocessableEntity(err.Error()) // nolint:wrapcheck
	}

	change := repository.StatusChange{
		BookingID: id,
		RoomID:    booking.RoomID,
		Fields: map[string]any{
			model.FieldStatus:        next,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		},
	}

	switch next {
	case model.StatusCheckedIn:
		change.SetCheckedIn = boolPtr(true)
	case model.StatusCheckedOut:
		change.SetCheckedIn = boolPtr(false)
	case model.StatusCancelled:
		if booking.Status == model.StatusCheckedIn {
			change.SetCheckedIn = boolPtr(false)
		}

		reason := req.Reason
		if reason == constant.Empty {
			reason = defaultCancelReason
		}

		note := newNote(id, user, reason)
		change.Note = &note
	}

	if err := s.repo.ApplyStatusChange(ctx, change); err != nil {
		if postgres.IsTransientConflict(err) {
			return failure.RetryableConflict(msgWriteConflict) // nolint:wrapcheck
		}

		log.Error().Err(err).Str("event", req.Event).Msg("failed to apply booking transition")

		return fmt.Errorf("failed to apply booking transition: %w", err)
	}

	if next == model.StatusCancelled {
		cancelled := booking
		cancelled.Status = model.StatusCancelled

		go func() {
			c := context.WithoutCancel(ctx)

			s.publisher.BookingCancelled(c, bookingEvent(cancelled, req.Reason))
		}()
	}

	s.invalidateBookingCaches(ctx, id)

	return nil
}

// Cancel is the dedicated cancellation entry point: a cancel transition with
// a default reason note.
func (s *serviceImpl) Cancel(ctx context.Context, id string, req dto.CancelBookingRequest) error {
	return s.Transition(ctx, id, dto.TransitionRequest{
		Event:         model.EventCancel,
		Reason:        req.Reason,
		AdminOverride: req.AdminOverride,
	})
}

// Purge hard-deletes a booking record. Active bookings are never purged.
func (s *serviceImpl) Purge(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Purge")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.IsActive() {
		return failure.UnprocessableEntity("active bookings cannot be purged") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to purge booking")

		return fmt.Errorf("failed to purge booking: %w", err)
	}

	s.invalidateBookingCaches(ctx, id)

	return nil
}

// CheckAvailability is the read-only variant of the creation guard. It has
// no side effects and answers identically until some write changes the
// underlying bookings.
func (s *serviceImpl) CheckAvailability(ctx context.Context, roomID, checkInDate, checkOutDate string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	req := dto.CreateBookingRequest{RoomID: roomID, CheckInDate: checkInDate, CheckOutDate: checkOutDate}

	ivl, err := req.Interval()
	if err != nil {
		return res, err
	}

	room, err := s.getRoom(ctx, roomID)
	if err != nil {
		return res, err
	}

	if !room.IsBookable(ivl.CheckIn) {
		return dto.AvailabilityResponse{Available: false, Reason: msgRoomNotBookable}, nil
	}

	conflict, err := s.repo.FindConflict(ctx, roomID, ivl, constant.Empty)
	if err != nil {
		log.Error().Err(err).Msg("failed to check availability")

		return res, fmt.Errorf("failed to check availability: %w", err)
	}

	if conflict.ID != constant.Empty {
		conflictIvl := dto.IntervalResponseFromModel(conflict.Interval())

		return dto.AvailabilityResponse{
			Available:           false,
			Reason:              msgDateConflict,
			ConflictingInterval: &conflictIvl,
		}, nil
	}

	return dto.AvailabilityResponse{Available: true}, nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return model.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return model.Booking{}, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) getRoom(ctx context.Context, roomID string) (roomModel.Room, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return roomModel.Room{}, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return roomModel.Room{}, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		s.invalidateListCaches(c)
	}()
}

func (s *serviceImpl) invalidateListCaches(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheCountBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheCalendar)
}

func newNote(bookingID, author, body string) model.Note {
	return model.Note{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		Author:    author,
		Body:      body,
		CreatedAt: timezone.Now(),
	}
}

func bookingEvent(booking model.Booking, reason string) event.BookingEvent {
	return event.BookingEvent{
		BookingID:    booking.ID,
		RoomID:       booking.RoomID,
		GuestName:    booking.GuestName,
		GuestContact: booking.GuestContact,
		CheckInDate:  booking.CheckInDate,
		CheckOutDate: booking.CheckOutDate,
		Status:       booking.Status,
		Reason:       reason,
		OccurredAt:   timezone.Now(),
	}
}

func boolPtr(v bool) *bool {
	return &v
}
