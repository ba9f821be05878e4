package service_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeep/config"
	"innkeep/infras/otel/mocks"
	"innkeep/internal/domains/booking/event"
	bookingMocks "innkeep/internal/domains/booking/mocks"
	"innkeep/internal/domains/booking/model"
	"innkeep/internal/domains/booking/model/dto"
	"innkeep/internal/domains/booking/repository"
	"innkeep/internal/domains/booking/service"
	roomMocks "innkeep/internal/domains/room/mocks"
	roomModel "innkeep/internal/domains/room/model"
	"innkeep/shared/failure"
)

// stubCache always misses so services hit their repositories; writes are
// dropped. The cache methods run on service goroutines, so a plain stub keeps
// the tests free of mock lifecycle races.
type stubCache struct{}

func (stubCache) Save(_ context.Context, _ string, _ any, _ int) error { return nil }
func (stubCache) Get(_ context.Context, _ string, _ any) error         { return errors.New("cache miss") }
func (stubCache) Delete(_ context.Context, _ string) error             { return nil }
func (stubCache) Clear(_ context.Context, _ string) error              { return nil }

// capturePublisher records emitted events so tests can wait for the
// fire-and-forget publishes.
type capturePublisher struct {
	mu        sync.Mutex
	created   []event.BookingEvent
	cancelled []event.BookingEvent
}

func (p *capturePublisher) BookingCreated(_ context.Context, evt event.BookingEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.created = append(p.created, evt)
}

func (p *capturePublisher) BookingCancelled(_ context.Context, evt event.BookingEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancelled = append(p.cancelled, evt)
}

func (p *capturePublisher) createdCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.created)
}

func (p *capturePublisher) cancelledCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.cancelled)
}

func bookableRoom() roomModel.Room {
	return roomModel.Room{
		ID:                 "room-id-123",
		RoomNumber:         "101",
		Type:               roomModel.TypeDouble,
		GenerallyAvailable: true,
		Active:             true,
	}
}

func reservedBooking() model.Booking {
	return model.Booking{
		ID:            "booking-id-123",
		RoomID:        "room-id-123",
		GuestName:     "Ayu Lestari",
		GuestContact:  "ayu@example.com",
		CheckInDate:   time.Now().Add(-24 * time.Hour),
		CheckOutDate:  time.Now().Add(48 * time.Hour),
		Status:        model.StatusReserved,
		TotalAmount:   250,
		PaymentStatus: model.PaymentPending,
	}
}

func TestBookingService_Create(t *testing.T) {
	createReq := dto.CreateBookingRequest{
		RoomID:       "room-id-123",
		GuestName:    "Ayu Lestari",
		GuestContact: "ayu@example.com",
		CheckInDate:  "2026-03-10",
		CheckOutDate: "2026-03-12",
		TotalAmount:  250,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom)
		wantCode  int
	}{
		{
			name: "successful reservation",
			req:  createReq,
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {
				roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableRoom(), nil)

				repo.EXPECT().
					CreateReserved(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
		},
		{
			name: "overlapping booking rejected",
			req:  createReq,
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {
				roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableRoom(), nil)

				blocking := model.Booking{
					ID:           "other-booking",
					CheckInDate:  date("2026-03-11"),
					CheckOutDate: date("2026-03-14"),
				}

				repo.EXPECT().
					CreateReserved(gomock.Any(), gomock.Any()).
					Return(blocking, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "transient write conflict",
			req:  createReq,
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {
				roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableRoom(), nil)

				repo.EXPECT().
					CreateReserved(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, &pq.Error{Code: "40001"})
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "room not bookable",
			req:  createReq,
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {
				closed := bookableRoom()
				closed.GenerallyAvailable = false

				roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(closed, nil)
			},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "room not found",
			req:  createReq,
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {
				roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "malformed dates",
			req: dto.CreateBookingRequest{
				RoomID:       "room-id-123",
				CheckInDate:  "10/03/2026",
				CheckOutDate: "2026-03-12",
			},
			setupMock: func(_ *bookingMocks.MockBooking, _ *roomMocks.MockRoom) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := bookingMocks.NewMockBooking(ctrl)
			mockRoomRepo := roomMocks.NewMockRoom(ctrl)
			publisher := &capturePublisher{}

			svc := service.New(mockRepo, mockRoomRepo, publisher, &config.Config{}, stubCache{}, mocks.NewOtel())

			tt.setupMock(mockRepo, mockRoomRepo)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, model.StatusReserved, res.Status)
			assert.Equal(t, "2026-03-10", res.CheckInDate)
			assert.Eventually(t, func() bool { return publisher.createdCount() == 1 }, time.Second, 10*time.Millisecond)
		})
	}
}

func TestBookingService_Create_ConflictCarriesBlockingInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)

	svc := service.New(mockRepo, mockRoomRepo, &capturePublisher{}, &config.Config{}, stubCache{}, mocks.NewOtel())

	mockRoomRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(bookableRoom(), nil)

	blocking := model.Booking{
		ID:           "other-booking",
		CheckInDate:  date("2026-03-11"),
		CheckOutDate: date("2026-03-14"),
	}

	mockRepo.EXPECT().
		CreateReserved(gomock.Any(), gomock.Any()).
		Return(blocking, nil)

	_, err := svc.Create(context.Background(), dto.CreateBookingRequest{
		RoomID:       "room-id-123",
		CheckInDate:  "2026-03-10",
		CheckOutDate: "2026-03-12",
	})

	assert.Error(t, err)
	assert.False(t, failure.IsRetryable(err))

	details, ok := failure.GetDetails(err).(dto.IntervalResponse)
	assert.True(t, ok)
	assert.Equal(t, "2026-03-11", details.CheckInDate)
	assert.Equal(t, "2026-03-14", details.CheckOutDate)
}

func TestBookingService_CheckAvailability(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom)
		wantAvailable bool
		wantConflict  bool
	}{
		{
			name: "room free",
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {
				roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableRoom(), nil)

				repo.EXPECT().
					FindConflict(gomock.Any(), "room-id-123", gomock.Any(), "").
					Return(model.Booking{}, nil)
			},
			wantAvailable: true,
		},
		{
			name: "room already booked",
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {
				roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableRoom(), nil)

				repo.EXPECT().
					FindConflict(gomock.Any(), "room-id-123", gomock.Any(), "").
					Return(model.Booking{
						ID:           "other-booking",
						CheckInDate:  date("2026-03-11"),
						CheckOutDate: date("2026-03-14"),
					}, nil)
			},
			wantConflict: true,
		},
		{
			name: "room under maintenance",
			setupMock: func(_ *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {
				room := bookableRoom()
				room.UnderMaintenance = true

				roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := bookingMocks.NewMockBooking(ctrl)
			mockRoomRepo := roomMocks.NewMockRoom(ctrl)

			svc := service.New(mockRepo, mockRoomRepo, &capturePublisher{}, &config.Config{}, stubCache{}, mocks.NewOtel())

			tt.setupMock(mockRepo, mockRoomRepo)

			res, err := svc.CheckAvailability(context.Background(), "room-id-123", "2026-03-10", "2026-03-12")
			assert.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, res.Available)

			if tt.wantConflict {
				assert.NotNil(t, res.ConflictingInterval)
				assert.Equal(t, "2026-03-11", res.ConflictingInterval.CheckInDate)
			}

			if !tt.wantAvailable {
				assert.NotEmpty(t, res.Reason)
			}
		})
	}
}

func TestBookingService_Transition_CheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)

	svc := service.New(mockRepo, mockRoomRepo, &capturePublisher{}, &config.Config{}, stubCache{}, mocks.NewOtel())

	booking := reservedBooking()

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(booking, nil)

	var applied repository.StatusChange

	mockRepo.EXPECT().
		ApplyStatusChange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, change repository.StatusChange) error {
			applied = change

			return nil
		})

	err := svc.Transition(context.Background(), booking.ID, dto.TransitionRequest{Event: model.EventCheckIn})
	assert.NoError(t, err)

	assert.Equal(t, booking.ID, applied.BookingID)
	assert.Equal(t, booking.RoomID, applied.RoomID)
	assert.Equal(t, model.StatusCheckedIn, applied.Fields[model.FieldStatus])

	if assert.NotNil(t, applied.SetCheckedIn) {
		assert.True(t, *applied.SetCheckedIn)
	}
}

func TestBookingService_Transition_Guards(t *testing.T) {
	tests := []struct {
		name    string
		booking func() model.Booking
		req     dto.TransitionRequest
	}{
		{
			name: "terminal booking is immutable",
			booking: func() model.Booking {
				booking := reservedBooking()
				booking.Status = model.StatusCheckedOut

				return booking
			},
			req: dto.TransitionRequest{Event: model.EventCancel},
		},
		{
			name: "check out while reserved",
			booking: func() model.Booking {
				return reservedBooking()
			},
			req: dto.TransitionRequest{Event: model.EventCheckOut},
		},
		{
			name: "cancel checked in without override",
			booking: func() model.Booking {
				booking := reservedBooking()
				booking.Status = model.StatusCheckedIn

				return booking
			},
			req: dto.TransitionRequest{Event: model.EventCancel},
		},
		{
			name: "no show before arrival day",
			booking: func() model.Booking {
				booking := reservedBooking()
				booking.CheckInDate = time.Now().Add(24 * time.Hour)
				booking.CheckOutDate = time.Now().Add(72 * time.Hour)

				return booking
			},
			req: dto.TransitionRequest{Event: model.EventNoShow},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := bookingMocks.NewMockBooking(ctrl)
			mockRoomRepo := roomMocks.NewMockRoom(ctrl)

			svc := service.New(mockRepo, mockRoomRepo, &capturePublisher{}, &config.Config{}, stubCache{}, mocks.NewOtel())

			mockRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(tt.booking(), nil)

			err := svc.Transition(context.Background(), "booking-id-123", tt.req)
			assert.Error(t, err)
			assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	publisher := &capturePublisher{}

	svc := service.New(mockRepo, mockRoomRepo, publisher, &config.Config{}, stubCache{}, mocks.NewOtel())

	booking := reservedBooking()

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(booking, nil)

	var applied repository.StatusChange

	mockRepo.EXPECT().
		ApplyStatusChange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, change repository.StatusChange) error {
			applied = change

			return nil
		})

	err := svc.Cancel(context.Background(), booking.ID, dto.CancelBookingRequest{Reason: "guest called to cancel"})
	assert.NoError(t, err)

	assert.Equal(t, model.StatusCancelled, applied.Fields[model.FieldStatus])

	if assert.NotNil(t, applied.Note) {
		assert.Equal(t, booking.ID, applied.Note.BookingID)
		assert.Equal(t, "guest called to cancel", applied.Note.Body)
	}

	assert.Eventually(t, func() bool { return publisher.cancelledCount() == 1 }, time.Second, 10*time.Millisecond)
}

func TestBookingService_Cancel_OverrideReleasesRoom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)

	svc := service.New(mockRepo, mockRoomRepo, &capturePublisher{}, &config.Config{}, stubCache{}, mocks.NewOtel())

	booking := reservedBooking()
	booking.Status = model.StatusCheckedIn

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(booking, nil)

	var applied repository.StatusChange

	mockRepo.EXPECT().
		ApplyStatusChange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, change repository.StatusChange) error {
			applied = change

			return nil
		})

	err := svc.Cancel(context.Background(), booking.ID, dto.CancelBookingRequest{AdminOverride: true})
	assert.NoError(t, err)

	if assert.NotNil(t, applied.SetCheckedIn) {
		assert.False(t, *applied.SetCheckedIn)
	}
}

func TestBookingService_Update(t *testing.T) {
	amount := 300.0

	tests := []struct {
		name      string
		req       dto.UpdateBookingRequest
		setupMock func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom)
		wantCode  int
	}{
		{
			name:      "empty request",
			req:       dto.UpdateBookingRequest{},
			setupMock: func(_ *bookingMocks.MockBooking, _ *roomMocks.MockRoom) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "guest details patch",
			req:  dto.UpdateBookingRequest{GuestName: "New Name", TotalAmount: &amount},
			setupMock: func(repo *bookingMocks.MockBooking, _ *roomMocks.MockRoom) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservedBooking(), nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "terminal booking rejected",
			req:  dto.UpdateBookingRequest{GuestName: "New Name"},
			setupMock: func(repo *bookingMocks.MockBooking, _ *roomMocks.MockRoom) {
				booking := reservedBooking()
				booking.Status = model.StatusCancelled

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "dates cannot change after check in",
			req:  dto.UpdateBookingRequest{CheckOutDate: "2026-04-01"},
			setupMock: func(repo *bookingMocks.MockBooking, _ *roomMocks.MockRoom) {
				booking := reservedBooking()
				booking.Status = model.StatusCheckedIn

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "reschedule hits overlapping booking",
			req:  dto.UpdateBookingRequest{CheckInDate: "2026-03-10", CheckOutDate: "2026-03-12"},
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservedBooking(), nil)

				roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableRoom(), nil)

				repo.EXPECT().
					Reschedule(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Booking{
						ID:           "other-booking",
						CheckInDate:  date("2026-03-11"),
						CheckOutDate: date("2026-03-14"),
					}, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "reschedule succeeds",
			req:  dto.UpdateBookingRequest{CheckInDate: "2026-03-10", CheckOutDate: "2026-03-12"},
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservedBooking(), nil)

				roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableRoom(), nil)

				repo.EXPECT().
					Reschedule(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := bookingMocks.NewMockBooking(ctrl)
			mockRoomRepo := roomMocks.NewMockRoom(ctrl)

			svc := service.New(mockRepo, mockRoomRepo, &capturePublisher{}, &config.Config{}, stubCache{}, mocks.NewOtel())

			tt.setupMock(mockRepo, mockRoomRepo)

			err := svc.Update(context.Background(), tt.req, "booking-id-123")

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Purge(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *bookingMocks.MockBooking)
		wantCode  int
	}{
		{
			name: "terminal booking purged",
			setupMock: func(repo *bookingMocks.MockBooking) {
				booking := reservedBooking()
				booking.Status = model.StatusCancelled

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "active booking kept",
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservedBooking(), nil)
			},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "booking not found",
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := bookingMocks.NewMockBooking(ctrl)
			mockRoomRepo := roomMocks.NewMockRoom(ctrl)

			svc := service.New(mockRepo, mockRoomRepo, &capturePublisher{}, &config.Config{}, stubCache{}, mocks.NewOtel())

			tt.setupMock(mockRepo)

			err := svc.Purge(context.Background(), "booking-id-123")

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	t.Run("booking with notes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := bookingMocks.NewMockBooking(ctrl)
		mockRoomRepo := roomMocks.NewMockRoom(ctrl)

		svc := service.New(mockRepo, mockRoomRepo, &capturePublisher{}, &config.Config{}, stubCache{}, mocks.NewOtel())

		booking := reservedBooking()

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		mockRepo.EXPECT().
			GetNotes(gomock.Any(), booking.ID).
			Return([]model.Note{{BookingID: booking.ID, Author: "front-desk", Body: "late arrival"}}, nil)

		res, err := svc.Get(context.Background(), booking.ID)
		assert.NoError(t, err)
		assert.Equal(t, booking.ID, res.ID)

		if assert.Len(t, res.Notes, 1) {
			assert.Equal(t, "late arrival", res.Notes[0].Body)
		}
	})

	t.Run("booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := bookingMocks.NewMockBooking(ctrl)
		mockRoomRepo := roomMocks.NewMockRoom(ctrl)

		svc := service.New(mockRepo, mockRoomRepo, &capturePublisher{}, &config.Config{}, stubCache{}, mocks.NewOtel())

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := svc.Get(context.Background(), "missing-id")
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return parsed
}
