package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/internal/domains/booking/model"
	roomRepo "innkeep/internal/domains/room/repository"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/logger"
	gRepo "innkeep/shared/repository"

	"github.com/jmoiron/sqlx"
)

// StatusChange is one atomic lifecycle write: the booking's new status, the
// room projection that must move with it, and an optional note appended in
// the same transaction.
type StatusChange struct {
	BookingID    string
	RoomID       string
	Fields       map[string]any
	SetCheckedIn *bool
	Note         *model.Note
}

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	FindConflict(ctx context.Context, roomID string, ivl model.Interval, excludeID string) (model.Booking, error)
	CreateReserved(ctx context.Context, booking model.Booking) (conflict model.Booking, err error)
	Reschedule(ctx context.Context, bookingID string, oldRoomID, newRoomID string, ivl model.Interval, fields map[string]any) (conflict model.Booking, err error)
	ApplyStatusChange(ctx context.Context, change StatusChange) error

	InsertNote(ctx context.Context, note model.Note) error
	GetNotes(ctx context.Context, bookingID string) ([]model.Note, error)
	GetActiveInWindow(ctx context.Context, roomIDs []string, windowStart, windowEnd time.Time) ([]model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db    *postgres.Connection
	rooms roomRepo.Room
	otel  otel.Otel
}

func New(db *postgres.Connection, rooms roomRepo.Room, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		rooms:      rooms,
		otel:       otel,
	}
}

const conflictQuery = `SELECT id, room_id, guest_name, guest_contact, check_in_date, check_out_date,
	status, total_amount, payment_status, created_at, modified_at, created_by, modified_by
FROM bookings
WHERE room_id = $1
  AND status IN ('reserved', 'checked_in')
  AND check_in_date < $3
  AND check_out_date > $2
  AND id <> $4
ORDER BY check_in_date
LIMIT 1`

// FindConflict returns the first active booking for the room whose half-open
// interval overlaps ivl, excluding excludeID. A zero-ID result means no
// conflict. Outside a transaction this is advisory only; the atomic write
// paths re-run the same predicate under the room lock.
func (repo *repositoryImpl) FindConflict(ctx context.Context, roomID string, ivl model.Interval, excludeID string) (model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.FindConflict")
	defer scope.End()

	var conflict model.Booking

	err := repo.db.Read.GetContext(ctx, &conflict, conflictQuery, roomID, ivl.CheckIn, ivl.CheckOut, excludeID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Booking{}, fmt.Errorf("failed to find conflicting booking: %w", err)
	}

	return conflict, nil
}

func (repo *repositoryImpl) findConflictTx(ctx context.Context, tx *sqlx.Tx, roomID string, ivl model.Interval, excludeID string) (model.Booking, error) {
	var conflict model.Booking

	err := tx.GetContext(ctx, &conflict, conflictQuery, roomID, ivl.CheckIn, ivl.CheckOut, excludeID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, nil
	}

	if err != nil {
		return model.Booking{}, fmt.Errorf("failed to find conflicting booking: %w", err)
	}

	return conflict, nil
}

// CreateReserved inserts a reserved booking. The conflict check and the
// insert run in one transaction under the room's advisory lock, so two
// concurrent requests for overlapping intervals cannot both pass the check.
func (repo *repositoryImpl) CreateReserved(ctx context.Context, booking model.Booking) (model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CreateReserved")
	defer scope.End()

	var conflict model.Booking

	err := repo.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := postgres.AcquireRoomLock(ctx, tx, booking.RoomID); err != nil {
			return err
		}

		found, err := repo.findConflictTx(ctx, tx, booking.RoomID, booking.Interval(), booking.ID)
		if err != nil {
			return err
		}

		if found.ID != constant.Empty {
			conflict = found

			return nil
		}

		return repo.InsertTx(ctx, tx, booking)
	})
	if err != nil {
		scope.TraceError(err)

		return model.Booking{}, err
	}

	return conflict, nil
}

// Reschedule moves a reserved booking to a new interval or room, re-running
// the conflict check (excluding the booking itself) inside the transaction.
// When the room changes both rooms are locked in sorted order to keep lock
// acquisition deadlock-free.
func (repo *repositoryImpl) Reschedule(ctx context.Context, bookingID string, oldRoomID, newRoomID string, ivl model.Interval, fields map[string]any) (model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Reschedule")
	defer scope.End()

	lockIDs := []string{newRoomID}
	if oldRoomID != newRoomID {
		lockIDs = append(lockIDs, oldRoomID)
		sort.Strings(lockIDs)
	}

	var conflict model.Booking

	err := repo.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, roomID := range lockIDs {
			if err := postgres.AcquireRoomLock(ctx, tx, roomID); err != nil {
				return err
			}
		}

		found, err := repo.findConflictTx(ctx, tx, newRoomID, ivl, bookingID)
		if err != nil {
			return err
		}

		if found.ID != constant.Empty {
			conflict = found

			return nil
		}

		filter := gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{Field: model.FieldID, Value: bookingID, Operator: gDto.FilterOperatorEq},
			},
		}

		return repo.UpdateTx(ctx, tx, fields, filter)
	})
	if err != nil {
		scope.TraceError(err)

		return model.Booking{}, err
	}

	return conflict, nil
}

// ApplyStatusChange commits a lifecycle transition: booking status, the
// room's checked_in projection, and the optional note move in one
// transaction so the two entities can never disagree.
func (repo *repositoryImpl) ApplyStatusChange(ctx context.Context, change StatusChange) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ApplyStatusChange")
	defer scope.End()

	err := repo.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := postgres.AcquireRoomLock(ctx, tx, change.RoomID); err != nil {
			return err
		}

		filter := gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{Field: model.FieldID, Value: change.BookingID, Operator: gDto.FilterOperatorEq},
			},
		}

		if err := repo.UpdateTx(ctx, tx, change.Fields, filter); err != nil {
			return err
		}

		if change.SetCheckedIn != nil {
			if err := repo.rooms.SetCheckedInTx(ctx, tx, change.RoomID, *change.SetCheckedIn); err != nil {
				return err
			}
		}

		if change.Note != nil {
			if err := repo.insertNote(ctx, tx, *change.Note); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		scope.TraceError(err)

		return err
	}

	return nil
}

const insertNoteQuery = `INSERT INTO booking_notes (id, booking_id, author, body, created_at)
VALUES (:id, :booking_id, :author, :body, :created_at)`

type noteExecer interface {
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

func (repo *repositoryImpl) insertNote(ctx context.Context, exec noteExecer, note model.Note) error {
	if _, err := exec.NamedExecContext(ctx, insertNoteQuery, note); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to insert booking note: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) InsertNote(ctx context.Context, note model.Note) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertNote")
	defer scope.End()

	return repo.insertNote(ctx, repo.db.Write, note)
}

func (repo *repositoryImpl) GetNotes(ctx context.Context, bookingID string) ([]model.Note, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetNotes")
	defer scope.End()

	query := `SELECT id, booking_id, author, body, created_at FROM booking_notes WHERE booking_id = $1 ORDER BY created_at`

	var notes []model.Note

	if err := repo.db.Read.SelectContext(ctx, &notes, query, bookingID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get booking notes: %w", err)
	}

	return notes, nil
}

// GetActiveInWindow returns active bookings whose intervals intersect the
// inclusive display window, for the calendar projection. An empty roomIDs
// slice selects every room.
func (repo *repositoryImpl) GetActiveInWindow(ctx context.Context, roomIDs []string, windowStart, windowEnd time.Time) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetActiveInWindow")
	defer scope.End()

	query := `SELECT id, room_id, guest_name, guest_contact, check_in_date, check_out_date,
	status, total_amount, payment_status, created_at, modified_at, created_by, modified_by
FROM bookings
WHERE status IN ('reserved', 'checked_in')
  AND check_in_date <= ?
  AND check_out_date >= ?`

	args := []any{windowEnd, windowStart}

	if len(roomIDs) > 0 {
		var err error

		query, args, err = sqlx.In(query+" AND room_id IN (?)", windowEnd, windowStart, roomIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to expand room scope: %w", err)
		}
	}

	query = repo.db.Read.Rebind(query + " ORDER BY check_in_date, room_id")

	var bookings []model.Booking

	if err := repo.db.Read.SelectContext(ctx, &bookings, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get bookings in window: %w", err)
	}

	return bookings, nil
}
