package repository_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innkeep/infras/otel/mocks"
	"innkeep/infras/postgres"
	"innkeep/internal/domains/booking/model"
	"innkeep/internal/domains/booking/repository"
	roomRepository "innkeep/internal/domains/room/repository"
	"innkeep/shared/constant"
	gModel "innkeep/shared/model"
)

// These tests need a real database: the conflict predicate and the
// lock-then-recheck-then-insert sequence only mean something against
// Postgres. Point TEST_POSTGRES_DSN at a disposable database to run them.
func setupRepository(t *testing.T) (repository.Booking, *sqlx.DB) {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set, skipping postgres integration tests")
	}

	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)

	migrations, err := migrate.New("file://../../../../migrations/postgres", dsn)
	require.NoError(t, err)

	if err := migrations.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_, _ = db.Exec("TRUNCATE booking_notes, bookings, rooms CASCADE")
		_, _ = migrations.Close()
		_ = db.Close()
	})

	conn := &postgres.Connection{Read: db, Write: db}

	return repository.New(conn, roomRepository.New(conn, mocks.NewOtel()), mocks.NewOtel()), db
}

func insertRoom(t *testing.T, db *sqlx.DB) string {
	t.Helper()

	id := uuid.NewString()

	_, err := db.Exec(
		"INSERT INTO rooms (id, room_number, room_type) VALUES ($1, $2, 'double')",
		id, id[:8],
	)
	require.NoError(t, err)

	return id
}

func newReserved(roomID string, checkIn, checkOut time.Time) model.Booking {
	now := time.Now()

	return model.Booking{
		ID:            uuid.NewString(),
		RoomID:        roomID,
		GuestName:     "Ayu Lestari",
		GuestContact:  "+62 811 0000 0000",
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		Status:        model.StatusReserved,
		PaymentStatus: model.PaymentPending,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "front-desk",
			ModifiedBy: "front-desk",
		},
	}
}

func bookingCount(t *testing.T, db *sqlx.DB, roomID string) int {
	t.Helper()

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM bookings WHERE room_id = $1", roomID))

	return count
}

// Two concurrent reservations for overlapping intervals on the same room:
// the advisory lock serializes them, the loser re-reads inside its own
// transaction and comes back with the winner as its conflict, and exactly
// one row lands.
func TestBookingRepository_CreateReserved_Concurrent(t *testing.T) {
	repo, db := setupRepository(t)
	roomID := insertRoom(t, db)

	candidates := []model.Booking{
		newReserved(roomID, date("2026-03-10"), date("2026-03-13")),
		newReserved(roomID, date("2026-03-11"), date("2026-03-14")),
	}

	conflicts := make([]model.Booking, len(candidates))
	errs := make([]error, len(candidates))

	var wg sync.WaitGroup

	for i, booking := range candidates {
		wg.Add(1)

		go func() {
			defer wg.Done()

			conflicts[i], errs[i] = repo.CreateReserved(context.Background(), booking)
		}()
	}

	wg.Wait()

	var inserted, rejected int

	for i := range candidates {
		require.NoError(t, errs[i])

		if conflicts[i].ID == constant.Empty {
			inserted++
			continue
		}

		rejected++
		assert.Equal(t, candidates[1-i].ID, conflicts[i].ID)
	}

	assert.Equal(t, 1, inserted)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, 1, bookingCount(t, db, roomID))
}

func TestBookingRepository_CreateReserved_Overlap(t *testing.T) {
	repo, db := setupRepository(t)
	roomID := insertRoom(t, db)

	first := newReserved(roomID, date("2026-03-10"), date("2026-03-13"))

	conflict, err := repo.CreateReserved(context.Background(), first)
	require.NoError(t, err)
	require.Empty(t, conflict.ID)

	t.Run("overlapping interval is rejected with the blocking booking", func(t *testing.T) {
		conflict, err := repo.CreateReserved(context.Background(), newReserved(roomID, date("2026-03-12"), date("2026-03-15")))
		assert.NoError(t, err)
		assert.Equal(t, first.ID, conflict.ID)
	})

	t.Run("back to back stay is not a conflict", func(t *testing.T) {
		conflict, err := repo.CreateReserved(context.Background(), newReserved(roomID, date("2026-03-13"), date("2026-03-15")))
		assert.NoError(t, err)
		assert.Empty(t, conflict.ID)
	})

	assert.Equal(t, 2, bookingCount(t, db, roomID))
}

func TestBookingRepository_Reschedule_Conflict(t *testing.T) {
	repo, db := setupRepository(t)
	roomID := insertRoom(t, db)

	blocker := newReserved(roomID, date("2026-03-10"), date("2026-03-13"))
	movable := newReserved(roomID, date("2026-03-20"), date("2026-03-22"))

	for _, booking := range []model.Booking{blocker, movable} {
		conflict, err := repo.CreateReserved(context.Background(), booking)
		require.NoError(t, err)
		require.Empty(t, conflict.ID)
	}

	ivl := model.Interval{CheckIn: date("2026-03-12"), CheckOut: date("2026-03-16")}
	fields := map[string]any{
		model.FieldCheckInDate:  ivl.CheckIn,
		model.FieldCheckOutDate: ivl.CheckOut,
	}

	conflict, err := repo.Reschedule(context.Background(), movable.ID, roomID, roomID, ivl, fields)
	assert.NoError(t, err)
	assert.Equal(t, blocker.ID, conflict.ID)

	// The losing reschedule must leave the original dates in place.
	var checkIn time.Time
	require.NoError(t, db.Get(&checkIn, "SELECT check_in_date FROM bookings WHERE id = $1", movable.ID))
	assert.Equal(t, "2026-03-20", checkIn.Format(constant.DateOnlyFormat))
}

// The exclusion constraint is the backstop for writes that bypass the
// advisory lock entirely; losing against it must read as retryable.
func TestBookingRepository_ExclusionConstraintBackstop(t *testing.T) {
	_, db := setupRepository(t)
	roomID := insertRoom(t, db)

	insert := func(booking model.Booking) error {
		_, err := db.NamedExec(`INSERT INTO bookings
			(id, room_id, guest_name, guest_contact, check_in_date, check_out_date, status, payment_status)
			VALUES (:id, :room_id, :guest_name, :guest_contact, :check_in_date, :check_out_date, :status, :payment_status)`,
			booking)

		return err
	}

	require.NoError(t, insert(newReserved(roomID, date("2026-03-10"), date("2026-03-13"))))

	err := insert(newReserved(roomID, date("2026-03-12"), date("2026-03-15")))
	assert.Error(t, err)
	assert.True(t, postgres.IsTransientConflict(err))
}

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return parsed
}
