package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	pqErrorCodeSerializationFailure = "40001"
	pqErrorCodeDeadlockDetected     = "40P01"
	pqErrorCodeExclusionViolation   = "23P01"
)

// WithTx runs fn inside a single write transaction, committing when fn
// returns nil and rolling back otherwise.
func (c *Connection) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := c.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// AcquireRoomLock serializes writers targeting the same room for the rest of
// the transaction. The lock is released automatically at commit or rollback.
func AcquireRoomLock(ctx context.Context, tx *sqlx.Tx, roomID string) error {
	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", roomID); err != nil {
		return fmt.Errorf("failed to acquire room lock: %w", err)
	}

	return nil
}

// IsTransientConflict reports whether err is a transaction abort the caller
// can resolve by retrying: serialization failure, deadlock, or a race lost
// against the booking interval exclusion constraint.
func IsTransientConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	code := string(pqErr.Code)

	return code == pqErrorCodeSerializationFailure ||
		code == pqErrorCodeDeadlockDetected ||
		code == pqErrorCodeExclusionViolation
}
