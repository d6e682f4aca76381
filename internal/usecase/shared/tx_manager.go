package shared

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"movie-reservation/internal/infra/sqlc"
	"movie-reservation/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

//go:generate mockgen -source=tx_manager.go -destination=../../../tests/mock/shared/tx_manager_mock.go -package=sharedmock

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// Beginner is satisfied by *pgxpool.Pool.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type TxManager interface {
	WithinTx(ctx context.Context, fn func(tx sqlc.DBTX) error) error
}

type pgxTxManager struct {
	db         Beginner
	maxRetries int
}

func NewTxManager(db Beginner, maxRetries int) TxManager {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &pgxTxManager{db: db, maxRetries: maxRetries}
}

func (m *pgxTxManager) WithinTx(ctx context.Context, fn func(tx sqlc.DBTX) error) error {
	_, err := RunInTxWithRetry(ctx, m.db, m.maxRetries, func(tx sqlc.DBTX) (struct{}, error) {
		return struct{}{}, fn(tx)
	})
	return err
}

func RunInTx[T any](ctx context.Context, db Beginner, fn func(tx sqlc.DBTX) (T, error)) (T, error) {
	var zero T

	tx, err := db.Begin(ctx)
	if err != nil {
		return zero, errs.Mark(err, ErrTransactionBegin)
	}

	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback transaction", "error", rollbackErr)
			}
		}
	}()

	result, err := fn(tx)
	if err != nil {
		return zero, err
	}

	if err = tx.Commit(ctx); err != nil {
		return zero, errs.Mark(err, ErrTransactionCommit)
	}

	return result, nil
}

func RunInTxWithRetry[T any](ctx context.Context, db Beginner, maxRetries int, fn func(tx sqlc.DBTX) (T, error)) (T, error) {
	var zero T

	for attempt := 0; attempt <= maxRetries; attempt++ {
		result, err := RunInTx(ctx, db, fn)
		if err == nil {
			return result, nil
		}

		if !isRetryableError(err) {
			return zero, err
		}

		if attempt == maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err)
			return zero, errs.Mark(err, ErrMaxRetriesExceeded)
		}

		waitTime := time.Duration(attempt+1) * 100 * time.Millisecond
		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_time", waitTime,
			"error", err)

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return zero, ErrMaxRetriesExceeded
}

// 40001 serialization_failure, 40P01 deadlock_detected
func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case "40001", "40P01":
		return true
	default:
		return false
	}
}
