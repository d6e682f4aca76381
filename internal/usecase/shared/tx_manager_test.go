//go:build unit

package shared_test

import (
	"context"
	"errors"
	"testing"

	"movie-reservation/internal/infra/sqlc"
	"movie-reservation/internal/pkg/errs"
	"movie-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	commitErr  error
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	beginErr error
	txs      []*fakeTx
}

func (b *fakeBeginner) Begin(context.Context) (pgx.Tx, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	tx := &fakeTx{}
	b.txs = append(b.txs, tx)
	return tx, nil
}

func TestRunInTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		db := &fakeBeginner{}

		got, err := shared.RunInTx(ctx, db, func(tx sqlc.DBTX) (int, error) { return 7, nil })

		require.NoError(t, err)
		assert.Equal(t, 7, got)
		require.Len(t, db.txs, 1)
		assert.True(t, db.txs[0].committed)
		assert.False(t, db.txs[0].rolledBack)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db := &fakeBeginner{}
		fnErr := errors.New("boom")

		_, err := shared.RunInTx(ctx, db, func(tx sqlc.DBTX) (int, error) { return 0, fnErr })

		assert.ErrorIs(t, err, fnErr)
		assert.True(t, db.txs[0].rolledBack)
	})

	t.Run("begin failure is marked", func(t *testing.T) {
		db := &fakeBeginner{beginErr: errors.New("pool closed")}

		_, err := shared.RunInTx(ctx, db, func(tx sqlc.DBTX) (int, error) { return 0, nil })

		assert.True(t, errs.Is(err, shared.ErrTransactionBegin))
	})
}

func TestRunInTxWithRetry(t *testing.T) {
	ctx := context.Background()
	serialization := &pgconn.PgError{Code: "40001"}

	t.Run("retries serialization failures", func(t *testing.T) {
		db := &fakeBeginner{}
		calls := 0

		got, err := shared.RunInTxWithRetry(ctx, db, 2, func(tx sqlc.DBTX) (string, error) {
			calls++
			if calls == 1 {
				return "", serialization
			}
			return "ok", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "ok", got)
		assert.Equal(t, 2, calls)
		assert.Len(t, db.txs, 2)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		db := &fakeBeginner{}
		calls := 0

		_, err := shared.RunInTxWithRetry(ctx, db, 1, func(tx sqlc.DBTX) (string, error) {
			calls++
			return "", serialization
		})

		assert.True(t, errs.Is(err, shared.ErrMaxRetriesExceeded))
		assert.Equal(t, 2, calls)
	})

	t.Run("does not retry other errors", func(t *testing.T) {
		db := &fakeBeginner{}
		calls := 0

		_, err := shared.RunInTxWithRetry(ctx, db, 3, func(tx sqlc.DBTX) (string, error) {
			calls++
			return "", &pgconn.PgError{Code: "23505"}
		})

		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestTxManager_WithinTx(t *testing.T) {
	db := &fakeBeginner{}
	m := shared.NewTxManager(db, 0)

	var seen sqlc.DBTX
	err := m.WithinTx(context.Background(), func(tx sqlc.DBTX) error {
		seen = tx
		return nil
	})

	require.NoError(t, err)
	assert.Same(t, db.txs[0], seen)
	assert.True(t, db.txs[0].committed)
}
