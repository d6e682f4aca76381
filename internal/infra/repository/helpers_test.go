//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"movie-reservation/internal/infra/sqlc"
	"movie-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}

// 2023-01-06 is a Friday.
var fridayFirstShowing = time.Date(2023, 1, 6, 1, 30, 0, 0, time.UTC)

func amountOffScreeningRow(movieID uuid.UUID, sequence int32) sqlc.ScreeningRow {
	return sqlc.ScreeningRow{
		ID:                 uuid.New(),
		Sequence:           sequence,
		WhenScreened:       pgconv.TimeToPgtype(fridayFirstShowing),
		MovieID:            movieID,
		Title:              "Avatar",
		RunningTimeMinutes: 162,
		Fee:                pgconv.DecimalToNumeric(decimal.NewFromInt(10000)),
		DiscountPolicy:     "amount",
		DiscountAmount:     pgconv.DecimalToNumeric(decimal.NewFromInt(1000)),
	}
}

func sequenceConditionRow(movieID uuid.UUID, sequence int32) sqlc.DiscountConditions {
	return sqlc.DiscountConditions{
		ID:       uuid.New(),
		MovieID:  movieID,
		Kind:     "sequence",
		Sequence: pgtype.Int4{Int32: sequence, Valid: true},
	}
}

func periodConditionRow(movieID uuid.UUID, weekday int16, start, end time.Duration) sqlc.DiscountConditions {
	return sqlc.DiscountConditions{
		ID:        uuid.New(),
		MovieID:   movieID,
		Kind:      "period",
		Weekday:   pgtype.Int2{Int16: weekday, Valid: true},
		StartTime: pgconv.TimeOfDayToPgtype(start),
		EndTime:   pgconv.TimeOfDayToPgtype(end),
	}
}

// scanTimestamptz round-trips when through the binary timestamptz codec, the
// way rows come back from the pool.
func scanTimestamptz(t *testing.T, when time.Time) pgtype.Timestamptz {
	t.Helper()
	m := pgtype.NewMap()
	buf, err := m.Encode(pgtype.TimestamptzOID, pgtype.BinaryFormatCode, pgtype.Timestamptz{Time: when, Valid: true}, nil)
	require.NoError(t, err)

	var ts pgtype.Timestamptz
	require.NoError(t, m.Scan(pgtype.TimestamptzOID, pgtype.BinaryFormatCode, buf, &ts))
	return ts
}

// useLocal sets time.Local for the duration of the test.
func useLocal(t *testing.T, loc *time.Location) {
	t.Helper()
	prev := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = prev })
}
