//go:build unit

package pgconv_test

import (
	"math/big"
	"testing"
	"time"

	"movie-reservation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "18000", "1499.85", "0.000001"} {
		t.Run(s, func(t *testing.T) {
			d := decimal.RequireFromString(s)

			got, err := pgconv.DecimalFromNumeric(pgconv.DecimalToNumeric(d))

			require.NoError(t, err)
			assert.True(t, d.Equal(got), "%s != %s", d, got)
		})
	}
}

func TestDecimalFromNumeric_Invalid(t *testing.T) {
	testCases := []struct {
		name        string
		input       pgtype.Numeric
		expectedErr error
	}{
		{name: "null", input: pgtype.Numeric{}, expectedErr: pgconv.ErrNullValue},
		{name: "NaN", input: pgtype.Numeric{NaN: true, Valid: true}, expectedErr: pgconv.ErrInvalidNumericValue},
		{name: "infinity", input: pgtype.Numeric{Int: big.NewInt(0), InfinityModifier: pgtype.Infinity, Valid: true}, expectedErr: pgconv.ErrInvalidNumericValue},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pgconv.DecimalFromNumeric(tc.input)
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestDecimalPtrFromNumeric_Null(t *testing.T) {
	got, err := pgconv.DecimalPtrFromNumeric(pgtype.Numeric{})

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTimeOfDay(t *testing.T) {
	d := 13*time.Hour + 30*time.Minute

	got, ok := pgconv.TimeOfDayFromPgtype(pgconv.TimeOfDayToPgtype(d))

	assert.True(t, ok)
	assert.Equal(t, d, got)

	_, ok = pgconv.TimeOfDayFromPgtype(pgtype.Time{})
	assert.False(t, ok)
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(assert.AnError))
}

func TestTimeInLocation(t *testing.T) {
	seoul, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)
	utc := time.Date(2023, 1, 5, 16, 30, 0, 0, time.UTC)

	got := pgconv.TimeInLocation(pgconv.TimeToPgtype(utc), seoul)

	assert.True(t, utc.Equal(got))
	assert.Equal(t, seoul, got.Location())
	assert.Equal(t, time.Friday, got.Weekday())
	assert.Equal(t, 1, got.Hour())

	assert.Equal(t, utc, pgconv.TimeInLocation(pgconv.TimeToPgtype(utc), nil))
}
