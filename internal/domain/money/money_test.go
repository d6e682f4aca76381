//go:build unit

package money_test

import (
	"encoding/json"
	"testing"

	"movie-reservation/internal/domain/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		name   string
		amount decimal.Decimal
		errIs  error
	}{
		{name: "zero", amount: decimal.Zero},
		{name: "positive", amount: decimal.NewFromInt(10000)},
		{name: "fractional", amount: decimal.RequireFromString("0.5")},
		{name: "negative", amount: decimal.NewFromInt(-1), errIs: money.ErrInvalidAmount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := money.New(tc.amount)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.amount.Equal(actual.Amount()))
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	fee := money.MustWons(10000)
	discount := money.MustWons(1000)

	t.Run("add", func(t *testing.T) {
		assert.True(t, money.MustWons(11000).Equal(fee.Add(discount)))
	})

	t.Run("subtract", func(t *testing.T) {
		actual, err := fee.Subtract(discount)
		require.NoError(t, err)
		assert.True(t, money.MustWons(9000).Equal(actual))
	})

	t.Run("subtract to zero", func(t *testing.T) {
		actual, err := fee.Subtract(fee)
		require.NoError(t, err)
		assert.True(t, actual.IsZero())
	})

	t.Run("subtract below zero", func(t *testing.T) {
		_, err := discount.Subtract(fee)
		require.ErrorIs(t, err, money.ErrInvalidAmount)
	})

	t.Run("scale by count", func(t *testing.T) {
		actual, err := fee.ScaleByCount(3)
		require.NoError(t, err)
		assert.True(t, money.MustWons(30000).Equal(actual))

		zero, err := fee.ScaleByCount(0)
		require.NoError(t, err)
		assert.True(t, zero.IsZero())

		_, err = fee.ScaleByCount(-1)
		require.ErrorIs(t, err, money.ErrInvalidAmount)
	})

	t.Run("scale by fraction is exact", func(t *testing.T) {
		actual, err := fee.ScaleByFraction(0.1)
		require.NoError(t, err)
		assert.Equal(t, "1000", actual.String())

		odd, err := money.MustWons(9999).ScaleByFraction(0.15)
		require.NoError(t, err)
		assert.Equal(t, "1499.85", odd.String())

		_, err = fee.ScaleByFraction(-0.1)
		require.ErrorIs(t, err, money.ErrInvalidAmount)
	})

	t.Run("operations do not mutate the receiver", func(t *testing.T) {
		_ = fee.Add(discount)
		_, _ = fee.Subtract(discount)
		_, _ = fee.ScaleByCount(5)
		assert.True(t, money.MustWons(10000).Equal(fee))
	})
}

func TestMoney_JSON(t *testing.T) {
	data, err := json.Marshal(money.MustWons(18000))
	require.NoError(t, err)
	assert.JSONEq(t, `"18000"`, string(data))

	var parsed money.Money
	require.NoError(t, json.Unmarshal([]byte(`"9000.5"`), &parsed))
	assert.Equal(t, "9000.5", parsed.String())

	err = json.Unmarshal([]byte(`"-1"`), &parsed)
	require.ErrorIs(t, err, money.ErrInvalidAmount)
}
