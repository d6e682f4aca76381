//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"movie-reservation/internal/domain/movie"
	"movie-reservation/internal/domain/reservation"
	"movie-reservation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgency_Reserve(t *testing.T) {
	periodMovie := builder.NewMovieBuilder().
		WithConditions(builder.MustPeriod(time.Friday, "01:20", "02:30")).
		MustBuild()

	testCases := []struct {
		name          string
		screening     *builder.ScreeningBuilder
		audienceCount int
		expectedFee   string
	}{
		{
			name:          "first showing of the day",
			screening:     builder.NewScreeningBuilder(),
			audienceCount: 2,
			expectedFee:   "18000",
		},
		{
			name:          "inside the Friday period",
			screening:     builder.NewScreeningBuilder().WithMovie(periodMovie).WithSequence(4),
			audienceCount: 2,
			expectedFee:   "18000",
		},
		{
			name: "outside the Friday period",
			screening: builder.NewScreeningBuilder().
				WithMovie(periodMovie).
				WithSequence(4).
				WithWhenScreened(builder.Friday(13, 30)),
			audienceCount: 2,
			expectedFee:   "20000",
		},
		{
			name:          "nobody attending",
			screening:     builder.NewScreeningBuilder(),
			audienceCount: 0,
			expectedFee:   "0",
		},
	}

	agency := reservation.NewAgency()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			screening := tc.screening.MustBuild()
			customer := builder.NewCustomer()

			got, err := agency.Reserve(screening, customer, tc.audienceCount)

			require.NoError(t, err)
			assert.Equal(t, tc.expectedFee, got.Fee().String())
			assert.Equal(t, tc.audienceCount, got.AudienceCount())
			assert.Same(t, customer, got.Customer())
			assert.Same(t, screening, got.Screening())
			assert.NotEqual(t, uuid.Nil, got.ID())
		})
	}
}

func TestAgency_Reserve_MatchesScreeningFee(t *testing.T) {
	screening := builder.NewScreeningBuilder().
		WithMovie(builder.NewMovieBuilder().AsPercentDiscount(0.3).MustBuild()).
		MustBuild()

	expected, err := screening.CalculateFee(3)
	require.NoError(t, err)

	got, err := reservation.NewAgency().Reserve(screening, builder.NewCustomer(), 3)
	require.NoError(t, err)

	assert.True(t, expected.Equal(got.Fee()))
	assert.Equal(t, "21000", got.Fee().String())
}

func TestAgency_Reserve_Errors(t *testing.T) {
	agency := reservation.NewAgency()
	screening := builder.NewScreeningBuilder().MustBuild()

	t.Run("nil screening", func(t *testing.T) {
		_, err := agency.Reserve(nil, builder.NewCustomer(), 1)
		assert.ErrorIs(t, err, reservation.ErrScreeningRequired)
	})

	t.Run("nil customer", func(t *testing.T) {
		_, err := agency.Reserve(screening, nil, 1)
		assert.ErrorIs(t, err, reservation.ErrCustomerRequired)
	})

	t.Run("negative audience", func(t *testing.T) {
		got, err := agency.Reserve(screening, builder.NewCustomer(), -1)
		assert.ErrorIs(t, err, movie.ErrInvalidAudienceCount)
		assert.Nil(t, got)
	})
}

func TestAgency_Reserve_DoesNotChangeScreening(t *testing.T) {
	screening := builder.NewScreeningBuilder().MustBuild()
	before := screening.WhenScreened()

	for i := 0; i < 3; i++ {
		_, err := reservation.NewAgency().Reserve(screening, builder.NewCustomer(), 2)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, screening.Sequence())
	assert.Equal(t, before, screening.WhenScreened())
	assert.Equal(t, "10000", screening.Movie().Fee().String())
}
