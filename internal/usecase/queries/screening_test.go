//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"movie-reservation/internal/domain/reservation"
	"movie-reservation/internal/pkg/clock"
	"movie-reservation/internal/pkg/errs"
	"movie-reservation/internal/usecase/queries"
	"movie-reservation/tests/common/builder"
	queriesmock "movie-reservation/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestScreeningQueries_ListByDate(t *testing.T) {
	ctx := context.Background()
	seoul := time.FixedZone("KST", 9*60*60)

	first := builder.NewScreeningBuilder().MustBuild()
	second := builder.NewScreeningBuilder().WithSequence(2).WithWhenScreened(builder.Friday(13, 30)).MustBuild()

	t.Run("explicit date uses the local calendar day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		lister := queriesmock.NewMockScreeningLister(ctrl)
		q := queries.NewScreeningQueries(lister, clock.NewMockClock(time.Now()), seoul)

		date := time.Date(2023, 1, 6, 12, 0, 0, 0, seoul)
		from := time.Date(2023, 1, 6, 0, 0, 0, 0, seoul)
		lister.EXPECT().ListByDate(ctx, from, from.AddDate(0, 0, 1)).
			Return([]*reservation.Screening{first, second}, nil)

		views, err := q.ListByDate(ctx, &date)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, first.ID(), views[0].ID)
		assert.Equal(t, "Avatar", views[0].MovieTitle)
		assert.Equal(t, 162, views[0].RunningTimeMinutes)
		assert.Equal(t, "10000", views[0].Fee.String())
		assert.Equal(t, "9000", views[0].UnitFee.String())
		assert.True(t, views[0].Discountable)
		assert.Equal(t, "amount", views[0].DiscountPolicy)
		assert.Equal(t, "10000", views[1].UnitFee.String())
		assert.False(t, views[1].Discountable)
	})

	t.Run("no date falls back to today", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		lister := queriesmock.NewMockScreeningLister(ctrl)
		// 2023-01-05 20:00 UTC is already 2023-01-06 in Seoul
		now := time.Date(2023, 1, 5, 20, 0, 0, 0, time.UTC)
		q := queries.NewScreeningQueries(lister, clock.NewMockClock(now), seoul)

		from := time.Date(2023, 1, 6, 0, 0, 0, 0, seoul)
		lister.EXPECT().ListByDate(ctx, from, from.AddDate(0, 0, 1)).Return(nil, nil)

		views, err := q.ListByDate(ctx, nil)

		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("lister failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		lister := queriesmock.NewMockScreeningLister(ctrl)
		q := queries.NewScreeningQueries(lister, clock.NewMockClock(time.Now()), nil)
		lister.EXPECT().ListByDate(ctx, gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := q.ListByDate(ctx, nil)

		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}
