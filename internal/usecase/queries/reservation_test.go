//go:build unit

package queries_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"movie-reservation/internal/infra"
	"movie-reservation/internal/pkg/errs"
	"movie-reservation/internal/usecase/queries"
	queriesmock "movie-reservation/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	id := uuid.New()

	testCases := []struct {
		name      string
		actor     uuid.UUID
		repoView  *queries.ReservationView
		repoErr   error
		expectErr error
	}{
		{name: "owner sees the reservation", actor: owner, repoView: &queries.ReservationView{ID: id, CustomerID: owner}},
		{name: "other customers get not found", actor: uuid.New(), repoView: &queries.ReservationView{ID: id, CustomerID: owner}, expectErr: errs.ErrReservationNotFound},
		{name: "missing row", actor: owner, repoErr: infra.WrapRepoErr("not found", pgx.ErrNoRows), expectErr: errs.ErrReservationNotFound},
		{name: "database failure", actor: owner, repoErr: infra.WrapRepoErr("failed", errors.New("timeout")), expectErr: errs.ErrDatabaseOperationFailed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := queriesmock.NewMockReservationViewRepo(ctrl)
			repo.EXPECT().FindByID(ctx, id).Return(tc.repoView, tc.repoErr)

			view, err := queries.NewReservationQueries(repo, 50).GetByID(ctx, tc.actor, id)

			if tc.expectErr != nil {
				assert.True(t, errs.Is(err, tc.expectErr), "expected %v, got %v", tc.expectErr, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Same(t, tc.repoView, view)
		})
	}
}

func TestReservationQueries_ListByCustomer(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	testCases := []struct {
		name         string
		limit        int
		offset       int
		expectLimit  int32
		expectOffset int32
	}{
		{name: "explicit paging", limit: 10, offset: 20, expectLimit: 10, expectOffset: 20},
		{name: "default limit", limit: 0, offset: 0, expectLimit: 25, expectOffset: 0},
		{name: "limit is capped", limit: 1000, offset: 0, expectLimit: queries.MaxListLimit, expectOffset: 0},
		{name: "negative offset", limit: 5, offset: -1, expectLimit: 5, expectOffset: 0},
		{name: "offset beyond int32 is clamped", limit: 5, offset: math.MaxInt32 + 1, expectLimit: 5, expectOffset: math.MaxInt32},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := queriesmock.NewMockReservationViewRepo(ctrl)
			want := []*queries.ReservationView{{ID: uuid.New(), CustomerID: customerID}}
			repo.EXPECT().FindByCustomerID(ctx, customerID, tc.expectLimit, tc.expectOffset).Return(want, nil)

			got, err := queries.NewReservationQueries(repo, 25).ListByCustomer(ctx, customerID, tc.limit, tc.offset)

			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestReservationQueries_ListByCustomer_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := queriesmock.NewMockReservationViewRepo(ctrl)
	repo.EXPECT().FindByCustomerID(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := queries.NewReservationQueries(repo, 0).ListByCustomer(context.Background(), uuid.New(), 0, 0)

	assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
}
