//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"movie-reservation/internal/domain/reservation"
	"movie-reservation/internal/infra"
	"movie-reservation/internal/infra/repository"
	"movie-reservation/internal/infra/sqlc"
	"movie-reservation/internal/pkg/pgconv"
	"movie-reservation/tests/common/builder"
	repositorymock "movie-reservation/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockReservationWriteQueries, *reservation.Reservation, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: reservation created",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, res *reservation.Reservation, tx sqlc.DBTX) {
				mock.EXPECT().CreateReservation(ctx, tx, sqlc.CreateReservationParams{
					ID:            res.ID(),
					ScreeningID:   res.Screening().ID(),
					CustomerID:    res.Customer().ID(),
					CustomerName:  res.Customer().Name(),
					AudienceCount: 2,
					Fee:           pgconv.DecimalToNumeric(res.Fee().Amount()),
				}).Return(res.ID(), nil)
			},
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, res *reservation.Reservation, tx sqlc.DBTX) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(uuid.Nil, errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: screening removed concurrently",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, res *reservation.Reservation, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key constraint"}
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(uuid.Nil, fk)
			},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name: "error: duplicate id",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, res *reservation.Reservation, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(uuid.Nil, dup)
			},
			expectKind: infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			res, err := reservation.NewAgency().Reserve(builder.NewScreeningBuilder().MustBuild(), builder.NewCustomer(), 2)
			require.NoError(t, err)

			tc.setupMock(mockQueries, res, mockDB)

			id, actualError := repo.Create(ctx, mockDB, res)

			if tc.expectKind != "" {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Equal(t, uuid.Nil, id)
				return
			}
			require.NoError(t, actualError)
			assert.Equal(t, res.ID(), id)
		})
	}
}
