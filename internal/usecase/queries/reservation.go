package queries

import (
	"context"
	"math"

	"movie-reservation/internal/infra"
	"movie-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation_mock.go -package=queriesmock

const MaxListLimit = 200

type ReservationQueries interface {
	GetByID(ctx context.Context, customerID uuid.UUID, id uuid.UUID) (*ReservationView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*ReservationView, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID, limit, offset int32) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	repo         ReservationViewRepo
	defaultLimit int
}

func NewReservationQueries(repo ReservationViewRepo, defaultLimit int) ReservationQueries {
	if defaultLimit <= 0 || defaultLimit > MaxListLimit {
		defaultLimit = 50
	}
	return &reservationQueriesImpl{repo: repo, defaultLimit: defaultLimit}
}

// GetByID only returns reservations owned by customerID; others look missing.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, customerID uuid.UUID, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if view.CustomerID != customerID {
		return nil, errs.Wrapf(errs.ErrReservationNotFound, "reservation %s", id)
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*ReservationView, error) {
	if limit <= 0 {
		limit = q.defaultLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	if offset > math.MaxInt32 {
		offset = math.MaxInt32
	}

	views, err := q.repo.FindByCustomerID(ctx, customerID, int32(limit), int32(offset))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
