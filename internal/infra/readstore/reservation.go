package readstore

import (
	"context"
	"time"

	"movie-reservation/internal/domain/money"
	"movie-reservation/internal/infra"
	"movie-reservation/internal/infra/sqlc"
	"movie-reservation/internal/pkg/pgconv"
	"movie-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/readstore/reservation_mock.go -package=readstoremock

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ReservationRow, error)
	ListReservationsByCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByCustomerParams) ([]sqlc.ReservationRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
	loc     *time.Location
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX, loc *time.Location) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
		loc:     loc,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return rowToReservationView(row, r.loc)
}

func (r *ReservationReadStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID, limit, offset int32) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsByCustomer(ctx, r.db, sqlc.ListReservationsByCustomerParams{
		CustomerID: customerID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by customer", err)
	}

	result := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		view, err := rowToReservationView(row, r.loc)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}

	return result, nil
}

func rowToReservationView(row sqlc.ReservationRow, loc *time.Location) (*queries.ReservationView, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Fee)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid reservation fee", err, infra.KindCorruptRow)
	}
	fee, err := money.New(amount)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid reservation fee", err, infra.KindCorruptRow)
	}

	return &queries.ReservationView{
		ID:            row.ID,
		ScreeningID:   row.ScreeningID,
		MovieID:       row.MovieID,
		MovieTitle:    row.MovieTitle,
		Sequence:      int(row.Sequence),
		WhenScreened:  pgconv.TimeInLocation(row.WhenScreened, loc),
		CustomerID:    row.CustomerID,
		CustomerName:  row.CustomerName,
		AudienceCount: int(row.AudienceCount),
		Fee:           fee,
		CreatedAt:     pgconv.TimeInLocation(row.CreatedAt, loc),
	}, nil
}
