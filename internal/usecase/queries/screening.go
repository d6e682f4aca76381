package queries

import (
	"context"
	"time"

	"movie-reservation/internal/domain/reservation"
	"movie-reservation/internal/pkg/clock"
	"movie-reservation/internal/pkg/errs"
)

//go:generate mockgen -source=screening.go -destination=../../../tests/mock/queries/screening_mock.go -package=queriesmock

type ScreeningQueries interface {
	// ListByDate lists the screenings on the given calendar day, or today
	// when date is nil.
	ListByDate(ctx context.Context, date *time.Time) ([]*ScreeningView, error)
}

type ScreeningLister interface {
	ListByDate(ctx context.Context, from, to time.Time) ([]*reservation.Screening, error)
}

type screeningQueriesImpl struct {
	lister ScreeningLister
	clock  clock.Clock
	loc    *time.Location
}

func NewScreeningQueries(lister ScreeningLister, clk clock.Clock, loc *time.Location) ScreeningQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &screeningQueriesImpl{lister: lister, clock: clk, loc: loc}
}

func (q *screeningQueriesImpl) ListByDate(ctx context.Context, date *time.Time) ([]*ScreeningView, error) {
	// an explicit date is a calendar day and is not shifted between zones
	day := q.clock.Now().In(q.loc)
	if date != nil {
		day = *date
	}
	from, to := clock.Day(day, q.loc)

	screenings, err := q.lister.ListByDate(ctx, from, to)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views := make([]*ScreeningView, 0, len(screenings))
	for _, s := range screenings {
		view, err := toScreeningView(s)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func toScreeningView(s *reservation.Screening) (*ScreeningView, error) {
	unitFee, err := s.UnitFee()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	m := s.Movie()
	return &ScreeningView{
		ID:                 s.ID(),
		MovieID:            m.ID(),
		MovieTitle:         m.Title(),
		RunningTimeMinutes: int(m.RunningTime() / time.Minute),
		Sequence:           s.Sequence(),
		WhenScreened:       s.WhenScreened(),
		Fee:                m.Fee(),
		UnitFee:            unitFee,
		Discountable:       s.IsDiscountable(),
		DiscountPolicy:     m.Policy().String(),
	}, nil
}
