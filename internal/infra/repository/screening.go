package repository

import (
	"context"
	"time"

	"movie-reservation/internal/domain/movie"
	"movie-reservation/internal/domain/reservation"
	"movie-reservation/internal/infra"
	"movie-reservation/internal/infra/repository/converter"
	"movie-reservation/internal/infra/sqlc"
	"movie-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=screening.go -destination=../../../tests/mock/repository/screening_mock.go -package=repositorymock

type ScreeningQueries interface {
	GetScreeningByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ScreeningRow, error)
	ListScreeningsByDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListScreeningsByDateParams) ([]sqlc.ScreeningRow, error)
	GetDiscountConditionsByMovieIDs(ctx context.Context, db sqlc.DBTX, movieIds []pgtype.UUID) ([]sqlc.DiscountConditions, error)
}

type ScreeningRepository struct {
	queries ScreeningQueries
	db      sqlc.DBTX
	loc     *time.Location
}

func NewScreeningRepository(queries ScreeningQueries, db sqlc.DBTX, loc *time.Location) *ScreeningRepository {
	return &ScreeningRepository{
		queries: queries,
		db:      db,
		loc:     loc,
	}
}

func (r *ScreeningRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Screening, error) {
	row, err := r.queries.GetScreeningByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find screening by ID", err)
	}

	screenings, err := r.assemble(ctx, []sqlc.ScreeningRow{row})
	if err != nil {
		return nil, err
	}
	return screenings[0], nil
}

// ListByDate returns the screenings in [from, to). Conditions for all their
// movies are loaded with a single query.
func (r *ScreeningRepository) ListByDate(ctx context.Context, from, to time.Time) ([]*reservation.Screening, error) {
	rows, err := r.queries.ListScreeningsByDate(ctx, r.db, sqlc.ListScreeningsByDateParams{
		From: pgconv.TimeToPgtype(from),
		To:   pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list screenings", err)
	}
	if len(rows) == 0 {
		return []*reservation.Screening{}, nil
	}
	return r.assemble(ctx, rows)
}

func (r *ScreeningRepository) assemble(ctx context.Context, rows []sqlc.ScreeningRow) ([]*reservation.Screening, error) {
	movieIDs := make([]uuid.UUID, 0, len(rows))
	seen := make(map[uuid.UUID]bool, len(rows))
	for _, row := range rows {
		if !seen[row.MovieID] {
			seen[row.MovieID] = true
			movieIDs = append(movieIDs, row.MovieID)
		}
	}

	conditionRows, err := r.queries.GetDiscountConditionsByMovieIDs(ctx, r.db, pgconv.UUIDsToPgtype(movieIDs))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load discount conditions", err)
	}
	conditionsByMovie := make(map[uuid.UUID][]sqlc.DiscountConditions, len(movieIDs))
	for _, c := range conditionRows {
		conditionsByMovie[c.MovieID] = append(conditionsByMovie[c.MovieID], c)
	}

	// screenings of the same movie share one *movie.Movie
	movies := make(map[uuid.UUID]*movie.Movie, len(movieIDs))
	result := make([]*reservation.Screening, 0, len(rows))
	for _, row := range rows {
		m, ok := movies[row.MovieID]
		if !ok {
			m, err = converter.MovieFromRow(row, conditionsByMovie[row.MovieID])
			if err != nil {
				return nil, infra.WrapRepoErr("invalid movie row", err, infra.KindCorruptRow)
			}
			movies[row.MovieID] = m
		}

		s, err := converter.ScreeningFromRow(row, m, r.loc)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid screening row", err, infra.KindCorruptRow)
		}
		result = append(result, s)
	}

	return result, nil
}
