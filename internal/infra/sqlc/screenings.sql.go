package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const screeningColumns = `
  s.id, s.sequence, s.when_screened,
  m.id, m.title, m.running_time_minutes, m.fee,
  m.discount_policy, m.discount_amount, m.discount_percent
FROM screenings s
JOIN movies m ON m.id = s.movie_id
`

const getScreeningByID = `-- name: GetScreeningByID :one
SELECT` + screeningColumns + `WHERE s.id = $1
`

func (q *Queries) GetScreeningByID(ctx context.Context, db DBTX, id uuid.UUID) (ScreeningRow, error) {
	row := db.QueryRow(ctx, getScreeningByID, id)
	var i ScreeningRow
	err := scanScreening(row, &i)
	return i, err
}

const listScreeningsByDate = `-- name: ListScreeningsByDate :many
SELECT` + screeningColumns + `WHERE s.when_screened >= $1 AND s.when_screened < $2
ORDER BY s.when_screened, s.sequence
`

type ListScreeningsByDateParams struct {
	From pgtype.Timestamptz `json:"from"`
	To   pgtype.Timestamptz `json:"to"`
}

func (q *Queries) ListScreeningsByDate(ctx context.Context, db DBTX, arg ListScreeningsByDateParams) ([]ScreeningRow, error) {
	rows, err := db.Query(ctx, listScreeningsByDate, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ScreeningRow
	for rows.Next() {
		var i ScreeningRow
		if err := scanScreening(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getDiscountConditionsByMovieIDs = `-- name: GetDiscountConditionsByMovieIDs :many
SELECT id, movie_id, kind, weekday, start_time, end_time, sequence
FROM discount_conditions
WHERE movie_id = ANY($1::uuid[])
ORDER BY movie_id, position
`

func (q *Queries) GetDiscountConditionsByMovieIDs(ctx context.Context, db DBTX, movieIds []pgtype.UUID) ([]DiscountConditions, error) {
	rows, err := db.Query(ctx, getDiscountConditionsByMovieIDs, movieIds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []DiscountConditions
	for rows.Next() {
		var i DiscountConditions
		if err := rows.Scan(
			&i.ID,
			&i.MovieID,
			&i.Kind,
			&i.Weekday,
			&i.StartTime,
			&i.EndTime,
			&i.Sequence,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanScreening(row scanner, i *ScreeningRow) error {
	return row.Scan(
		&i.ID,
		&i.Sequence,
		&i.WhenScreened,
		&i.MovieID,
		&i.Title,
		&i.RunningTimeMinutes,
		&i.Fee,
		&i.DiscountPolicy,
		&i.DiscountAmount,
		&i.DiscountPercent,
	)
}
