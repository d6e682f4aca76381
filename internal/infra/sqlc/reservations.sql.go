package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createReservation = `-- name: CreateReservation :one
INSERT INTO reservations (id, screening_id, customer_id, customer_name, audience_count, fee)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

type CreateReservationParams struct {
	ID            uuid.UUID      `json:"id"`
	ScreeningID   uuid.UUID      `json:"screening_id"`
	CustomerID    uuid.UUID      `json:"customer_id"`
	CustomerName  string         `json:"customer_name"`
	AudienceCount int32          `json:"audience_count"`
	Fee           pgtype.Numeric `json:"fee"`
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createReservation,
		arg.ID,
		arg.ScreeningID,
		arg.CustomerID,
		arg.CustomerName,
		arg.AudienceCount,
		arg.Fee,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const reservationColumns = `
  r.id, r.screening_id, m.id, m.title, s.sequence, s.when_screened,
  r.customer_id, r.customer_name, r.audience_count, r.fee, r.created_at
FROM reservations r
JOIN screenings s ON s.id = r.screening_id
JOIN movies m ON m.id = s.movie_id
`

const getReservationByID = `-- name: GetReservationByID :one
SELECT` + reservationColumns + `WHERE r.id = $1
`

func (q *Queries) GetReservationByID(ctx context.Context, db DBTX, id uuid.UUID) (ReservationRow, error) {
	row := db.QueryRow(ctx, getReservationByID, id)
	var i ReservationRow
	err := scanReservation(row, &i)
	return i, err
}

const listReservationsByCustomer = `-- name: ListReservationsByCustomer :many
SELECT` + reservationColumns + `WHERE r.customer_id = $1
ORDER BY r.created_at DESC, r.id DESC
LIMIT $2 OFFSET $3
`

type ListReservationsByCustomerParams struct {
	CustomerID uuid.UUID `json:"customer_id"`
	Limit      int32     `json:"limit"`
	Offset     int32     `json:"offset"`
}

func (q *Queries) ListReservationsByCustomer(ctx context.Context, db DBTX, arg ListReservationsByCustomerParams) ([]ReservationRow, error) {
	rows, err := db.Query(ctx, listReservationsByCustomer, arg.CustomerID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ReservationRow
	for rows.Next() {
		var i ReservationRow
		if err := scanReservation(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanReservation(row scanner, i *ReservationRow) error {
	return row.Scan(
		&i.ID,
		&i.ScreeningID,
		&i.MovieID,
		&i.MovieTitle,
		&i.Sequence,
		&i.WhenScreened,
		&i.CustomerID,
		&i.CustomerName,
		&i.AudienceCount,
		&i.Fee,
		&i.CreatedAt,
	)
}
