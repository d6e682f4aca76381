package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DiscountConditions struct {
	ID        uuid.UUID   `json:"id"`
	MovieID   uuid.UUID   `json:"movie_id"`
	Kind      string      `json:"kind"`
	Weekday   pgtype.Int2 `json:"weekday"`
	StartTime pgtype.Time `json:"start_time"`
	EndTime   pgtype.Time `json:"end_time"`
	Sequence  pgtype.Int4 `json:"sequence"`
}

type ScreeningRow struct {
	ID                 uuid.UUID          `json:"id"`
	Sequence           int32              `json:"sequence"`
	WhenScreened       pgtype.Timestamptz `json:"when_screened"`
	MovieID            uuid.UUID          `json:"movie_id"`
	Title              string             `json:"title"`
	RunningTimeMinutes int32              `json:"running_time_minutes"`
	Fee                pgtype.Numeric     `json:"fee"`
	DiscountPolicy     string             `json:"discount_policy"`
	DiscountAmount     pgtype.Numeric     `json:"discount_amount"`
	DiscountPercent    pgtype.Float8      `json:"discount_percent"`
}

type ReservationRow struct {
	ID            uuid.UUID          `json:"id"`
	ScreeningID   uuid.UUID          `json:"screening_id"`
	MovieID       uuid.UUID          `json:"movie_id"`
	MovieTitle    string             `json:"movie_title"`
	Sequence      int32              `json:"sequence"`
	WhenScreened  pgtype.Timestamptz `json:"when_screened"`
	CustomerID    uuid.UUID          `json:"customer_id"`
	CustomerName  string             `json:"customer_name"`
	AudienceCount int32              `json:"audience_count"`
	Fee           pgtype.Numeric     `json:"fee"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}
