package queries

import (
	"time"

	"movie-reservation/internal/domain/money"

	"github.com/google/uuid"
)

type ReservationView struct {
	ID            uuid.UUID   `json:"id"`
	ScreeningID   uuid.UUID   `json:"screening_id"`
	MovieID       uuid.UUID   `json:"movie_id"`
	MovieTitle    string      `json:"movie_title"`
	Sequence      int         `json:"sequence"`
	WhenScreened  time.Time   `json:"when_screened"`
	CustomerID    uuid.UUID   `json:"customer_id"`
	CustomerName  string      `json:"customer_name"`
	AudienceCount int         `json:"audience_count"`
	Fee           money.Money `json:"fee"`
	CreatedAt     time.Time   `json:"created_at"`
}

// ScreeningView carries the per-person price already resolved for the showing.
type ScreeningView struct {
	ID                 uuid.UUID   `json:"id"`
	MovieID            uuid.UUID   `json:"movie_id"`
	MovieTitle         string      `json:"movie_title"`
	RunningTimeMinutes int         `json:"running_time_minutes"`
	Sequence           int         `json:"sequence"`
	WhenScreened       time.Time   `json:"when_screened"`
	Fee                money.Money `json:"fee"`
	UnitFee            money.Money `json:"unit_fee"`
	Discountable       bool        `json:"discountable"`
	DiscountPolicy     string      `json:"discount_policy"`
}
