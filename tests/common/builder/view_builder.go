//go:build unit || e2e

package builder

import (
	"time"

	"movie-reservation/internal/domain/money"
	"movie-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewBuilder struct {
	view queries.ReservationView
}

// NewReservationViewBuilder describes two people at the discounted first showing.
func NewReservationViewBuilder() *ReservationViewBuilder {
	return &ReservationViewBuilder{view: queries.ReservationView{
		ID:            uuid.New(),
		ScreeningID:   uuid.New(),
		MovieID:       uuid.New(),
		MovieTitle:    "Avatar",
		Sequence:      1,
		WhenScreened:  Friday(1, 30),
		CustomerID:    uuid.New(),
		CustomerName:  "Kim Minsu",
		AudienceCount: 2,
		Fee:           money.MustWons(18000),
		CreatedAt:     time.Date(2023, 1, 1, 9, 0, 0, 0, time.UTC),
	}}
}

func (b *ReservationViewBuilder) With(mutate func(*queries.ReservationView)) *ReservationViewBuilder {
	mutate(&b.view)
	return b
}

func (b *ReservationViewBuilder) WithCustomerID(id uuid.UUID) *ReservationViewBuilder {
	b.view.CustomerID = id
	return b
}

func (b *ReservationViewBuilder) Build() *queries.ReservationView {
	v := b.view
	return &v
}

func NewScreeningView() *queries.ScreeningView {
	return &queries.ScreeningView{
		ID:                 uuid.New(),
		MovieID:            uuid.New(),
		MovieTitle:         "Avatar",
		RunningTimeMinutes: 162,
		Sequence:           1,
		WhenScreened:       Friday(1, 30),
		Fee:                money.MustWons(10000),
		UnitFee:            money.MustWons(9000),
		Discountable:       true,
		DiscountPolicy:     "amount",
	}
}
