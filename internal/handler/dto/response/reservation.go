package response

import (
	"reflect"
	"time"

	"movie-reservation/internal/domain/money"
	"movie-reservation/internal/pkg/errs"
	"movie-reservation/internal/usecase/commands"
	"movie-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Fees are rendered as decimal strings so fractional amounts survive JSON.
type ReservationResponse struct {
	ID            uuid.UUID `json:"id"`
	ScreeningID   uuid.UUID `json:"screeningId"`
	MovieID       uuid.UUID `json:"movieId"`
	MovieTitle    string    `json:"movieTitle"`
	Sequence      int       `json:"sequence"`
	WhenScreened  time.Time `json:"whenScreened"`
	CustomerID    uuid.UUID `json:"customerId"`
	CustomerName  string    `json:"customerName"`
	AudienceCount int       `json:"audienceCount"`
	Fee           string    `json:"fee"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ScreeningResponse struct {
	ID                 uuid.UUID `json:"id"`
	MovieID            uuid.UUID `json:"movieId"`
	MovieTitle         string    `json:"movieTitle"`
	RunningTimeMinutes int       `json:"runningTimeMinutes"`
	Sequence           int       `json:"sequence"`
	WhenScreened       time.Time `json:"whenScreened"`
	Fee                string    `json:"fee"`
	UnitFee            string    `json:"unitFee"`
	Discountable       bool      `json:"discountable"`
	DiscountPolicy     string    `json:"discountPolicy"`
}

type FeeQuoteResponse struct {
	ScreeningID   uuid.UUID `json:"screeningId"`
	AudienceCount int       `json:"audienceCount"`
	Discountable  bool      `json:"discountable"`
	UnitFee       string    `json:"unitFee"`
	TotalFee      string    `json:"totalFee"`
}

var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: money.Money{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				m, ok := src.(money.Money)
				if !ok {
					return nil, errs.Newf("expected money.Money, got %s", reflect.TypeOf(src))
				}
				return m.String(), nil
			},
		},
	},
}

func copyTo[T any](src any) (*T, error) {
	var dst T
	if err := copier.CopyWithOption(&dst, src, copyOption); err != nil {
		return nil, errs.Wrap(err, "copy response")
	}
	return &dst, nil
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	return copyTo[ReservationResponse](v)
}

func FromReservationViews(vs []*queries.ReservationView) ([]*ReservationResponse, error) {
	res := make([]*ReservationResponse, 0, len(vs))
	for _, v := range vs {
		r, err := FromReservationView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

func FromScreeningViews(vs []*queries.ScreeningView) ([]*ScreeningResponse, error) {
	res := make([]*ScreeningResponse, 0, len(vs))
	for _, v := range vs {
		r, err := copyTo[ScreeningResponse](v)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

func FromFeeQuote(q *commands.FeeQuote) (*FeeQuoteResponse, error) {
	return copyTo[FeeQuoteResponse](q)
}
