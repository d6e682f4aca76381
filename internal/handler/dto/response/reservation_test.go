//go:build unit

package response_test

import (
	"testing"

	"movie-reservation/internal/domain/money"
	resdto "movie-reservation/internal/handler/dto/response"
	"movie-reservation/internal/usecase/queries"
	"movie-reservation/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFromReservationView(t *testing.T) {
	view := builder.NewReservationViewBuilder().With(func(v *queries.ReservationView) {
		fee, err := money.Parse("16998.3")
		require.NoError(t, err)
		v.Fee = fee
	}).Build()

	got, err := resdto.FromReservationView(view)
	require.NoError(t, err)

	want := &resdto.ReservationResponse{
		ID:            view.ID,
		ScreeningID:   view.ScreeningID,
		MovieID:       view.MovieID,
		MovieTitle:    view.MovieTitle,
		Sequence:      view.Sequence,
		WhenScreened:  view.WhenScreened,
		CustomerID:    view.CustomerID,
		CustomerName:  view.CustomerName,
		AudienceCount: view.AudienceCount,
		Fee:           "16998.3",
		CreatedAt:     view.CreatedAt,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromReservationView mismatch (-want +got):\n%s", diff)
	}
}

func TestFromScreeningViews(t *testing.T) {
	view := builder.NewScreeningView()

	got, err := resdto.FromScreeningViews([]*queries.ScreeningView{view})
	require.NoError(t, err)

	want := []*resdto.ScreeningResponse{{
		ID:                 view.ID,
		MovieID:            view.MovieID,
		MovieTitle:         "Avatar",
		RunningTimeMinutes: 162,
		Sequence:           1,
		WhenScreened:       view.WhenScreened,
		Fee:                "10000",
		UnitFee:            "9000",
		Discountable:       true,
		DiscountPolicy:     "amount",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromScreeningViews mismatch (-want +got):\n%s", diff)
	}
}

func TestFromScreeningViews_Empty(t *testing.T) {
	got, err := resdto.FromScreeningViews(nil)

	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}
