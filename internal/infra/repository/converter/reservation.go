package converter

import (
	"math"
	"time"

	"movie-reservation/internal/domain/movie"
	"movie-reservation/internal/domain/reservation"
	"movie-reservation/internal/infra/sqlc"
	"movie-reservation/internal/pkg/errs"
	"movie-reservation/internal/pkg/pgconv"
)

// ScreeningFromRow places the screening time in loc, the zone its discount
// periods are written in.
func ScreeningFromRow(row sqlc.ScreeningRow, m *movie.Movie, loc *time.Location) (*reservation.Screening, error) {
	return reservation.NewScreening(reservation.ScreeningConfig{
		ID:           row.ID,
		Movie:        m,
		Sequence:     int(row.Sequence),
		WhenScreened: pgconv.TimeInLocation(row.WhenScreened, loc),
	})
}

func ReservationToCreateParams(res *reservation.Reservation) (sqlc.CreateReservationParams, error) {
	if res.AudienceCount() > math.MaxInt32 {
		return sqlc.CreateReservationParams{}, errs.Newf("audience count out of int32 range: %d", res.AudienceCount())
	}

	return sqlc.CreateReservationParams{
		ID:            res.ID(),
		ScreeningID:   res.Screening().ID(),
		CustomerID:    res.Customer().ID(),
		CustomerName:  res.Customer().Name(),
		AudienceCount: int32(res.AudienceCount()),
		Fee:           pgconv.DecimalToNumeric(res.Fee().Amount()),
	}, nil
}
