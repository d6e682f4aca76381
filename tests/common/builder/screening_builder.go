//go:build unit || e2e

package builder

import (
	"time"

	"movie-reservation/internal/domain/customer"
	"movie-reservation/internal/domain/movie"
	"movie-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

type ScreeningBuilder struct {
	ID           uuid.UUID
	Movie        *movie.Movie
	Sequence     int
	WhenScreened time.Time
}

// NewScreeningBuilder defaults to the first showing on Friday 2023-01-06 01:30 UTC.
func NewScreeningBuilder() *ScreeningBuilder {
	return &ScreeningBuilder{
		ID:           uuid.New(),
		Movie:        NewMovieBuilder().MustBuild(),
		Sequence:     1,
		WhenScreened: Friday(1, 30),
	}
}

func (b *ScreeningBuilder) With(mutate func(*ScreeningBuilder)) *ScreeningBuilder {
	mutate(b)
	return b
}

func (b *ScreeningBuilder) WithMovie(m *movie.Movie) *ScreeningBuilder {
	b.Movie = m
	return b
}

func (b *ScreeningBuilder) WithSequence(sequence int) *ScreeningBuilder {
	b.Sequence = sequence
	return b
}

func (b *ScreeningBuilder) WithWhenScreened(when time.Time) *ScreeningBuilder {
	b.WhenScreened = when
	return b
}

func (b *ScreeningBuilder) BuildDomain() (*reservation.Screening, error) {
	return reservation.NewScreening(reservation.ScreeningConfig{
		ID:           b.ID,
		Movie:        b.Movie,
		Sequence:     b.Sequence,
		WhenScreened: b.WhenScreened,
	})
}

func (b *ScreeningBuilder) MustBuild() *reservation.Screening {
	s, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return s
}

func Friday(hour, minute int) time.Time {
	return time.Date(2023, 1, 6, hour, minute, 0, 0, time.UTC)
}

func NewCustomer() *customer.Customer {
	c, err := customer.NewCustomer(uuid.New(), "Kim Minsu")
	if err != nil {
		panic(err)
	}
	return c
}
