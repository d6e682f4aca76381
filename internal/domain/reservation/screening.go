package reservation

import (
	"errors"
	"time"

	"movie-reservation/internal/domain/customer"
	"movie-reservation/internal/domain/money"
	"movie-reservation/internal/domain/movie"
	"movie-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrScreeningRequired = errors.New("screening is required")
	ErrInvalidScreening  = errors.New("invalid screening")
	ErrCustomerRequired  = errors.New("customer is required")
)

type ScreeningConfig struct {
	ID           uuid.UUID
	Movie        *movie.Movie
	Sequence     int
	WhenScreened time.Time
}

// Screening is one showing of a movie. The movie is shared between
// screenings and never modified through them.
type Screening struct {
	id           uuid.UUID
	movie        *movie.Movie
	sequence     int
	whenScreened time.Time
}

func NewScreening(cfg ScreeningConfig) (*Screening, error) {
	if cfg.Movie == nil {
		return nil, errs.Wrap(ErrInvalidScreening, "movie is required")
	}
	if cfg.Sequence < 1 {
		return nil, errs.Wrapf(ErrInvalidScreening, "sequence must be at least 1, got %d", cfg.Sequence)
	}
	if cfg.WhenScreened.IsZero() {
		return nil, errs.Wrap(ErrInvalidScreening, "screening time is required")
	}

	id := cfg.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Screening{
		id:           id,
		movie:        cfg.Movie,
		sequence:     cfg.Sequence,
		whenScreened: cfg.WhenScreened,
	}, nil
}

func (s *Screening) Reserve(c *customer.Customer, audienceCount int) (*Reservation, error) {
	if c == nil {
		return nil, ErrCustomerRequired
	}
	fee, err := s.CalculateFee(audienceCount)
	if err != nil {
		return nil, err
	}
	return newReservation(c, s, fee, audienceCount), nil
}

func (s *Screening) CalculateFee(audienceCount int) (money.Money, error) {
	return s.movie.CalculateFee(s, audienceCount)
}

func (s *Screening) IsDiscountable() bool {
	return s.movie.IsDiscountable(s)
}

func (s *Screening) UnitFee() (money.Money, error) {
	return s.movie.UnitFee(s)
}

func (s *Screening) ID() uuid.UUID           { return s.id }
func (s *Screening) Movie() *movie.Movie     { return s.movie }
func (s *Screening) Sequence() int           { return s.sequence }
func (s *Screening) WhenScreened() time.Time { return s.whenScreened }
