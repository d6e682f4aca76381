//go:build unit || e2e

package builder

import (
	"time"

	"movie-reservation/internal/domain/money"
	"movie-reservation/internal/domain/movie"

	"github.com/google/uuid"
)

type MovieBuilder struct {
	ID              uuid.UUID
	Title           string
	RunningTime     time.Duration
	Fee             int64
	Policy          movie.PolicyType
	DiscountAmount  *int64
	DiscountPercent *float64
	Conditions      []movie.DiscountCondition
}

// NewMovieBuilder starts from the amount-off movie used across the tests:
// fee 10000, 1000 off on the first showing of the day.
func NewMovieBuilder() *MovieBuilder {
	amount := int64(1000)
	return &MovieBuilder{
		ID:             uuid.New(),
		Title:          "Avatar",
		RunningTime:    162 * time.Minute,
		Fee:            10000,
		Policy:         movie.PolicyAmountDiscount,
		DiscountAmount: &amount,
		Conditions:     []movie.DiscountCondition{MustSequence(1)},
	}
}

func (b *MovieBuilder) With(mutate func(*MovieBuilder)) *MovieBuilder {
	mutate(b)
	return b
}

func (b *MovieBuilder) BuildConfig() movie.Config {
	cfg := movie.Config{
		ID:              b.ID,
		Title:           b.Title,
		RunningTime:     b.RunningTime,
		Fee:             money.MustWons(b.Fee),
		Policy:          b.Policy,
		DiscountPercent: b.DiscountPercent,
		Conditions:      b.Conditions,
	}
	if b.DiscountAmount != nil {
		amount := money.MustWons(*b.DiscountAmount)
		cfg.DiscountAmount = &amount
	}
	return cfg
}

func (b *MovieBuilder) BuildDomain() (*movie.Movie, error) {
	return movie.NewMovie(b.BuildConfig())
}

func (b *MovieBuilder) MustBuild() *movie.Movie {
	m, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return m
}

func (b *MovieBuilder) WithTitle(title string) *MovieBuilder {
	b.Title = title
	return b
}

func (b *MovieBuilder) WithFee(fee int64) *MovieBuilder {
	b.Fee = fee
	return b
}

func (b *MovieBuilder) WithConditions(conditions ...movie.DiscountCondition) *MovieBuilder {
	b.Conditions = conditions
	return b
}

func (b *MovieBuilder) AsAmountDiscount(amount int64) *MovieBuilder {
	b.Policy = movie.PolicyAmountDiscount
	b.DiscountAmount = &amount
	b.DiscountPercent = nil
	return b
}

func (b *MovieBuilder) AsPercentDiscount(percent float64) *MovieBuilder {
	b.Policy = movie.PolicyPercentDiscount
	b.DiscountAmount = nil
	b.DiscountPercent = &percent
	return b
}

func (b *MovieBuilder) AsNoneDiscount() *MovieBuilder {
	b.Policy = movie.PolicyNoneDiscount
	b.DiscountAmount = nil
	b.DiscountPercent = nil
	return b
}

func MustSequence(sequence int) movie.DiscountCondition {
	c, err := movie.NewSequenceCondition(sequence)
	if err != nil {
		panic(err)
	}
	return c
}

func MustPeriod(weekday time.Weekday, start, end string) movie.DiscountCondition {
	from, err := movie.ParseTimeOfDay(start)
	if err != nil {
		panic(err)
	}
	to, err := movie.ParseTimeOfDay(end)
	if err != nil {
		panic(err)
	}
	c, err := movie.NewPeriodCondition(weekday, from, to)
	if err != nil {
		panic(err)
	}
	return c
}
