package movie

import (
	"errors"
	"time"

	"movie-reservation/internal/pkg/errs"
)

var (
	ErrInvalidPeriod   = errors.New("period start must not be after its end")
	ErrInvalidSequence = errors.New("sequence must be at least 1")
	ErrInvalidWeekday  = errors.New("invalid weekday")
)

// Showing is what a discount condition is evaluated against.
type Showing interface {
	Sequence() int
	WhenScreened() time.Time
}

// DiscountCondition is a closed sum of the period and sequence triggers.
// Only the fields of its kind are meaningful.
type DiscountCondition struct {
	kind ConditionKind

	weekday time.Weekday
	start   TimeOfDay
	end     TimeOfDay

	sequence int
}

func NewPeriodCondition(weekday time.Weekday, start, end TimeOfDay) (DiscountCondition, error) {
	if weekday < time.Sunday || weekday > time.Saturday {
		return DiscountCondition{}, errs.Wrapf(ErrInvalidWeekday, "%d", int(weekday))
	}
	if start.After(end) {
		return DiscountCondition{}, errs.Wrapf(ErrInvalidPeriod, "%s-%s", start, end)
	}
	return DiscountCondition{
		kind:    ConditionPeriod,
		weekday: weekday,
		start:   start,
		end:     end,
	}, nil
}

func NewSequenceCondition(sequence int) (DiscountCondition, error) {
	if sequence < 1 {
		return DiscountCondition{}, errs.Wrapf(ErrInvalidSequence, "got %d", sequence)
	}
	return DiscountCondition{
		kind:     ConditionSequence,
		sequence: sequence,
	}, nil
}

func (c DiscountCondition) IsSatisfiedBy(s Showing) bool {
	switch c.kind {
	case ConditionPeriod:
		return c.isSatisfiedByPeriod(s)
	case ConditionSequence:
		return c.isSatisfiedBySequence(s)
	default:
		return false
	}
}

// both bounds inclusive
func (c DiscountCondition) isSatisfiedByPeriod(s Showing) bool {
	when := s.WhenScreened()
	if when.Weekday() != c.weekday {
		return false
	}
	at := TimeOfDayOf(when)
	return !at.Before(c.start) && !at.After(c.end)
}

func (c DiscountCondition) isSatisfiedBySequence(s Showing) bool {
	return c.sequence == s.Sequence()
}

func (c DiscountCondition) Kind() ConditionKind   { return c.kind }
func (c DiscountCondition) Weekday() time.Weekday { return c.weekday }
func (c DiscountCondition) Start() TimeOfDay      { return c.start }
func (c DiscountCondition) End() TimeOfDay        { return c.end }
func (c DiscountCondition) Sequence() int         { return c.sequence }
