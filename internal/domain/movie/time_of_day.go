package movie

import (
	"errors"
	"fmt"
	"time"

	"movie-reservation/internal/pkg/errs"
)

var ErrInvalidTimeOfDay = errors.New("invalid time of day")

const day = 24 * time.Hour

// TimeOfDay is a wall-clock offset from midnight.
type TimeOfDay struct {
	offset time.Duration
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, errs.Wrapf(ErrInvalidTimeOfDay, "%02d:%02d", hour, minute)
	}
	return TimeOfDay{offset: time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute}, nil
}

func MustTimeOfDay(hour, minute int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTimeOfDay accepts "15:04" or "15:04:05".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDayOf(t), nil
		}
	}
	return TimeOfDay{}, errs.Wrapf(ErrInvalidTimeOfDay, "%q", s)
}

// TimeOfDayOf drops the date part of t, in t's own location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay{
		offset: time.Duration(h)*time.Hour +
			time.Duration(m)*time.Minute +
			time.Duration(s)*time.Second +
			time.Duration(t.Nanosecond()),
	}
}

func TimeOfDayFromDuration(d time.Duration) (TimeOfDay, error) {
	if d < 0 || d >= day {
		return TimeOfDay{}, errs.Wrapf(ErrInvalidTimeOfDay, "%s", d)
	}
	return TimeOfDay{offset: d}, nil
}

func (t TimeOfDay) Before(other TimeOfDay) bool { return t.offset < other.offset }
func (t TimeOfDay) After(other TimeOfDay) bool  { return t.offset > other.offset }
func (t TimeOfDay) Duration() time.Duration     { return t.offset }

func (t TimeOfDay) String() string {
	h := t.offset / time.Hour
	m := (t.offset % time.Hour) / time.Minute
	s := (t.offset % time.Minute) / time.Second
	if s == 0 {
		return fmt.Sprintf("%02d:%02d", h, m)
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
