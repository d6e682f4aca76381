package clock

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

// Day returns the half-open window [from, to) of the calendar day of t,
// bounded at midnight in loc. The date of t is read in t's own zone.
func Day(t time.Time, loc *time.Location) (from, to time.Time) {
	from = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	// AddDate keeps wall-clock midnight across DST shifts
	return from, from.AddDate(0, 0, 1)
}
