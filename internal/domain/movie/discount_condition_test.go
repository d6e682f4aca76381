//go:build unit

package movie_test

import (
	"testing"
	"time"

	"movie-reservation/internal/domain/movie"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type showing struct {
	sequence int
	when     time.Time
}

func (s showing) Sequence() int           { return s.sequence }
func (s showing) WhenScreened() time.Time { return s.when }

// 2023-01-06 is a Friday.
func friday(hour, minute int) time.Time {
	return time.Date(2023, 1, 6, hour, minute, 0, 0, time.UTC)
}

func TestPeriodCondition(t *testing.T) {
	cond, err := movie.NewPeriodCondition(time.Friday, movie.MustTimeOfDay(1, 20), movie.MustTimeOfDay(2, 30))
	require.NoError(t, err)
	assert.Equal(t, movie.ConditionPeriod, cond.Kind())

	testCases := []struct {
		name     string
		when     time.Time
		expected bool
	}{
		{name: "inside the window", when: friday(1, 30), expected: true},
		{name: "at the start bound", when: friday(1, 20), expected: true},
		{name: "at the end bound", when: friday(2, 30), expected: true},
		{name: "one second after the end", when: friday(2, 30).Add(time.Second), expected: false},
		{name: "one second before the start", when: friday(1, 20).Add(-time.Second), expected: false},
		{name: "afternoon", when: friday(13, 30), expected: false},
		{name: "same time on another weekday", when: friday(1, 30).AddDate(0, 0, 1), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, cond.IsSatisfiedBy(showing{sequence: 1, when: tc.when}))
		})
	}
}

func TestPeriodCondition_SingleInstant(t *testing.T) {
	at := movie.MustTimeOfDay(10, 0)
	cond, err := movie.NewPeriodCondition(time.Friday, at, at)
	require.NoError(t, err)

	assert.True(t, cond.IsSatisfiedBy(showing{sequence: 1, when: friday(10, 0)}))
	assert.False(t, cond.IsSatisfiedBy(showing{sequence: 1, when: friday(10, 1)}))
}

func TestPeriodCondition_Validation(t *testing.T) {
	_, err := movie.NewPeriodCondition(time.Friday, movie.MustTimeOfDay(3, 0), movie.MustTimeOfDay(2, 0))
	require.ErrorIs(t, err, movie.ErrInvalidPeriod)

	_, err = movie.NewPeriodCondition(time.Weekday(7), movie.MustTimeOfDay(1, 0), movie.MustTimeOfDay(2, 0))
	require.ErrorIs(t, err, movie.ErrInvalidWeekday)
}

func TestSequenceCondition(t *testing.T) {
	cond, err := movie.NewSequenceCondition(1)
	require.NoError(t, err)
	assert.Equal(t, movie.ConditionSequence, cond.Kind())

	assert.True(t, cond.IsSatisfiedBy(showing{sequence: 1, when: friday(13, 30)}))
	assert.False(t, cond.IsSatisfiedBy(showing{sequence: 2, when: friday(13, 30)}))

	_, err = movie.NewSequenceCondition(0)
	require.ErrorIs(t, err, movie.ErrInvalidSequence)
}

func TestZeroValueConditionIsNeverSatisfied(t *testing.T) {
	var cond movie.DiscountCondition
	assert.False(t, cond.IsSatisfiedBy(showing{sequence: 0, when: time.Time{}}))
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := movie.ParseTimeOfDay("01:20")
	require.NoError(t, err)
	assert.Equal(t, movie.MustTimeOfDay(1, 20), tod)
	assert.Equal(t, "01:20", tod.String())

	withSeconds, err := movie.ParseTimeOfDay("23:59:59")
	require.NoError(t, err)
	assert.Equal(t, "23:59:59", withSeconds.String())

	_, err = movie.ParseTimeOfDay("25:00")
	require.ErrorIs(t, err, movie.ErrInvalidTimeOfDay)

	_, err = movie.NewTimeOfDay(24, 0)
	require.ErrorIs(t, err, movie.ErrInvalidTimeOfDay)
}
