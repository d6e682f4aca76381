package converter

import (
	"time"

	"movie-reservation/internal/domain/money"
	"movie-reservation/internal/domain/movie"
	"movie-reservation/internal/infra/sqlc"
	"movie-reservation/internal/pkg/errs"
	"movie-reservation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// MovieFromRow rebuilds a movie through its validating constructor, so a row
// that breaks a pricing rule is reported instead of priced.
func MovieFromRow(row sqlc.ScreeningRow, conditionRows []sqlc.DiscountConditions) (*movie.Movie, error) {
	fee, err := moneyFromNumeric(row.Fee)
	if err != nil {
		return nil, errs.Wrap(err, "movie fee")
	}

	cfg := movie.Config{
		ID:          row.MovieID,
		Title:       row.Title,
		RunningTime: time.Duration(row.RunningTimeMinutes) * time.Minute,
		Fee:         fee,
		Policy:      movie.PolicyType(row.DiscountPolicy),
	}

	if row.DiscountAmount.Valid {
		amount, err := moneyFromNumeric(row.DiscountAmount)
		if err != nil {
			return nil, errs.Wrap(err, "movie discount amount")
		}
		cfg.DiscountAmount = &amount
	}

	percent, err := pgconv.Float64PtrFromPgtype(row.DiscountPercent)
	if err != nil {
		return nil, errs.Wrap(err, "movie discount percent")
	}
	cfg.DiscountPercent = percent

	cfg.Conditions = make([]movie.DiscountCondition, 0, len(conditionRows))
	for _, c := range conditionRows {
		cond, err := ConditionFromRow(c)
		if err != nil {
			return nil, err
		}
		cfg.Conditions = append(cfg.Conditions, cond)
	}

	return movie.NewMovie(cfg)
}

func ConditionFromRow(row sqlc.DiscountConditions) (movie.DiscountCondition, error) {
	switch movie.ConditionKind(row.Kind) {
	case movie.ConditionSequence:
		seq := pgconv.Int32PtrFromInt4(row.Sequence)
		if seq == nil {
			return movie.DiscountCondition{}, errs.Wrapf(pgconv.ErrNullValue, "condition %s: sequence", row.ID)
		}
		return movie.NewSequenceCondition(int(*seq))

	case movie.ConditionPeriod:
		weekday := pgconv.Int16PtrFromInt2(row.Weekday)
		if weekday == nil {
			return movie.DiscountCondition{}, errs.Wrapf(pgconv.ErrNullValue, "condition %s: weekday", row.ID)
		}
		start, err := timeOfDay(row.StartTime)
		if err != nil {
			return movie.DiscountCondition{}, errs.Wrapf(err, "condition %s: start_time", row.ID)
		}
		end, err := timeOfDay(row.EndTime)
		if err != nil {
			return movie.DiscountCondition{}, errs.Wrapf(err, "condition %s: end_time", row.ID)
		}
		return movie.NewPeriodCondition(time.Weekday(*weekday), start, end)

	default:
		return movie.DiscountCondition{}, errs.Wrapf(movie.ErrUnknownCondition, "condition %s: kind %q", row.ID, row.Kind)
	}
}

func timeOfDay(pt pgtype.Time) (movie.TimeOfDay, error) {
	d, ok := pgconv.TimeOfDayFromPgtype(pt)
	if !ok {
		return movie.TimeOfDay{}, pgconv.ErrNullValue
	}
	return movie.TimeOfDayFromDuration(d)
}

func moneyFromNumeric(pn pgtype.Numeric) (money.Money, error) {
	d, err := pgconv.DecimalFromNumeric(pn)
	if err != nil {
		return money.Money{}, err
	}
	return money.New(d)
}
