package money

import (
	"errors"
	"math"

	"movie-reservation/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("money amount cannot be negative")

const Currency = "KRW"

var Zero = Money{amount: decimal.Zero}

// Money is a non-negative fixed-point amount in a single currency.
type Money struct {
	amount decimal.Decimal
}

func New(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.Wrapf(ErrInvalidAmount, "amount %s", amount)
	}
	return Money{amount: amount}, nil
}

func Wons(amount int64) (Money, error) {
	return New(decimal.NewFromInt(amount))
}

// MustWons is for literals known to be valid.
func MustWons(amount int64) Money {
	m, err := Wons(amount)
	if err != nil {
		panic(err)
	}
	return m
}

func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.Wrapf(err, "parse money %q", s)
	}
	return New(d)
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Subtract(other Money) (Money, error) {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, errs.Wrapf(ErrInvalidAmount, "%s minus %s", m, other)
	}
	return Money{amount: result}, nil
}

func (m Money) ScaleByCount(count int) (Money, error) {
	if count < 0 {
		return Money{}, errs.Wrapf(ErrInvalidAmount, "scale by count %d", count)
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(count)))}, nil
}

func (m Money) ScaleByFraction(fraction float64) (Money, error) {
	if math.IsNaN(fraction) || math.IsInf(fraction, 0) {
		return Money{}, errs.Wrapf(ErrInvalidAmount, "scale by fraction %v", fraction)
	}
	f := decimal.NewFromFloat(fraction)
	if f.IsNegative() {
		return Money{}, errs.Wrapf(ErrInvalidAmount, "scale by fraction %v", fraction)
	}
	return Money{amount: m.amount.Mul(f)}, nil
}

func (m Money) Amount() decimal.Decimal { return m.amount }
func (m Money) IsZero() bool            { return m.amount.IsZero() }

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

func (m Money) String() string {
	return m.amount.String()
}

func (m Money) MarshalJSON() ([]byte, error) {
	return m.amount.MarshalJSON()
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	parsed, err := New(d)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
