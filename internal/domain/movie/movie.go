package movie

import (
	"errors"
	"strings"
	"time"

	"movie-reservation/internal/domain/money"
	"movie-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle             = errors.New("movie title cannot be empty")
	ErrNegativeRunningTime    = errors.New("running time cannot be negative")
	ErrUnknownPolicy          = errors.New("unknown discount policy")
	ErrMissingDiscountFields  = errors.New("discount policy is missing a required field")
	ErrInvalidDiscountPercent = errors.New("discount percent must be between 0 and 1")
	ErrDiscountExceedsFee     = errors.New("discount amount exceeds the base fee")
	ErrInvalidAudienceCount   = errors.New("audience count cannot be negative")
	ErrUnknownCondition       = errors.New("unknown discount condition")
)

// Config describes a movie's pricing. DiscountAmount is read only for
// PolicyAmountDiscount and DiscountPercent only for PolicyPercentDiscount.
type Config struct {
	ID              uuid.UUID
	Title           string
	RunningTime     time.Duration
	Fee             money.Money
	Policy          PolicyType
	DiscountAmount  *money.Money
	DiscountPercent *float64
	Conditions      []DiscountCondition
}

type Movie struct {
	id              uuid.UUID
	title           string
	runningTime     time.Duration
	fee             money.Money
	policy          PolicyType
	discountAmount  money.Money
	discountPercent float64
	conditions      []DiscountCondition
}

func NewMovie(cfg Config) (*Movie, error) {
	title := strings.TrimSpace(cfg.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if cfg.RunningTime < 0 {
		return nil, ErrNegativeRunningTime
	}
	for i, c := range cfg.Conditions {
		if !c.kind.IsValid() {
			return nil, errs.Wrapf(ErrUnknownCondition, "condition %d", i)
		}
	}

	m := &Movie{
		id:          cfg.ID,
		title:       title,
		runningTime: cfg.RunningTime,
		fee:         cfg.Fee,
		policy:      cfg.Policy,
		conditions:  append([]DiscountCondition(nil), cfg.Conditions...),
	}
	if m.id == uuid.Nil {
		m.id = uuid.New()
	}

	switch cfg.Policy {
	case PolicyAmountDiscount:
		if cfg.DiscountAmount == nil {
			return nil, errs.Wrapf(ErrMissingDiscountFields, "policy %s requires a discount amount", cfg.Policy)
		}
		if cfg.DiscountAmount.GreaterThan(cfg.Fee) {
			return nil, errs.Wrapf(ErrDiscountExceedsFee, "discount %s, fee %s", cfg.DiscountAmount, cfg.Fee)
		}
		m.discountAmount = *cfg.DiscountAmount
	case PolicyPercentDiscount:
		if cfg.DiscountPercent == nil {
			return nil, errs.Wrapf(ErrMissingDiscountFields, "policy %s requires a discount percent", cfg.Policy)
		}
		p := *cfg.DiscountPercent
		// NaN fails both comparisons, so test the valid range
		if !(p >= 0 && p <= 1) {
			return nil, errs.Wrapf(ErrInvalidDiscountPercent, "got %v", p)
		}
		m.discountPercent = p
	case PolicyNoneDiscount:
	default:
		return nil, errs.Wrapf(ErrUnknownPolicy, "%q", string(cfg.Policy))
	}

	return m, nil
}

// CalculateFee returns the admission fee for audienceCount people at the
// given showing.
func (m *Movie) CalculateFee(s Showing, audienceCount int) (money.Money, error) {
	if audienceCount < 0 {
		return money.Money{}, errs.Wrapf(ErrInvalidAudienceCount, "got %d", audienceCount)
	}
	unit, err := m.UnitFee(s)
	if err != nil {
		return money.Money{}, err
	}
	return unit.ScaleByCount(audienceCount)
}

// UnitFee is the fee for a single audience member.
func (m *Movie) UnitFee(s Showing) (money.Money, error) {
	if !m.IsDiscountable(s) {
		return m.fee, nil
	}
	discount, err := m.discountAmountFor()
	if err != nil {
		return money.Money{}, err
	}
	return m.fee.Subtract(discount)
}

func (m *Movie) IsDiscountable(s Showing) bool {
	for _, c := range m.conditions {
		if c.IsSatisfiedBy(s) {
			return true
		}
	}
	return false
}

func (m *Movie) discountAmountFor() (money.Money, error) {
	switch m.policy {
	case PolicyAmountDiscount:
		return m.discountAmount, nil
	case PolicyPercentDiscount:
		return m.fee.ScaleByFraction(m.discountPercent)
	case PolicyNoneDiscount:
		return money.Zero, nil
	default:
		return money.Money{}, errs.Wrapf(ErrUnknownPolicy, "%q", string(m.policy))
	}
}

func (m *Movie) ID() uuid.UUID               { return m.id }
func (m *Movie) Title() string               { return m.title }
func (m *Movie) RunningTime() time.Duration  { return m.runningTime }
func (m *Movie) Fee() money.Money            { return m.fee }
func (m *Movie) Policy() PolicyType          { return m.policy }
func (m *Movie) DiscountAmount() money.Money { return m.discountAmount }
func (m *Movie) DiscountPercent() float64    { return m.discountPercent }

func (m *Movie) Conditions() []DiscountCondition {
	return append([]DiscountCondition(nil), m.conditions...)
}
