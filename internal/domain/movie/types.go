package movie

type PolicyType string

const (
	PolicyAmountDiscount  PolicyType = "amount"
	PolicyPercentDiscount PolicyType = "percent"
	PolicyNoneDiscount    PolicyType = "none"
)

func (p PolicyType) String() string {
	return string(p)
}

func (p PolicyType) IsValid() bool {
	switch p {
	case PolicyAmountDiscount, PolicyPercentDiscount, PolicyNoneDiscount:
		return true
	default:
		return false
	}
}

type ConditionKind string

const (
	ConditionPeriod   ConditionKind = "period"
	ConditionSequence ConditionKind = "sequence"
)

func (k ConditionKind) String() string {
	return string(k)
}

func (k ConditionKind) IsValid() bool {
	switch k {
	case ConditionPeriod, ConditionSequence:
		return true
	default:
		return false
	}
}
