package reservation

import (
	"movie-reservation/internal/domain/customer"
)

// Agency is the entry point for booking; callers go through it rather than
// relying on how a screening prices itself.
type Agency struct{}

func NewAgency() *Agency {
	return &Agency{}
}

func (a *Agency) Reserve(s *Screening, c *customer.Customer, audienceCount int) (*Reservation, error) {
	if s == nil {
		return nil, ErrScreeningRequired
	}
	return s.Reserve(c, audienceCount)
}
