package reservation

import (
	"movie-reservation/internal/domain/customer"
	"movie-reservation/internal/domain/money"

	"github.com/google/uuid"
)

// Reservation is a completed booking. It has no pending or canceled state.
type Reservation struct {
	id            uuid.UUID
	customer      *customer.Customer
	screening     *Screening
	fee           money.Money
	audienceCount int
}

func newReservation(c *customer.Customer, s *Screening, fee money.Money, audienceCount int) *Reservation {
	return &Reservation{
		id:            uuid.New(),
		customer:      c,
		screening:     s,
		fee:           fee,
		audienceCount: audienceCount,
	}
}

func (r *Reservation) ID() uuid.UUID                { return r.id }
func (r *Reservation) Customer() *customer.Customer { return r.customer }
func (r *Reservation) Screening() *Screening        { return r.screening }
func (r *Reservation) Fee() money.Money             { return r.fee }
func (r *Reservation) AudienceCount() int           { return r.audienceCount }
