package customer

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrInvalidCustomerID = errors.New("customer id is required")
	ErrEmptyName         = errors.New("customer name cannot be empty")
	ErrNameTooLong       = errors.New("customer name is too long (max 100 characters)")
)

const MaxNameLength = 100

// Customer is opaque to pricing; it is carried through to the reservation.
type Customer struct {
	id   uuid.UUID
	name string
}

func NewCustomer(id uuid.UUID, name string) (*Customer, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidCustomerID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	return &Customer{id: id, name: name}, nil
}

func (c *Customer) ID() uuid.UUID { return c.id }
func (c *Customer) Name() string  { return c.name }
