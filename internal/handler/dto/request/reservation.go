package request

import (
	"time"

	"movie-reservation/internal/usecase/commands"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// AudienceCount is a pointer so that an explicit 0 passes the required check.
type ReserveRequest struct {
	AudienceCount *int `json:"audienceCount" binding:"required"`
}

func (r ReserveRequest) ToCommand(screeningID, customerID uuid.UUID, customerName string) commands.ReserveCommand {
	return commands.ReserveCommand{
		ScreeningID:   screeningID,
		CustomerID:    customerID,
		CustomerName:  customerName,
		AudienceCount: *r.AudienceCount,
	}
}

type FeeQuoteQuery struct {
	AudienceCount *int `form:"audienceCount" binding:"required"`
}

type ListScreeningsQuery struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// ParseDate returns nil when no date was given.
func (q ListScreeningsQuery) ParseDate() (*time.Time, error) {
	if q.Date == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, q.Date)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

type ListReservationsQuery struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset int `form:"offset" binding:"omitempty,min=0,max=2147483647"`
}
