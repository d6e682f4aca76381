package commands

import (
	"context"

	"movie-reservation/internal/domain/reservation"
	"movie-reservation/internal/infra/sqlc"
	"movie-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

type ScreeningRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Screening, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error)
}

// ReservationViewReader reads a reservation back after it is written.
type ReservationViewReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
}
