package commands

import (
	"context"
	"errors"
	"log/slog"

	"movie-reservation/internal/domain/customer"
	"movie-reservation/internal/domain/money"
	"movie-reservation/internal/domain/movie"
	"movie-reservation/internal/domain/reservation"
	"movie-reservation/internal/infra"
	"movie-reservation/internal/infra/sqlc"
	"movie-reservation/internal/pkg/errs"
	"movie-reservation/internal/usecase/queries"
	"movie-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation_mock.go -package=commandsmock

type ReserveCommand struct {
	ScreeningID   uuid.UUID
	CustomerID    uuid.UUID
	CustomerName  string
	AudienceCount int
}

type FeeQuote struct {
	ScreeningID   uuid.UUID
	AudienceCount int
	Discountable  bool
	UnitFee       money.Money
	TotalFee      money.Money
}

type ReservationCommands interface {
	Reserve(ctx context.Context, cmd ReserveCommand) (*queries.ReservationView, error)
	QuoteFee(ctx context.Context, screeningID uuid.UUID, audienceCount int) (*FeeQuote, error)
}

type reservationCommandsImpl struct {
	screeningRepo   ScreeningRepository
	reservationRepo ReservationRepository
	viewReader      ReservationViewReader
	agency          *reservation.Agency
	tx              shared.TxManager
}

func NewReservationCommands(
	screeningRepo ScreeningRepository,
	reservationRepo ReservationRepository,
	viewReader ReservationViewReader,
	agency *reservation.Agency,
	tx shared.TxManager,
) ReservationCommands {
	return &reservationCommandsImpl{
		screeningRepo:   screeningRepo,
		reservationRepo: reservationRepo,
		viewReader:      viewReader,
		agency:          agency,
		tx:              tx,
	}
}

func (r *reservationCommandsImpl) Reserve(ctx context.Context, cmd ReserveCommand) (*queries.ReservationView, error) {
	if cmd.AudienceCount < 0 {
		return nil, errs.Mark(errs.Wrapf(movie.ErrInvalidAudienceCount, "got %d", cmd.AudienceCount), errs.ErrInvalidAudience)
	}

	c, err := customer.NewCustomer(cmd.CustomerID, cmd.CustomerName)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	screening, err := r.loadScreening(ctx, cmd.ScreeningID)
	if err != nil {
		return nil, err
	}

	res, err := r.agency.Reserve(screening, c, cmd.AudienceCount)
	if err != nil {
		return nil, classifyDomainErr(err)
	}

	var reservationID uuid.UUID
	err = r.tx.WithinTx(ctx, func(tx sqlc.DBTX) error {
		id, createErr := r.reservationRepo.Create(ctx, tx, res)
		if createErr != nil {
			return createErr
		}
		reservationID = id
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, errs.ErrScreeningNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Info("reservation created",
		"reservation_id", reservationID,
		"screening_id", screening.ID(),
		"customer_id", c.ID(),
		"audience_count", res.AudienceCount(),
		"fee", res.Fee().String())

	view, err := r.viewReader.FindByID(ctx, reservationID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (r *reservationCommandsImpl) QuoteFee(ctx context.Context, screeningID uuid.UUID, audienceCount int) (*FeeQuote, error) {
	if audienceCount < 0 {
		return nil, errs.Mark(errs.Wrapf(movie.ErrInvalidAudienceCount, "got %d", audienceCount), errs.ErrInvalidAudience)
	}

	screening, err := r.loadScreening(ctx, screeningID)
	if err != nil {
		return nil, err
	}

	unit, err := screening.UnitFee()
	if err != nil {
		return nil, classifyDomainErr(err)
	}
	total, err := screening.CalculateFee(audienceCount)
	if err != nil {
		return nil, classifyDomainErr(err)
	}

	return &FeeQuote{
		ScreeningID:   screening.ID(),
		AudienceCount: audienceCount,
		Discountable:  screening.IsDiscountable(),
		UnitFee:       unit,
		TotalFee:      total,
	}, nil
}

func (r *reservationCommandsImpl) loadScreening(ctx context.Context, id uuid.UUID) (*reservation.Screening, error) {
	screening, err := r.screeningRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrScreeningNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return screening, nil
}

func classifyDomainErr(err error) error {
	if errors.Is(err, movie.ErrInvalidAudienceCount) {
		return errs.Mark(err, errs.ErrInvalidAudience)
	}
	return errs.Mark(err, errs.ErrDomainValidation)
}
