package pgconv

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidFloat64Value = errors.New("invalid float64 value in pgtype.Float8")
	ErrInvalidNumericValue = errors.New("invalid numeric value")
	ErrNullValue           = errors.New("unexpected NULL value")
)

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func UUIDsToPgtype(ids []uuid.UUID) []pgtype.UUID {
	out := make([]pgtype.UUID, len(ids))
	for i, id := range ids {
		out[i] = UUIDToPgtype(id)
	}
	return out
}

// TimeInLocation converts a scanned timestamptz, which pgx returns in
// time.Local, to loc.
func TimeInLocation(pt pgtype.Timestamptz, loc *time.Location) time.Time {
	if loc == nil {
		return pt.Time
	}
	return pt.Time.In(loc)
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func Float64PtrFromPgtype(pf pgtype.Float8) (*float64, error) {
	if !pf.Valid {
		return nil, nil
	}

	value, err := pf.Float64Value()
	if err != nil {
		return nil, ErrInvalidFloat64Value
	}

	return &value.Float64, nil
}

func Int32PtrFromInt4(pi pgtype.Int4) *int32 {
	if !pi.Valid {
		return nil
	}
	return &pi.Int32
}

func Int16PtrFromInt2(pi pgtype.Int2) *int16 {
	if !pi.Valid {
		return nil
	}
	return &pi.Int16
}

// DecimalFromNumeric rejects NULL, NaN and infinities.
func DecimalFromNumeric(pn pgtype.Numeric) (decimal.Decimal, error) {
	if !pn.Valid {
		return decimal.Decimal{}, ErrNullValue
	}
	if pn.NaN || pn.InfinityModifier != pgtype.Finite || pn.Int == nil {
		return decimal.Decimal{}, ErrInvalidNumericValue
	}
	return decimal.NewFromBigInt(pn.Int, pn.Exp), nil
}

func DecimalPtrFromNumeric(pn pgtype.Numeric) (*decimal.Decimal, error) {
	if !pn.Valid {
		return nil, nil
	}
	d, err := DecimalFromNumeric(pn)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func DecimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

// TimeOfDayFromPgtype returns the offset from midnight of a TIME column.
func TimeOfDayFromPgtype(pt pgtype.Time) (time.Duration, bool) {
	if !pt.Valid {
		return 0, false
	}
	return time.Duration(pt.Microseconds) * time.Microsecond, true
}

func TimeOfDayToPgtype(d time.Duration) pgtype.Time {
	return pgtype.Time{Microseconds: d.Microseconds(), Valid: true}
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
