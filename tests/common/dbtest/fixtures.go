//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Seeded catalogue. Avatar takes 1000 off on the first showing of the day and
// on Mondays 10:00-11:59; Titanic takes 10% off on the second showing.
var (
	AvatarMovieID  = uuid.MustParse("0f4a5e36-7a3b-4a8e-9d61-2c1f6b0c5a01")
	TitanicMovieID = uuid.MustParse("0f4a5e36-7a3b-4a8e-9d61-2c1f6b0c5a02")

	// Friday 2023-01-06, sequence 1: discounted
	AvatarFirstShowingID = uuid.MustParse("6d2b7c90-1f3e-4c55-8a7e-5b9d0e4f3c11")
	// Friday 2023-01-06, sequence 3: full price
	AvatarLateShowingID = uuid.MustParse("6d2b7c90-1f3e-4c55-8a7e-5b9d0e4f3c13")
	// Friday 2023-01-06, sequence 2: 10% off
	TitanicSecondShowingID = uuid.MustParse("6d2b7c90-1f3e-4c55-8a7e-5b9d0e4f3c22")

	SeededDay = time.Date(2023, 1, 6, 0, 0, 0, 0, time.UTC)
)

// CreateScreening adds a showing of a seeded movie.
func CreateScreening(t *testing.T, db DBLike, movieID uuid.UUID, sequence int, when time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO screenings (id, movie_id, sequence, when_screened) VALUES ($1, $2, $3, $4)",
		id, movieID, sequence, when)
	require.NoError(t, err)
	return id
}

// CountReservations counts the rows stored for a screening.
func CountReservations(t *testing.T, db DBLike, screeningID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM reservations WHERE screening_id = $1", screeningID).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO movies (id, title, running_time_minutes, fee, discount_policy, discount_amount, discount_percent) VALUES
		    ($1, 'Avatar', 162, 10000, 'amount', 1000, NULL),
		    ($2, 'Titanic', 195, 11000, 'percent', NULL, 0.1)
		ON CONFLICT (id) DO NOTHING;
	`, AvatarMovieID, TitanicMovieID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO discount_conditions (id, movie_id, position, kind, weekday, start_time, end_time, sequence) VALUES
		    (gen_random_uuid(), $1, 0, 'sequence', NULL, NULL, NULL, 1),
		    (gen_random_uuid(), $1, 1, 'period', 1, '10:00', '11:59', NULL),
		    (gen_random_uuid(), $2, 0, 'sequence', NULL, NULL, NULL, 2);
	`, AvatarMovieID, TitanicMovieID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO screenings (id, movie_id, sequence, when_screened) VALUES
		    ($1, $4, 1, '2023-01-06 01:30:00+00'),
		    ($2, $4, 3, '2023-01-06 20:00:00+00'),
		    ($3, $5, 2, '2023-01-06 05:00:00+00')
		ON CONFLICT (id) DO NOTHING;
	`, AvatarFirstShowingID, AvatarLateShowingID, TitanicSecondShowingID, AvatarMovieID, TitanicMovieID)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
