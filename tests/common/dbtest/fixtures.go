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

// bcrypt hash of "password123"
const testPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, name, email, password_hash, role) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (email) DO NOTHING",
		userID, "Test User", email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestRoomType(t *testing.T, db DBLike, name, category string) uuid.UUID {
	t.Helper()

	typeID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO room_types (id, name, category) VALUES ($1, $2, $3)",
		typeID, name, category)
	require.NoError(t, err)

	return typeID
}

func CreateTestRoom(t *testing.T, db DBLike, name string, typeID uuid.UUID, rateCents int64) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO rooms (id, name, room_type_id, nightly_rate_cents, capacity) VALUES ($1, $2, $3, $4, 2)",
		roomID, name, typeID, rateCents)
	require.NoError(t, err)

	return roomID
}

func CreateTestReservation(t *testing.T, db DBLike, guestID, roomID uuid.UUID, checkIn, checkOut time.Time, totalCents int64, status string) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	nights := int32(checkOut.Sub(checkIn).Hours() / 24)
	_, err := db.Exec(context.Background(),
		`INSERT INTO reservations (id, guest_id, room_id, check_in, check_out, total_nights, total_cents, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		reservationID, guestID, roomID, checkIn, checkOut, nights, totalCents, status)
	require.NoError(t, err)

	return reservationID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO room_types (id, name, category) VALUES
		    (gen_random_uuid(), 'Standard', 'standard'),
		    (gen_random_uuid(), 'Ocean Suite', 'suite');
	`)
	if err != nil {
		return err
	}

	return nil
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
