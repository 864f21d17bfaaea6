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

// CreateTestLocation inserts an active location. dwellMinutes nil leaves the
// dwell requirement unset so the service default applies.
func CreateTestLocation(t *testing.T, db DBLike, ownerID uuid.UUID, name string, dwellMinutes *int32) uuid.UUID {
	t.Helper()

	locationID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO locations (id, owner_id, name, dwell_time_minutes, is_active)
		VALUES ($1, $2, $3, $4, true)`,
		locationID, ownerID, name, dwellMinutes)
	require.NoError(t, err)

	return locationID
}

// CreatePendingAttempt seeds a pending vouch attempt with an arbitrary start
// time, letting tests fabricate elapsed dwell without sleeping.
func CreatePendingAttempt(t *testing.T, db DBLike, customerID, locationID uuid.UUID, startTime time.Time) uuid.UUID {
	t.Helper()

	attemptID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO vouch_attempts (id, customer_id, location_id, status, start_time)
		VALUES ($1, $2, $3, 'pending', $4)`,
		attemptID, customerID, locationID, startTime)
	require.NoError(t, err)

	return attemptID
}

// CreateTestCampaign inserts an active campaign running around now.
// locationID nil makes it apply at all of the owner's locations.
func CreateTestCampaign(t *testing.T, db DBLike, ownerID uuid.UUID, locationID *uuid.UUID, rewardDescription string) uuid.UUID {
	t.Helper()

	campaignID := uuid.New()
	ctx := context.Background()
	now := time.Now()

	_, err := db.Exec(ctx, `
		INSERT INTO campaigns (id, owner_id, name, reward_description, is_active, location_id, start_date, end_date)
		VALUES ($1, $2, $3, $4, true, $5, $6, $7)`,
		campaignID, ownerID, "Campaign "+campaignID.String()[:8], rewardDescription,
		locationID, now.Add(-24*time.Hour), now.Add(24*time.Hour))
	require.NoError(t, err)

	return campaignID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
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

	return nil
}
