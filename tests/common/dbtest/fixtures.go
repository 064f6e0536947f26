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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestService(t *testing.T, db DBLike, name string, durationMinutes int, active bool) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO services (name, price_cents, duration_minutes, active) VALUES ($1, 5000, $2, $3) RETURNING id`,
		name, durationMinutes, active).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestResource(t *testing.T, db DBLike, name string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `INSERT INTO resources (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestAppointment inserts directly, bypassing the booking rules but not
// the exclusion constraint.
func CreateTestAppointment(t *testing.T, db DBLike, resourceID, serviceID int64, start, end time.Time, dateLocal, status string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO appointments (client_name, phone, start_utc, end_utc, date_local, service_id, resource_id, status)
		VALUES ('Fixture', '11999990000', $1, $2, $3::date, $4, $5, $6) RETURNING id`,
		start.UTC(), end.UTC(), dateLocal, serviceID, resourceID, status).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	q := "SELECT count(*) FROM " + table
	if where != "" {
		q += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), q, args...).Scan(&n))
	return n
}

// SeedReferenceData restores the default resource and the starter catalog.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO resources (id, name) VALUES (1, 'Geral') ON CONFLICT (id) DO NOTHING;
		SELECT setval(pg_get_serial_sequence('resources', 'id'), (SELECT max(id) FROM resources));
		INSERT INTO services (name, price_cents, duration_minutes) VALUES
		    ('Banho e Tosa', 9000, 90),
		    ('Banho Simples', 6000, 45),
		    ('Tosa Higiênica', 5000, 30),
		    ('Consulta Veterinária', 12000, 30),
		    ('Vacinação', 8000, 20)
		ON CONFLICT (name) DO NOTHING;
	`)
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
		    AND tablename NOT IN ('atlas_schema_revisions')`)
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
