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

func CreateTestUser(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	// Fixture users never log in through the API; the hash only has to be a
	// well-formed bcrypt string.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, name, password_hash) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		userID, email, "Test Rider", passwordHash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestPromo(t *testing.T, db DBLike, code string, discountPct string, usageLimit, usedCount int) uuid.UUID {
	t.Helper()

	promoID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO promo_codes (id, code, discount_percentage, description, valid_from, valid_to, usage_limit, used_count, active)
		VALUES ($1, $2, $3, 'test promo', now() - interval '1 day', now() + interval '30 days', $4, $5, true)
		ON CONFLICT (code) DO NOTHING`,
		promoID, code, discountPct, usageLimit, usedCount)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM promo_codes WHERE code = $1", code).Scan(&promoID)
	}

	return promoID
}

func PromoUsedCount(t *testing.T, db DBLike, code string) int {
	t.Helper()

	var used int
	err := db.QueryRow(context.Background(), "SELECT used_count FROM promo_codes WHERE code = $1", code).Scan(&used)
	require.NoError(t, err)
	return used
}

func CreateTestTestimonial(t *testing.T, db DBLike, name string, approved bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO testimonials (id, name, role, content, rating, approved)
		VALUES ($1, $2, 'Rider', 'Great ride', 5, $3)`,
		id, name, approved)
	require.NoError(t, err)
	return id
}

func CreateTestBlogPost(t *testing.T, db DBLike, title string, published bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO blog_posts (id, title, excerpt, published)
		VALUES ($1, $2, 'excerpt', $3)`,
		id, title, published)
	require.NoError(t, err)
	return id
}

// inserts the rate, extras and promo reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO rate_rules (vehicle_type, hourly_rate, daily_rate, distance_rate) VALUES
		    ('Economy', 45, 320, 0),
		    ('Premium', 85, 650, 0),
		    ('SUV', 95, 750, 0),
		    ('Van', 75, 580, 0),
		    ('Marine', 285, 2200, 0)
		ON CONFLICT (vehicle_type) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO extras (name, price, description) VALUES
		    ('childSeat', 15, 'Child safety seat'),
		    ('meetGreet', 25, 'Meet and greet at arrivals'),
		    ('luggage', 10, 'Extra luggage capacity'),
		    ('wifi', 5, 'Onboard Wi-Fi hotspot')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO promo_codes (id, code, discount_percentage, description, valid_from, valid_to, usage_limit, used_count, active) VALUES
		    (gen_random_uuid(), 'RIIDE20', 0.20, '20% off your ride', '2024-01-01T00:00:00Z', '2026-12-31T23:59:59Z', 1000, 0, true),
		    (gen_random_uuid(), 'LAUNCH50', 0.50, 'Launch special', '2024-01-01T00:00:00Z', '2026-12-31T23:59:59Z', 100, 0, true),
		    (gen_random_uuid(), 'STUDENT15', 0.15, 'Student discount', '2024-01-01T00:00:00Z', '2026-12-31T23:59:59Z', 500, 0, true)
		ON CONFLICT (code) DO NOTHING;
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
