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
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the plain-text password of every fixture user.
const DefaultPassword = "password123"

var (
	passwordHashOnce sync.Once
	passwordHash     string
)

func defaultPasswordHash(t *testing.T) string {
	t.Helper()
	passwordHashOnce.Do(func() {
		h, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
		require.NoError(t, err)
		passwordHash = string(h)
	})
	return passwordHash
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, defaultPasswordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func DeactivateUser(t *testing.T, db DBLike, userID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE id = $1", userID)
	require.NoError(t, err)
}

func CreateTestStore(t *testing.T, db DBLike, ownerID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	var storeID uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO stores (owner_id, name) VALUES ($1, $2) RETURNING id", ownerID, name).Scan(&storeID)
	require.NoError(t, err)
	return storeID
}

func DisableStore(t *testing.T, db DBLike, storeID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE stores SET enabled = false WHERE id = $1", storeID)
	require.NoError(t, err)
}

// CreateTestProduct inserts a product with its first listing snapshot.
func CreateTestProduct(t *testing.T, db DBLike, storeID uuid.UUID, name string, priceCents int64, stock int) (productID, snapshotID uuid.UUID) {
	t.Helper()

	ctx := context.Background()
	err := db.QueryRow(ctx,
		"INSERT INTO products (store_id, stock) VALUES ($1, $2) RETURNING id", storeID, stock).Scan(&productID)
	require.NoError(t, err)

	err = db.QueryRow(ctx,
		"INSERT INTO product_snapshots (product_id, version, name, price_cents) VALUES ($1, 1, $2, $3) RETURNING id",
		productID, name, priceCents).Scan(&snapshotID)
	require.NoError(t, err)

	return productID, snapshotID
}

func CreateTestCoupon(t *testing.T, db DBLike, name string, discountPercent int, startsAt, expiresAt time.Time) uuid.UUID {
	t.Helper()

	var couponID uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO coupons (name, discount_percent, starts_at, expires_at) VALUES ($1, $2, $3, $4) RETURNING id",
		name, discountPercent, startsAt, expiresAt).Scan(&couponID)
	require.NoError(t, err)
	return couponID
}

func GrantTestCoupon(t *testing.T, db DBLike, userID, couponID uuid.UUID, quantity int) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO coupon_grants (user_id, coupon_id, quantity) VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, coupon_id) DO UPDATE SET quantity = coupon_grants.quantity + EXCLUDED.quantity`,
		userID, couponID, quantity)
	require.NoError(t, err)
}

func StockOf(t *testing.T, db DBLike, productID uuid.UUID) int {
	t.Helper()

	var stock int
	err := db.QueryRow(context.Background(), "SELECT stock FROM products WHERE id = $1", productID).Scan(&stock)
	require.NoError(t, err)
	return stock
}

func CouponBalanceOf(t *testing.T, db DBLike, userID, couponID uuid.UUID) int {
	t.Helper()

	var quantity int
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE((SELECT quantity FROM coupon_grants WHERE user_id = $1 AND coupon_id = $2), 0)",
		userID, couponID).Scan(&quantity)
	require.NoError(t, err)
	return quantity
}

// CountRows counts rows of table; the name is interpolated and must come from test code.
func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
