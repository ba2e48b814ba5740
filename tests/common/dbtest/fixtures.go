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

func CreateTestProduct(t *testing.T, db DBLike, name string, priceCents int64, stock int32) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	sku := "SKU-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])

	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO products (id, name, sku, price_cents, stock, status) VALUES ($1, $2, $3, $4, $5, 'active')",
		productID, name, sku, priceCents, stock)
	require.NoError(t, err)

	return productID
}

func CreateTestProductInCategory(t *testing.T, db DBLike, name, category string, priceCents int64, stock int32) uuid.UUID {
	t.Helper()

	productID := CreateTestProduct(t, db, name, priceCents, stock)
	ctx := context.Background()
	_, err := db.Exec(ctx, "UPDATE products SET category = $1 WHERE id = $2", category, productID)
	require.NoError(t, err)

	return productID
}

func ArchiveTestProduct(t *testing.T, db DBLike, productID uuid.UUID) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, "UPDATE products SET status = 'archived' WHERE id = $1", productID)
	require.NoError(t, err)
}

func ProductStock(t *testing.T, db DBLike, productID uuid.UUID) int32 {
	t.Helper()

	var stock int32
	err := db.QueryRow(context.Background(), "SELECT stock FROM products WHERE id = $1", productID).Scan(&stock)
	require.NoError(t, err)
	return stock
}

func CountOrdersBySession(t *testing.T, db DBLike, sessionID string) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM orders WHERE external_session_id = $1", sessionID).Scan(&count)
	require.NoError(t, err)
	return count
}

func CartExists(t *testing.T, db DBLike, ownerID uuid.UUID) bool {
	t.Helper()

	var exists bool
	err := db.QueryRow(context.Background(), "SELECT EXISTS (SELECT 1 FROM carts WHERE owner_id = $1)", ownerID).Scan(&exists)
	require.NoError(t, err)
	return exists
}

func WebhookOutcomes(t *testing.T, db DBLike, sessionID string) []string {
	t.Helper()

	var outcomes []string
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE(array_agg(outcome ORDER BY received_at), '{}') FROM webhook_events WHERE session_id = $1",
		sessionID).Scan(&outcomes)
	require.NoError(t, err)
	return outcomes
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
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
