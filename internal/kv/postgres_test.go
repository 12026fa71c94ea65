package kv_test

import (
	"context"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leguidebj/agency-backend/internal/domain"
	"github.com/leguidebj/agency-backend/internal/kv"
	"github.com/leguidebj/agency-backend/migrations"
	"github.com/leguidebj/agency-backend/testutil"
)

// TestPostgres_roundTrip is an integration test against a real database.
// It is skipped automatically when TEST_DATABASE_URL is not set.
func TestPostgres_roundTrip(t *testing.T) {
	db := testutil.NewSQLDB(t)
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	require.NoError(t, err, "create goose provider")

	ctx := context.Background()
	_, err = provider.Up(ctx)
	require.NoError(t, err, "goose up")

	pool := testutil.NewPool(t)
	store := kv.NewPostgres(pool)

	// Missing key is the sentinel, not a storage error.
	_, err = pool.Exec(ctx, `DELETE FROM kv_entries WHERE key = $1`, kv.KeyTours)
	require.NoError(t, err)
	_, err = store.Get(ctx, kv.KeyTours)
	require.ErrorIs(t, err, domain.ErrNotFound)

	// Insert, read back, overwrite, read back.
	require.NoError(t, store.Set(ctx, kv.KeyTours, []byte(`[{"id":"1"}]`)))
	raw, err := store.Get(ctx, kv.KeyTours)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"}]`, string(raw))

	require.NoError(t, store.Set(ctx, kv.KeyTours, []byte(`[]`)))
	raw, err = store.Get(ctx, kv.KeyTours)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}
