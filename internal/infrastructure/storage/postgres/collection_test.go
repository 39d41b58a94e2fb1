package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"ridejournal/internal/domain/record"
	"ridejournal/internal/domain/ride"
)

// Тест работает с настоящей БД и пропускается без TEST_DATABASE_URI.
// Таблица documents должна быть создана миграциями.
func TestCollection_Postgres(t *testing.T) {
	uri := os.Getenv("TEST_DATABASE_URI")
	if uri == "" {
		t.Skip("TEST_DATABASE_URI is not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, uri)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	kind := "rides_test_" + time.Now().Format("150405.000000")
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), "DELETE FROM documents WHERE kind = $1", kind)
	})

	c := NewCollection[ride.Ride](pool, kind, slog.Default())
	a := ride.Ride{ID: "a", Name: "Alps Loop", Date: ride.NewDate(2024, time.May, 1), PhotoIDs: []string{}}
	b := ride.Ride{ID: "b", Name: "Coast", Date: ride.NewDate(2024, time.May, 2), PhotoIDs: []string{}}

	require.NoError(t, c.Create(ctx, &a))
	require.NoError(t, c.Create(ctx, &b))

	rides, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, rides, 2)
	assert.Equal(t, "a", rides[0].ID)

	b.Notes = "windy"
	require.NoError(t, c.Update(ctx, &b))
	got, err := c.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "windy", got.Notes)

	require.NoError(t, c.Delete(ctx, "a"))
	assert.ErrorIs(t, c.Delete(ctx, "a"), record.ErrNotFound)
	_, err = c.Get(ctx, "a")
	assert.ErrorIs(t, err, record.ErrNotFound)
}
