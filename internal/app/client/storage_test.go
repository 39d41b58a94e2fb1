package client

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridejournal/internal/domain/ride"
)

func sampleRide() ride.Ride {
	updated := time.Date(2024, 5, 3, 8, 30, 0, 0, time.UTC)
	return ride.Ride{
		ID:        "local-1714557600000",
		Name:      "Alps Loop",
		Date:      ride.NewDate(2024, time.May, 1),
		Location:  ride.Location{Name: "Zermatt", Lat: 46.0207, Lng: 7.7491},
		Distance:  87.3,
		Elevation: 2140,
		Notes:     "Furka pass closed",
		PhotoIDs:  []string{"p1", "p2"},
		CreatedAt: time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC),
		UpdatedAt: &updated,
	}
}

func TestSQLiteCache(t *testing.T) {
	ctx := context.Background()
	cache, err := NewSQLiteCache(filepath.Join(t.TempDir(), "nested", "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	_, ok, err := cache.Get(ctx, NamespaceRides)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Put(ctx, NamespaceRides, []byte(`[1]`)))
	require.NoError(t, cache.Put(ctx, NamespaceRides, []byte(`[2]`)))
	require.NoError(t, cache.Put(ctx, NamespacePhotos, []byte(`[3]`)))

	payload, ok, err := cache.Get(ctx, NamespaceRides)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[2]`), payload)
}

func TestJSONCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	sqlite, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	stores := map[string]BlobStore{
		"sqlite": sqlite,
		"memory": NewMemoryCache(),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			cache := NewJSONCache[ride.Ride](store, NamespaceRides)

			empty, err := cache.ReadAll(ctx)
			require.NoError(t, err)
			assert.NotNil(t, empty)
			assert.Empty(t, empty)

			want := []ride.Ride{sampleRide()}
			require.NoError(t, cache.WriteAll(ctx, want))

			got, err := cache.ReadAll(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestJSONCache_MarshalFailureKeepsBlob(t *testing.T) {
	ctx := context.Background()
	cache := NewJSONCache[ride.Ride](NewMemoryCache(), NamespaceRides)

	want := []ride.Ride{sampleRide()}
	require.NoError(t, cache.WriteAll(ctx, want))

	broken := sampleRide()
	broken.Distance = math.NaN()
	assert.Error(t, cache.WriteAll(ctx, []ride.Ride{broken}))

	got, err := cache.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestJSONCache_CorruptBlob(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCache()
	require.NoError(t, store.Put(ctx, NamespaceRides, []byte(`{not json`)))

	_, err := NewJSONCache[ride.Ride](store, NamespaceRides).ReadAll(ctx)

	assert.Error(t, err)
}
