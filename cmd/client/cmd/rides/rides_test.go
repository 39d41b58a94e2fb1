package rides

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridejournal/internal/domain/record"
	"ridejournal/internal/domain/ride"
)

func parse(t *testing.T, args ...string) (*cobra.Command, *rideFlags) {
	t.Helper()
	f := &rideFlags{}
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, f
}

func existing() ride.Ride {
	return ride.Ride{
		ID:        "r1",
		Name:      "Alps Loop",
		Date:      ride.NewDate(2024, time.May, 1),
		Location:  ride.Location{Name: "Zermatt", Lat: 47.0, Lng: 8.5},
		Distance:  80,
		PhotoIDs:  []string{"p1"},
		CreatedAt: time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC),
	}
}

func TestRideFlags_ApplyOnlyChanged(t *testing.T) {
	cmd, f := parse(t, "--name", "Alps Loop (reverse)", "--lat", "46.5", "--distance", "0", "--photo", "p2", "--photo", "p3")

	got, err := f.apply(cmd, nil, existing())

	require.NoError(t, err)
	assert.Equal(t, "r1", got.ID)
	assert.Equal(t, "Alps Loop (reverse)", got.Name)
	assert.Equal(t, ride.NewDate(2024, time.May, 1), got.Date)
	assert.Equal(t, ride.Location{Name: "Zermatt", Lat: 46.5, Lng: 8.5}, got.Location)
	assert.Equal(t, 0.0, got.Distance)
	assert.Equal(t, []string{"p2", "p3"}, got.PhotoIDs)
}

func TestRideFlags_ApplyBadDate(t *testing.T) {
	cmd, f := parse(t, "--date", "May 1st")

	_, err := f.apply(cmd, nil, existing())

	assert.ErrorIs(t, err, record.ErrValidation)
}

func TestRideFlags_Location(t *testing.T) {
	t.Run("not given", func(t *testing.T) {
		cmd, f := parse(t, "--name", "x")

		loc, err := f.location(context.Background(), nil, cmd.Flags())

		require.NoError(t, err)
		assert.Nil(t, loc)
	})

	t.Run("explicit coordinates", func(t *testing.T) {
		cmd, f := parse(t, "--lat", "47", "--lng", "8.5", "--location-name", "Luzern")

		loc, err := f.location(context.Background(), nil, cmd.Flags())

		require.NoError(t, err)
		require.NotNil(t, loc.Lat)
		require.NotNil(t, loc.Lng)
		assert.Equal(t, 47.0, *loc.Lat)
		assert.Equal(t, 8.5, *loc.Lng)
		assert.Equal(t, "Luzern", loc.Name)
	})

	t.Run("only one coordinate", func(t *testing.T) {
		cmd, f := parse(t, "--lat", "47")

		loc, err := f.location(context.Background(), nil, cmd.Flags())
		require.NoError(t, err)

		draft := ride.Draft{Name: "x", Date: "2024-05-01", Location: loc}
		assert.ErrorIs(t, draft.Validate(), record.ErrValidation)
	})
}
