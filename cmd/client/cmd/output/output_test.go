package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridejournal/internal/app/client"
	"ridejournal/internal/domain/photo"
	"ridejournal/internal/domain/ride"
)

func TestPrinter_NoColorOutsideTerminal(t *testing.T) {
	var out, errOut bytes.Buffer
	p := New(&out, &errOut, false)

	p.Success("поездка %s сохранена", "abc")
	p.Error(errors.New("boom"))

	assert.Equal(t, "✓ поездка abc сохранена\n", out.String())
	assert.Equal(t, "Ошибка: boom\n", errOut.String())
}

func TestPrinter_Advisory(t *testing.T) {
	var out, errOut bytes.Buffer
	p := New(&out, &errOut, false)

	p.Advisory(client.Status{})
	assert.Empty(t, errOut.String())

	p.Advisory(client.Status{
		Rides:  client.LoadResult[ride.Ride]{Mode: client.ModeLocal, Advisory: "offline"},
		Photos: client.LoadResult[photo.Photo]{Mode: client.ModeLocal, Advisory: "offline"},
	})
	assert.Equal(t, "⚠️  offline\n", errOut.String())
}

func TestPrinter_Table(t *testing.T) {
	var out bytes.Buffer
	p := New(&out, &out, false)

	require.NoError(t, p.Table([]string{"ID", "Название"}, [][]string{{"1", "Alps Loop"}}))

	assert.Contains(t, out.String(), "ID")
	assert.Contains(t, out.String(), "Alps Loop")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "Альпийс...", Truncate("Альпийская петля", 10))
}
