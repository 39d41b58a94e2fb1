package photos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridejournal/internal/domain/record"
)

func TestDetectMimeType(t *testing.T) {
	assert.Equal(t, "image/jpeg", detectMimeType("summit.JPG", nil))
	assert.Equal(t, "image/png", detectMimeType("no-extension", []byte("\x89PNG\r\n\x1a\n0000")))
	assert.Equal(t, "text/plain; charset=utf-8", detectMimeType("notes", []byte("hello")))
}

func TestParseDateTaken(t *testing.T) {
	got, err := parseDateTaken("2023-08-14")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 8, 14, 0, 0, 0, 0, time.UTC), got)

	got, err = parseDateTaken("2023-08-14T07:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 7, got.Hour())

	_, err = parseDateTaken("14.08.2023")
	assert.ErrorIs(t, err, record.ErrValidation)
}
