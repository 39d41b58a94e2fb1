package record

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func TestLocalIDGenerator_StrictlyIncreasing(t *testing.T) {
	now := time.UnixMilli(1714557600000)
	gen := NewLocalIDGenerator(fixedClock{t: now})

	first := gen.New()
	second := gen.New()

	assert.Equal(t, "local-1714557600000", first)
	assert.Equal(t, "local-1714557600001", second)
	assert.True(t, IsLocalID(first))
	assert.False(t, IsLocalID(UUIDGenerator{}.New()))
}

func TestValidationError(t *testing.T) {
	var verr ValidationError
	require.NoError(t, verr.OrNil())

	verr.Add("name", "обязательное поле")
	verr.Add("location.lat", "вне диапазона")
	err := fmt.Errorf("create: %w", verr.OrNil())

	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "name: обязательное поле; location.lat: вне диапазона")
}

func TestTypedErrors(t *testing.T) {
	cause := errors.New("connection refused")

	terr := fmt.Errorf("list: %w", &TransportError{Op: "GET /api/rides", Err: cause})
	assert.True(t, IsTransport(terr))
	assert.ErrorIs(t, terr, cause)
	assert.False(t, IsTransport(ErrRejected))

	perr := &PersistenceError{Namespace: "ride", Err: cause}
	assert.ErrorIs(t, perr, ErrPersistence)
	assert.ErrorIs(t, perr, cause)
	assert.Contains(t, perr.Error(), "ride")
}
