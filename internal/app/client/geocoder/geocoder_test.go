package geocoder

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

const testURL = "https://nominatim.test"

func newTestClient(t *testing.T) (*Client, *httpmock.MockTransport) {
	t.Helper()
	c := New(testURL, time.Second, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
	transport := httpmock.NewMockTransport()
	c.HTTPClient().Transport = transport
	return c, transport
}

const zermattResponse = `[
	{"place_id": 123, "display_name": "Zermatt, Visp, Valais, Switzerland", "lat": "46.0207", "lon": "7.7491",
	 "type": "village", "importance": 0.61,
	 "address": {"village": "Zermatt", "state": "Valais", "country": "Switzerland", "postcode": "3920"}},
	{"place_id": 456, "display_name": "Broken", "lat": "n/a", "lon": "7.0"}
]`

func TestSearch(t *testing.T) {
	c, transport := newTestClient(t)
	transport.RegisterResponder(http.MethodGet, `=~^https://nominatim\.test/search\?`,
		httpmock.NewStringResponder(http.StatusOK, zermattResponse))

	places, err := c.Search(context.Background(), "  Zermatt ")

	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "123", places[0].ID)
	assert.InDelta(t, 46.0207, places[0].Lat, 1e-9)
	assert.InDelta(t, 7.7491, places[0].Lng, 1e-9)
	assert.Equal(t, "Zermatt", places[0].Address.City)
	assert.Equal(t, "village", places[0].Type)

	// второй запрос обслуживается из кэша
	_, err = c.Search(context.Background(), "zermatt")
	require.NoError(t, err)
	assert.Equal(t, 1, transport.GetTotalCallCount())
}

func TestSearch_QueryParams(t *testing.T) {
	c, transport := newTestClient(t)
	transport.RegisterResponderWithQuery(http.MethodGet, testURL+"/search",
		map[string]string{"q": "Col du Galibier", "format": "json", "limit": "5", "addressdetails": "1"},
		httpmock.NewStringResponder(http.StatusOK, zermattResponse))

	_, err := c.Search(context.Background(), "Col du Galibier")

	assert.NoError(t, err)
}

func TestSearch_Errors(t *testing.T) {
	t.Run("empty query", func(t *testing.T) {
		c, transport := newTestClient(t)

		_, err := c.Search(context.Background(), "   ")

		assert.ErrorIs(t, err, ErrEmptyQuery)
		assert.Zero(t, transport.GetTotalCallCount())
	})

	t.Run("no results", func(t *testing.T) {
		c, transport := newTestClient(t)
		transport.RegisterResponder(http.MethodGet, `=~^https://nominatim\.test/search\?`,
			httpmock.NewStringResponder(http.StatusOK, `[]`))

		_, err := c.Search(context.Background(), "Atlantis")

		assert.ErrorIs(t, err, ErrNoResults)
	})

	t.Run("server error", func(t *testing.T) {
		c, transport := newTestClient(t)
		transport.RegisterResponder(http.MethodGet, `=~^https://nominatim\.test/search\?`,
			httpmock.NewStringResponder(http.StatusTooManyRequests, ``))

		_, err := c.Search(context.Background(), "Zermatt")

		assert.Error(t, err)
	})
}

func TestReverse(t *testing.T) {
	t.Run("resolved", func(t *testing.T) {
		c, transport := newTestClient(t)
		transport.RegisterResponder(http.MethodGet, `=~^https://nominatim\.test/reverse\?`,
			httpmock.NewStringResponder(http.StatusOK, `{"place_id": 9, "display_name": "Zermatt", "address": {"town": "Zermatt"}}`))

		p := c.Reverse(context.Background(), 46.02, 7.75)

		assert.Equal(t, "Zermatt", p.Name)
		assert.Equal(t, "Zermatt", p.Address.City)
		assert.Equal(t, 46.02, p.Lat)
	})

	t.Run("fallback", func(t *testing.T) {
		c, transport := newTestClient(t)
		transport.RegisterResponder(http.MethodGet, `=~^https://nominatim\.test/reverse\?`,
			httpmock.NewErrorResponder(errors.New("offline")))

		p := c.Reverse(context.Background(), 46.02071, 7.74912)

		assert.Equal(t, "current", p.ID)
		assert.Equal(t, "Current Location (46.0207, 7.7491)", p.Name)
		assert.Equal(t, "current_location", p.Type)
	})
}
