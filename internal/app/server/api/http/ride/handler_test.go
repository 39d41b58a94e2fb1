package ride

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"ridejournal/internal/domain/record"
	"ridejournal/internal/domain/ride"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context) ([]ride.Ride, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ride.Ride), args.Error(1)
}

func (m *MockService) Find(ctx context.Context, id string) (*ride.Ride, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ride.Ride), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, draft ride.Draft) (*ride.Ride, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ride.Ride), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id string, patch ride.Patch) (*ride.Ride, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ride.Ride), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockService) Stats(ctx context.Context) (ride.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(ride.Stats), args.Error(1)
}

func sampleRide(id string) *ride.Ride {
	return &ride.Ride{
		ID:        id,
		Name:      "Alps Loop",
		Date:      ride.NewDate(2024, time.May, 1),
		Location:  ride.Location{Lat: 47.0, Lng: 8.5},
		PhotoIDs:  []string{},
		CreatedAt: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
	}
}

func newTestAPI(t *testing.T, svc ride.Servicer) humatest.TestAPI {
	_, api := humatest.New(t)
	NewHandler(svc, slog.Default(), huma.Middlewares{}).SetupRoutes(api)
	return api
}

func TestHandler_list(t *testing.T) {
	svc := new(MockService)
	older := sampleRide("a")
	older.Date = ride.NewDate(2015, time.June, 1)
	svc.On("List", mock.Anything).Return([]ride.Ride{*older, *sampleRide("b")}, nil)
	h := NewHandler(svc, slog.Default(), nil)

	out, err := h.list(context.Background(), &listInput{})
	require.NoError(t, err)
	assert.Len(t, out.Body, 2)

	out, err = h.list(context.Background(), &listInput{Year: 2015})
	require.NoError(t, err)
	require.Len(t, out.Body, 1)
	assert.Equal(t, "a", out.Body[0].ID)
}

func TestHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Create", mock.Anything, mock.MatchedBy(func(d ride.Draft) bool {
			return d.Name == "Alps Loop" && d.Location != nil && *d.Location.Lat == 47.0
		})).Return(sampleRide("r1"), nil)
		api := newTestAPI(t, svc)

		resp := api.Post("/api/rides", map[string]any{
			"name":     "Alps Loop",
			"date":     "2024-05-01",
			"location": map[string]any{"lat": 47.0, "lng": 8.5},
		})

		require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
		var got ride.Ride
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
		assert.Equal(t, "r1", got.ID)
		assert.Equal(t, "2024-05-01", got.Date.String())
		assert.NotNil(t, got.PhotoIDs)
	})

	t.Run("validation error", func(t *testing.T) {
		verr := &record.ValidationError{}
		verr.Add("name", "обязательное поле")
		svc := new(MockService)
		svc.On("Create", mock.Anything, mock.Anything).Return(nil, verr)
		api := newTestAPI(t, svc)

		resp := api.Post("/api/rides", map[string]any{"date": "2024-05-01"})

		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		assert.Contains(t, resp.Body.String(), "body.name")
	})
}

func TestHandler_Find(t *testing.T) {
	svc := new(MockService)
	svc.On("Find", mock.Anything, "r1").Return(sampleRide("r1"), nil)
	svc.On("Find", mock.Anything, "missing").Return(nil, record.ErrNotFound)
	api := newTestAPI(t, svc)

	assert.Equal(t, http.StatusOK, api.Get("/api/rides/r1").Code)

	resp := api.Get("/api/rides/missing")
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "Ride not found")
}

func TestHandler_Update_AcceptsFullRecord(t *testing.T) {
	svc := new(MockService)
	updated := sampleRide("r1")
	updated.Notes = "windy"
	svc.On("Update", mock.Anything, "r1", mock.MatchedBy(func(p ride.Patch) bool {
		return p.Notes != nil && *p.Notes == "windy"
	})).Return(updated, nil)
	api := newTestAPI(t, svc)

	body := *sampleRide("ignored")
	body.Notes = "windy"
	resp := api.Put("/api/rides/r1", body)

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), `"id":"r1"`)
}

func TestHandler_Delete(t *testing.T) {
	svc := new(MockService)
	svc.On("Delete", mock.Anything, "r1").Return(nil).Once()
	svc.On("Delete", mock.Anything, "r1").Return(record.ErrNotFound)
	api := newTestAPI(t, svc)

	first := api.Delete("/api/rides/r1")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Contains(t, first.Body.String(), "Ride deleted successfully")

	assert.Equal(t, http.StatusNotFound, api.Delete("/api/rides/r1").Code)
}

func TestHandler_Stats(t *testing.T) {
	svc := new(MockService)
	svc.On("Stats", mock.Anything).Return(ride.Stats{TotalRides: 2, TotalDistance: 80, Locations: 1}, nil)
	api := newTestAPI(t, svc)

	resp := api.Get("/api/rides/stats")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"totalRides":2`)
	svc.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}
