package ride

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"ridejournal/internal/domain/record"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Ride, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Ride), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id string) (*Ride, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Ride), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, r *Ride) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, r *Ride) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPhotoIndex struct {
	mock.Mock
}

func (m *MockPhotoIndex) Has(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type seqIDs struct{ ids []string }

func (g *seqIDs) New() string {
	id := g.ids[0]
	g.ids = g.ids[1:]
	return id
}

var testNow = time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)

func newTestService(repo Repository, photos PhotoIndex) *Service {
	return NewService(repo, photos, &seqIDs{ids: []string{"ride-1", "ride-2"}}, fixedClock{t: testNow}, slog.Default())
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("List", ctx).Return(nil, nil)

		rides, err := newTestService(repo, nil).List(ctx)

		require.NoError(t, err)
		assert.NotNil(t, rides)
		assert.Empty(t, rides)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("List", ctx).Return(nil, errors.New("disk"))

		_, err := newTestService(repo, nil).List(ctx)

		assert.Error(t, err)
	})
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", ctx, mock.AnythingOfType("*ride.Ride")).Return(nil)

		got, err := newTestService(repo, nil).Create(ctx, validDraft())

		require.NoError(t, err)
		assert.Equal(t, "ride-1", got.ID)
		assert.Equal(t, testNow, got.CreatedAt)
		assert.Empty(t, got.PhotoIDs)
		repo.AssertExpectations(t)
	})

	t.Run("validation error never reaches the store", func(t *testing.T) {
		repo := new(MockRepository)
		d := validDraft()
		d.Name = ""

		_, err := newTestService(repo, nil).Create(ctx, d)

		assert.ErrorIs(t, err, record.ErrValidation)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown photo", func(t *testing.T) {
		repo := new(MockRepository)
		photos := new(MockPhotoIndex)
		photos.On("Has", ctx, "p1").Return(true, nil)
		photos.On("Has", ctx, "p404").Return(false, nil)
		d := validDraft()
		d.PhotoIDs = []string{"p1", "p404"}

		_, err := newTestService(repo, photos).Create(ctx, d)

		var verr *record.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "photoIds", verr.Fields[0].Field)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	created := testNow.Add(-time.Hour)

	t.Run("merges patch and keeps identity", func(t *testing.T) {
		current := validDraft().Build("ride-1", created)
		repo := new(MockRepository)
		repo.On("Get", ctx, "ride-1").Return(&current, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(r *Ride) bool {
			return r.ID == "ride-1" && r.Notes == "windy" && r.CreatedAt.Equal(created)
		})).Return(nil)

		notes := "windy"
		got, err := newTestService(repo, nil).Update(ctx, "ride-1", Patch{Notes: &notes})

		require.NoError(t, err)
		assert.Equal(t, "Alps Loop", got.Name)
		require.NotNil(t, got.UpdatedAt)
		assert.Equal(t, testNow, *got.UpdatedAt)
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Get", ctx, "missing").Return(nil, record.ErrNotFound)

		_, err := newTestService(repo, nil).Update(ctx, "missing", Patch{})

		assert.ErrorIs(t, err, record.ErrNotFound)
	})

	t.Run("invalid result", func(t *testing.T) {
		current := validDraft().Build("ride-1", created)
		repo := new(MockRepository)
		repo.On("Get", ctx, "ride-1").Return(&current, nil)

		dist := -3.0
		_, err := newTestService(repo, nil).Update(ctx, "ride-1", Patch{Distance: &dist})

		assert.ErrorIs(t, err, record.ErrValidation)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("keeps reference to deleted photo", func(t *testing.T) {
		current := validDraft().Build("ride-1", created)
		current.PhotoIDs = []string{"gone"}
		repo := new(MockRepository)
		repo.On("Get", ctx, "ride-1").Return(&current, nil)
		repo.On("Update", ctx, mock.Anything).Return(nil)
		photos := new(MockPhotoIndex)

		notes := "windy"
		got, err := newTestService(repo, photos).Update(ctx, "ride-1", Patch{
			Notes:    &notes,
			PhotoIDs: []string{"gone"},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"gone"}, got.PhotoIDs)
		photos.AssertNotCalled(t, "Has", mock.Anything, mock.Anything)
	})

	t.Run("checks only added photos", func(t *testing.T) {
		current := validDraft().Build("ride-1", created)
		current.PhotoIDs = []string{"gone"}
		repo := new(MockRepository)
		repo.On("Get", ctx, "ride-1").Return(&current, nil)
		photos := new(MockPhotoIndex)
		photos.On("Has", ctx, "unknown").Return(false, nil)

		_, err := newTestService(repo, photos).Update(ctx, "ride-1", Patch{PhotoIDs: []string{"gone", "unknown"}})

		assert.ErrorIs(t, err, record.ErrValidation)
		photos.AssertExpectations(t)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("Delete", ctx, "ride-1").Return(nil)
	repo.On("Delete", ctx, "missing").Return(record.ErrNotFound)
	svc := newTestService(repo, nil)

	assert.NoError(t, svc.Delete(ctx, "ride-1"))
	assert.ErrorIs(t, svc.Delete(ctx, "missing"), record.ErrNotFound)
}

func TestService_Stats(t *testing.T) {
	ctx := context.Background()
	rides := []Ride{
		{ID: "a", Distance: 10, Elevation: 100, Location: Location{Lat: 47.0, Lng: 8.5}},
		{ID: "b", Distance: 5, Elevation: 50, Location: Location{Lat: 47.0005, Lng: 8.5003}},
		{ID: "c", Distance: 20, Elevation: 0, Location: Location{Lat: 40.4, Lng: -3.7}},
	}
	repo := new(MockRepository)
	repo.On("List", ctx).Return(rides, nil)

	st, err := newTestService(repo, nil).Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, Stats{TotalRides: 3, TotalDistance: 35, TotalElevation: 150, Locations: 2}, st)
}
