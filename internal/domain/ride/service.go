package ride

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"ridejournal/internal/domain/geo"
	"ridejournal/internal/domain/record"
)

// Servicer - бизнес-логика поездок для HTTP-слоя
type Servicer interface {
	List(ctx context.Context) ([]Ride, error)
	Find(ctx context.Context, id string) (*Ride, error)
	Create(ctx context.Context, draft Draft) (*Ride, error)
	Update(ctx context.Context, id string, patch Patch) (*Ride, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (Stats, error)
}

type Stats struct {
	TotalRides     int     `json:"totalRides"`
	TotalDistance  float64 `json:"totalDistance"`
	TotalElevation float64 `json:"totalElevation"`
	Locations      int     `json:"locations"`
}

type Service struct {
	repo   Repository
	photos PhotoIndex
	ids    record.IDGenerator
	clock  record.Clock
	log    *slog.Logger
}

// NewService создает сервис поездок. photos может быть nil - тогда ссылки
// на фотографии не проверяются.
func NewService(repo Repository, photos PhotoIndex, ids record.IDGenerator, clock record.Clock, log *slog.Logger) *Service {
	if ids == nil {
		ids = record.UUIDGenerator{}
	}
	if clock == nil {
		clock = record.RealClock{}
	}
	return &Service{
		repo:   repo,
		photos: photos,
		ids:    ids,
		clock:  clock,
		log:    log.With("component", "ride_service"),
	}
}

// List returns all rides in insertion order
func (s *Service) List(ctx context.Context) ([]Ride, error) {
	rides, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list rides", "error", err)
		return nil, fmt.Errorf("list rides: %w", err)
	}
	if rides == nil {
		rides = []Ride{}
	}
	return rides, nil
}

// Find returns a ride by id
func (s *Service) Find(ctx context.Context, id string) (*Ride, error) {
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return nil, record.ErrNotFound
		}
		s.log.Error("failed to find ride", "ride_id", id, "error", err)
		return nil, fmt.Errorf("find ride: %w", err)
	}
	return r, nil
}

// Create validates the draft and stores a ride with a server-assigned id
func (s *Service) Create(ctx context.Context, draft Draft) (*Ride, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkPhotos(ctx, draft.PhotoIDs); err != nil {
		return nil, err
	}

	r := draft.Build(s.ids.New(), s.clock.Now().UTC())
	if err := s.repo.Create(ctx, &r); err != nil {
		s.log.Error("failed to create ride", "name", r.Name, "error", err)
		return nil, fmt.Errorf("create ride: %w", err)
	}

	s.log.Info("ride created successfully", "ride_id", r.ID, "name", r.Name)
	return &r, nil
}

// Update merges the patch onto the stored ride; id and createdAt never change
func (s *Service) Update(ctx context.Context, id string, patch Patch) (*Ride, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return nil, record.ErrNotFound
		}
		return nil, fmt.Errorf("get ride for update: %w", err)
	}

	next := patch.Apply(*current).Revise(*current, s.clock.Now().UTC())
	if err := next.Validate(); err != nil {
		return nil, err
	}
	// проверяются только новые ссылки: уже сохраненные могли остаться от удаленных фото
	if err := s.checkPhotos(ctx, addedPhotos(*current, next.PhotoIDs)); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &next); err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return nil, record.ErrNotFound
		}
		s.log.Error("failed to update ride", "ride_id", id, "error", err)
		return nil, fmt.Errorf("update ride: %w", err)
	}

	s.log.Info("ride updated successfully", "ride_id", id)
	return &next, nil
}

// Delete removes a ride; photos it references are kept
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return record.ErrNotFound
		}
		s.log.Error("failed to delete ride", "ride_id", id, "error", err)
		return fmt.Errorf("delete ride: %w", err)
	}

	s.log.Info("ride deleted successfully", "ride_id", id)
	return nil
}

// Stats aggregates totals and the number of distinct map locations
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	rides, err := s.List(ctx)
	if err != nil {
		return Stats{}, err
	}

	st := Stats{TotalRides: len(rides)}
	for _, r := range rides {
		st.TotalDistance += r.Distance
		st.TotalElevation += r.Elevation
	}
	st.Locations = len(geo.Clusters(rides))

	return st, nil
}

func addedPhotos(current Ride, ids []string) []string {
	added := make([]string, 0, len(ids))
	for _, id := range ids {
		if !current.HasPhoto(id) {
			added = append(added, id)
		}
	}
	return added
}

func (s *Service) checkPhotos(ctx context.Context, ids []string) error {
	if s.photos == nil || len(ids) == 0 {
		return nil
	}

	var verr record.ValidationError
	for _, id := range ids {
		ok, err := s.photos.Has(ctx, id)
		if err != nil {
			return fmt.Errorf("check photo %s: %w", id, err)
		}
		if !ok {
			verr.Add("photoIds", "фотография не найдена: "+id)
		}
	}
	return verr.OrNil()
}
