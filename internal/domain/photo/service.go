package photo

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/exp/slog"

	"ridejournal/internal/domain/record"
)

// URLPrefix - путь, по которому сервер раздает загруженные файлы
const URLPrefix = "/uploads/"

type Servicer interface {
	List(ctx context.Context, year int) ([]Photo, error)
	Years(ctx context.Context) ([]int, error)
	Find(ctx context.Context, id string) (*Photo, error)
	Upload(ctx context.Context, draft Draft) (*Photo, error)
	Update(ctx context.Context, id string, patch Patch) (*Photo, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo       Repository
	uploadsDir string
	ids        record.IDGenerator
	clock      record.Clock
	log        *slog.Logger
}

func NewService(repo Repository, uploadsDir string, ids record.IDGenerator, clock record.Clock, log *slog.Logger) *Service {
	if ids == nil {
		ids = record.UUIDGenerator{}
	}
	if clock == nil {
		clock = record.RealClock{}
	}
	return &Service{
		repo:       repo,
		uploadsDir: uploadsDir,
		ids:        ids,
		clock:      clock,
		log:        log.With("component", "photo_service"),
	}
}

// List returns all photos, or only those taken in year when year > 0
func (s *Service) List(ctx context.Context, year int) ([]Photo, error) {
	photos, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list photos", "error", err)
		return nil, fmt.Errorf("list photos: %w", err)
	}
	if year > 0 {
		return FilterByYear(photos, year), nil
	}
	if photos == nil {
		photos = []Photo{}
	}
	return photos, nil
}

// Years returns distinct years photos were taken in, newest first
func (s *Service) Years(ctx context.Context) ([]int, error) {
	photos, err := s.List(ctx, 0)
	if err != nil {
		return nil, err
	}

	return Years(photos), nil
}

func (s *Service) Find(ctx context.Context, id string) (*Photo, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return nil, record.ErrNotFound
		}
		return nil, fmt.Errorf("find photo: %w", err)
	}
	return p, nil
}

// Has реализует ride.PhotoIndex
func (s *Service) Has(ctx context.Context, id string) (bool, error) {
	_, err := s.repo.Get(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, record.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// Upload writes the file under uploadsDir and stores its metadata
func (s *Service) Upload(ctx context.Context, draft Draft) (*Photo, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	p := draft.Build(s.ids.New(), s.clock.Now().UTC())
	p.Filename = StoredName(p.ID, draft.OriginalName, draft.Data)
	p.URL = path.Join(URLPrefix, p.Filename)
	p.Data = nil

	if err := os.MkdirAll(s.uploadsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	full := filepath.Join(s.uploadsDir, p.Filename)
	if err := os.WriteFile(full, draft.Data, 0o644); err != nil {
		s.log.Error("failed to write photo file", "file", full, "error", err)
		return nil, fmt.Errorf("write photo file: %w", err)
	}

	if err := s.repo.Create(ctx, &p); err != nil {
		_ = os.Remove(full)
		s.log.Error("failed to create photo", "photo_id", p.ID, "error", err)
		return nil, fmt.Errorf("create photo: %w", err)
	}

	s.log.Info("photo uploaded successfully", "photo_id", p.ID, "size", p.Size)
	return &p, nil
}

// Update changes dateTaken, description and tags; the file is untouched
func (s *Service) Update(ctx context.Context, id string, patch Patch) (*Photo, error) {
	current, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	next := patch.Apply(*current).Revise(*current, s.clock.Now().UTC())
	if err := next.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &next); err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return nil, record.ErrNotFound
		}
		s.log.Error("failed to update photo", "photo_id", id, "error", err)
		return nil, fmt.Errorf("update photo: %w", err)
	}

	return &next, nil
}

// Delete removes the metadata and then the file. Rides keep their references.
func (s *Service) Delete(ctx context.Context, id string) error {
	current, err := s.Find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return record.ErrNotFound
		}
		return fmt.Errorf("delete photo: %w", err)
	}

	if current.Filename != "" {
		full := filepath.Join(s.uploadsDir, current.Filename)
		if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.log.Warn("failed to remove photo file", "file", full, "error", err)
		}
	}

	s.log.Info("photo deleted successfully", "photo_id", id)
	return nil
}

// StoredName строит имя файла из хэша содержимого и идентификатора фотографии
func StoredName(id, originalName string, data []byte) string {
	sum := blake2b.Sum256(data)
	ext := strings.ToLower(filepath.Ext(originalName))
	return hex.EncodeToString(sum[:8]) + "-" + id + ext
}
