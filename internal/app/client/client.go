package client

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"ridejournal/internal/app/client/config"
	"ridejournal/internal/app/client/geocoder"
	"ridejournal/internal/app/client/remote"
	"ridejournal/internal/domain/geo"
	"ridejournal/internal/domain/photo"
	"ridejournal/internal/domain/ride"
)

type (
	RideRepository  = Repository[ride.Ride, ride.Draft]
	PhotoRepository = Repository[photo.Photo, photo.Draft]
)

// App собирает репозитории поездок и фотографий, геокодер и локальный кэш.
// Один экземпляр на процесс, команды получают его через контекст.
type App struct {
	config   *config.Config
	log      *slog.Logger
	http     *remote.HTTPClient
	storage  BlobStore
	closer   func() error
	rides    *RideRepository
	photos   *PhotoRepository
	geocoder *geocoder.Client
}

// Status - итог загрузки обеих коллекций
type Status struct {
	Rides  LoadResult[ride.Ride]
	Photos LoadResult[photo.Photo]
}

// Degraded сообщает, что хотя бы одна коллекция загружена не с сервера
func (s Status) Degraded() bool {
	return s.Rides.Degraded() || s.Photos.Degraded()
}

// Advisories возвращает уникальные предупреждения для пользователя
func (s Status) Advisories() []string {
	out := make([]string, 0, 2)
	for _, a := range []string{s.Rides.Advisory, s.Photos.Advisory} {
		if a == "" || (len(out) > 0 && out[0] == a) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl := remote.NewHTTPClient(cfg.BaseURL(), cfg.RequestTimeout, cfg.RemoteRetries, log)

	// Инициализируем локальное хранилище (используем SQLite)
	var (
		storage BlobStore
		closer  = func() error { return nil }
	)
	sqliteCache, err := NewSQLiteCache(cfg.CachePath)
	if err != nil {
		log.Warn("Не удалось инициализировать SQLite, используем память", "error", err)
		storage = NewMemoryCache()
	} else {
		storage = sqliteCache
		closer = sqliteCache.Close
	}

	return NewWithStorage(cfg, log, httpCl, storage, closer), nil
}

// NewWithStorage собирает приложение из готовых зависимостей
func NewWithStorage(cfg *config.Config, log *slog.Logger, httpCl *remote.HTTPClient, storage BlobStore, closer func() error) *App {
	if closer == nil {
		closer = func() error { return nil }
	}

	rides := NewRepository[ride.Ride, ride.Draft](
		"ride",
		remote.NewStore[ride.Ride, ride.Draft](httpCl, "/api/rides"),
		NewJSONCache[ride.Ride](storage, NamespaceRides),
		nil, nil, log,
	)
	photos := NewRepository[photo.Photo, photo.Draft](
		"photo",
		remote.NewStore[photo.Photo, photo.Draft](httpCl, "/api/photos"),
		NewJSONCache[photo.Photo](storage, NamespacePhotos),
		nil, nil, log,
	)

	return &App{
		config:   cfg,
		log:      log,
		http:     httpCl,
		storage:  storage,
		closer:   closer,
		rides:    rides,
		photos:   photos,
		geocoder: geocoder.New(cfg.GeocoderURL, cfg.RequestTimeout, cfg.GeocoderCaching, log),
	}
}

// Load перечитывает обе коллекции
func (a *App) Load(ctx context.Context) Status {
	return Status{
		Rides:  a.rides.Load(ctx),
		Photos: a.photos.Load(ctx),
	}
}

func (a *App) Rides() *RideRepository {
	return a.rides
}

func (a *App) Photos() *PhotoRepository {
	return a.photos
}

func (a *App) Geocoder() *geocoder.Client {
	return a.geocoder
}

// CheckConnection проверяет доступность сервера
func (a *App) CheckConnection(ctx context.Context) error {
	return a.http.HealthCheck(ctx)
}

// PhotosByIDs возвращает фотографии поездки в порядке ссылок.
// Ссылки на отсутствующие фотографии пропускаются без ошибки.
func (a *App) PhotosByIDs(ids []string) []photo.Photo {
	out := make([]photo.Photo, 0, len(ids))
	for _, id := range ids {
		if p, ok := a.photos.GetByID(id); ok {
			out = append(out, p)
		}
	}
	return out
}

// Clusters группирует поездки из mirror по месту старта
func (a *App) Clusters() []geo.Cluster[ride.Ride] {
	return geo.Clusters(a.rides.Records())
}

// MapView - центр и масштаб карты для текущих поездок
func (a *App) MapView() geo.View {
	return geo.MapView(a.rides.Records())
}

// Close закрывает локальный кэш и простаивающие соединения
func (a *App) Close() error {
	a.http.Client().CloseIdleConnections()
	if err := a.closer(); err != nil {
		return fmt.Errorf("ошибка закрытия кэша: %w", err)
	}
	return nil
}

type appKey struct{}

// WithApp кладет приложение в контекст команды
func WithApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

var ErrNoApp = errors.New("приложение не инициализировано")

// FromContext достает приложение из контекста команды
func FromContext(ctx context.Context) (*App, error) {
	app, ok := ctx.Value(appKey{}).(*App)
	if !ok || app == nil {
		return nil, ErrNoApp
	}
	return app, nil
}
