// GET    /api/health            # Проверка состояния
// GET    /api/rides             # Список поездок (?year=)
// POST   /api/rides             # Добавить поездку
// GET    /api/rides/stats       # Сводка
// GET    /api/rides/{id}        # Получить поездку
// PUT    /api/rides/{id}        # Обновить поездку
// DELETE /api/rides/{id}        # Удалить поездку
// GET    /api/photos            # Список фотографий (?year=)
// POST   /api/photos            # Загрузить фотографию (также /api/photos/upload)
// GET    /api/photos/years      # Годы съемки
// GET    /api/photos/{id}       # Получить фотографию
// PUT    /api/photos/{id}       # Обновить метаданные
// DELETE /api/photos/{id}       # Удалить фотографию
// GET    /uploads/*             # Файлы фотографий
// GET    /metrics               # Prometheus

package api

import (
	"fmt"
	"net/http"
	"path"
	"reflect"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	healthAPI "ridejournal/internal/app/server/api/http/health"
	"ridejournal/internal/app/server/api/http/middleware"
	"ridejournal/internal/app/server/api/http/middleware/logger"
	"ridejournal/internal/app/server/api/http/middleware/metrics"
	photoAPI "ridejournal/internal/app/server/api/http/photo"
	rideAPI "ridejournal/internal/app/server/api/http/ride"
	"ridejournal/internal/domain/photo"
	"ridejournal/internal/domain/ride"
)

// Storage - хранилища, на которых работает API
type Storage struct {
	Rides  ride.Repository
	Photos photo.Repository
}

type Handlers struct {
	Health *healthAPI.Handler
	Ride   *rideAPI.Handler
	Photo  *photoAPI.Handler
}

// New создает *chi.Mux с операциями huma, раздачей загруженных файлов и /metrics
func New(storage Storage, uploadsDir string, log *slog.Logger) (*chi.Mux, error) {
	mux := chi.NewMux()

	m, err := metrics.New()
	if err != nil {
		return nil, fmt.Errorf("init metrics: %w", err)
	}

	config := huma.DefaultConfig("Ride Journal API", "1.0.0")
	config.Components.Schemas = huma.NewMapRegistry("#/components/schemas/", schemaNamer)
	API := humachi.New(mux, config)

	h := handlers(storage, uploadsDir, m, log)
	h.Health.SetupRoutes(API)
	h.Ride.SetupRoutes(API)
	h.Photo.SetupRoutes(API)

	mux.Handle("/metrics", m.Handler())
	mux.Handle(photo.URLPrefix+"*", http.StripPrefix(photo.URLPrefix, http.FileServer(http.Dir(uploadsDir))))

	return mux, nil
}

func handlers(storage Storage, uploadsDir string, m *metrics.Metrics, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(m.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	photoService := photo.NewService(storage.Photos, uploadsDir, nil, nil, log)
	middlewares.Add(loggerMW.Middleware(), m.Middleware())
	photoHandler := photoAPI.NewHandler(photoService, log, middlewares.GetAllAndClear())

	rideService := ride.NewService(storage.Rides, photoService, nil, nil, log)
	middlewares.Add(loggerMW.Middleware(), m.Middleware())
	rideHandler := rideAPI.NewHandler(rideService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		Ride:   rideHandler,
		Photo:  photoHandler,
	}
}

// schemaNamer добавляет к имени схемы пакет: ride.Draft и photo.Draft
// должны попасть в реестр под разными именами.
func schemaNamer(t reflect.Type, hint string) string {
	name := huma.DefaultSchemaNamer(t, hint)

	base := t
	for base.Kind() == reflect.Pointer || base.Kind() == reflect.Slice || base.Kind() == reflect.Array || base.Kind() == reflect.Map {
		base = base.Elem()
	}
	if !strings.HasPrefix(base.PkgPath(), "ridejournal/") {
		return name
	}

	pkg := path.Base(base.PkgPath())
	prefix := strings.ToUpper(pkg[:1]) + pkg[1:]
	if strings.HasPrefix(name, prefix) {
		return name
	}
	return prefix + name
}
