package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"ridejournal/internal/app/server/api"
	"ridejournal/internal/app/server/config"
	"ridejournal/internal/domain/photo"
	"ridejournal/internal/domain/ride"
	"ridejournal/internal/infrastructure/storage/file"
	"ridejournal/internal/infrastructure/storage/postgres"
	"ridejournal/internal/utils/logger"
)

func main() {
	conf := config.MustLoad()
	log := logger.New(conf.Env)

	log.Info("starting ride journal server",
		"env", conf.Env,
		"address", conf.Server.RunAddress,
		"storage", conf.Storage.Kind,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, closeStorage, err := openStorage(ctx, conf, log)
	if err != nil {
		log.Error("storage unavailable", "error", err)
		os.Exit(1)
	}
	defer closeStorage()

	mux, err := api.New(storage, conf.Server.UploadsDir, log)
	if err != nil {
		log.Error("failed to build API", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         conf.Server.RunAddress,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server starting", "address", conf.Server.RunAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}

func openStorage(ctx context.Context, conf *config.Config, log *slog.Logger) (api.Storage, func(), error) {
	switch conf.Storage.Kind {
	case config.StoragePostgres:
		db, err := postgres.New(ctx, conf)
		if err != nil {
			return api.Storage{}, nil, err
		}
		return api.Storage{
			Rides:  postgres.NewCollection[ride.Ride](db.Pool(), postgres.KindRides, log),
			Photos: postgres.NewCollection[photo.Photo](db.Pool(), postgres.KindPhotos, log),
		}, func() { _ = db.Close() }, nil
	default:
		photosFile := filepath.Join(filepath.Dir(conf.Storage.DataFile), "photos.json")
		return api.Storage{
			Rides:  file.NewCollection[ride.Ride](conf.Storage.DataFile, log),
			Photos: file.NewCollection[photo.Photo](photosFile, log),
		}, func() {}, nil
	}
}
