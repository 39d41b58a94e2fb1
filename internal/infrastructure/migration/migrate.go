package migration

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	// Blank import required for PostgreSQL driver registration for migrations
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"ridejournal/internal/app/server/config"
)

// ErrDirtySchema - предыдущая миграция упала посередине, схему нужно чинить руками
var ErrDirtySchema = errors.New("document schema is dirty")

// Migrator - часть migrate.Migrate, которой пользуется хранилище документов
type Migrator interface {
	Up() error
	Version() (version uint, dirty bool, err error)
	Close() (error, error)
}

// MigrationEngine - фабрика мигратора, в тестах подменяется
type MigrationEngine func(sourceURL, databaseURL string) (Migrator, error)

// Migration накатывает схему таблицы документов (rides, photos)
type Migration struct {
	sourceURL   string
	databaseURL string
	engine      MigrationEngine
}

// NewMigration готовит миграции документной БД. engine == nil - DefaultEngine.
func NewMigration(conf *config.Config, engine MigrationEngine) *Migration {
	if engine == nil {
		engine = DefaultEngine
	}
	return &Migration{
		sourceURL:   "file://" + conf.DB.Migrations,
		databaseURL: conf.DB.DatabaseURI,
		engine:      engine,
	}
}

// DefaultEngine открывает настоящий migrate.Migrate
func DefaultEngine(sourceURL, databaseURL string) (Migrator, error) {
	return migrate.New(sourceURL, databaseURL)
}

// Up приводит схему документов к последней версии и возвращает ее номер.
// Грязная схема не трогается.
func (mg *Migration) Up() (version uint, err error) {
	m, err := mg.engine(mg.sourceURL, mg.databaseURL)
	if err != nil {
		return 0, fmt.Errorf("open migrator: %w", err)
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			err = errors.Join(err, fmt.Errorf("migration source: %w", serr))
		}
		if dberr != nil {
			err = errors.Join(err, fmt.Errorf("migration database: %w", dberr))
		}
	}()

	if err := checkClean(m); err != nil {
		return 0, err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("migration up: %w", err)
	}

	version, _, err = m.Version()
	if err != nil {
		return 0, fmt.Errorf("schema version: %w", err)
	}
	return version, nil
}

// checkClean пропускает пустую БД (ErrNilVersion) и останавливает грязную
func checkClean(m Migrator) error {
	v, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		return nil
	case err != nil:
		return fmt.Errorf("schema version: %w", err)
	case dirty:
		return fmt.Errorf("%w: version %d", ErrDirtySchema, v)
	}
	return nil
}
