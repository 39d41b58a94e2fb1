package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	StorageFile     = "file"
	StoragePostgres = "postgres"
)

type Config struct {
	Env     string
	DB      db
	Server  server
	Storage storage
	Logger  logger
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
	UploadsDir string `env:"UPLOADS_DIR"`
}

type storage struct {
	Kind     string `env:"STORAGE"`
	DataFile string `env:"DATA_FILE"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", envPath, err)
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("run_address", ":5000")
	v.SetDefault("storage", StorageFile)
	v.SetDefault("data_file", "data/rides.json")
	v.SetDefault("migrations_path", "migrations")
	v.SetDefault("uploads_dir", "uploads")
	v.SetDefault("log_level", "info")

	cfg := &Config{
		Env: v.GetString("app_env"),
		DB: db{
			DatabaseURI: v.GetString("database_uri"),
			Migrations:  v.GetString("migrations_path"),
		},
		Server: server{
			RunAddress: v.GetString("run_address"),
			UploadsDir: v.GetString("uploads_dir"),
		},
		Storage: storage{
			Kind:     v.GetString("storage"),
			DataFile: v.GetString("data_file"),
		},
		Logger: logger{LogLevel: v.GetString("log_level")},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad - Load для main: ошибка конфигурации завершает процесс
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalln("config error:", err)
	}
	return cfg
}

func (c *Config) validate() error {
	switch c.Storage.Kind {
	case StorageFile:
		if c.Storage.DataFile == "" {
			return errors.New("DATA_FILE is required for file storage")
		}
	case StoragePostgres:
		if c.DB.DatabaseURI == "" {
			return errors.New("DATABASE_URI is required for postgres storage")
		}
	default:
		return fmt.Errorf("unknown STORAGE %q, expected %s or %s", c.Storage.Kind, StorageFile, StoragePostgres)
	}
	return nil
}
