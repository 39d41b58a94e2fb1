package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	defaultServerAddress = "localhost:5000"
	defaultEnv           = EnvProd
	defaultConfigDir     = ".ridejournal"
	defaultGeocoderURL   = "https://nominatim.openstreetmap.org"
)

type Config struct {
	Env             string        `mapstructure:"app_env"`
	ServerAddress   string        `mapstructure:"server_address"`
	EnableTLS       bool          `mapstructure:"enable_tls"`
	ConfigDir       string        `mapstructure:"config_dir"`
	CachePath       string        `mapstructure:"cache_path"`
	RequestTimeout  time.Duration `mapstructure:"-"`
	RemoteRetries   int           `mapstructure:"remote_retries"`
	GeocoderURL     string        `mapstructure:"geocoder_url"`
	GeocoderCaching time.Duration `mapstructure:"-"`
}

// Load загружает конфигурацию клиента: .env, переменные окружения и,
// если задан configFile, yaml/json/toml файл (значения окружения важнее).
func Load(configFile string) (*Config, error) {
	// Загружаем .env файл если существует
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app_env", defaultEnv)
	v.SetDefault("server_address", defaultServerAddress)
	v.SetDefault("enable_tls", false)
	v.SetDefault("config_dir", "")
	v.SetDefault("cache_path", "")
	v.SetDefault("request_timeout_seconds", 10)
	v.SetDefault("remote_retries", 1)
	v.SetDefault("geocoder_url", defaultGeocoderURL)
	v.SetDefault("geocoder_cache_minutes", 30)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("ошибка чтения %s: %w", configFile, err)
		}
	}

	configDir := v.GetString("config_dir")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		configDir = filepath.Join(homeDir, defaultConfigDir)
	}

	cachePath := v.GetString("cache_path")
	if cachePath == "" {
		cachePath = filepath.Join(configDir, "cache.db")
	}

	cfg := &Config{
		Env:             v.GetString("app_env"),
		ServerAddress:   v.GetString("server_address"),
		EnableTLS:       v.GetBool("enable_tls"),
		ConfigDir:       configDir,
		CachePath:       cachePath,
		RequestTimeout:  time.Duration(v.GetInt("request_timeout_seconds")) * time.Second,
		RemoteRetries:   v.GetInt("remote_retries"),
		GeocoderURL:     strings.TrimRight(v.GetString("geocoder_url"), "/"),
		GeocoderCaching: time.Duration(v.GetInt("geocoder_cache_minutes")) * time.Minute,
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("ошибка конфигурации: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("server_address не может быть пустым")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout_seconds должен быть больше нуля")
	}
	if c.RemoteRetries < 0 {
		return fmt.Errorf("remote_retries не может быть отрицательным")
	}
	return nil
}

// BaseURL - адрес API сервера со схемой
func (c *Config) BaseURL() string {
	if strings.HasPrefix(c.ServerAddress, "http://") || strings.HasPrefix(c.ServerAddress, "https://") {
		return strings.TrimRight(c.ServerAddress, "/")
	}
	scheme := "http://"
	if c.EnableTLS {
		scheme = "https://"
	}
	return scheme + c.ServerAddress
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal
}
