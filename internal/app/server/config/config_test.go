package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"APP_ENV", "RUN_ADDRESS", "STORAGE", "DATA_FILE", "DATABASE_URI", "UPLOADS_DIR"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, ":5000", cfg.Server.RunAddress)
	assert.Equal(t, StorageFile, cfg.Storage.Kind)
	assert.Equal(t, "data/rides.json", cfg.Storage.DataFile)
	assert.Equal(t, "uploads", cfg.Server.UploadsDir)
}

func TestLoad_Postgres(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE", StoragePostgres)
	t.Setenv("DATABASE_URI", "postgres://localhost/rides")
	t.Setenv("RUN_ADDRESS", ":8080")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/rides", cfg.DB.DatabaseURI)
	assert.Equal(t, ":8080", cfg.Server.RunAddress)
}

func TestLoad_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("postgres without uri", func(t *testing.T) {
		t.Setenv("STORAGE", StoragePostgres)
		t.Setenv("DATABASE_URI", "")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("unknown storage", func(t *testing.T) {
		t.Setenv("STORAGE", "mongo")

		_, err := Load()
		assert.Error(t, err)
	})
}
