package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "local", cfg.Storage.Driver)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 30*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, int64(50<<20), cfg.MaxUploadBytes())
	assert.True(t, cfg.Development())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DATABASE_HOST", "db")
	t.Setenv("DATABASE_DRIVER", "memory")
	t.Setenv("JWT_TTL_HOURS", "2")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowOrigins)
}

func TestLoad_File(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app:\n  port: 9090\n  env: production\nstorage:\n  driver: s3\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "s3", cfg.Storage.Driver)
	assert.False(t, cfg.Development())
}

func TestLoad_MissingFileIsIgnored(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NoError(t, err)
}

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := Load("")
	assert.Error(t, err)
}
