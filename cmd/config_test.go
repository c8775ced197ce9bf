package cmd_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"printdrop/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("TOKEN_SECRET", "0123456789abcdef-secret")

		cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
		assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
		assert.Equal(t, 24*time.Hour, cfg.IdempotencyTTL)
		assert.Equal(t, "disable", cfg.DBSslMode)
		assert.Empty(t, cfg.KafkaHost)
		assert.Empty(t, cfg.RedisAddr)
	})

	t.Run("token secret is required", func(t *testing.T) {
		t.Setenv("TOKEN_SECRET", "")
		require.NoError(t, os.Unsetenv("TOKEN_SECRET"))

		_, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TOKEN_SECRET")
	})

	t.Run("env file fills unset variables", func(t *testing.T) {
		t.Setenv("TOKEN_SECRET", "0123456789abcdef-secret")
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("TOKEN_TTL", "")
		require.NoError(t, os.Unsetenv("TOKEN_TTL"))
		t.Setenv("REDIS_ADDR", "")
		require.NoError(t, os.Unsetenv("REDIS_ADDR"))

		file := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(file, []byte("HTTP_PORT=7070\nTOKEN_TTL=2h\nREDIS_ADDR=localhost:6379\n"), 0o600))
		t.Cleanup(func() {
			_ = os.Unsetenv("TOKEN_TTL")
			_ = os.Unsetenv("REDIS_ADDR")
		})

		cfg, err := cmd.LoadConfig(file)
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.HTTPPort)
		assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
		assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	})
}

func TestConfigDSN(t *testing.T) {
	cfg := cmd.Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "printdrop", DBSslMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=printdrop sslmode=disable", cfg.DSN())
}

func TestConfigLogger(t *testing.T) {
	cfg := cmd.Config{LogLevel: "debug", LogFormat: "text"}
	logger := cfg.Logger()
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))

	cfg = cmd.Config{LogLevel: "nonsense"}
	logger = cfg.Logger()
	assert.False(t, logger.Enabled(t.Context(), slog.LevelDebug))
	assert.True(t, logger.Enabled(t.Context(), slog.LevelInfo))
}
