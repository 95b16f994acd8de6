package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.True(t, cfg.HTTP.Gzip)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.Equal(t, "salestrack", cfg.Auth.Issuer)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	file := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte("http:\n  addr: \":9000\"\nlog:\n  level: debug\n"), 0o600))

	t.Setenv("SALESTRACK_LOG_LEVEL", "warn")
	t.Setenv("SALESTRACK_DATABASE_MAX_CONNS", "4")

	cfg, err := Load(viper.New(), file)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.HTTP.Addr)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, int32(4), cfg.Database.MaxConns)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SALESTRACK_AUTH_ISSUER=from-dotenv\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("SALESTRACK_AUTH_ISSUER") })

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Auth.Issuer)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Database: DatabaseConfig{URL: "postgres://x", MaxConns: 5, MinConns: 1},
		Auth:     AuthConfig{JWTSecret: "0123456789abcdef0123456789abcdef"},
	}
	assert.NoError(t, valid.Validate())

	noSecret := valid
	noSecret.Auth.JWTSecret = ""
	assert.ErrorContains(t, noSecret.Validate(), "jwt_secret")

	short := valid
	short.Auth.JWTSecret = "short"
	assert.ErrorContains(t, short.Validate(), "32")

	conns := valid
	conns.Database.MinConns = 10
	assert.ErrorContains(t, conns.Validate(), "min_conns")
}
