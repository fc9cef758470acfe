package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"baseconv/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.False(t, cfg.HTTP.EnablePprof)
	require.Equal(t, "dec", cfg.Converter.DefaultFrom)
	require.Equal(t, "hex", cfg.Converter.DefaultTo)
	require.Equal(t, 4096, cfg.Converter.MaxInputLength)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("CONVERTER_DEFAULT_FROM", "bin")
	t.Setenv("HTTP_ADDR", "127.0.0.1:9999")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	require.Equal(t, "bin", cfg.Converter.DefaultFrom)
	require.Equal(t, "127.0.0.1:9999", cfg.HTTP.Addr)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	yml := `environment: production
http:
  addr: "127.0.0.1:8181"
  requestTimeout: 2s
converter:
  defaultFrom: hex
  defaultTo: bin
  maxInputLength: 64
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "127.0.0.1:8181", cfg.HTTP.Addr)
	require.Equal(t, 2*time.Second, cfg.HTTP.RequestTimeout)
	require.Equal(t, "hex", cfg.Converter.DefaultFrom)
	require.Equal(t, "bin", cfg.Converter.DefaultTo)
	require.Equal(t, 64, cfg.Converter.MaxInputLength)
	// untouched fields keep their defaults
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("http: [unterminated"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}
