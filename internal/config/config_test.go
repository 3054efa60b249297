package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FITPULSE_CONFIG", "FITPULSE_DATA_DIR", "FITPULSE_BACKEND", "FITPULSE_NAMESPACE",
		"FITPULSE_WEIGHT_KG", "FITPULSE_LOG_LEVEL", "FITPULSE_LOG_FORMAT", "FITPULSE_LOG_FILE",
		"FITPULSE_LOG_TO_STDERR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, BackendSQLite, cfg.Backend)
	require.Equal(t, "workout_tracker", cfg.Namespace)
	require.Equal(t, 70.0, cfg.WeightKg)
	require.Equal(t, "text", cfg.LogFormat)
	require.NotEmpty(t, cfg.DataDir)
	require.Equal(t, filepath.Join(cfg.DataDir, "fitpulse.db"), cfg.SQLitePath())
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("FITPULSE_DATA_DIR", dir)
	t.Setenv("FITPULSE_BACKEND", "FILE")
	t.Setenv("FITPULSE_NAMESPACE", "alt")
	t.Setenv("FITPULSE_WEIGHT_KG", "82.5")
	t.Setenv("FITPULSE_LOG_FORMAT", "json")
	t.Setenv("FITPULSE_LOG_TO_STDERR", "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, dir, cfg.DataDir)
	require.Equal(t, BackendFile, cfg.Backend)
	require.Equal(t, "alt", cfg.Namespace)
	require.Equal(t, 82.5, cfg.WeightKg)
	require.Equal(t, "json", cfg.LogFormat)
	require.True(t, cfg.LogToStderr)
	require.Equal(t, filepath.Join(dir, "store"), cfg.FileDir())
}

func TestLoadIgnoresUnparsableNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv("FITPULSE_WEIGHT_KG", "heavy")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 70.0, cfg.WeightKg)
}

func TestLoadTomlFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "fitpulse.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
backend = "memory"
namespace = "from_file"
weight_kg = 64.0
log_level = "debug"
`), 0o600))
	t.Setenv("FITPULSE_CONFIG", path)
	t.Setenv("FITPULSE_NAMESPACE", "from_env")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, BackendMemory, cfg.Backend)
	require.Equal(t, "from_env", cfg.Namespace)
	require.Equal(t, 64.0, cfg.WeightKg)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string][2]string{
		"backend":    {"FITPULSE_BACKEND", "postgres"},
		"weight":     {"FITPULSE_WEIGHT_KG", "-3"},
		"log format": {"FITPULSE_LOG_FORMAT", "xml"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("backend = ["), 0o600))
	t.Setenv("FITPULSE_CONFIG", path)

	_, err := Load()
	require.Error(t, err)
}
