package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	require.Equal(t, logrus.DebugLevel, GetLevel("debug"))
	require.Equal(t, logrus.ErrorLevel, GetLevel(" ERROR "))
	require.Equal(t, logrus.WarnLevel, GetLevel(""))
	require.Equal(t, logrus.WarnLevel, GetLevel("chatty"))
}

func TestSetupJSONToStderr(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn := Setup(SetupParams{LogLevel: "info", LogFormat: "json", Stderr: &buf})
	defer func() { require.NoError(t, closeFn()) }()

	logger.WithField("key", "workout_tracker_user").Info("hello")
	logger.Debug("filtered")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "hello", entry["msg"])
	require.Equal(t, "workout_tracker_user", entry["key"])
}

func TestSetupFileAndStderr(t *testing.T) {
	var buf bytes.Buffer
	base := filepath.Join(t.TempDir(), "fitpulse")
	logger, closeFn := Setup(SetupParams{LogFileName: base, LogToStderr: true, LogLevel: "warn", Stderr: &buf})

	logger.Warn("disk almost full")
	require.NoError(t, closeFn())

	raw, err := os.ReadFile(base + ".log")
	require.NoError(t, err)
	require.Contains(t, string(raw), "disk almost full")
	require.Contains(t, buf.String(), "disk almost full")
}
