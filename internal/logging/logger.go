// Package logging builds the process logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type SetupParams struct {
	LogFileName string
	LogToStderr bool
	LogLevel    string
	LogFormat   string
	// Stderr receives console output. Defaults to os.Stderr.
	Stderr io.Writer
}

// Setup returns a logger configured from params and a close func that flushes
// the rotating file, if any.
func Setup(params SetupParams) (*logrus.Logger, func() error) {
	logger := logrus.New()
	logger.SetLevel(GetLevel(params.LogLevel))
	if strings.EqualFold(params.LogFormat, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	stderr := params.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	if params.LogFileName == "" {
		logger.SetOutput(stderr)
		return logger, func() error { return nil }
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   params.LogFileName,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		LocalTime:  false,
		Compress:   true,
	}

	if params.LogToStderr {
		logger.SetOutput(io.MultiWriter(stderr, lumberJackLogger))
	} else {
		logger.SetOutput(lumberJackLogger)
	}
	return logger, lumberJackLogger.Close
}

// GetLevel parses level, falling back to warn so the CLI output stays clean.
func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.WarnLevel
	}
	return parsed
}
