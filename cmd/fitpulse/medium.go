package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"example.com/fitpulse/internal/config"
	"example.com/fitpulse/internal/persistence"
	"example.com/fitpulse/internal/persistence/filestore"
	"example.com/fitpulse/internal/persistence/sqlite"
)

func openMedium(ctx context.Context, cfg config.Config, logger logrus.FieldLogger) (persistence.Medium, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		logger.Warn("using in-memory storage, nothing will be kept after exit")
		return persistence.NewMemoryMedium(), nil
	case config.BackendFile:
		return filestore.NewOS(cfg.FileDir())
	case config.BackendSQLite:
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		return sqlite.Open(ctx, cfg.SQLitePath(), logger.WithField("component", "sqlite"))
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
