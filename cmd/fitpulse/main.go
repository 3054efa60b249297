package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/multierr"

	"example.com/fitpulse/internal/calories"
	"example.com/fitpulse/internal/cli"
	"example.com/fitpulse/internal/config"
	"example.com/fitpulse/internal/domain"
	"example.com/fitpulse/internal/logging"
	"example.com/fitpulse/internal/store"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logger, closeLog := logging.Setup(logging.SetupParams{
		LogFileName: cfg.LogFile,
		LogToStderr: cfg.LogToStderr,
		LogLevel:    cfg.LogLevel,
		LogFormat:   cfg.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	medium, err := openMedium(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).WithField("backend", cfg.Backend).Error("failed to open storage")
		fmt.Fprintln(os.Stderr, "fitpulse:", err)
		_ = closeLog()
		return 1
	}

	repo := store.New(medium,
		store.WithLogger(logger.WithField("component", "store")),
		store.WithNamespace(cfg.Namespace),
	)
	service := domain.NewService(repo, calories.Estimator{},
		domain.WithLogger(logger.WithField("component", "service")),
		domain.WithWeightKg(cfg.WeightKg),
	)
	app := cli.NewApp(repo, service,
		cli.WithLogger(logger),
		cli.WithWeightKg(cfg.WeightKg),
	)

	runErr := app.Run(ctx, os.Args[1:])
	if closeErr := multierr.Combine(repo.Close(), closeLog()); closeErr != nil {
		fmt.Fprintln(os.Stderr, "fitpulse: shutdown:", closeErr)
	}

	switch {
	case runErr == nil:
		return 0
	case errors.Is(runErr, cli.ErrUsage), errors.Is(runErr, flag.ErrHelp):
		if !errors.Is(runErr, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "fitpulse:", runErr)
		}
		return 2
	default:
		fmt.Fprintln(os.Stderr, "fitpulse:", runErr)
		return 1
	}
}
