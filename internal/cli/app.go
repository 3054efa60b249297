// Package cli implements the fitpulse command line front end. Every command
// works against a domain.Repository and prints plain text tables.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"example.com/fitpulse/internal/domain"
)

// ErrUsage is returned when the arguments do not name a valid command.
var ErrUsage = errors.New("usage")

const usage = `usage: fitpulse <command> [flags]

commands:
  init                          seed demo friends and challenges
  log -type T -name N -duration M -intensity I [-notes S] [-date YYYY-MM-DD] [-weight KG]
  list [-limit N] [-cursor TOKEN]
  delete ID
  stats [-days N] [-metrics]
  friends
  challenges [join ID]
  notifications [read ID | clear]
  settings [-enabled B] [-reminder HH:MM] [-frequency F] [-weekly-workouts N] [-weekly-minutes N] [-weekly-calories N]
  estimate -type T -duration M [-intensity I] [-weight KG]
  repair
`

// Option configures optional behaviour for the App.
type Option func(*App)

// WithOutput redirects command output. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.out = w
	}
}

// WithLogger overrides the logger used for non-fatal failures.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithClock overrides the time source used by progress reports.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// WithGatherer sets the registry read by "stats -metrics".
func WithGatherer(g prometheus.Gatherer) Option {
	return func(a *App) {
		a.gatherer = g
	}
}

// WithWeightKg sets the weight used by "estimate" when -weight is omitted.
func WithWeightKg(weightKg float64) Option {
	return func(a *App) {
		if weightKg > 0 {
			a.weightKg = weightKg
		}
	}
}

type App struct {
	repo     domain.Repository
	service  *domain.Service
	gatherer prometheus.Gatherer
	out      io.Writer
	now      func() time.Time
	weightKg float64
	logger   logrus.FieldLogger
}

func NewApp(repo domain.Repository, service *domain.Service, opts ...Option) *App {
	a := &App{
		repo:     repo,
		service:  service,
		gatherer: prometheus.DefaultGatherer,
		out:      os.Stdout,
		now:      time.Now,
		weightKg: 70,
		logger:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run seeds demo data when missing and dispatches args to a command.
func (a *App) Run(ctx context.Context, args []string) error {
	if err := a.repo.InitializeDemoData(ctx); err != nil {
		a.logger.WithError(err).Warn("failed to seed demo data")
	}

	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return ErrUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "init":
		return a.initData(ctx)
	case "log":
		return a.logWorkout(ctx, rest)
	case "list", "ls":
		return a.list(ctx, rest)
	case "delete", "rm":
		return a.delete(ctx, rest)
	case "stats":
		return a.stats(ctx, rest)
	case "friends":
		return a.friends(ctx)
	case "challenges":
		return a.challenges(ctx, rest)
	case "notifications":
		return a.notifications(ctx, rest)
	case "settings":
		return a.settings(ctx, rest)
	case "estimate":
		return a.estimate(rest)
	case "repair":
		return a.repair(ctx)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
	}
}

func (a *App) initData(ctx context.Context) error {
	user := a.repo.GetUser(ctx)
	if user == nil {
		return errors.New("no profile after seeding")
	}
	fmt.Fprintf(a.out, "profile %s (%s) with %d friends and %d challenges\n",
		user.Name, user.ID, len(a.repo.GetFriends(ctx)), len(a.repo.GetChallenges(ctx)))
	return nil
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func (a *App) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
}

func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
