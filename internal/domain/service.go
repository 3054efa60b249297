// Package domain defines the business logic for the workout tracker.
package domain

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	// ErrValidation marks input rejected before it reaches the repository.
	ErrValidation = errors.New("validation failed")
	// ErrNotImplemented is returned by features that are only stubbed.
	ErrNotImplemented = errors.New("not implemented")
)

// workoutMilestones are the lifetime workout counts that trigger an achievement.
var workoutMilestones = []int{1, 10, 25, 50, 100}

// Repository captures every persistence operation the presentation layer may use.
// Getters never fail: unreadable state degrades to the documented default.
type Repository interface {
	GetUser(ctx context.Context) *User
	CreateDefaultUser(ctx context.Context) (User, error)
	SaveUser(ctx context.Context, user User) error

	GetWorkouts(ctx context.Context) []Workout
	ListWorkouts(ctx context.Context, cursor *Cursor, limit int) ([]Workout, *Cursor)
	SaveWorkout(ctx context.Context, workout Workout) error
	DeleteWorkout(ctx context.Context, id string) error
	RepairTotals(ctx context.Context) (User, error)

	GetFriends(ctx context.Context) []Friend
	SaveFriend(ctx context.Context, friend Friend) error
	RemoveFriend(ctx context.Context, id string) error

	GetChallenges(ctx context.Context) []Challenge
	SaveChallenge(ctx context.Context, challenge Challenge) error
	UpdateChallenge(ctx context.Context, id string, patch ChallengePatch) error

	GetNotifications(ctx context.Context) []Notification
	AddNotification(ctx context.Context, notification Notification) error
	MarkNotificationAsRead(ctx context.Context, id string) error
	ClearNotifications(ctx context.Context) error

	GetSettings(ctx context.Context) Settings
	SaveSettings(ctx context.Context, settings Settings) error

	InitializeDemoData(ctx context.Context) error
}

// Estimator computes the calorie burn for a workout.
type Estimator interface {
	Estimate(workoutType WorkoutType, durationMin int, intensity Intensity, weightKg float64) int
}

// Option configures optional behaviour for the Service.
type Option func(*Service)

// WithLogger overrides the logger used to report non-fatal failures.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithWeightKg sets the body weight used when the input carries none.
func WithWeightKg(weightKg float64) Option {
	return func(s *Service) {
		if weightKg > 0 {
			s.weightKg = weightKg
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service orchestrates workout workflows.
type Service struct {
	repo      Repository
	estimator Estimator
	weightKg  float64
	now       func() time.Time
	logger    logrus.FieldLogger
}

// NewService constructs a Service.
func NewService(repo Repository, estimator Estimator, opts ...Option) *Service {
	s := &Service{
		repo:      repo,
		estimator: estimator,
		weightKg:  70,
		now:       time.Now,
		logger:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LogWorkoutInput captures a workout submitted by the user.
type LogWorkoutInput struct {
	Type      WorkoutType
	Name      string
	Duration  int
	Intensity Intensity
	Notes     string
	Date      time.Time
	WeightKg  float64
}

// Validate ensures input correctness.
func (in LogWorkoutInput) Validate() error {
	if !in.Type.Valid() {
		return fmt.Errorf("%w: unknown workout type %q", ErrValidation, in.Type)
	}
	if !in.Intensity.Valid() {
		return fmt.Errorf("%w: unknown intensity %q", ErrValidation, in.Intensity)
	}
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.Duration <= 0 {
		return fmt.Errorf("%w: duration must be > 0", ErrValidation)
	}
	if in.WeightKg < 0 {
		return fmt.Errorf("%w: weight must be > 0", ErrValidation)
	}
	return nil
}

// LogWorkout validates the input, estimates calories and persists the record.
func (s *Service) LogWorkout(ctx context.Context, input LogWorkoutInput) (*Workout, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user := s.repo.GetUser(ctx)
	if user == nil {
		created, err := s.repo.CreateDefaultUser(ctx)
		if err != nil {
			return nil, err
		}
		user = &created
	}

	weight := input.WeightKg
	if weight == 0 {
		weight = s.weightKg
	}
	calories := s.estimator.Estimate(input.Type, input.Duration, input.Intensity, weight)

	now := s.now().UTC()
	date := input.Date.UTC()
	if input.Date.IsZero() {
		date = now
	}

	workout := Workout{
		ID:        "workout_" + uuid.NewString(),
		UserID:    user.ID,
		Type:      input.Type,
		Name:      strings.TrimSpace(input.Name),
		Duration:  input.Duration,
		Intensity: input.Intensity,
		Calories:  &calories,
		Notes:     strings.TrimSpace(input.Notes),
		Date:      date,
		CreatedAt: now,
	}

	if err := s.repo.SaveWorkout(ctx, workout); err != nil {
		return nil, err
	}

	s.notifyMilestone(ctx, now)
	return &workout, nil
}

// DeleteWorkout removes a workout by ID. Unknown IDs are ignored.
func (s *Service) DeleteWorkout(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: workout id is required", ErrValidation)
	}
	return s.repo.DeleteWorkout(ctx, id)
}

// JoinChallenge is a placeholder; joining challenges is not supported yet.
func (s *Service) JoinChallenge(ctx context.Context, id string) error {
	return fmt.Errorf("join challenge %s: %w", id, ErrNotImplemented)
}

func (s *Service) notifyMilestone(ctx context.Context, now time.Time) {
	user := s.repo.GetUser(ctx)
	if user == nil || !slices.Contains(workoutMilestones, user.TotalWorkouts) {
		return
	}

	title := "First workout logged"
	if user.TotalWorkouts > 1 {
		title = fmt.Sprintf("%d workouts logged", user.TotalWorkouts)
	}
	notification := Notification{
		ID:        "notification_" + uuid.NewString(),
		Type:      NotificationAchievement,
		Title:     title,
		Message:   fmt.Sprintf("%d minutes and %d kcal so far. Keep going!", user.TotalMinutes, user.TotalCalories),
		CreatedAt: now,
	}
	if err := s.repo.AddNotification(ctx, notification); err != nil {
		s.logger.WithError(err).WithField("milestone", user.TotalWorkouts).Warn("failed to record achievement")
	}
}
