package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
)

type mockRepo struct {
	Repository

	user          *User
	workouts      []Workout
	notifications []Notification
	deleted       []string
	saveErr       error
	notifyErr     error
}

func (m *mockRepo) GetUser(context.Context) *User {
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

func (m *mockRepo) CreateDefaultUser(context.Context) (User, error) {
	m.user = &User{ID: "user-1", Name: "Athlete"}
	return *m.user, nil
}

func (m *mockRepo) SaveWorkout(_ context.Context, w Workout) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.workouts = append(m.workouts, w)
	if m.user == nil {
		m.user = &User{ID: "user-auto"}
	}
	m.user.Apply(w)
	return nil
}

func (m *mockRepo) DeleteWorkout(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockRepo) AddNotification(_ context.Context, n Notification) error {
	if m.notifyErr != nil {
		return m.notifyErr
	}
	m.notifications = append(m.notifications, n)
	return nil
}

type fixedEstimator struct {
	calories int
	weights  []float64
}

func (f *fixedEstimator) Estimate(_ WorkoutType, _ int, _ Intensity, weightKg float64) int {
	f.weights = append(f.weights, weightKg)
	return f.calories
}

var testNow = time.Date(2025, time.October, 27, 20, 0, 0, 0, time.UTC)

func newTestService(repo Repository, est Estimator, opts ...Option) *Service {
	logger, _ := test.NewNullLogger()
	opts = append([]Option{WithLogger(logger), WithClock(func() time.Time { return testNow })}, opts...)
	return NewService(repo, est, opts...)
}

func TestLogWorkoutPersistsEstimatedCalories(t *testing.T) {
	repo := &mockRepo{user: &User{ID: "user-1"}}
	est := &fixedEstimator{calories: 245}
	svc := newTestService(repo, est)

	workout, err := svc.LogWorkout(context.Background(), LogWorkoutInput{
		Type:      WorkoutTypeCardio,
		Name:      "  Morning run ",
		Duration:  30,
		Intensity: IntensityMedium,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if workout.Calories == nil || *workout.Calories != 245 {
		t.Fatalf("expected 245 calories got %v", workout.Calories)
	}
	if workout.Name != "Morning run" {
		t.Fatalf("expected trimmed name got %q", workout.Name)
	}
	if workout.UserID != "user-1" {
		t.Fatalf("expected owner user-1 got %s", workout.UserID)
	}
	if !workout.Date.Equal(testNow) || !workout.CreatedAt.Equal(testNow) {
		t.Fatalf("expected dates to default to now, got %s / %s", workout.Date, workout.CreatedAt)
	}
	if len(repo.workouts) != 1 {
		t.Fatalf("expected one persisted workout got %d", len(repo.workouts))
	}
	if len(est.weights) != 1 || est.weights[0] != 70 {
		t.Fatalf("expected default weight 70 got %v", est.weights)
	}
}

func TestLogWorkoutWeightPrecedence(t *testing.T) {
	repo := &mockRepo{user: &User{ID: "user-1"}}
	est := &fixedEstimator{calories: 100}
	svc := newTestService(repo, est, WithWeightKg(82))

	base := LogWorkoutInput{Type: WorkoutTypeStrength, Name: "Lift", Duration: 20, Intensity: IntensityHigh}
	if _, err := svc.LogWorkout(context.Background(), base); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	base.WeightKg = 60
	if _, err := svc.LogWorkout(context.Background(), base); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if est.weights[0] != 82 || est.weights[1] != 60 {
		t.Fatalf("unexpected weights %v", est.weights)
	}
}

func TestLogWorkoutCreatesProfileWhenMissing(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo, &fixedEstimator{calories: 50})

	workout, err := svc.LogWorkout(context.Background(), LogWorkoutInput{
		Type: WorkoutTypeOther, Name: "Walk", Duration: 15, Intensity: IntensityLow,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if workout.UserID != "user-1" {
		t.Fatalf("expected created profile id got %s", workout.UserID)
	}
}

func TestLogWorkoutValidation(t *testing.T) {
	valid := LogWorkoutInput{Type: WorkoutTypeCardio, Name: "Run", Duration: 10, Intensity: IntensityLow}

	cases := map[string]func(in *LogWorkoutInput){
		"unknown type":      func(in *LogWorkoutInput) { in.Type = "yoga" },
		"unknown intensity": func(in *LogWorkoutInput) { in.Intensity = "insane" },
		"blank name":        func(in *LogWorkoutInput) { in.Name = "   " },
		"zero duration":     func(in *LogWorkoutInput) { in.Duration = 0 },
		"negative duration": func(in *LogWorkoutInput) { in.Duration = -5 },
		"negative weight":   func(in *LogWorkoutInput) { in.WeightKg = -1 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &mockRepo{}
			svc := newTestService(repo, &fixedEstimator{})
			in := valid
			mutate(&in)

			_, err := svc.LogWorkout(context.Background(), in)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error got %v", err)
			}
			if len(repo.workouts) != 0 {
				t.Fatalf("invalid input must not be persisted")
			}
		})
	}
}

func TestLogWorkoutPropagatesSaveError(t *testing.T) {
	boom := errors.New("boom")
	repo := &mockRepo{user: &User{ID: "user-1"}, saveErr: boom}
	svc := newTestService(repo, &fixedEstimator{})

	_, err := svc.LogWorkout(context.Background(), LogWorkoutInput{
		Type: WorkoutTypeSports, Name: "Match", Duration: 90, Intensity: IntensityHigh,
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected save error got %v", err)
	}
	if len(repo.notifications) != 0 {
		t.Fatalf("no achievement expected on failure")
	}
}

func TestLogWorkoutRecordsMilestones(t *testing.T) {
	repo := &mockRepo{user: &User{ID: "user-1"}}
	svc := newTestService(repo, &fixedEstimator{calories: 10})
	in := LogWorkoutInput{Type: WorkoutTypeFlexibility, Name: "Stretch", Duration: 5, Intensity: IntensityLow}

	for i := 0; i < 10; i++ {
		if _, err := svc.LogWorkout(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if len(repo.notifications) != 2 {
		t.Fatalf("expected milestones at 1 and 10 got %d", len(repo.notifications))
	}
	if repo.notifications[0].Title != "First workout logged" {
		t.Fatalf("unexpected title %q", repo.notifications[0].Title)
	}
	if repo.notifications[1].Title != "10 workouts logged" {
		t.Fatalf("unexpected title %q", repo.notifications[1].Title)
	}
	if repo.notifications[1].Type != NotificationAchievement {
		t.Fatalf("unexpected type %s", repo.notifications[1].Type)
	}
}

func TestLogWorkoutIgnoresNotificationFailure(t *testing.T) {
	logger, hook := test.NewNullLogger()
	repo := &mockRepo{user: &User{ID: "user-1"}, notifyErr: errors.New("full")}
	svc := NewService(repo, &fixedEstimator{}, WithLogger(logger))

	_, err := svc.LogWorkout(context.Background(), LogWorkoutInput{
		Type: WorkoutTypeCardio, Name: "Run", Duration: 10, Intensity: IntensityLow,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry := hook.LastEntry(); entry == nil || entry.Message != "failed to record achievement" {
		t.Fatalf("expected warning to be logged")
	}
}

func TestDeleteWorkoutRequiresID(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo, &fixedEstimator{})

	if err := svc.DeleteWorkout(context.Background(), " "); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error got %v", err)
	}
	if err := svc.DeleteWorkout(context.Background(), "workout_1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "workout_1" {
		t.Fatalf("unexpected deletes %v", repo.deleted)
	}
}

func TestJoinChallengeNotImplemented(t *testing.T) {
	svc := newTestService(&mockRepo{}, &fixedEstimator{})
	if err := svc.JoinChallenge(context.Background(), "challenge_1"); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented got %v", err)
	}
}
