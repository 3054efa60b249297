package store

import (
	"context"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"example.com/fitpulse/internal/domain"
	"example.com/fitpulse/internal/observability"
)

// GetWorkouts returns every workout in insertion order.
func (s *Store) GetWorkouts(ctx context.Context) []domain.Workout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadWorkouts(ctx)
}

func (s *Store) loadWorkouts(ctx context.Context) []domain.Workout {
	return read(ctx, s, s.keys.workouts, []domain.Workout{})
}

// ListWorkouts returns up to limit workouts ordered by CreatedAt then ID,
// descending, starting strictly after cursor. The (CreatedAt, ID) key is total,
// so paging neither repeats nor skips records when the cursor's own record was
// deleted between pages. The returned cursor is nil once the list is exhausted.
func (s *Store) ListWorkouts(ctx context.Context, cursor *domain.Cursor, limit int) ([]domain.Workout, *domain.Cursor) {
	workouts := s.GetWorkouts(ctx)
	slices.SortStableFunc(workouts, newestFirst)

	start := 0
	if cursor != nil {
		key := domain.Workout{CreatedAt: cursor.CreatedAt, ID: cursor.ID}
		start, _ = slices.BinarySearchFunc(workouts, key, newestFirst)
		if start < len(workouts) && newestFirst(workouts[start], key) == 0 {
			start++
		}
	}
	if limit <= 0 {
		limit = len(workouts)
	}

	end := min(start+limit, len(workouts))
	page := workouts[start:end]
	if end == len(workouts) || len(page) == 0 {
		return page, nil
	}

	last := page[len(page)-1]
	return page, &domain.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
}

func newestFirst(a, b domain.Workout) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return strings.Compare(b.ID, a.ID)
}

// SaveWorkout appends the workout and adds it to the profile totals. A default
// profile is created when none exists so the totals always cover every workout.
func (s *Store) SaveWorkout(ctx context.Context, workout domain.Workout) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.saveWorkout(ctx, workout)
	record("save_workout", err)
	return err
}

func (s *Store) saveWorkout(ctx context.Context, workout domain.Workout) error {
	workouts := append(s.loadWorkouts(ctx), workout)
	if err := s.write(ctx, s.keys.workouts, workouts); err != nil {
		return err
	}
	observability.RecordWorkoutPersisted(workout.CreatedAt)

	user := s.loadUser(ctx)
	if user == nil {
		created := s.newProfileCovering(workouts)
		user = &created
		s.logger.WithFields(logrus.Fields{
			"user_id":  user.ID,
			"workouts": len(workouts),
		}).Info("no profile found, created default profile")
	} else {
		user.Apply(workout)
	}
	return s.saveUser(ctx, *user)
}

// DeleteWorkout removes the workout with id and subtracts it from the totals,
// clamping at zero. Unknown ids are ignored.
func (s *Store) DeleteWorkout(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	workouts := s.loadWorkouts(ctx)
	index := -1
	for i, w := range workouts {
		if w.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		observability.RecordOperation("delete_workout", observability.OutcomeNoop)
		return nil
	}

	removed := workouts[index]
	filtered := make([]domain.Workout, 0, len(workouts)-1)
	for _, w := range workouts {
		if w.ID != id {
			filtered = append(filtered, w)
		}
	}

	err := s.deleteWorkout(ctx, filtered, removed)
	record("delete_workout", err)
	return err
}

func (s *Store) deleteWorkout(ctx context.Context, remaining []domain.Workout, removed domain.Workout) error {
	if err := s.write(ctx, s.keys.workouts, remaining); err != nil {
		return err
	}

	user := s.loadUser(ctx)
	if user == nil {
		return nil
	}
	user.Revert(removed)
	return s.saveUser(ctx, *user)
}

// RepairTotals recomputes the profile totals from the stored workouts.
func (s *Store) RepairTotals(ctx context.Context) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	workouts := s.loadWorkouts(ctx)
	user := s.loadUser(ctx)
	if user == nil {
		created := s.newProfileCovering(workouts)
		user = &created
	} else {
		user.TotalWorkouts, user.TotalMinutes, user.TotalCalories = 0, 0, 0
		for _, w := range workouts {
			user.Apply(w)
		}
	}

	err := s.saveUser(ctx, *user)
	record("repair_totals", err)
	return *user, err
}
