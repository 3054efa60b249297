package store

import (
	"context"

	"example.com/fitpulse/internal/domain"
	"example.com/fitpulse/internal/observability"
)

// DefaultUserName is the display name given to a freshly created profile.
const DefaultUserName = "Athlete"

// GetUser returns the stored profile, or nil when there is none.
func (s *Store) GetUser(ctx context.Context) *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadUser(ctx)
}

func (s *Store) loadUser(ctx context.Context) *domain.User {
	return read[*domain.User](ctx, s, s.keys.user, nil)
}

// CreateDefaultUser persists a new default profile. Its totals start at the
// sums over any workouts already stored, which is zero on a fresh namespace.
// It does not check for an existing profile.
func (s *Store) CreateDefaultUser(ctx context.Context) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.newProfileCovering(s.loadWorkouts(ctx))
	err := s.saveUser(ctx, user)
	record("create_user", err)
	return user, err
}

// newProfileCovering builds a default profile whose totals cover workouts.
func (s *Store) newProfileCovering(workouts []domain.Workout) domain.User {
	user := domain.User{
		ID:       newID("user"),
		Name:     DefaultUserName,
		JoinedAt: s.now().UTC(),
	}
	for _, w := range workouts {
		user.Apply(w)
	}
	return user
}

// SaveUser overwrites the stored profile.
func (s *Store) SaveUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.saveUser(ctx, user)
	record("save_user", err)
	return err
}

func (s *Store) saveUser(ctx context.Context, user domain.User) error {
	if err := s.write(ctx, s.keys.user, user); err != nil {
		return err
	}
	observability.RecordUserTotals(user.TotalWorkouts, user.TotalMinutes, user.TotalCalories)
	return nil
}
