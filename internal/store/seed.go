package store

import (
	"context"
	"time"

	"example.com/fitpulse/internal/domain"
)

var demoFriends = []domain.Friend{
	{ID: "friend_1", Name: "João Silva", TotalWorkouts: 45, TotalMinutes: 1350, Streak: 7},
	{ID: "friend_2", Name: "Maria Santos", TotalWorkouts: 38, TotalMinutes: 1140, Streak: 5},
	{ID: "friend_3", Name: "Pedro Costa", TotalWorkouts: 52, TotalMinutes: 1560, Streak: 12},
}

func demoChallenges(userID string, now time.Time) []domain.Challenge {
	day := 24 * time.Hour
	return []domain.Challenge{
		{
			ID:           "challenge_1",
			Name:         "30 Day Challenge",
			Description:  "Complete 20 workouts in 30 days",
			Goal:         20,
			Participants: []string{userID, "friend_1", "friend_2"},
			EndDate:      now.Add(30 * day),
			Type:         domain.ChallengeTypeWorkouts,
		},
		{
			ID:           "challenge_2",
			Name:         "Minutes Marathon",
			Description:  "Accumulate 500 minutes of training",
			Goal:         500,
			Participants: []string{userID, "friend_3"},
			EndDate:      now.Add(60 * day),
			Type:         domain.ChallengeTypeMinutes,
		},
	}
}

// InitializeDemoData creates a default profile covering any stored workouts
// when none exists and seeds the
// demo friends and challenges into empty collections. Calling it repeatedly
// never duplicates data.
func (s *Store) InitializeDemoData(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.initializeDemoData(ctx)
	record("initialize_demo_data", err)
	return err
}

func (s *Store) initializeDemoData(ctx context.Context) error {
	now := s.now().UTC()

	user := s.loadUser(ctx)
	if user == nil {
		created := s.newProfileCovering(s.loadWorkouts(ctx))
		if err := s.saveUser(ctx, created); err != nil {
			return err
		}
		user = &created
	}

	if len(read(ctx, s, s.keys.friends, []domain.Friend{})) == 0 {
		friends := make([]domain.Friend, len(demoFriends))
		copy(friends, demoFriends)
		if err := s.write(ctx, s.keys.friends, friends); err != nil {
			return err
		}
	}

	if len(read(ctx, s, s.keys.challenges, []domain.Challenge{})) == 0 {
		if err := s.write(ctx, s.keys.challenges, demoChallenges(user.ID, now)); err != nil {
			return err
		}
	}
	return nil
}
