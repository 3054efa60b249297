package store

import (
	"context"

	"example.com/fitpulse/internal/domain"
	"example.com/fitpulse/internal/observability"
)

// GetFriends returns the stored friends.
func (s *Store) GetFriends(ctx context.Context) []domain.Friend {
	s.mu.Lock()
	defer s.mu.Unlock()
	return read(ctx, s, s.keys.friends, []domain.Friend{})
}

// SaveFriend appends friend to the list.
func (s *Store) SaveFriend(ctx context.Context, friend domain.Friend) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	friends := append(read(ctx, s, s.keys.friends, []domain.Friend{}), friend)
	err := s.write(ctx, s.keys.friends, friends)
	record("save_friend", err)
	return err
}

// RemoveFriend drops every friend with id.
func (s *Store) RemoveFriend(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	friends := read(ctx, s, s.keys.friends, []domain.Friend{})
	filtered := make([]domain.Friend, 0, len(friends))
	for _, f := range friends {
		if f.ID != id {
			filtered = append(filtered, f)
		}
	}

	err := s.write(ctx, s.keys.friends, filtered)
	record("remove_friend", err)
	return err
}

// GetChallenges returns the stored challenges.
func (s *Store) GetChallenges(ctx context.Context) []domain.Challenge {
	s.mu.Lock()
	defer s.mu.Unlock()
	return read(ctx, s, s.keys.challenges, []domain.Challenge{})
}

// SaveChallenge appends challenge to the list.
func (s *Store) SaveChallenge(ctx context.Context, challenge domain.Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenges := append(read(ctx, s, s.keys.challenges, []domain.Challenge{}), challenge)
	err := s.write(ctx, s.keys.challenges, challenges)
	record("save_challenge", err)
	return err
}

// UpdateChallenge merges patch into the challenge with id. Unknown ids are ignored.
func (s *Store) UpdateChallenge(ctx context.Context, id string, patch domain.ChallengePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenges := read(ctx, s, s.keys.challenges, []domain.Challenge{})
	for i, c := range challenges {
		if c.ID != id {
			continue
		}
		challenges[i] = patch.Merge(c)
		err := s.write(ctx, s.keys.challenges, challenges)
		record("update_challenge", err)
		return err
	}

	observability.RecordOperation("update_challenge", observability.OutcomeNoop)
	return nil
}
