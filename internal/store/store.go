// Package store implements the aggregate store: every collection the tracker
// persists, kept in one local key-value namespace, with the profile totals
// maintained in step with the workout list.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"example.com/fitpulse/internal/domain"
	"example.com/fitpulse/internal/observability"
	"example.com/fitpulse/internal/persistence"
)

// DefaultNamespace prefixes every persisted key.
const DefaultNamespace = "workout_tracker"

// MaxNotifications caps the stored notification list.
const MaxNotifications = 50

// ErrPersist wraps every failed write to the medium.
var ErrPersist = errors.New("persist failed")

var _ domain.Repository = (*Store)(nil)

type keySet struct {
	user          string
	workouts      string
	friends       string
	challenges    string
	notifications string
	settings      string
}

func newKeySet(namespace string) keySet {
	return keySet{
		user:          namespace + "_user",
		workouts:      namespace + "_workouts",
		friends:       namespace + "_friends",
		challenges:    namespace + "_challenges",
		notifications: namespace + "_notifications",
		settings:      namespace + "_settings",
	}
}

// Option configures optional behaviour for the Store.
type Option func(*Store)

// WithLogger overrides the logger used to report degraded reads and failed writes.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithNamespace overrides DefaultNamespace.
func WithNamespace(namespace string) Option {
	return func(s *Store) {
		if namespace != "" {
			s.keys = newKeySet(namespace)
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store is the single handle to the persisted namespace. Every operation is a
// full read-modify-write of the collections it touches and runs to completion
// under one mutex. Separate processes sharing a namespace are not coordinated.
type Store struct {
	mu     sync.Mutex
	medium persistence.Medium
	keys   keySet
	now    func() time.Time
	logger logrus.FieldLogger
}

// New constructs a Store over medium.
func New(medium persistence.Medium, opts ...Option) *Store {
	s := &Store{
		medium: medium,
		keys:   newKeySet(DefaultNamespace),
		now:    time.Now,
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close releases the underlying medium.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.medium.Close()
}

// read decodes key into a value of type T, returning fallback when the key is
// absent, unreadable or malformed.
func read[T any](ctx context.Context, s *Store, key string, fallback T) T {
	raw, err := s.medium.Get(ctx, key)
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Error("read failed, using default")
		observability.RecordReadFailure(key, "medium")
		return fallback
	}
	if raw == nil {
		return fallback
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("malformed stored data, using default")
		observability.RecordReadFailure(key, "decode")
		return fallback
	}
	return value
}

func (s *Store) write(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrPersist, key, err)
	}
	if err := s.medium.Set(ctx, key, raw); err != nil {
		s.logger.WithError(err).WithField("key", key).Error("write failed")
		return fmt.Errorf("%w: %s: %w", ErrPersist, key, err)
	}
	return nil
}

func record(operation string, err error) {
	if err != nil {
		observability.RecordOperation(operation, observability.OutcomeFailed)
		return
	}
	observability.RecordOperation(operation, observability.OutcomeOK)
}

func newID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
