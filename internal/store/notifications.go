package store

import (
	"context"

	"example.com/fitpulse/internal/domain"
	"example.com/fitpulse/internal/observability"
)

// GetNotifications returns notifications, most recent first.
func (s *Store) GetNotifications(ctx context.Context) []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return read(ctx, s, s.keys.notifications, []domain.Notification{})
}

// AddNotification prepends notification and drops everything past MaxNotifications.
func (s *Store) AddNotification(ctx context.Context, notification domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := read(ctx, s, s.keys.notifications, []domain.Notification{})
	notifications := make([]domain.Notification, 0, min(len(existing)+1, MaxNotifications))
	notifications = append(notifications, notification)
	for _, n := range existing {
		if len(notifications) == MaxNotifications {
			break
		}
		notifications = append(notifications, n)
	}

	err := s.write(ctx, s.keys.notifications, notifications)
	record("add_notification", err)
	return err
}

// MarkNotificationAsRead flags the notification with id as read. Unknown ids
// are ignored.
func (s *Store) MarkNotificationAsRead(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notifications := read(ctx, s, s.keys.notifications, []domain.Notification{})
	for i := range notifications {
		if notifications[i].ID != id {
			continue
		}
		notifications[i].Read = true
		err := s.write(ctx, s.keys.notifications, notifications)
		record("mark_notification_read", err)
		return err
	}

	observability.RecordOperation("mark_notification_read", observability.OutcomeNoop)
	return nil
}

// ClearNotifications empties the list.
func (s *Store) ClearNotifications(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.write(ctx, s.keys.notifications, []domain.Notification{})
	record("clear_notifications", err)
	return err
}

// GetSettings returns the stored settings or domain.DefaultSettings.
func (s *Store) GetSettings(ctx context.Context) domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return read(ctx, s, s.keys.settings, domain.DefaultSettings())
}

// SaveSettings overwrites the stored settings.
func (s *Store) SaveSettings(ctx context.Context, settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.write(ctx, s.keys.settings, settings)
	record("save_settings", err)
	return err
}
