package domain

import "time"

// NotificationType classifies a notification.
type NotificationType string

const (
	NotificationReminder    NotificationType = "reminder"
	NotificationChallenge   NotificationType = "challenge"
	NotificationAchievement NotificationType = "achievement"
	NotificationFriend      NotificationType = "friend"
)

// Notification is a persisted message for the user.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}

// Frequency controls how often reminders fire.
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyCustom Frequency = "custom"
)

// NotificationSettings holds the reminder preferences.
type NotificationSettings struct {
	Enabled      bool      `json:"enabled"`
	ReminderTime string    `json:"reminderTime,omitempty"`
	Frequency    Frequency `json:"frequency"`
}

// Goals holds the optional weekly targets.
type Goals struct {
	WeeklyWorkouts *int `json:"weeklyWorkouts,omitempty"`
	WeeklyMinutes  *int `json:"weeklyMinutes,omitempty"`
	WeeklyCalories *int `json:"weeklyCalories,omitempty"`
}

// Settings is the single persisted settings object.
type Settings struct {
	Notifications NotificationSettings `json:"notifications"`
	Goals         Goals                `json:"goals"`
}

// DefaultSettings returns the settings used when none are stored.
func DefaultSettings() Settings {
	workouts, minutes := 3, 150
	return Settings{
		Notifications: NotificationSettings{
			Enabled:   true,
			Frequency: FrequencyDaily,
		},
		Goals: Goals{
			WeeklyWorkouts: &workouts,
			WeeklyMinutes:  &minutes,
		},
	}
}
