package domain

import "time"

// User is the profile that owns the running workout totals.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Avatar        string    `json:"avatar,omitempty"`
	TotalWorkouts int       `json:"totalWorkouts"`
	TotalMinutes  int       `json:"totalMinutes"`
	TotalCalories int       `json:"totalCalories"`
	JoinedAt      time.Time `json:"joinedAt"`
}

// Apply adds a workout to the totals.
func (u *User) Apply(w Workout) {
	u.TotalWorkouts++
	u.TotalMinutes += w.Duration
	u.TotalCalories += w.CaloriesOrZero()
}

// Revert removes a workout from the totals, never going below zero.
func (u *User) Revert(w Workout) {
	u.TotalWorkouts = max(0, u.TotalWorkouts-1)
	u.TotalMinutes = max(0, u.TotalMinutes-w.Duration)
	u.TotalCalories = max(0, u.TotalCalories-w.CaloriesOrZero())
}

// Friend is a read-only peer used for comparison and ranking.
type Friend struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Avatar        string `json:"avatar,omitempty"`
	TotalWorkouts int    `json:"totalWorkouts"`
	TotalMinutes  int    `json:"totalMinutes"`
	Streak        int    `json:"streak"`
}
