// Package stats derives read-side progress views from stored workouts,
// profiles and challenges. Nothing here touches persistence.
package stats

import (
	"cmp"
	"math"
	"slices"
	"time"

	"example.com/fitpulse/internal/domain"
)

const day = 24 * time.Hour

// Totals aggregates a list of workouts.
type Totals struct {
	Workouts int `json:"workouts"`
	Minutes  int `json:"minutes"`
	Calories int `json:"calories"`
}

// Summarize sums count, minutes and calories over workouts.
func Summarize(workouts []domain.Workout) Totals {
	var t Totals
	for _, w := range workouts {
		t.Workouts++
		t.Minutes += w.Duration
		t.Calories += w.CaloriesOrZero()
	}
	return t
}

// DailyBucket is the per-day aggregate used for charts.
type DailyBucket struct {
	Day time.Time `json:"day"`
	Totals
}

// Daily groups workouts by UTC calendar day of their Date and keeps the most
// recent days buckets that have data, in ascending order. days <= 0 keeps all.
func Daily(workouts []domain.Workout, days int) []DailyBucket {
	index := make(map[time.Time]int)
	var buckets []DailyBucket
	for _, w := range workouts {
		key := truncateDay(w.Date)
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, DailyBucket{Day: key})
		}
		buckets[i].Workouts++
		buckets[i].Minutes += w.Duration
		buckets[i].Calories += w.CaloriesOrZero()
	}

	slices.SortFunc(buckets, func(a, b DailyBucket) int { return a.Day.Compare(b.Day) })
	if days > 0 && len(buckets) > days {
		buckets = buckets[len(buckets)-days:]
	}
	return buckets
}

// Recent returns the last n workouts in insertion order, newest first.
func Recent(workouts []domain.Workout, n int) []domain.Workout {
	if n <= 0 || n > len(workouts) {
		n = len(workouts)
	}
	out := make([]domain.Workout, 0, n)
	for i := len(workouts) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, workouts[i])
	}
	return out
}

// Streak counts consecutive UTC days with at least one workout, ending today or
// yesterday relative to now.
func Streak(workouts []domain.Workout, now time.Time) int {
	active := make(map[time.Time]struct{}, len(workouts))
	for _, w := range workouts {
		active[truncateDay(w.Date)] = struct{}{}
	}

	cursor := truncateDay(now)
	if _, ok := active[cursor]; !ok {
		cursor = cursor.Add(-day)
	}
	streak := 0
	for {
		if _, ok := active[cursor]; !ok {
			return streak
		}
		streak++
		cursor = cursor.Add(-day)
	}
}

// Entry is one row of the leaderboard.
type Entry struct {
	Rank          int    `json:"rank"`
	ID            string `json:"id"`
	Name          string `json:"name"`
	TotalWorkouts int    `json:"totalWorkouts"`
	TotalMinutes  int    `json:"totalMinutes"`
	IsCurrentUser bool   `json:"isCurrentUser"`
}

// Leaderboard ranks the user and friends by total workouts, descending. Ties
// keep the user ahead of friends and friends in stored order. A nil user is
// omitted.
func Leaderboard(user *domain.User, friends []domain.Friend) []Entry {
	entries := make([]Entry, 0, len(friends)+1)
	if user != nil {
		entries = append(entries, Entry{
			ID:            user.ID,
			Name:          user.Name,
			TotalWorkouts: user.TotalWorkouts,
			TotalMinutes:  user.TotalMinutes,
			IsCurrentUser: true,
		})
	}
	for _, f := range friends {
		entries = append(entries, Entry{
			ID:            f.ID,
			Name:          f.Name,
			TotalWorkouts: f.TotalWorkouts,
			TotalMinutes:  f.TotalMinutes,
		})
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(b.TotalWorkouts, a.TotalWorkouts)
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// Progress describes how far the user is through a challenge.
type Progress struct {
	Challenge domain.Challenge `json:"challenge"`
	Total     int              `json:"total"`
	Fraction  float64          `json:"fraction"`
	DaysLeft  int              `json:"daysLeft"`
	Completed bool             `json:"completed"`
}

// ChallengeProgress measures the user's live totals against the challenge goal,
// picking the metric from the challenge type. The stored Current field is not
// consulted.
func ChallengeProgress(ch domain.Challenge, user *domain.User, now time.Time) Progress {
	p := Progress{Challenge: ch}
	if user != nil {
		switch ch.Type {
		case domain.ChallengeTypeWorkouts:
			p.Total = user.TotalWorkouts
		case domain.ChallengeTypeMinutes:
			p.Total = user.TotalMinutes
		case domain.ChallengeTypeCalories:
			p.Total = user.TotalCalories
		}
	}

	if ch.Goal > 0 {
		p.Fraction = math.Min(float64(p.Total)/float64(ch.Goal), 1)
		p.Completed = p.Total >= ch.Goal
	}
	if remaining := ch.EndDate.Sub(now); remaining > 0 {
		p.DaysLeft = int(math.Ceil(remaining.Hours() / 24))
	}
	return p
}

// GoalStatus compares one weekly metric to its goal. Goal is nil when unset.
type GoalStatus struct {
	Actual int  `json:"actual"`
	Goal   *int `json:"goal,omitempty"`
	Met    bool `json:"met"`
}

// WeeklyReport is the trailing seven day view against the configured goals.
type WeeklyReport struct {
	Since    time.Time  `json:"since"`
	Workouts GoalStatus `json:"workouts"`
	Minutes  GoalStatus `json:"minutes"`
	Calories GoalStatus `json:"calories"`
}

// WeeklyGoalProgress sums the workouts dated within the seven days ending at now
// and compares them to the goals in settings.
func WeeklyGoalProgress(workouts []domain.Workout, settings domain.Settings, now time.Time) WeeklyReport {
	since := now.Add(-7 * day)
	var recent []domain.Workout
	for _, w := range workouts {
		if w.Date.After(since) && !w.Date.After(now) {
			recent = append(recent, w)
		}
	}
	t := Summarize(recent)

	return WeeklyReport{
		Since:    since,
		Workouts: status(t.Workouts, settings.Goals.WeeklyWorkouts),
		Minutes:  status(t.Minutes, settings.Goals.WeeklyMinutes),
		Calories: status(t.Calories, settings.Goals.WeeklyCalories),
	}
}

func status(actual int, goal *int) GoalStatus {
	s := GoalStatus{Actual: actual, Goal: goal}
	if goal != nil {
		s.Met = actual >= *goal
	}
	return s
}

func truncateDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
