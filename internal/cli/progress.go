package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	dto "github.com/prometheus/client_model/go"

	"example.com/fitpulse/internal/stats"
)

const metricPrefix = "fitpulse_"

func (a *App) stats(ctx context.Context, args []string) error {
	fs := a.newFlagSet("stats")
	days := fs.Int("days", 7, "number of active days to chart")
	metrics := fs.Bool("metrics", false, "print store metrics instead of progress")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *metrics {
		return a.printMetrics()
	}

	now := a.now()
	workouts := a.repo.GetWorkouts(ctx)

	if user := a.repo.GetUser(ctx); user != nil {
		fmt.Fprintf(a.out, "%s: %d workouts, %d min, %d kcal, %d day streak\n",
			user.Name, user.TotalWorkouts, user.TotalMinutes, user.TotalCalories, stats.Streak(workouts, now))
	}

	week := stats.WeeklyGoalProgress(workouts, a.repo.GetSettings(ctx), now)
	tw := a.table()
	fmt.Fprintln(a.out)
	fmt.Fprintln(tw, "THIS WEEK\tACTUAL\tGOAL\t")
	writeGoal(tw, "workouts", week.Workouts)
	writeGoal(tw, "minutes", week.Minutes)
	writeGoal(tw, "calories", week.Calories)
	if err := tw.Flush(); err != nil {
		return err
	}

	buckets := stats.Daily(workouts, *days)
	if len(buckets) > 0 {
		fmt.Fprintln(a.out)
		tw = a.table()
		fmt.Fprintln(tw, "DAY\tWORKOUTS\tMIN\tKCAL")
		for _, b := range buckets {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", b.Day.Format(dateLayout), b.Workouts, b.Minutes, b.Calories)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if recent := stats.Recent(workouts, 5); len(recent) > 0 {
		fmt.Fprintln(a.out, "\nRecent:")
		for _, w := range recent {
			fmt.Fprintf(a.out, "  %s  %s (%s, %d min, %d kcal)\n",
				w.Date.Format(dateLayout), w.Name, w.Type, w.Duration, w.CaloriesOrZero())
		}
	}
	return nil
}

func writeGoal(tw io.Writer, label string, s stats.GoalStatus) {
	goal, mark := "-", ""
	if s.Goal != nil {
		goal = fmt.Sprint(*s.Goal)
		if s.Met {
			mark = "done"
		}
	}
	fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", label, s.Actual, goal, mark)
}

func (a *App) printMetrics() error {
	families, err := a.gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), metricPrefix) {
			continue
		}
		for _, m := range mf.GetMetric() {
			fmt.Fprintf(a.out, "%s%s %v\n", mf.GetName(), formatLabels(m.GetLabel()), metricValue(mf.GetType(), m))
		}
	}
	return nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", p.GetName(), p.GetValue()))
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ",") + "}"
}

func metricValue(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	case dto.MetricType_UNTYPED:
		return m.GetUntyped().GetValue()
	default:
		return 0
	}
}

func (a *App) friends(ctx context.Context) error {
	board := stats.Leaderboard(a.repo.GetUser(ctx), a.repo.GetFriends(ctx))
	if len(board) == 0 {
		fmt.Fprintln(a.out, "no friends yet")
		return nil
	}

	tw := a.table()
	fmt.Fprintln(tw, "RANK\tNAME\tWORKOUTS\tMIN\t")
	for _, e := range board {
		you := ""
		if e.IsCurrentUser {
			you = "(you)"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\n", e.Rank, e.Name, e.TotalWorkouts, e.TotalMinutes, you)
	}
	return tw.Flush()
}

func (a *App) challenges(ctx context.Context, args []string) error {
	if len(args) > 0 {
		if args[0] != "join" || len(args) != 2 {
			return fmt.Errorf("%w: challenges [join ID]", ErrUsage)
		}
		return a.service.JoinChallenge(ctx, args[1])
	}

	challenges := a.repo.GetChallenges(ctx)
	if len(challenges) == 0 {
		fmt.Fprintln(a.out, "no challenges")
		return nil
	}

	user := a.repo.GetUser(ctx)
	now := a.now()
	tw := a.table()
	fmt.Fprintln(tw, "ID\tNAME\tPROGRESS\tGOAL\tDAYS LEFT\tPARTICIPANTS")
	for _, ch := range challenges {
		p := stats.ChallengeProgress(ch, user, now)
		fmt.Fprintf(tw, "%s\t%s\t%d (%.0f%%)\t%d %s\t%d\t%d\n",
			ch.ID, ch.Name, p.Total, p.Fraction*100, ch.Goal, ch.Type, p.DaysLeft, len(ch.Participants))
	}
	return tw.Flush()
}
