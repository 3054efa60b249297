package cli

import (
	"context"
	"fmt"

	"example.com/fitpulse/internal/domain"
)

func (a *App) notifications(ctx context.Context, args []string) error {
	switch {
	case len(args) == 0:
	case args[0] == "read" && len(args) == 2:
		return a.repo.MarkNotificationAsRead(ctx, args[1])
	case args[0] == "clear" && len(args) == 1:
		return a.repo.ClearNotifications(ctx)
	default:
		return fmt.Errorf("%w: notifications [read ID | clear]", ErrUsage)
	}

	notifications := a.repo.GetNotifications(ctx)
	if len(notifications) == 0 {
		fmt.Fprintln(a.out, "no notifications")
		return nil
	}

	tw := a.table()
	fmt.Fprintln(tw, "ID\tTYPE\tTITLE\tMESSAGE\t")
	for _, n := range notifications {
		unread := "*"
		if n.Read {
			unread = ""
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", n.ID, n.Type, n.Title, n.Message, unread)
	}
	return tw.Flush()
}

func (a *App) settings(ctx context.Context, args []string) error {
	current := a.repo.GetSettings(ctx)

	fs := a.newFlagSet("settings")
	enabled := fs.Bool("enabled", current.Notifications.Enabled, "enable reminders")
	reminder := fs.String("reminder", current.Notifications.ReminderTime, "reminder time HH:MM")
	frequency := fs.String("frequency", string(current.Notifications.Frequency), "daily, weekly or custom")
	weeklyWorkouts := fs.Int("weekly-workouts", 0, "weekly workout goal, 0 clears it")
	weeklyMinutes := fs.Int("weekly-minutes", 0, "weekly minutes goal, 0 clears it")
	weeklyCalories := fs.Int("weekly-calories", 0, "weekly calories goal, 0 clears it")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NFlag() > 0 {
		freq := domain.Frequency(*frequency)
		switch freq {
		case domain.FrequencyDaily, domain.FrequencyWeekly, domain.FrequencyCustom:
		default:
			return fmt.Errorf("%w: unknown frequency %q", domain.ErrValidation, *frequency)
		}
		current.Notifications.Enabled = *enabled
		current.Notifications.ReminderTime = *reminder
		current.Notifications.Frequency = freq
		if isSet(fs, "weekly-workouts") {
			current.Goals.WeeklyWorkouts = optional(*weeklyWorkouts)
		}
		if isSet(fs, "weekly-minutes") {
			current.Goals.WeeklyMinutes = optional(*weeklyMinutes)
		}
		if isSet(fs, "weekly-calories") {
			current.Goals.WeeklyCalories = optional(*weeklyCalories)
		}
		if err := a.repo.SaveSettings(ctx, current); err != nil {
			return err
		}
	}

	tw := a.table()
	fmt.Fprintf(tw, "reminders\t%t\n", current.Notifications.Enabled)
	fmt.Fprintf(tw, "reminder time\t%s\n", orDash(current.Notifications.ReminderTime))
	fmt.Fprintf(tw, "frequency\t%s\n", current.Notifications.Frequency)
	fmt.Fprintf(tw, "weekly workouts\t%s\n", intOrDash(current.Goals.WeeklyWorkouts))
	fmt.Fprintf(tw, "weekly minutes\t%s\n", intOrDash(current.Goals.WeeklyMinutes))
	fmt.Fprintf(tw, "weekly calories\t%s\n", intOrDash(current.Goals.WeeklyCalories))
	return tw.Flush()
}

func optional(v int) *int {
	if v <= 0 {
		return nil
	}
	return &v
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func intOrDash(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}
