package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"example.com/fitpulse/internal/calories"
	"example.com/fitpulse/internal/domain"
	"example.com/fitpulse/internal/persistence"
)

const dateLayout = "2006-01-02"

func (a *App) logWorkout(ctx context.Context, args []string) error {
	fs := a.newFlagSet("log")
	typ := fs.String("type", "", "workout type: cardio, strength, flexibility, sports, other")
	name := fs.String("name", "", "workout name")
	duration := fs.Int("duration", 0, "duration in minutes")
	intensity := fs.String("intensity", string(domain.IntensityMedium), "intensity: low, medium, high, extreme")
	notes := fs.String("notes", "", "free text notes")
	date := fs.String("date", "", "workout date (YYYY-MM-DD), defaults to now")
	weight := fs.Float64("weight", 0, "body weight in kg used for the estimate")
	if err := fs.Parse(args); err != nil {
		return err
	}

	workoutType, err := domain.ParseWorkoutType(*typ)
	if err != nil {
		return err
	}
	level, err := domain.ParseIntensity(*intensity)
	if err != nil {
		return err
	}

	in := domain.LogWorkoutInput{
		Type:      workoutType,
		Name:      *name,
		Duration:  *duration,
		Intensity: level,
		Notes:     *notes,
		WeightKg:  *weight,
	}
	if *date != "" {
		in.Date, err = time.Parse(dateLayout, *date)
		if err != nil {
			return fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
		}
	}

	workout, err := a.service.LogWorkout(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "logged %s: %s, %d min, %d kcal\n",
		workout.ID, workout.Name, workout.Duration, workout.CaloriesOrZero())
	return nil
}

func (a *App) list(ctx context.Context, args []string) error {
	fs := a.newFlagSet("list")
	limit := fs.Int("limit", 20, "page size, 0 for all")
	token := fs.String("cursor", "", "cursor returned by the previous page")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cursor, err := persistence.DecodeCursor(*token)
	if err != nil {
		return fmt.Errorf("%w: invalid cursor", domain.ErrValidation)
	}

	workouts, next := a.repo.ListWorkouts(ctx, cursor, *limit)
	if len(workouts) == 0 {
		fmt.Fprintln(a.out, "no workouts")
		return nil
	}

	tw := a.table()
	fmt.Fprintln(tw, "ID\tDATE\tTYPE\tNAME\tMIN\tINTENSITY\tKCAL")
	for _, w := range workouts {
		kcal := "-"
		if w.Calories != nil {
			kcal = strconv.Itoa(*w.Calories)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			w.ID, w.Date.Format(dateLayout), w.Type, w.Name, w.Duration, w.Intensity, kcal)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if next != nil {
		fmt.Fprintf(a.out, "next page: fitpulse list -limit %d -cursor %s\n", *limit, persistence.EncodeCursor(next))
	}
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: delete ID", ErrUsage)
	}
	if err := a.service.DeleteWorkout(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "deleted %s\n", args[0])
	return nil
}

func (a *App) estimate(args []string) error {
	fs := a.newFlagSet("estimate")
	typ := fs.String("type", "", "workout type")
	duration := fs.Int("duration", 0, "duration in minutes")
	intensity := fs.String("intensity", "", "intensity; omit to show every level")
	weight := fs.Float64("weight", a.weightKg, "body weight in kg")
	if err := fs.Parse(args); err != nil {
		return err
	}

	workoutType, err := domain.ParseWorkoutType(*typ)
	if err != nil {
		return err
	}
	if *duration <= 0 {
		return fmt.Errorf("%w: duration must be > 0", domain.ErrValidation)
	}

	tw := a.table()
	fmt.Fprintln(tw, "INTENSITY\tMET\tKCAL\tACTIVITY")

	if *intensity != "" {
		level, err := domain.ParseIntensity(*intensity)
		if err != nil {
			return err
		}
		info := calories.InfoAt(workoutType, *duration, level, *weight)
		fmt.Fprintf(tw, "%s\t%.1f\t%d\t%s\n", level, info.MET, info.Calories, info.Description)
		return tw.Flush()
	}

	ranges := calories.RangesAt(workoutType, *duration, *weight)
	for _, level := range domain.Intensities {
		met, _ := calories.MET(workoutType, level)
		fmt.Fprintf(tw, "%s\t%.1f\t%d\t%s\n", level, met, ranges[level], calories.Describe(workoutType, level))
	}
	return tw.Flush()
}

func (a *App) repair(ctx context.Context) error {
	user, err := a.repo.RepairTotals(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "totals: %d workouts, %d min, %d kcal\n", user.TotalWorkouts, user.TotalMinutes, user.TotalCalories)
	return nil
}
