package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/2beens/gymlog/internal"
	"github.com/2beens/gymlog/internal/gymlog"
	"github.com/2beens/gymlog/internal/gymlog/dates"
	"github.com/2beens/gymlog/internal/gymlog/entries"
	"github.com/2beens/gymlog/internal/gymlog/feedback"
	"github.com/2beens/gymlog/internal/gymlog/progress"
	"github.com/2beens/gymlog/internal/gymlog/stats"
)

var errUsage = errors.New("bad usage")

type command struct {
	name string
	help string
	run  func(ctx context.Context, app *internal.App, out *printer, args []string) error
}

var commands = []command{
	{"workout", "log a lift: -exercise, -weight or -bar/-plates, -sets, -reps, -rpe", runWorkout},
	{"activity", "log an activity note and/or body weight: -comments, -bw", runActivity},
	{"edit", "edit an activity: -id, -comments, -bw, -date", runEdit},
	{"delete", "delete an entry: -id", runDelete},
	{"delete-all", "delete the whole history: -yes", runDeleteAll},
	{"history", "list all entries", runHistory},
	{"week", "weekly summary: -offset (0 is this week, -1 last week)", runWeek},
	{"exercises", "list logged exercises", runExercises},
	{"catalog", "list known exercises by category", runCatalog},
	{"series", "progress of one exercise: -exercise, -from, -to", runSeries},
	{"goal", "show or set the goal: goal [cutting|bulking|maintenance]", runGoal},
	{"messages", "manage feedback messages: messages list|add|delete|reset", runMessages},
	{"clear-tracking", "let every feedback message show up again", runClearTracking},
	{"backup", "archive the data dir: -dest", runBackup},
}

func run(ctx context.Context, app *internal.App, out *printer, args []string) error {
	for _, c := range commands {
		if c.name == args[0] {
			return c.run(ctx, app, out, args[1:])
		}
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func today() string {
	return dates.Format(time.Now())
}

// optionalFloat is a flag that remembers whether it was set.
type optionalFloat struct {
	raw string
}

func (f *optionalFloat) String() string { return f.raw }

func (f *optionalFloat) Set(s string) error {
	f.raw = s
	return nil
}

func (f *optionalFloat) bodyWeight() (*float64, error) {
	if f.raw == "" {
		return nil, nil
	}
	return entries.ParseBodyWeight(f.raw)
}

func runWorkout(ctx context.Context, app *internal.App, out *printer, args []string) error {
	fs := newFlagSet("workout")
	exercise := fs.String("exercise", "", "exercise name")
	date := fs.String("date", today(), "date, YYYY-MM-DD")
	weight := fs.Float64("weight", -1, "total weight in lbs")
	bar := fs.Float64("bar", 45, "bar weight in lbs, used with -plates")
	plates := fs.String("plates", "", "plates per side, e.g. 45x2,25")
	sets := fs.Int("sets", 0, "sets")
	reps := fs.Int("reps", 0, "reps")
	rpe := fs.Float64("rpe", 0, "RPE 0-10")
	rpeSlider := fs.Float64("rpe-slider", -1, "RPE slider position 0-10, mapped logarithmically")
	comments := fs.String("comments", "", "comments")
	var bw optionalFloat
	fs.Var(&bw, "bw", "body weight in lbs")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	total := *weight
	if *plates != "" {
		loaded, err := entries.ParsePlates(*plates)
		if err != nil {
			return err
		}
		total = entries.TotalWeight(*bar, loaded)
	}
	if total < 0 {
		return fmt.Errorf("%w: either -weight or -plates is required", errUsage)
	}

	effort := *rpe
	if *rpeSlider >= 0 {
		effort = entries.LogarithmicRPE(*rpeSlider)
	}

	bodyWeight, err := bw.bodyWeight()
	if err != nil {
		return err
	}

	res, err := app.Tracker.SaveWorkout(ctx, gymlog.WorkoutInput{
		Exercise:   *exercise,
		Date:       *date,
		Weight:     total,
		Sets:       *sets,
		Reps:       *reps,
		RPE:        effort,
		BodyWeight: bodyWeight,
		Comments:   *comments,
	})
	if err != nil {
		return err
	}
	return out.saveResult(res)
}

func parseActivityFlags(name string, args []string, withID bool) (int64, gymlog.ActivityInput, error) {
	fs := newFlagSet(name)
	id := fs.Int64("id", 0, "entry id")
	date := fs.String("date", today(), "date, YYYY-MM-DD")
	comments := fs.String("comments", "", "activity note")
	var bw optionalFloat
	fs.Var(&bw, "bw", "body weight in lbs")
	if err := fs.Parse(args); err != nil {
		return 0, gymlog.ActivityInput{}, fmt.Errorf("%w: %w", errUsage, err)
	}
	if withID && *id == 0 {
		return 0, gymlog.ActivityInput{}, fmt.Errorf("%w: -id is required", errUsage)
	}

	bodyWeight, err := bw.bodyWeight()
	if err != nil {
		return 0, gymlog.ActivityInput{}, err
	}

	return *id, gymlog.ActivityInput{
		Comments:   *comments,
		Date:       *date,
		BodyWeight: bodyWeight,
	}, nil
}

func runActivity(ctx context.Context, app *internal.App, out *printer, args []string) error {
	_, in, err := parseActivityFlags("activity", args, false)
	if err != nil {
		return err
	}
	res, err := app.Tracker.SaveActivity(ctx, in)
	if err != nil {
		return err
	}
	return out.saveResult(res)
}

func runEdit(ctx context.Context, app *internal.App, out *printer, args []string) error {
	id, in, err := parseActivityFlags("edit", args, true)
	if err != nil {
		return err
	}
	updated, err := app.Tracker.EditActivity(ctx, id, in)
	if err != nil {
		return err
	}
	return out.entries([]entries.Entry{updated})
}

func runDelete(ctx context.Context, app *internal.App, out *printer, args []string) error {
	fs := newFlagSet("delete")
	id := fs.Int64("id", 0, "entry id")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if err := app.Tracker.Delete(ctx, *id); err != nil {
		return err
	}
	return out.line("deleted entry %d", *id)
}

func runDeleteAll(ctx context.Context, app *internal.App, out *printer, args []string) error {
	fs := newFlagSet("delete-all")
	yes := fs.Bool("yes", false, "confirm deleting the whole history")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if !*yes {
		return fmt.Errorf("%w: this deletes every entry, pass -yes to confirm", errUsage)
	}
	count := len(app.Tracker.History())
	if err := app.Tracker.DeleteAll(ctx); err != nil {
		return err
	}
	return out.line("deleted %d entries", count)
}

func runHistory(_ context.Context, app *internal.App, out *printer, _ []string) error {
	return out.entries(app.Tracker.History())
}

func runWeek(_ context.Context, app *internal.App, out *printer, args []string) error {
	fs := newFlagSet("week")
	offset := fs.Int("offset", 0, "weeks from the current one, 0 or negative")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	summary, err := app.Tracker.Week(*offset)
	if err != nil {
		return err
	}
	return out.week(summary)
}

func runExercises(_ context.Context, app *internal.App, out *printer, _ []string) error {
	names := app.Tracker.Exercises()
	return out.print(names, func(w io.Writer) {
		for _, n := range names {
			fmt.Fprintf(w, "%s (%s)\n", n, categoryLabel(n))
		}
	})
}

func categoryLabel(exercise string) string {
	if c := entries.CategoryOf(exercise); c != "" {
		return string(c)
	}
	return "uncategorized"
}

func runCatalog(_ context.Context, _ *internal.App, out *printer, _ []string) error {
	catalog := make(map[entries.Category][]string, len(entries.Categories))
	for _, c := range entries.Categories {
		catalog[c] = entries.Exercises(c)
	}
	return out.print(catalog, func(w io.Writer) {
		for _, c := range entries.Categories {
			fmt.Fprintf(w, "%s:\n", c)
			for _, e := range catalog[c] {
				fmt.Fprintf(w, "  %s\n", e)
			}
		}
	})
}

func runSeries(_ context.Context, app *internal.App, out *printer, args []string) error {
	fs := newFlagSet("series")
	exercise := fs.String("exercise", "", "exercise name")
	from := fs.String("from", "", "first date, YYYY-MM-DD")
	to := fs.String("to", "", "last date, YYYY-MM-DD")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if *exercise == "" {
		return fmt.Errorf("%w: -exercise is required", errUsage)
	}

	params := stats.SeriesParams{Exercise: *exercise}
	for _, bound := range []struct {
		raw  string
		dest **time.Time
	}{{*from, &params.From}, {*to, &params.To}} {
		if bound.raw == "" {
			continue
		}
		day, err := dates.Parse(bound.raw)
		if err != nil {
			return err
		}
		*bound.dest = &day
	}

	return out.series(*exercise, app.Tracker.ExerciseSeries(params))
}

func runGoal(ctx context.Context, app *internal.App, out *printer, args []string) error {
	if len(args) == 0 {
		return out.line("%s", app.Tracker.Goal(ctx))
	}
	goal, err := progress.ParseGoalMode(args[0])
	if err != nil {
		return err
	}
	if err := app.Tracker.SetGoal(ctx, goal); err != nil {
		return err
	}
	return out.line("goal set to %s", goal)
}

func runMessages(ctx context.Context, app *internal.App, out *printer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: messages list|add|delete|reset", errUsage)
	}

	if args[0] == "reset" {
		if err := app.Tracker.ResetMessages(ctx); err != nil {
			return err
		}
		return out.line("custom messages removed")
	}

	if len(args) < 2 {
		return fmt.Errorf("%w: messages %s <kind>, kinds: %v", errUsage, args[0], feedback.Kinds)
	}
	kind, err := feedback.ParseKind(args[1])
	if err != nil {
		return err
	}

	switch args[0] {
	case "list":
		msgs, err := app.Tracker.Messages(ctx, kind)
		if err != nil {
			return err
		}
		return out.messages(msgs)
	case "add":
		if len(args) < 3 {
			return fmt.Errorf("%w: messages add <kind> <message>", errUsage)
		}
		if err := app.Tracker.AddMessage(ctx, kind, args[2]); err != nil {
			return err
		}
		return out.line("message added to %s", kind)
	case "delete":
		if len(args) < 3 {
			return fmt.Errorf("%w: messages delete <kind> <index>", errUsage)
		}
		idx, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("%w: index %q", errUsage, args[2])
		}
		deleted, err := app.Tracker.DeleteMessage(ctx, kind, idx)
		if err != nil {
			return err
		}
		return out.line("deleted %q", deleted)
	default:
		return fmt.Errorf("%w: unknown messages action %q", errUsage, args[0])
	}
}

func runClearTracking(ctx context.Context, app *internal.App, out *printer, _ []string) error {
	if err := app.Tracker.ClearMessageTracking(ctx); err != nil {
		return err
	}
	return out.line("message tracking cleared")
}

func runBackup(ctx context.Context, app *internal.App, out *printer, args []string) error {
	fs := newFlagSet("backup")
	dest := fs.String("dest", fmt.Sprintf("gymlog-backup-%s.tar.gz", time.Now().Format("20060102-150405")), "archive path")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if err := app.Backup(ctx, *dest); err != nil {
		return err
	}
	return out.line("backup written to %s", *dest)
}
