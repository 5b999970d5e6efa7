package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/2beens/gymlog/internal/gymlog"
	"github.com/2beens/gymlog/internal/gymlog/entries"
	"github.com/2beens/gymlog/internal/gymlog/feedback"
	"github.com/2beens/gymlog/internal/gymlog/stats"
)

type printer struct {
	w    io.Writer
	json bool
}

func newPrinter(w io.Writer, jsonOut bool) *printer {
	return &printer{w: w, json: jsonOut}
}

// print writes v as JSON in json mode, otherwise calls text.
func (p *printer) print(v any, text func(w io.Writer)) error {
	if p.json {
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(p.w)
	return nil
}

func (p *printer) saveResult(res *gymlog.SaveResult) error {
	return p.print(res, func(w io.Writer) {
		fmt.Fprintf(w, "saved #%d: %s\n", res.Entry.ID, describeEntry(res.Entry))
		for _, fb := range []*feedback.Feedback{res.BodyWeight, res.Strength} {
			if fb != nil {
				fmt.Fprintf(w, "\n%s\n", fb)
			}
		}
	})
}

func (p *printer) entries(list []entries.Entry) error {
	return p.print(list, func(w io.Writer) {
		if len(list) == 0 {
			fmt.Fprintln(w, "no entries")
			return
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tDATE\tENTRY")
		for _, e := range list {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", e.ID, e.Date, describeEntry(e))
		}
		tw.Flush()
	})
}

func (p *printer) week(summary stats.WeekSummary) error {
	return p.print(summary, func(w io.Writer) {
		s := summary.Stats
		fmt.Fprintf(w, "%s\n", summary.Label)
		fmt.Fprintf(w, "workouts: %d  volume: %d  avg RPE: %.1f  exercises: %d\n\n",
			s.TotalWorkouts, s.TotalVolume, s.AvgRPE, s.UniqueExercises)
		if len(summary.Entries) == 0 {
			fmt.Fprintln(w, "no entries this week")
			return
		}
		for _, e := range summary.Entries {
			fmt.Fprintf(w, "  %s  %s\n", e.Date, describeEntry(e))
		}
	})
}

func (p *printer) series(exercise string, points []stats.ProgressPoint) error {
	return p.print(points, func(w io.Writer) {
		if len(points) == 0 {
			fmt.Fprintf(w, "no history for %s\n", exercise)
			return
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "DATE\tWEIGHT\tVOLUME\tRPE")
		for _, pt := range points {
			fmt.Fprintf(tw, "%s\t%.1f\t%.0f\t%.2f\n", pt.Date, pt.Weight, pt.Volume, pt.RPE)
		}
		tw.Flush()
	})
}

func (p *printer) messages(msgs gymlog.PoolMessages) error {
	return p.print(msgs, func(w io.Writer) {
		fmt.Fprintf(w, "%s defaults:\n", msgs.Kind)
		for _, m := range msgs.Defaults {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintf(w, "%s custom:\n", msgs.Kind)
		if len(msgs.Custom) == 0 {
			fmt.Fprintln(w, "  (none)")
		}
		for i, m := range msgs.Custom {
			fmt.Fprintf(w, "  %d. %s\n", i, m)
		}
	})
}

func (p *printer) line(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return p.print(map[string]string{"result": msg}, func(w io.Writer) {
		fmt.Fprintln(w, msg)
	})
}

func describeEntry(e entries.Entry) string {
	var b strings.Builder
	if e.IsActivity() {
		b.WriteString(e.Comments)
	} else {
		fmt.Fprintf(&b, "%s %.1f lbs %dx%d", e.Exercise, e.Weight, e.Sets, e.Reps)
		if e.RPE > 0 {
			fmt.Fprintf(&b, " @ RPE %.2f", e.RPE)
		}
		if e.Comments != "" {
			fmt.Fprintf(&b, " (%s)", e.Comments)
		}
	}
	if e.HasBodyWeight() {
		fmt.Fprintf(&b, " [bw %.1f]", *e.BodyWeight)
	}
	if e.Edited {
		b.WriteString(" *edited")
	}
	return b.String()
}
