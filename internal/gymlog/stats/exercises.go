package stats

import (
	"slices"
	"time"

	"github.com/2beens/gymlog/internal/gymlog/dates"
	"github.com/2beens/gymlog/internal/gymlog/entries"
)

// ProgressPoint is a single logged set of an exercise, ready to be charted.
type ProgressPoint struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
	Volume float64 `json:"volume"`
	RPE    float64 `json:"rpe"`
}

type SeriesParams struct {
	Exercise string
	// From and To are inclusive; nil means unbounded
	From *time.Time
	To   *time.Time
}

// ExercisesWithHistory lists the distinct lifts present in the history, in order of first appearance.
func ExercisesWithHistory(history []entries.Entry) []string {
	seen := make(map[string]bool)
	var names []string
	for _, e := range history {
		if e.IsActivity() || seen[e.Exercise] {
			continue
		}
		seen[e.Exercise] = true
		names = append(names, e.Exercise)
	}
	return names
}

// ExerciseSeries returns the progress points of one exercise ordered by date.
// Entries saved for the same date keep their save order.
func ExerciseSeries(history []entries.Entry, params SeriesParams) []ProgressPoint {
	type dated struct {
		day   time.Time
		entry entries.Entry
	}

	var matching []dated
	for _, e := range history {
		if e.Exercise != params.Exercise {
			continue
		}
		day, err := dates.Parse(e.Date)
		if err != nil {
			continue
		}
		if params.From != nil && day.Before(dates.Midnight(*params.From)) {
			continue
		}
		if params.To != nil && day.After(dates.Midnight(*params.To)) {
			continue
		}
		matching = append(matching, dated{day: day, entry: e})
	}

	slices.SortStableFunc(matching, func(a, b dated) int {
		return a.day.Compare(b.day)
	})

	points := make([]ProgressPoint, 0, len(matching))
	for _, m := range matching {
		points = append(points, ProgressPoint{
			Date:   m.entry.Date,
			Weight: m.entry.Weight,
			Volume: m.entry.Volume(),
			RPE:    m.entry.RPE,
		})
	}
	return points
}
