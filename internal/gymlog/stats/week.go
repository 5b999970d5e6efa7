package stats

import (
	"math"
	"slices"
	"time"

	"github.com/2beens/gymlog/internal/gymlog/dates"
	"github.com/2beens/gymlog/internal/gymlog/entries"
)

// WeekStats summarizes the lifts of one week. Activities are not counted.
type WeekStats struct {
	TotalWorkouts   int     `json:"totalWorkouts"`
	TotalVolume     int64   `json:"totalVolume"`
	AvgRPE          float64 `json:"avgRpe"`
	UniqueExercises int     `json:"uniqueExercises"`
}

// WeekSummary is what the history view shows for one week.
type WeekSummary struct {
	Offset int       `json:"offset"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Label  string    `json:"label"`
	Stats  WeekStats `json:"stats"`
	// Entries of the week, most recently saved first
	Entries []entries.Entry `json:"entries"`
}

// WeekEntries returns the entries dated within [start, end], in save order.
// Entries with malformed dates are left out.
func WeekEntries(history []entries.Entry, start, end time.Time) []entries.Entry {
	week := make([]entries.Entry, 0)
	for _, e := range history {
		if dates.InRange(e.Date, start, end) {
			week = append(week, e)
		}
	}
	return week
}

func Calculate(weekEntries []entries.Entry) WeekStats {
	var (
		count     int
		volume    float64
		rpeSum    float64
		exercises = make(map[string]struct{})
	)
	for _, e := range weekEntries {
		if e.IsActivity() {
			continue
		}
		count++
		volume += e.Volume()
		rpeSum += e.RPE
		exercises[e.Exercise] = struct{}{}
	}

	if count == 0 {
		return WeekStats{}
	}

	return WeekStats{
		TotalWorkouts:   count,
		TotalVolume:     int64(math.Round(volume)),
		AvgRPE:          math.Round(rpeSum/float64(count)*10) / 10,
		UniqueExercises: len(exercises),
	}
}

// Summary builds the view of the week offset weeks away from the week containing now.
func Summary(history []entries.Entry, offset int, now time.Time) WeekSummary {
	start, end := dates.WeekBounds(offset, now)
	week := WeekEntries(history, start, end)

	newestFirst := slices.Clone(week)
	slices.Reverse(newestFirst)

	return WeekSummary{
		Offset:  offset,
		Start:   start,
		End:     end,
		Label:   dates.FormatRange(start, end),
		Stats:   Calculate(week),
		Entries: newestFirst,
	}
}
