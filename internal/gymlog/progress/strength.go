package progress

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/2beens/gymlog/internal/gymlog/dates"
	"github.com/2beens/gymlog/internal/gymlog/entries"
)

type StrengthTrend string

const (
	Stronger StrengthTrend = "stronger"
	Weaker   StrengthTrend = "weaker"
)

type StrengthConfig struct {
	LookbackDays int `toml:"lookback_days"`
	MaxSessions  int `toml:"max_sessions"`
	// MinSessions is checked against the candidate count after it was capped to MaxSessions
	MinSessions int `toml:"min_sessions"`
}

func DefaultStrengthConfig() StrengthConfig {
	return StrengthConfig{
		LookbackDays: 14,
		MaxSessions:  3,
		MinSessions:  1,
	}
}

type StrengthVerdict struct {
	Trend              StrengthTrend `json:"trend"`
	CurrentVolume      float64       `json:"currentVolume"`
	PreviousBestVolume float64       `json:"previousBestVolume"`
	// PreviousBest is the most recent of the compared sessions holding the best volume
	PreviousBest entries.Entry `json:"previousBest"`
}

type StrengthAnalyzer struct {
	cfg StrengthConfig
}

func NewStrengthAnalyzer(cfg StrengthConfig) *StrengthAnalyzer {
	return &StrengthAnalyzer{
		cfg: cfg,
	}
}

// Evaluate compares the volume of a new lift with the best volume among the
// most recent sessions of the same exercise in the lookback window before date.
// Ties count as weaker. A nil verdict with a nil error means no comparison is possible.
func (a *StrengthAnalyzer) Evaluate(
	exercise string,
	weight float64,
	sets, reps int,
	date string,
	history []entries.Entry,
) (*StrengthVerdict, error) {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return nil, fmt.Errorf("%w: %v", entries.ErrInvalidWeight, weight)
	}
	if exercise == "" || exercise == entries.OtherActivity {
		return nil, nil
	}
	if weight <= 0 || sets <= 0 || reps <= 0 {
		return nil, nil
	}

	day, err := dates.Parse(date)
	if err != nil {
		return nil, err
	}

	candidates := a.recentSessions(exercise, day, history)
	if len(candidates) < a.cfg.MinSessions || len(candidates) == 0 {
		return nil, nil
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Volume() > best.Volume() {
			best = c
		}
	}

	currentVolume := weight * float64(sets) * float64(reps)
	trend := Weaker
	if currentVolume > best.Volume() {
		trend = Stronger
	}

	return &StrengthVerdict{
		Trend:              trend,
		CurrentVolume:      currentVolume,
		PreviousBestVolume: best.Volume(),
		PreviousBest:       best,
	}, nil
}

// recentSessions returns the valid sessions of exercise dated in
// [day - lookback, day), most recent first, capped to MaxSessions.
func (a *StrengthAnalyzer) recentSessions(exercise string, day time.Time, history []entries.Entry) []entries.Entry {
	from := day.AddDate(0, 0, -a.cfg.LookbackDays)

	type session struct {
		day   time.Time
		entry entries.Entry
	}
	var sessions []session
	for _, e := range history {
		if e.Exercise != exercise || e.Weight <= 0 || e.Sets <= 0 || e.Reps <= 0 {
			continue
		}
		entryDay, err := dates.Parse(e.Date)
		if err != nil || entryDay.Before(from) || !entryDay.Before(day) {
			continue
		}
		sessions = append(sessions, session{day: entryDay, entry: e})
	}

	slices.SortStableFunc(sessions, func(x, y session) int {
		return y.day.Compare(x.day)
	})

	if len(sessions) > a.cfg.MaxSessions {
		sessions = sessions[:a.cfg.MaxSessions]
	}

	out := make([]entries.Entry, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, s.entry)
	}
	return out
}
