package progress

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/2beens/gymlog/internal/gymlog/dates"
	"github.com/2beens/gymlog/internal/gymlog/entries"
)

type Polarity string

const (
	Positive Polarity = "positive"
	Negative Polarity = "negative"
)

type BodyWeightConfig struct {
	// WeeklyThreshold is the minimum week over week change (lbs) worth commenting on
	WeeklyThreshold float64 `toml:"weekly_threshold"`
	// TrendThreshold is the minimum average change per sample (lbs) that counts as a trend
	TrendThreshold float64 `toml:"trend_threshold"`
	// TrendPeriodDays is how far back samples are collected for the trend
	TrendPeriodDays int `toml:"trend_period_days"`
}

func DefaultBodyWeightConfig() BodyWeightConfig {
	return BodyWeightConfig{
		WeeklyThreshold: 0.5,
		TrendThreshold:  0.2,
		TrendPeriodDays: 21,
	}
}

type BodyWeightVerdict struct {
	Polarity       Polarity `json:"polarity"`
	Difference     float64  `json:"difference"`
	Trend          float64  `json:"trend"`
	LastWeekWeight float64  `json:"lastWeekWeight"`
	// TrendAnnotation is appended to the feedback message, it may be empty
	TrendAnnotation string `json:"trendAnnotation"`
}

type BodyWeightAnalyzer struct {
	cfg BodyWeightConfig
}

func NewBodyWeightAnalyzer(cfg BodyWeightConfig) *BodyWeightAnalyzer {
	return &BodyWeightAnalyzer{
		cfg: cfg,
	}
}

// Evaluate compares a new body weight sample logged on date against the
// latest sample of the previous calendar week and the trend of the preceding
// trend period. A nil verdict with a nil error means there is nothing to say:
// no sample last week, maintenance mode, or a change too small to matter.
func (a *BodyWeightAnalyzer) Evaluate(
	newWeight float64,
	date string,
	history []entries.Entry,
	goal GoalMode,
) (*BodyWeightVerdict, error) {
	if math.IsNaN(newWeight) || math.IsInf(newWeight, 0) || newWeight <= 0 {
		return nil, fmt.Errorf("%w: body weight %v", entries.ErrInvalidWeight, newWeight)
	}

	day, err := dates.Parse(date)
	if err != nil {
		return nil, err
	}

	lastWeekWeight, found := lastWeekBodyWeight(day, history)
	if !found {
		return nil, nil
	}

	difference := newWeight - lastWeekWeight
	trend := a.trend(day, history, difference)

	if goal == GoalMaintenance {
		return nil, nil
	}

	if math.Abs(difference) < a.cfg.WeeklyThreshold && math.Abs(trend) < a.cfg.TrendThreshold {
		return nil, nil
	}

	outcome := decide(goal, a.classifyDifference(difference), a.classifyTrend(trend))

	return &BodyWeightVerdict{
		Polarity:        outcome.polarity,
		Difference:      difference,
		Trend:           trend,
		LastWeekWeight:  lastWeekWeight,
		TrendAnnotation: outcome.annotation.format(trend),
	}, nil
}

// lastWeekBodyWeight finds the body weight sample with the latest date in the
// calendar week before the one containing day. Among samples on the same date,
// the one saved first wins.
func lastWeekBodyWeight(day time.Time, history []entries.Entry) (float64, bool) {
	start, end := dates.PreviousWeek(day)

	var (
		latest time.Time
		weight float64
		found  bool
	)
	for _, e := range history {
		if !e.HasBodyWeight() {
			continue
		}
		entryDay, err := dates.Parse(e.Date)
		if err != nil || entryDay.Before(start) || entryDay.After(end) {
			continue
		}
		if !found || entryDay.After(latest) {
			latest = entryDay
			weight = *e.BodyWeight
			found = true
		}
	}

	return weight, found
}

type bodyWeightSample struct {
	day    time.Time
	weight float64
}

// trend is the average change per sample over [day - period, day).
// With fewer than two samples the week over week difference is used instead.
func (a *BodyWeightAnalyzer) trend(day time.Time, history []entries.Entry, difference float64) float64 {
	from := day.AddDate(0, 0, -a.cfg.TrendPeriodDays)

	var samples []bodyWeightSample
	for _, e := range history {
		if !e.HasBodyWeight() {
			continue
		}
		entryDay, err := dates.Parse(e.Date)
		if err != nil || entryDay.Before(from) || !entryDay.Before(day) {
			continue
		}
		samples = append(samples, bodyWeightSample{day: entryDay, weight: *e.BodyWeight})
	}

	if len(samples) < 2 {
		return difference
	}

	// most recent first
	slices.SortStableFunc(samples, func(x, y bodyWeightSample) int {
		return y.day.Compare(x.day)
	})

	mostRecent := samples[0].weight
	oldest := samples[len(samples)-1].weight
	return (mostRecent - oldest) / float64(len(samples))
}

func (a *BodyWeightAnalyzer) classifyDifference(difference float64) differenceClass {
	switch {
	case difference > a.cfg.WeeklyThreshold:
		return differenceGain
	case difference > 0:
		return differenceUp
	default:
		return differenceDown
	}
}

func (a *BodyWeightAnalyzer) classifyTrend(trend float64) trendClass {
	if trend < -a.cfg.TrendThreshold {
		return trendFalling
	}
	return trendFlatOrRising
}
