package gymlog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/2beens/gymlog/internal/gymlog/dates"
	"github.com/2beens/gymlog/internal/gymlog/entries"
	"github.com/2beens/gymlog/internal/gymlog/feedback"
	"github.com/2beens/gymlog/internal/gymlog/progress"
	"github.com/2beens/gymlog/internal/gymlog/stats"
	"github.com/2beens/gymlog/internal/telemetry/metrics"
	"github.com/2beens/gymlog/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=tracker_mocks_test.go -package=gymlog_test

type historyCollection interface {
	All() []entries.Entry
	Len() int
	Get(id int64) (entries.Entry, bool)
	Append(ctx context.Context, entry entries.Entry) (entries.Entry, error)
	UpdateActivity(ctx context.Context, id int64, patch entries.ActivityPatch) (entries.Entry, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}

type goalStore interface {
	Goal(ctx context.Context) progress.GoalMode
	SetGoal(ctx context.Context, goal progress.GoalMode) error
}

type feedbackComposer interface {
	BodyWeight(ctx context.Context, verdict *progress.BodyWeightVerdict) (*feedback.Feedback, error)
	Strength(ctx context.Context, verdict *progress.StrengthVerdict) (*feedback.Feedback, error)
}

// SaveResult is what the caller shows after a save. Feedback is nil when
// there was nothing to say.
type SaveResult struct {
	Entry      entries.Entry      `json:"entry"`
	BodyWeight *feedback.Feedback `json:"bodyWeight,omitempty"`
	Strength   *feedback.Feedback `json:"strength,omitempty"`
}

type WorkoutInput struct {
	Exercise string
	Date     string
	Weight   float64
	Sets     int
	Reps     int
	RPE      float64
	// BodyWeight is optional
	BodyWeight *float64
	Comments   string
}

type ActivityInput struct {
	Comments   string
	Date       string
	BodyWeight *float64
}

// Tracker saves entries and turns them into progress feedback.
type Tracker struct {
	history        historyCollection
	goals          goalStore
	composer       feedbackComposer
	messages       messageSettings
	bodyWeight     *progress.BodyWeightAnalyzer
	strength       *progress.StrengthAnalyzer
	metricsManager *metrics.Manager
	now            func() time.Time
}

type NewTrackerParams struct {
	History          historyCollection
	Goals            goalStore
	Composer         feedbackComposer
	Messages         messageSettings
	BodyWeightConfig progress.BodyWeightConfig
	StrengthConfig   progress.StrengthConfig
	MetricsManager   *metrics.Manager
	// Now defaults to time.Now
	Now func() time.Time
}

func NewTracker(params NewTrackerParams) *Tracker {
	now := params.Now
	if now == nil {
		now = time.Now
	}

	t := &Tracker{
		history:        params.History,
		goals:          params.Goals,
		composer:       params.Composer,
		messages:       params.Messages,
		bodyWeight:     progress.NewBodyWeightAnalyzer(params.BodyWeightConfig),
		strength:       progress.NewStrengthAnalyzer(params.StrengthConfig),
		metricsManager: params.MetricsManager,
		now:            now,
	}
	t.metricsManager.GaugeHistoryEntries.Set(float64(params.History.Len()))

	return t
}

// SaveWorkout durably appends a lift, then checks body weight (if given)
// and strength progress. Failing checks never fail the save.
func (t *Tracker) SaveWorkout(ctx context.Context, in WorkoutInput) (_ *SaveResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "gymlog.tracker.saveWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercise := strings.TrimSpace(in.Exercise)
	if exercise == "" || exercise == entries.OtherActivity {
		return nil, entries.ErrNoExercise
	}
	if err := t.validateDate(in.Date); err != nil {
		return nil, err
	}
	if math.IsNaN(in.Weight) || math.IsInf(in.Weight, 0) || in.Weight < 0 {
		return nil, fmt.Errorf("%w: %v", entries.ErrInvalidWeight, in.Weight)
	}
	if err := entries.ValidateBodyWeight(in.BodyWeight); err != nil {
		return nil, err
	}

	entry, err := t.history.Append(ctx, entries.Entry{
		Exercise:   exercise,
		Date:       in.Date,
		Weight:     in.Weight,
		Sets:       entries.ClampSetsReps(in.Sets),
		Reps:       entries.ClampSetsReps(in.Reps),
		RPE:        entries.ClampRPE(in.RPE),
		BodyWeight: in.BodyWeight,
		Comments:   strings.TrimSpace(in.Comments),
	})
	if err != nil {
		t.metricsManager.CounterStorageWriteFailures.WithLabelValues("history").Inc()
		return nil, err
	}
	tracing.SetEntryAttributes(span, entry.ID, entry.Exercise, entry.Date)
	t.entrySaved("lift")

	log.Infof("saved %s: %.1f lbs %dx%d @ RPE %.2f on %s", entry.Exercise, entry.Weight, entry.Sets, entry.Reps, entry.RPE, entry.Date)

	result := &SaveResult{Entry: entry}
	history := t.history.All()
	if entry.HasBodyWeight() {
		result.BodyWeight = t.checkBodyWeight(ctx, entry, history)
	}
	// a strength gain is a win regardless of the body weight outcome
	result.Strength = t.checkStrength(ctx, entry, history)

	return result, nil
}

// SaveActivity logs a non-lift entry. Either a comment or a body weight is required.
func (t *Tracker) SaveActivity(ctx context.Context, in ActivityInput) (_ *SaveResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "gymlog.tracker.saveActivity")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	patch, err := t.activityPatch(in)
	if err != nil {
		return nil, err
	}

	entry, err := t.history.Append(ctx, entries.Entry{
		Exercise:   entries.OtherActivity,
		Date:       patch.Date,
		BodyWeight: patch.BodyWeight,
		Comments:   patch.Comments,
	})
	if err != nil {
		t.metricsManager.CounterStorageWriteFailures.WithLabelValues("history").Inc()
		return nil, err
	}
	tracing.SetEntryAttributes(span, entry.ID, entry.Exercise, entry.Date)
	t.entrySaved("activity")

	log.Infof("saved activity on %s: %s", entry.Date, entry.Comments)

	result := &SaveResult{Entry: entry}
	if entry.HasBodyWeight() {
		result.BodyWeight = t.checkBodyWeight(ctx, entry, t.history.All())
	}

	return result, nil
}

// EditActivity replaces an activity's comment, date and body weight.
// Edits never produce body weight feedback.
func (t *Tracker) EditActivity(ctx context.Context, id int64, in ActivityInput) (_ entries.Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "gymlog.tracker.editActivity")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	patch, err := t.activityPatch(in)
	if err != nil {
		return entries.Entry{}, err
	}

	updated, err := t.history.UpdateActivity(ctx, id, patch)
	if err != nil {
		if errors.Is(err, entries.ErrStorageWrite) {
			t.metricsManager.CounterStorageWriteFailures.WithLabelValues("history").Inc()
		}
		return entries.Entry{}, err
	}

	log.Infof("edited activity %d", id)
	return updated, nil
}

func (t *Tracker) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "gymlog.tracker.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := t.history.Delete(ctx, id); err != nil {
		if errors.Is(err, entries.ErrStorageWrite) {
			t.metricsManager.CounterStorageWriteFailures.WithLabelValues("history").Inc()
		}
		return err
	}

	t.metricsManager.CounterEntriesDeleted.Inc()
	t.metricsManager.GaugeHistoryEntries.Set(float64(t.history.Len()))
	log.Infof("deleted entry %d", id)

	return nil
}

func (t *Tracker) DeleteAll(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "gymlog.tracker.deleteAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	count := t.history.Len()
	if err := t.history.DeleteAll(ctx); err != nil {
		t.metricsManager.CounterStorageWriteFailures.WithLabelValues("history").Inc()
		return err
	}

	t.metricsManager.CounterEntriesDeleted.Add(float64(count))
	t.metricsManager.GaugeHistoryEntries.Set(0)

	return nil
}

func (t *Tracker) History() []entries.Entry {
	return t.history.All()
}

func (t *Tracker) Entry(id int64) (entries.Entry, bool) {
	return t.history.Get(id)
}

// Week summarizes the week offset weeks back from the current one.
func (t *Tracker) Week(offset int) (stats.WeekSummary, error) {
	if err := dates.ValidateWeekOffset(offset); err != nil {
		return stats.WeekSummary{}, err
	}
	return stats.Summary(t.history.All(), offset, t.now()), nil
}

func (t *Tracker) Exercises() []string {
	return stats.ExercisesWithHistory(t.history.All())
}

func (t *Tracker) ExerciseSeries(params stats.SeriesParams) []stats.ProgressPoint {
	return stats.ExerciseSeries(t.history.All(), params)
}

func (t *Tracker) Goal(ctx context.Context) progress.GoalMode {
	return t.goals.Goal(ctx)
}

func (t *Tracker) SetGoal(ctx context.Context, goal progress.GoalMode) error {
	return t.goals.SetGoal(ctx, goal)
}

func (t *Tracker) validateDate(date string) error {
	day, err := dates.Parse(date)
	if err != nil {
		return err
	}
	if dates.IsFuture(day, t.now()) {
		return fmt.Errorf("%w: %s", entries.ErrFutureDate, date)
	}
	return nil
}

func (t *Tracker) activityPatch(in ActivityInput) (entries.ActivityPatch, error) {
	comments := strings.TrimSpace(in.Comments)
	if comments == "" && in.BodyWeight == nil {
		return entries.ActivityPatch{}, entries.ErrEmptyActivity
	}
	if err := t.validateDate(in.Date); err != nil {
		return entries.ActivityPatch{}, err
	}
	if err := entries.ValidateBodyWeight(in.BodyWeight); err != nil {
		return entries.ActivityPatch{}, err
	}
	if comments == "" {
		comments = entries.DefaultActivityComment
	}

	return entries.ActivityPatch{
		Comments:   comments,
		Date:       in.Date,
		BodyWeight: in.BodyWeight,
	}, nil
}

func (t *Tracker) entrySaved(kind string) {
	t.metricsManager.CounterEntriesSaved.WithLabelValues(kind).Inc()
	t.metricsManager.GaugeHistoryEntries.Set(float64(t.history.Len()))
}

func (t *Tracker) checkBodyWeight(ctx context.Context, entry entries.Entry, history []entries.Entry) *feedback.Feedback {
	goal := t.goals.Goal(ctx)

	verdict, err := t.bodyWeight.Evaluate(*entry.BodyWeight, entry.Date, history, goal)
	if err != nil {
		log.Errorf("body weight check failed, continuing without feedback: %s", err)
		t.metricsManager.CounterAnalyzerErrors.WithLabelValues("body_weight").Inc()
		return nil
	}
	if verdict == nil {
		log.Debugf("no body weight verdict [goal: %s]", goal)
		t.metricsManager.CounterVerdicts.WithLabelValues("body_weight", "none").Inc()
		return nil
	}

	log.Debugf("body weight %s [goal: %s, diff: %.2f, trend: %.2f]", verdict.Polarity, goal, verdict.Difference, verdict.Trend)
	t.metricsManager.CounterVerdicts.WithLabelValues("body_weight", string(verdict.Polarity)).Inc()

	fb, err := t.composer.BodyWeight(ctx, verdict)
	if err != nil {
		// feedback is decorative, the message may just repeat sooner
		log.Warnf("body weight feedback: %s", err)
	}
	return fb
}

func (t *Tracker) checkStrength(ctx context.Context, entry entries.Entry, history []entries.Entry) *feedback.Feedback {
	verdict, err := t.strength.Evaluate(entry.Exercise, entry.Weight, entry.Sets, entry.Reps, entry.Date, history)
	if err != nil {
		log.Errorf("strength check failed, continuing without feedback: %s", err)
		t.metricsManager.CounterAnalyzerErrors.WithLabelValues("strength").Inc()
		return nil
	}
	if verdict == nil {
		t.metricsManager.CounterVerdicts.WithLabelValues("strength", "none").Inc()
		return nil
	}

	log.Infof("strength %s: %s, volume %.0f vs %.0f", verdict.Trend, entry.Exercise, verdict.CurrentVolume, verdict.PreviousBestVolume)
	t.metricsManager.CounterVerdicts.WithLabelValues("strength", string(verdict.Trend)).Inc()

	fb, err := t.composer.Strength(ctx, verdict)
	if err != nil {
		log.Warnf("strength feedback: %s", err)
	}
	return fb
}
