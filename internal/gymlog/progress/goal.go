package progress

import (
	"context"
	"fmt"
	"strings"

	"github.com/2beens/gymlog/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type GoalMode string

const (
	GoalCutting     GoalMode = "cutting"
	GoalBulking     GoalMode = "bulking"
	GoalMaintenance GoalMode = "maintenance"

	DefaultGoal = GoalCutting

	goalKey = "weightGoal"
)

var GoalModes = []GoalMode{GoalCutting, GoalBulking, GoalMaintenance}

func ParseGoalMode(s string) (GoalMode, error) {
	switch GoalMode(strings.ToLower(strings.TrimSpace(s))) {
	case GoalCutting:
		return GoalCutting, nil
	case GoalBulking:
		return GoalBulking, nil
	case GoalMaintenance:
		return GoalMaintenance, nil
	default:
		return "", fmt.Errorf("unknown goal mode: %q", s)
	}
}

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=progress_test

type keyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// GoalStore persists the selected goal mode.
type GoalStore struct {
	kv keyValueStore
}

func NewGoalStore(kv keyValueStore) *GoalStore {
	return &GoalStore{
		kv: kv,
	}
}

// Goal returns the stored goal, falling back to cutting when it is unset,
// unknown, or cannot be read.
func (s *GoalStore) Goal(ctx context.Context) GoalMode {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.goal.get")
	defer span.End()

	value, found, err := s.kv.Get(ctx, goalKey)
	if err != nil {
		log.Errorf("read goal mode: %s", err)
		return DefaultGoal
	}
	if !found {
		return DefaultGoal
	}

	goal, err := ParseGoalMode(value)
	if err != nil {
		log.Warnf("stored goal mode ignored: %s", err)
		return DefaultGoal
	}

	span.SetAttributes(attribute.String("goal", string(goal)))
	return goal
}

func (s *GoalStore) SetGoal(ctx context.Context, goal GoalMode) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.goal.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("goal", string(goal)))

	if _, err := ParseGoalMode(string(goal)); err != nil {
		return err
	}
	if err := s.kv.Set(ctx, goalKey, string(goal)); err != nil {
		return fmt.Errorf("save goal mode: %w", err)
	}

	log.Infof("goal mode set to %s", goal)
	return nil
}
