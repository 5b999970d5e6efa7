package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/2beens/gymlog/internal/telemetry/metrics"
	"github.com/2beens/gymlog/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=feedback_test

type keyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type rotation struct {
	mu    sync.Mutex
	state RotationState
}

// Rotator keeps the rotation state of every pool and persists it after each change.
type Rotator struct {
	kv             keyValueStore
	metricsManager *metrics.Manager

	rndMu sync.Mutex
	rnd   Rand

	// fixed set of keys, only the values are mutated (under their own lock)
	rotations map[Kind]*rotation
}

func NewRotator(kv keyValueStore, rnd Rand, metricsManager *metrics.Manager) *Rotator {
	rotations := make(map[Kind]*rotation, len(Kinds))
	for _, k := range Kinds {
		rotations[k] = &rotation{}
	}
	return &Rotator{
		kv:             kv,
		metricsManager: metricsManager,
		rnd:            rnd,
		rotations:      rotations,
	}
}

// Load reads the persisted rotation states. Corrupt values are discarded and the
// pool starts a fresh rotation. Read errors are returned combined, the affected
// pools also start fresh.
func (r *Rotator) Load(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "feedback.rotator.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	for _, kind := range Kinds {
		state, loadErr := r.loadState(ctx, kind)
		if loadErr != nil {
			err = multierr.Append(err, loadErr)
		}

		rot := r.rotations[kind]
		rot.mu.Lock()
		rot.state = state
		rot.mu.Unlock()
	}

	return err
}

func (r *Rotator) loadState(ctx context.Context, kind Kind) (RotationState, error) {
	raw, found, err := r.kv.Get(ctx, kind.usedIndicesKey())
	if err != nil {
		return RotationState{}, fmt.Errorf("get used indices %s: %w", kind, err)
	}
	if !found {
		return RotationState{}, nil
	}

	state, err := ParseRotationState(raw)
	if err != nil {
		log.Warnf("discarding corrupt rotation state of %s: %s", kind, err)
		return RotationState{}, nil
	}

	return state, nil
}

func (r *Rotator) State(kind Kind) (RotationState, error) {
	rot, err := r.rotation(kind)
	if err != nil {
		return RotationState{}, err
	}
	rot.mu.Lock()
	defer rot.mu.Unlock()
	return rot.state, nil
}

// Pick returns a message of pool not shown in the current rotation of kind.
// If the new state cannot be persisted the in-memory state is rolled back, the
// message is still returned together with the error.
func (r *Rotator) Pick(ctx context.Context, kind Kind, pool []string) (msg string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "feedback.rotator.pick")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("pool", string(kind)),
		attribute.Int("pool.size", len(pool)),
	)

	rot, err := r.rotation(kind)
	if err != nil {
		return FallbackMessage, err
	}

	rot.mu.Lock()
	defer rot.mu.Unlock()

	if len(pool) == 0 {
		log.Errorf("message pool %s is empty, using fallback message", kind)
		return FallbackMessage, nil
	}

	if Exhausted(len(pool), rot.state) {
		log.Debugf("all %d messages of %s used, starting over", len(pool), kind)
		r.metricsManager.CounterRotationResets.WithLabelValues(string(kind)).Inc()
	}

	r.rndMu.Lock()
	msg, next := Pick(pool, rot.state, r.rnd)
	r.rndMu.Unlock()

	r.metricsManager.CounterMessagePicks.WithLabelValues(string(kind)).Inc()

	if err := r.persist(ctx, kind, next); err != nil {
		// message will just repeat sooner
		return msg, err
	}
	rot.state = next

	log.Debugf("picked message from %s, %d/%d used", kind, next.Len(), len(pool))

	return msg, nil
}

// ClearTracking starts a fresh rotation for every pool. The in-memory state is
// cleared even when writing it fails.
func (r *Rotator) ClearTracking(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "feedback.rotator.clearTracking")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	for _, kind := range Kinds {
		rot := r.rotations[kind]
		rot.mu.Lock()
		rot.state = RotationState{}
		err = multierr.Append(err, r.persist(ctx, kind, RotationState{}))
		rot.mu.Unlock()
	}

	return err
}

// forget is called after the message at pool index i was deleted.
func (r *Rotator) forget(ctx context.Context, kind Kind, i int) error {
	return r.update(ctx, kind, func(s RotationState) RotationState {
		return s.ShiftAfterDelete(i)
	})
}

// dropFrom removes every used index >= n, used when custom messages are dropped.
func (r *Rotator) dropFrom(ctx context.Context, kind Kind, n int) error {
	return r.update(ctx, kind, func(s RotationState) RotationState {
		return s.Below(n)
	})
}

func (r *Rotator) update(ctx context.Context, kind Kind, fn func(RotationState) RotationState) error {
	rot, err := r.rotation(kind)
	if err != nil {
		return err
	}

	rot.mu.Lock()
	defer rot.mu.Unlock()

	next := fn(rot.state)
	if err := r.persist(ctx, kind, next); err != nil {
		return err
	}
	rot.state = next

	return nil
}

func (r *Rotator) persist(ctx context.Context, kind Kind, state RotationState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal rotation state: %w", err)
	}
	if err := r.kv.Set(ctx, kind.usedIndicesKey(), string(raw)); err != nil {
		r.metricsManager.CounterStorageWriteFailures.WithLabelValues("kv").Inc()
		return fmt.Errorf("persist rotation state %s: %w", kind, err)
	}
	return nil
}

func (r *Rotator) rotation(kind Kind) (*rotation, error) {
	rot, ok := r.rotations[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return rot, nil
}
