package feedback

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/2beens/gymlog/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

var (
	ErrEmptyMessage    = errors.New("message is empty")
	ErrMessageNotFound = errors.New("custom message not found")
)

// Pools is the message source: the built-in messages of each pool followed by
// the user's custom ones. Custom messages are addressed by their index in the
// custom list, the rotation uses their index in the whole pool.
type Pools struct {
	mu      sync.Mutex
	kv      keyValueStore
	rotator *Rotator
}

func NewPools(kv keyValueStore, rotator *Rotator) *Pools {
	return &Pools{
		kv:      kv,
		rotator: rotator,
	}
}

// All returns the defaults followed by the custom messages. If the custom
// messages cannot be read the defaults are still returned, with the error.
func (p *Pools) All(ctx context.Context, kind Kind) ([]string, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	custom, err := p.Custom(ctx, kind)
	return append(kind.Defaults(), custom...), err
}

func (p *Pools) Custom(ctx context.Context, kind Kind) ([]string, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.custom(ctx, kind)
}

func (p *Pools) custom(ctx context.Context, kind Kind) ([]string, error) {
	raw, found, err := p.kv.Get(ctx, kind.customKey())
	if err != nil {
		return nil, fmt.Errorf("get custom messages %s: %w", kind, err)
	}
	if !found {
		return nil, nil
	}

	var messages []string
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		log.Warnf("ignoring corrupt custom messages of %s: %s", kind, err)
		return nil, nil
	}

	return messages, nil
}

func (p *Pools) AddCustom(ctx context.Context, kind Kind, message string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "feedback.pools.addCustom")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("pool", string(kind)))

	if !kind.valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return ErrEmptyMessage
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	custom, err := p.custom(ctx, kind)
	if err != nil {
		return err
	}

	if err := p.save(ctx, kind, append(custom, message)); err != nil {
		return err
	}

	log.Infof("added custom %s message: %s", kind, message)
	return nil
}

// DeleteCustom removes the custom message at customIndex and fixes the
// rotation state so already shown messages stay marked.
func (p *Pools) DeleteCustom(ctx context.Context, kind Kind, customIndex int) (deleted string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "feedback.pools.deleteCustom")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("pool", string(kind)),
		attribute.Int("index", customIndex),
	)

	if !kind.valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	custom, err := p.custom(ctx, kind)
	if err != nil {
		return "", err
	}
	if customIndex < 0 || customIndex >= len(custom) {
		return "", fmt.Errorf("%w: %s[%d]", ErrMessageNotFound, kind, customIndex)
	}

	deleted = custom[customIndex]
	if err := p.save(ctx, kind, slices.Delete(slices.Clone(custom), customIndex, customIndex+1)); err != nil {
		return "", err
	}

	poolIndex := len(defaultMessages[kind]) + customIndex
	if err := p.rotator.forget(ctx, kind, poolIndex); err != nil {
		if rbErr := p.save(ctx, kind, custom); rbErr != nil {
			log.Errorf("restore custom %s messages after failed rotation update: %s", kind, rbErr)
			return "", multierr.Append(err, rbErr)
		}
		log.Warnf("custom %s message delete rolled back: %s", kind, err)
		return "", err
	}

	log.Infof("deleted custom %s message: %s", kind, deleted)
	return deleted, nil
}

// ResetToDefaults drops every custom message and their rotation entries.
func (p *Pools) ResetToDefaults(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "feedback.pools.resetToDefaults")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, kind := range Kinds {
		if delErr := p.kv.Delete(ctx, kind.customKey()); delErr != nil {
			err = multierr.Append(err, fmt.Errorf("delete custom messages %s: %w", kind, delErr))
			continue
		}
		err = multierr.Append(err, p.rotator.dropFrom(ctx, kind, len(defaultMessages[kind])))
	}

	if err == nil {
		log.Infoln("reset messages to defaults")
	}

	return err
}

func (p *Pools) save(ctx context.Context, kind Kind, messages []string) error {
	if messages == nil {
		messages = []string{}
	}
	raw, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("marshal custom messages: %w", err)
	}
	if err := p.kv.Set(ctx, kind.customKey(), string(raw)); err != nil {
		return fmt.Errorf("save custom messages %s: %w", kind, err)
	}
	return nil
}
