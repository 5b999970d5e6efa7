package gymlog

import (
	"context"
	"fmt"

	"github.com/2beens/gymlog/internal/gymlog/feedback"
)

//go:generate mockgen -source=$GOFILE -destination=messages_mocks_test.go -package=gymlog_test

type messageSettings interface {
	Custom(ctx context.Context, kind feedback.Kind) ([]string, error)
	AddCustom(ctx context.Context, kind feedback.Kind, message string) error
	DeleteCustom(ctx context.Context, kind feedback.Kind, customIndex int) (string, error)
	ResetToDefaults(ctx context.Context) error
	ClearTracking(ctx context.Context) error
}

// MessageSettings joins the message pools with the rotation so both can be
// managed from one place.
type MessageSettings struct {
	*feedback.Pools
	rotator *feedback.Rotator
}

func NewMessageSettings(pools *feedback.Pools, rotator *feedback.Rotator) *MessageSettings {
	return &MessageSettings{
		Pools:   pools,
		rotator: rotator,
	}
}

func (s *MessageSettings) ClearTracking(ctx context.Context) error {
	return s.rotator.ClearTracking(ctx)
}

type PoolMessages struct {
	Kind     feedback.Kind `json:"kind"`
	Defaults []string      `json:"defaults"`
	Custom   []string      `json:"custom"`
}

func (t *Tracker) Messages(ctx context.Context, kind feedback.Kind) (PoolMessages, error) {
	custom, err := t.messages.Custom(ctx, kind)
	if err != nil {
		return PoolMessages{}, fmt.Errorf("list %s messages: %w", kind, err)
	}
	return PoolMessages{
		Kind:     kind,
		Defaults: kind.Defaults(),
		Custom:   custom,
	}, nil
}

func (t *Tracker) AddMessage(ctx context.Context, kind feedback.Kind, message string) error {
	return t.messages.AddCustom(ctx, kind, message)
}

func (t *Tracker) DeleteMessage(ctx context.Context, kind feedback.Kind, customIndex int) (string, error) {
	return t.messages.DeleteCustom(ctx, kind, customIndex)
}

func (t *Tracker) ResetMessages(ctx context.Context) error {
	return t.messages.ResetToDefaults(ctx)
}

// ClearMessageTracking lets every message show up again.
func (t *Tracker) ClearMessageTracking(ctx context.Context) error {
	return t.messages.ClearTracking(ctx)
}
