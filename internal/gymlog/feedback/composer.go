package feedback

import (
	"context"
	"fmt"

	"github.com/2beens/gymlog/internal/gymlog/progress"

	log "github.com/sirupsen/logrus"
)

type Tone string

const (
	ToneSuccess Tone = "success"
	ToneShame   Tone = "shame"
	ToneWarning Tone = "warning"
)

type Feedback struct {
	Kind    Kind   `json:"kind"`
	Title   string `json:"title"`
	Emoji   string `json:"emoji"`
	Message string `json:"message"`
	Tone    Tone   `json:"tone"`
}

func (f Feedback) String() string {
	return fmt.Sprintf("%s %s\n%s", f.Emoji, f.Title, f.Message)
}

// Composer turns verdicts into displayable feedback.
type Composer struct {
	pools   *Pools
	rotator *Rotator
}

func NewComposer(pools *Pools, rotator *Rotator) *Composer {
	return &Composer{
		pools:   pools,
		rotator: rotator,
	}
}

// BodyWeight returns nil for a nil verdict. A persistence error of the rotation
// is returned alongside a usable feedback.
func (c *Composer) BodyWeight(ctx context.Context, verdict *progress.BodyWeightVerdict) (*Feedback, error) {
	if verdict == nil {
		return nil, nil
	}

	fb := &Feedback{
		Kind:  BodyWeightPositive,
		Title: "Great Work!",
		Emoji: "💪",
		Tone:  ToneSuccess,
	}
	if verdict.Polarity == progress.Negative {
		fb.Kind = BodyWeightNegative
		fb.Title = "Oof!"
		fb.Emoji = "🐷"
		fb.Tone = ToneShame
	}

	msg, err := c.pick(ctx, fb.Kind)
	fb.Message = msg + verdict.TrendAnnotation

	return fb, err
}

func (c *Composer) Strength(ctx context.Context, verdict *progress.StrengthVerdict) (*Feedback, error) {
	if verdict == nil {
		return nil, nil
	}

	fb := &Feedback{
		Kind:  StrengthPositive,
		Title: "Strength Update!",
		Emoji: "💪",
		Tone:  ToneSuccess,
	}
	if verdict.Trend == progress.Weaker {
		fb.Kind = StrengthNegative
		fb.Emoji = "😤"
		fb.Tone = ToneWarning
	}

	msg, err := c.pick(ctx, fb.Kind)
	fb.Message = fmt.Sprintf("%s\nVolume: %.0f vs Previous Best: %.0f", msg, verdict.CurrentVolume, verdict.PreviousBestVolume)

	return fb, err
}

func (c *Composer) pick(ctx context.Context, kind Kind) (string, error) {
	pool, err := c.pools.All(ctx, kind)
	if err != nil {
		// custom messages are optional, the defaults still work
		log.Warnf("using default %s messages only: %s", kind, err)
	}
	return c.rotator.Pick(ctx, kind, pool)
}
