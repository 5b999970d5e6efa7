package feedback

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownKind = errors.New("unknown message kind")

// Kind names one of the four message pools.
type Kind string

const (
	BodyWeightPositive Kind = "motivational"
	BodyWeightNegative Kind = "shame"
	StrengthPositive   Kind = "strength-motivational"
	StrengthNegative   Kind = "strength-shame"
)

var Kinds = []Kind{
	BodyWeightPositive,
	BodyWeightNegative,
	StrengthPositive,
	StrengthNegative,
}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := defaultMessages[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

func (k Kind) valid() bool {
	_, ok := defaultMessages[k]
	return ok
}

// Defaults returns a copy of the built-in messages of the pool.
func (k Kind) Defaults() []string {
	return append([]string(nil), defaultMessages[k]...)
}

func (k Kind) customKey() string {
	return "customMessages:" + string(k)
}

func (k Kind) usedIndicesKey() string {
	return "usedIndices:" + string(k)
}

var defaultMessages = map[Kind][]string{
	BodyWeightPositive: {
		"You're crushing it! Progress detected!",
		"Every Lb counts!",
		"Numbers don't lie!",
		"One step closer.",
		"Fueling the fire keep burning!",
		"Discipline on display!",
		"You're not just losing weight, you're gaining freedom!",
		"Survey says... Progress!",
	},
	BodyWeightNegative: {
		"Hi, Welcome to MCdonalds 🍔",
		"Pig alert! 🐷",
		"Congrats on the 'gainz'...",
		"The couch called it wants its potato back! 🍟",
		"Moving up in the world... The scale that is! 📈",
		"Pat your fridge on the back today! ❄️",
		"404 effort not found...",
		"I feel sorry for your toilet... 🚽",
		"You'd think you would learn your lesson by now...",
	},
	StrengthPositive: {
		"Yeah buddy! ",
		"Light weight baby!",
		"Whatever you are doing, keep doing it!",
		"Newbie gains! Welcome to the club!",
		"Next up TREN",
	},
	StrengthNegative: {
		"Step it up.",
		"Why bother if you disappoint yourself every time?",
		"Leg day tomorrow, quit your bitching.",
		"Reasses your life choices...",
		"Do me a favor and try harder.",
	},
}
