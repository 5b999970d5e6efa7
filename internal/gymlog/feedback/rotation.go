package feedback

import (
	"encoding/json"
	"fmt"
	"slices"
)

const FallbackMessage = "Keep going! 💪"

// Rand is satisfied by *math/rand.Rand.
type Rand interface {
	Intn(n int) int
}

// RotationState is the set of pool indices already shown in the current
// rotation. It is an immutable value, every mutation returns a new state.
type RotationState struct {
	// sorted, unique, non-negative
	used []int
}

func NewRotationState(indices ...int) RotationState {
	var used []int
	for _, i := range indices {
		if i >= 0 {
			used = append(used, i)
		}
	}
	slices.Sort(used)
	return RotationState{used: slices.Compact(used)}
}

func (s RotationState) Contains(i int) bool {
	_, found := slices.BinarySearch(s.used, i)
	return found
}

func (s RotationState) Add(i int) RotationState {
	if i < 0 {
		return s
	}
	pos, found := slices.BinarySearch(s.used, i)
	if found {
		return s
	}
	return RotationState{used: slices.Insert(slices.Clone(s.used), pos, i)}
}

func (s RotationState) Len() int {
	return len(s.used)
}

func (s RotationState) Indices() []int {
	return slices.Clone(s.used)
}

func (s RotationState) Without(i int) RotationState {
	pos, found := slices.BinarySearch(s.used, i)
	if !found {
		return s
	}
	return RotationState{used: slices.Delete(slices.Clone(s.used), pos, pos+1)}
}

// ShiftAfterDelete adjusts the state after the message at index i was removed
// from the pool: i is dropped and higher indices move down by one, so they
// keep pointing at the same messages.
func (s RotationState) ShiftAfterDelete(i int) RotationState {
	out := make([]int, 0, len(s.used))
	for _, u := range s.used {
		switch {
		case u < i:
			out = append(out, u)
		case u > i:
			out = append(out, u-1)
		}
	}
	return RotationState{used: out}
}

// Below keeps only indices lower than n.
func (s RotationState) Below(n int) RotationState {
	pos, _ := slices.BinarySearch(s.used, n)
	return RotationState{used: slices.Clone(s.used[:pos])}
}

func (s RotationState) MarshalJSON() ([]byte, error) {
	if s.used == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.used)
}

func (s *RotationState) UnmarshalJSON(data []byte) error {
	var indices []int
	if err := json.Unmarshal(data, &indices); err != nil {
		return err
	}
	if indices == nil {
		return fmt.Errorf("rotation state is not an array: %s", data)
	}
	for _, i := range indices {
		if i < 0 {
			return fmt.Errorf("negative index %d in rotation state", i)
		}
	}
	*s = NewRotationState(indices...)
	return nil
}

func ParseRotationState(raw string) (RotationState, error) {
	var s RotationState
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return RotationState{}, fmt.Errorf("parse rotation state: %w", err)
	}
	return s, nil
}

// Exhausted reports whether every index of a pool of poolSize messages was used,
// i.e. the next pick starts a new rotation.
func Exhausted(poolSize int, state RotationState) bool {
	return poolSize > 0 && len(unused(poolSize, state)) == 0
}

func unused(poolSize int, state RotationState) []int {
	var available []int
	for i := 0; i < poolSize; i++ {
		if !state.Contains(i) {
			available = append(available, i)
		}
	}
	return available
}

// Pick chooses a random message of the pool not shown in the current rotation
// and returns it with the state that marks it used. Once every message was
// shown the rotation starts over. An empty pool yields FallbackMessage and the
// unchanged state.
func Pick(pool []string, state RotationState, rnd Rand) (string, RotationState) {
	if len(pool) == 0 {
		return FallbackMessage, state
	}

	available := unused(len(pool), state)
	if len(available) == 0 {
		state = RotationState{}
		available = unused(len(pool), state)
	}

	index := available[rnd.Intn(len(available))]
	return pool[index], state.Add(index)
}
