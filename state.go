// Package gencheck implements the property algebra (Prop[T]), the phased
// Driver that turns a property and a predicate into a pass/minimized-
// counterexample decision, and the console reporter — spec.md §4.4, §4.5,
// §6.
//
// Grounded on db/proptest/runner.go's Config/DefaultConfig/getEffectiveSeed/
// Check/ForAll shape (see DESIGN.md), generalized from a fixed bool-
// returning property function into the full phase-aware Prop[T] algebra
// spec.md describes.
package gencheck

import (
	"sort"

	"github.com/shipq/gencheck/rng"
)

// Phase is the Driver's current mode of execution.
type Phase int

const (
	PhaseGenerate Phase = iota
	PhaseStartShrink
	PhaseShrink
)

func (p Phase) String() string {
	switch p {
	case PhaseGenerate:
		return "Generate"
	case PhaseStartShrink:
		return "StartShrink"
	case PhaseShrink:
		return "Shrink"
	default:
		return "Unknown"
	}
}

// Outcome is a property iteration's result, distinct from failure: failure
// is signaled out-of-band via a panic carrying *fail.PropertyFailedError.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeDiscard
)

func (o Outcome) String() string {
	if o == OutcomeDiscard {
		return "Discard"
	}
	return "Success"
}

// ClassCount is one OrderBy bucket's final tally, ordered by key for the
// console report.
type ClassCount struct {
	Key   string
	Count int
}

// TestState is the mutable envelope threaded through Prop[T] execution.
// Draws are recorded type-erased (spec.md §9's option (c): a dynamically
// typed value carrier whose concrete type is fixed by its ForAll call
// site) since a single chain of Prop combinators can draw values of many
// different T's into one shared state.
type TestState struct {
	Phase Phase
	PRNG  *rng.PRNG
	Seed  int64
	Size  rng.Size
	Label string

	SuccessCount int
	DiscardCount int

	Values          []any
	Cursor          int
	ShrinkSequences [][]any

	classes    map[string]int
	classOrder []string
}

func newTestState(seed int64, size rng.Size) *TestState {
	return &TestState{
		PRNG:    rng.NewPRNG(seed),
		Seed:    seed,
		Size:    size,
		classes: make(map[string]int),
	}
}

// reset clears the per-iteration recorded draws ahead of a fresh Generate
// pass. Counters, classes, and PRNG state are not touched: the PRNG must
// keep advancing across iterations, and counters/classes accumulate over
// the whole Check run.
func (s *TestState) reset() {
	s.Values = s.Values[:0]
	s.Cursor = 0
}

// classify bumps the named bucket, used by OrderBy. Buckets are recorded
// in first-seen order and reported sorted by key (spec.md §6: "entries
// ordered by key").
func (s *TestState) classify(key string) {
	if _, ok := s.classes[key]; !ok {
		s.classOrder = append(s.classOrder, key)
	}
	s.classes[key]++
}

// Classes returns a snapshot of the classification buckets, sorted by key.
func (s *TestState) Classes() []ClassCount {
	keys := append([]string{}, s.classOrder...)
	sort.Strings(keys)
	out := make([]ClassCount, len(keys))
	for i, k := range keys {
		out[i] = ClassCount{Key: k, Count: s.classes[k]}
	}
	return out
}
