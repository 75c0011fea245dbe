package gencheck

import (
	"fmt"

	"github.com/shipq/gencheck/arbitrary"
	"github.com/shipq/gencheck/fail"
	"github.com/shipq/gencheck/gen"
	"github.com/shipq/gencheck/rng"
)

// Prop is a function from TestState to an (Outcome, value) pair —
// spec.md §4.4. Failure is signaled out-of-band by panicking with
// *fail.PropertyFailedError; the Driver is the only caller expected to
// recover it.
type Prop[T any] func(s *TestState) (Outcome, T)

// Pure always succeeds with v, ignoring state.
func Pure[T any](v T) Prop[T] {
	return func(*TestState) (Outcome, T) { return OutcomeSuccess, v }
}

// Failed raises PropertyFailed carrying v.
func Failed[T any](v T) Prop[T] {
	return func(s *TestState) (Outcome, T) {
		panic(fail.PropertyFailed(s.Label, v))
	}
}

// Discarded succeeds with outcome Discard, carrying v.
func Discarded[T any](v T) Prop[T] {
	return func(*TestState) (Outcome, T) { return OutcomeDiscard, v }
}

// ForAllWith draws from an explicit Arbitrary — the phase-dispatching core
// of universal quantification (spec.md §4.4):
//
//   - Generate: draw a fresh value, append it to state.Values.
//   - StartShrink: reuse the cursor-th recorded value, compute its shrink
//     sequence (with the original value appended as the final fallback),
//     append it to state.ShrinkSequences.
//   - Shrink: fetch the cursor-th value (the Driver has already replaced
//     state.Values with the candidate tuple under test).
//
// Cursor advances in every phase except Generate, where there is nothing
// yet to advance past.
func ForAllWith[T any](arb arbitrary.Arbitrary[T]) Prop[T] {
	return func(s *TestState) (Outcome, T) {
		switch s.Phase {
		case PhaseGenerate:
			v := arb.Gen(s.PRNG, s.Size)
			s.Values = append(s.Values, v)
			return OutcomeSuccess, v
		case PhaseStartShrink:
			v := s.Values[s.Cursor].(T)
			candidates := arb.Shrink(v)
			seq := make([]any, len(candidates)+1)
			for i, c := range candidates {
				seq[i] = c
			}
			seq[len(candidates)] = v
			s.ShrinkSequences = append(s.ShrinkSequences, seq)
			s.Cursor++
			return OutcomeSuccess, v
		default: // PhaseShrink
			v := s.Values[s.Cursor].(T)
			s.Cursor++
			return OutcomeSuccess, v
		}
	}
}

// ForAll draws T from the registry's Arbitrary, looking it up once at
// composition time. Panics (with *fail.Error of kind NotRegistered) if T
// has no registered or factory-resolvable Arbitrary.
func ForAll[T any](r *arbitrary.Registry) Prop[T] {
	arb, err := arbitrary.Get[T](r)
	if err != nil {
		panic(err)
	}
	return ForAllWith(arb)
}

// Any draws from g and, like ForAllWith, records the value at the
// cursor's position so replays during shrinking see the same draw —
// spec.md §4.4's dependent sampling, for picks that depend on a value
// drawn earlier in the same chain (e.g. an index inside a just-drawn
// collection). Unlike ForAllWith its shrink sequence holds only the drawn
// value itself (keeping ShrinkSequences aligned with Values): Any is not
// itself a shrink target, so it is held fixed at whatever value Generate
// drew while the Driver shrinks the positions that are.
func Any[T any](g gen.Gen[T]) Prop[T] {
	return func(s *TestState) (Outcome, T) {
		if s.Phase == PhaseGenerate {
			v := g(s.PRNG, s.Size)
			s.Values = append(s.Values, v)
			return OutcomeSuccess, v
		}
		v := s.Values[s.Cursor].(T)
		if s.Phase == PhaseStartShrink {
			s.ShrinkSequences = append(s.ShrinkSequences, []any{v})
		}
		s.Cursor++
		return OutcomeSuccess, v
	}
}

// Bind runs p; on Success it continues with k(value) against the same
// state; on Discard it short-circuits with Discard and U's zero value.
func Bind[T, U any](p Prop[T], k func(T) Prop[U]) Prop[U] {
	return func(s *TestState) (Outcome, U) {
		outcome, v := p(s)
		if outcome == OutcomeDiscard {
			var zero U
			return OutcomeDiscard, zero
		}
		return k(v)(s)
	}
}

// MapProp is Bind(p, v => Pure(f(v))).
func MapProp[T, U any](p Prop[T], f func(T) U) Prop[U] {
	return Bind(p, func(v T) Prop[U] { return Pure(f(v)) })
}

// Product is Bind(p, a => Bind(q, b => Pure(f(a,b)))).
func Product[A, B, T any](p Prop[A], q Prop[B], f func(A, B) T) Prop[T] {
	return Bind(p, func(a A) Prop[T] {
		return Bind(q, func(b B) Prop[T] { return Pure(f(a, b)) })
	})
}

// Where binds p; if pred holds it continues as Pure(v), else as
// Discarded(v).
func Where[T any](p Prop[T], pred func(T) bool) Prop[T] {
	return func(s *TestState) (Outcome, T) {
		outcome, v := p(s)
		if outcome == OutcomeDiscard {
			return OutcomeDiscard, v
		}
		if pred(v) {
			return OutcomeSuccess, v
		}
		return OutcomeDiscard, v
	}
}

// FailIf binds p; if pred holds it continues as Pure(v), else it raises
// PropertyFailed(v). Check builds its property expression with FailIf.
func FailIf[T any](p Prop[T], pred func(T) bool) Prop[T] {
	return func(s *TestState) (Outcome, T) {
		outcome, v := p(s)
		if outcome == OutcomeDiscard {
			return OutcomeDiscard, v
		}
		if pred(v) {
			return OutcomeSuccess, v
		}
		panic(fail.PropertyFailed(s.Label, v))
	}
}

// Restrict temporarily sets state.Size for the duration of p, restoring
// the previous size on exit — success, discard, or panic alike.
func Restrict[T any](p Prop[T], size rng.Size) Prop[T] {
	return func(s *TestState) (Outcome, T) {
		old := s.Size
		s.Size = size
		defer func() { s.Size = old }()
		return p(s)
	}
}

// OrderBy runs p, stringifies classify(value), and bumps the matching
// bucket in state's classification table. Outcome and value pass through
// unchanged.
func OrderBy[T, K any](p Prop[T], classify func(T) K) Prop[T] {
	return func(s *TestState) (Outcome, T) {
		outcome, v := p(s)
		s.classify(fmt.Sprint(classify(v)))
		return outcome, v
	}
}
