package gencheck

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/shipq/gencheck/fail"
	"github.com/shipq/gencheck/telemetry"
)

// runOnce evaluates p once against s, recovering a PropertyFailed panic
// into the returned propFailed value instead of letting it escape.
//
// suppressAll controls what happens to any OTHER panic (a taxonomy error
// like GeneratorExhausted, or an arbitrary user-code panic): false lets it
// propagate (Generate-phase and the final replay must not hide misuse
// errors — spec.md §7 band 3); true swallows it and reports the
// iteration as non-failing, matching spec.md §4.5's "any other exception
// raised during Shrink is suppressed, the candidate is simply skipped".
func runOnce[T any](s *TestState, p Prop[T], suppressAll bool) (outcome Outcome, value T, propFailed *fail.PropertyFailedError) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if pf, ok := r.(*fail.PropertyFailedError); ok {
			propFailed = pf
			value = pf.Value.(T)
			return
		}
		if suppressAll {
			return
		}
		panic(r)
	}()
	outcome, value = p(s)
	return
}

// tupleKey hashes a candidate tuple's textual form with xxhash, grounded
// on moby-moby's vendored pgregory.net/rapid shrinker's string-keyed
// dedup cache (SPEC_FULL.md §4.2) — skips candidates the coordinate-descent
// loop has already tried, whether or not they improved on the running
// best.
func tupleKey(tuple []any) uint64 {
	return xxhash.Sum64String(fmt.Sprint(tuple))
}

// Drive runs prop through the full Generate → StartShrink → Shrink phase
// machine (spec.md §4.5) against the predicate condition, and returns a
// Report describing the outcome. It never panics on a property failure —
// that is the whole point of a Driver — but it does panic on `fail`-
// taxonomy misuse (GeneratorExhausted, a bad Frequency table, ...), same
// as the property algebra it drives.
func Drive[T any](label string, cfg Config, prop Prop[T], condition func(T) bool) *Report[T] {
	cfg = effectiveConfig(cfg)
	seed := getEffectiveSeed(cfg)
	checked := FailIf(prop, condition)

	s := newTestState(seed, cfg.InitialSize)
	s.Label = label

	runID := telemetry.NewRunID()
	logPhase := func(phase Phase, extra ...any) {
		if cfg.Logger == nil {
			return
		}
		args := append([]any{"run_id", runID, "label", label, "phase", phase.String()}, extra...)
		cfg.Logger.Debug("gencheck phase", args...)
	}

	rep := &Report[T]{Label: label, Seed: seed}

	var failingTrial *fail.PropertyFailedError
	for i := 0; i < cfg.NumTrials; i++ {
		s.Phase = PhaseGenerate
		s.reset()
		logPhase(PhaseGenerate, "trial", i+1)
		outcome, _, propFailed := runOnce(s, checked, false)
		if propFailed != nil {
			failingTrial = propFailed
			rep.TrialsAtFailure = i + 1
			break
		}
		if outcome == OutcomeDiscard {
			s.DiscardCount++
		} else {
			s.SuccessCount++
		}
	}

	rep.SuccessCount = s.SuccessCount
	rep.DiscardCount = s.DiscardCount
	rep.Classes = s.Classes()

	if failingTrial == nil {
		rep.ConsoleText = renderSuccess(rep)
		return rep
	}

	rep.Failed = true
	minimized, improvements := shrinkToMinimal(s, checked, logPhase)
	rep.ShrinkImprovements = improvements

	s.Phase = PhaseShrink
	s.Values = minimized
	s.Cursor = 0
	logPhase(PhaseShrink, "stage", "final-replay")
	_, finalVal, propFailed := runOnce(s, checked, false)
	if propFailed == nil {
		panic(fail.NondeterministicProperty(fmt.Sprintf(
			"replay of minimized input for %q did not reproduce the failure", label)))
	}

	rep.MinimizedValue = finalVal
	rep.ConsoleText = renderFailure(rep)
	return rep
}

// shrinkToMinimal runs the StartShrink pass to collect shrink sequences,
// then performs the coordinate-descent search of spec.md §4.5 over them,
// returning the best (simplest known still-failing) tuple found along with
// the number of times the search adopted a strictly simpler candidate.
func shrinkToMinimal[T any](s *TestState, checked Prop[T], logPhase func(Phase, ...any)) (best []any, improvements int) {
	s.Phase = PhaseStartShrink
	s.ShrinkSequences = nil
	s.Cursor = 0
	logPhase(PhaseStartShrink)
	runOnce(s, checked, false) // repopulates ShrinkSequences; expected to fail again, same input

	n := len(s.ShrinkSequences)
	best = append([]any{}, s.Values...)
	if n == 0 {
		return best, 0
	}

	tried := make(map[uint64]bool)
	tried[tupleKey(best)] = true

	tryTuple := func(tuple []any) bool {
		key := tupleKey(tuple)
		if tried[key] {
			return false
		}
		tried[key] = true
		s.Phase = PhaseShrink
		s.Values = tuple
		s.Cursor = 0
		_, _, propFailed := runOnce(s, checked, true)
		return propFailed != nil
	}

	// Step 1-2: try every position's simplest candidate simultaneously —
	// the common-case fast path when variables shrink independently.
	allSimplest := make([]any, n)
	for i, seq := range s.ShrinkSequences {
		allSimplest[i] = seq[0]
	}
	if tryTuple(allSimplest) {
		best = allSimplest
		improvements++
		logPhase(PhaseShrink, "stage", "combined-simplest", "improvement", improvements)
	}

	// Step 3: coordinate descent, one position at a time, walking its
	// shrink sequence simplest-first and adopting the first candidate that
	// still falsifies — since the sequence is guaranteed simplest-to-
	// closer-to-original, this is the simplest reachable value for this
	// position given every other position held at its current best, and
	// stopping there (rather than continuing to scan strictly-less-simple
	// entries that happen to still fail) is what keeps the search
	// monotonically simplifying. Reaching the position's current best value
	// also stops the walk: nothing simpler before it still falsifies.
	for i := 0; i < n; i++ {
		bestKey := tupleKey(best)
		for _, cand := range s.ShrinkSequences[i] {
			trial := append([]any{}, best...)
			trial[i] = cand
			if tupleKey(trial) == bestKey {
				break
			}
			if tryTuple(trial) {
				best = trial
				improvements++
				logPhase(PhaseShrink, "stage", "coordinate", "position", i, "improvement", improvements)
				break
			}
		}
	}

	return best, improvements
}
