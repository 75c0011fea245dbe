package gen

import (
	"github.com/shipq/gencheck/fail"
	"github.com/shipq/gencheck/rng"
)

// Choice selects uniformly from a finite, nonempty slice of values.
// Panics if values is empty.
func Choice[T any](values ...T) Gen[T] {
	if len(values) == 0 {
		panic("gen: Choice called with no values")
	}
	return func(p *rng.PRNG, _ rng.Size) T {
		return values[p.Intn(len(values))]
	}
}

// ChoiceEnum evaluates the enumeration function once (at Gen construction
// time, not once per draw) and chooses uniformly among the results —
// matching spec.md's "evaluate the enumeration once, then uniform
// selection" for generators built over a finite enumeration of candidates.
func ChoiceEnum[T any](enumerate func() []T) Gen[T] {
	return Choice(enumerate()...)
}

// OneOf chooses uniformly among generators, sampling the chosen one.
// Panics if gens is empty.
func OneOf[T any](gens ...Gen[T]) Gen[T] {
	if len(gens) == 0 {
		panic("gen: OneOf called with no generators")
	}
	return func(p *rng.PRNG, size rng.Size) T {
		return gens[p.Intn(len(gens))](p, size)
	}
}

// WeightedGen pairs a generator with its selection weight for Frequency.
type WeightedGen[T any] struct {
	Weight int
	Gen    Gen[T]
}

// Frequency chooses among generators with probability proportional to
// each entry's own weight. Weights must be positive; the running-sum
// table is computed once per draw from each entry's weight (the source
// this engine is modeled on has a known bug reading entry 0's weight on
// every iteration instead of each entry's own — spec.md flags this as an
// open question and prescribes the straightforward per-entry reading,
// which is what this implements). Panics with InvalidArgument if
// weightedGens is empty or any weight is non-positive.
func Frequency[T any](weightedGens []WeightedGen[T]) Gen[T] {
	if len(weightedGens) == 0 {
		panic(fail.InvalidArgument("Frequency requires at least one weighted generator"))
	}
	total := 0
	for _, wg := range weightedGens {
		if wg.Weight <= 0 {
			panic(fail.InvalidArgumentf("Frequency weights must be positive, got %d", wg.Weight))
		}
		total += wg.Weight
	}
	return func(p *rng.PRNG, size rng.Size) T {
		draw := p.Intn(total) + 1 // uniform in [1, total]
		sum := 0
		for _, wg := range weightedGens {
			sum += wg.Weight
			if draw <= sum {
				return wg.Gen(p, size)
			}
		}
		// Unreachable given draw <= total, but keeps the compiler happy
		// and protects against floating-point-free integer math drift.
		return weightedGens[len(weightedGens)-1].Gen(p, size)
	}
}
