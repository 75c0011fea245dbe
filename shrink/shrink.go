// Package shrink implements the Shrinker type and the built-in shrinkers
// for primitives and collections described in spec.md §4.3.
//
// Sequences for the fixed-width integer shrinkers are pinned to match
// leanovate/gopter's own (gen.Int64Shrinker, gen.Int32Shrinker, ...),
// retrieved alongside this pack as fnproject-fn's and cockroachdb's
// vendored test suites — the clearest available oracle for "halve toward
// zero, emit positive and negative candidates, dedup" collection
// shrinking in Go.
package shrink

// Shrinker produces a finite, simpler-first sequence of candidates from a
// value. It must never emit v itself — the caller (the Driver) appends the
// original value as the final fallback candidate.
type Shrinker[T any] func(v T) []T

// Map derives a Shrinker[U] from a Shrinker[T] via an isomorphism-ish pair
// of conversions. Used to build string's shrinker from []rune's without
// duplicating the collection-shrink algorithm (spec.md §4.3: "Shrunk as an
// IEnumerable of characters ... then repacked").
func Map[T, U any](s Shrinker[T], into func(T) U, outOf func(U) T) Shrinker[U] {
	return func(v U) []U {
		candidates := s(outOf(v))
		out := make([]U, len(candidates))
		for i, c := range candidates {
			out[i] = into(c)
		}
		return out
	}
}
