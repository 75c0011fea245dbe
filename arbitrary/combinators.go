package arbitrary

import (
	"github.com/shipq/gencheck/gen"
	"github.com/shipq/gencheck/shrink"
)

// SliceOf derives an Arbitrary[[]T] from an Arbitrary[T] directly, with no
// reflection — for callers that know T at compile time and want to skip
// the registry's reflect-based factory path entirely. This is the
// generics analogue of the teacher's proptest.Slice/SliceN helpers.
func SliceOf[T any](elem Arbitrary[T]) Arbitrary[[]T] {
	return Arbitrary[[]T]{
		Gen:    gen.SliceOf(elem.Gen),
		Shrink: shrink.Collection(elem.Shrink),
	}
}

// ArrayOf derives an Arbitrary[[]T] of exactly dim elements — the
// compile-time-typed counterpart of the registry's array factory, fixed
// length, per-element shrinking only.
func ArrayOf[T any](elem Arbitrary[T], dim int) Arbitrary[[]T] {
	return Arbitrary[[]T]{
		Gen: gen.ArrayOf(elem.Gen, dim),
		Shrink: func(v []T) [][]T {
			var out [][]T
			for i := range v {
				for _, shrunk := range elem.Shrink(v[i]) {
					cand := make([]T, len(v))
					copy(cand, v)
					cand[i] = shrunk
					out = append(out, cand)
				}
			}
			return out
		},
	}
}
