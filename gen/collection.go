package gen

import "github.com/shipq/gencheck/rng"

// SliceOfN generates a slice of exactly length elements, each drawn from
// elem.
func SliceOfN[T any](elem Gen[T], length int) Gen[[]T] {
	return func(p *rng.PRNG, size rng.Size) []T {
		if length <= 0 {
			return nil
		}
		out := make([]T, length)
		for i := range out {
			out[i] = elem(p, size)
		}
		return out
	}
}

// SliceOf generates a slice whose length is drawn uniformly from
// [0, size), with each element drawn from elem.
func SliceOf[T any](elem Gen[T]) Gen[[]T] {
	return func(p *rng.PRNG, size rng.Size) []T {
		width := int(size)
		if width <= 0 {
			return nil
		}
		length := p.Intn(width)
		return SliceOfN(elem, length)(p, size)
	}
}

// ArrayOf generates a fixed-size 1D array (as a slice of exactly dim
// elements) — the array-typed counterpart of SliceOfN used by the
// registry's "Array" generic head.
func ArrayOf[T any](elem Gen[T], dim int) Gen[[]T] {
	return SliceOfN(elem, dim)
}

// Array2D generates a fixed rows x cols 2D array, represented as
// [][]T with exactly rows slices of exactly cols elements each.
func Array2D[T any](elem Gen[T], rows, cols int) Gen[[][]T] {
	return func(p *rng.PRNG, size rng.Size) [][]T {
		if rows <= 0 {
			return nil
		}
		out := make([][]T, rows)
		for i := range out {
			out[i] = SliceOfN(elem, cols)(p, size)
		}
		return out
	}
}

// Stream returns an infinite lazy supplier of values from elem, for
// internal use by combinators that need more draws than a single Gen call
// can produce (e.g. building up a collection generator from a scalar
// generator without re-deriving the PRNG/size plumbing each time).
func Stream[T any](elem Gen[T], p *rng.PRNG, size rng.Size) func() T {
	return func() T {
		return elem(p, size)
	}
}
