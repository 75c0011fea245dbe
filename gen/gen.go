// Package gen implements the generator algebra: pure functions of a PRNG
// and a size budget, closed under map, bind, filter, product, and choice.
//
// Generalized from the ad-hoc *proptest.Generator methods the teacher used
// (one method per shape: Int, IntRange, String, Slice, ...) into a closed
// Gen[T] value that composes like the teacher's own Transform/Pair/Triple
// combinators, but as first-class values rather than inline calls.
package gen

import "github.com/shipq/gencheck/rng"

// Gen is a pure computation from a PRNG and a size budget to a value of
// type T. Two calls with equal (seed, size) must produce equal results —
// this referential transparency is what makes replay during shrinking
// possible.
type Gen[T any] func(p *rng.PRNG, size rng.Size) T

// Pure ignores its inputs and always yields v.
func Pure[T any](v T) Gen[T] {
	return func(*rng.PRNG, rng.Size) T { return v }
}

// Map applies f to g's output.
func Map[T, U any](g Gen[T], f func(T) U) Gen[U] {
	return func(p *rng.PRNG, size rng.Size) U {
		return f(g(p, size))
	}
}

// Bind samples g, then samples k(value) using the same PRNG state advanced
// sequentially.
func Bind[T, U any](g Gen[T], k func(T) Gen[U]) Gen[U] {
	return func(p *rng.PRNG, size rng.Size) U {
		v := g(p, size)
		return k(v)(p, size)
	}
}

// maxFilterAttempts bounds Filter's resampling before it raises
// fail.GeneratorExhausted.
const maxFilterAttempts = 100

// Pair samples g1 then g2, combining them with f.
func Pair[A, B, T any](g1 Gen[A], g2 Gen[B], f func(A, B) T) Gen[T] {
	return Bind(g1, func(a A) Gen[T] {
		return Map(g2, func(b B) T { return f(a, b) })
	})
}

// Triple samples g1, g2, g3 in order, combining them with f.
func Triple[A, B, C, T any](g1 Gen[A], g2 Gen[B], g3 Gen[C], f func(A, B, C) T) Gen[T] {
	return Bind(g1, func(a A) Gen[T] {
		return Bind(g2, func(b B) Gen[T] {
			return Map(g3, func(c C) T { return f(a, b, c) })
		})
	})
}
