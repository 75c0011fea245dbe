package gen

import (
	"github.com/shipq/gencheck/fail"
	"github.com/shipq/gencheck/rng"
)

// Filter resamples g until pred holds, up to 100 attempts. On exhaustion it
// panics with a *fail.Error of kind GeneratorExhausted — the same
// convention Prop uses to escalate taxonomy failures out of pure
// generator code that has no error return.
func Filter[T any](g Gen[T], pred func(T) bool) Gen[T] {
	return func(p *rng.PRNG, size rng.Size) T {
		for i := 0; i < maxFilterAttempts; i++ {
			v := g(p, size)
			if pred(v) {
				return v
			}
		}
		panic(fail.GeneratorExhaustedf("no value satisfying the predicate found in %d attempts", maxFilterAttempts))
	}
}
