package gen

import "github.com/shipq/gencheck/rng"

// Int generates a signed int bounded by size: values fall in
// [-size/2, size/2).
func Int() Gen[int] {
	return func(p *rng.PRNG, size rng.Size) int {
		width := int(size)
		if width <= 0 {
			return 0
		}
		half := width / 2
		if half == 0 {
			half = 1
		}
		return p.Intn(2*half) - half
	}
}

// IntFrom generates an int in [m, m+size).
func IntFrom(m int) Gen[int] {
	return func(p *rng.PRNG, size rng.Size) int {
		width := int(size)
		if width <= 0 {
			width = 1
		}
		return m + p.Intn(width)
	}
}

// IntRange generates an int in the explicit range [min, max).
// Panics if min >= max.
func IntRange(min, max int) Gen[int] {
	if min >= max {
		panic("gen: IntRange requires min < max")
	}
	return func(p *rng.PRNG, _ rng.Size) int {
		return min + p.Intn(max-min)
	}
}

// Int64 generates a signed int64 bounded by size.
func Int64() Gen[int64] {
	return func(p *rng.PRNG, size rng.Size) int64 {
		width := int64(size)
		if width <= 0 {
			return 0
		}
		half := width / 2
		if half == 0 {
			half = 1
		}
		return p.Int63n(2*half) - half
	}
}

// Int64Range generates an int64 in the explicit range [min, max).
// Panics if min >= max.
func Int64Range(min, max int64) Gen[int64] {
	if min >= max {
		panic("gen: Int64Range requires min < max")
	}
	return func(p *rng.PRNG, _ rng.Size) int64 {
		return min + p.Int63n(max-min)
	}
}

// Float64 generates a float64 around zero, scaled by size.
func Float64() Gen[float64] {
	return func(p *rng.PRNG, size rng.Size) float64 {
		scale := float64(size)
		if scale <= 0 {
			scale = 1
		}
		return (p.Float64()*2 - 1) * scale
	}
}

// Float64From generates a float64 in [m, m+size), scaled by size.
func Float64From(m float64) Gen[float64] {
	return func(p *rng.PRNG, size rng.Size) float64 {
		scale := float64(size)
		if scale <= 0 {
			scale = 1
		}
		return m + p.Float64()*scale
	}
}

// Float64Range generates a float64 in the explicit range [min, max).
// Panics if min >= max.
func Float64Range(min, max float64) Gen[float64] {
	if min >= max {
		panic("gen: Float64Range requires min < max")
	}
	return func(p *rng.PRNG, _ rng.Size) float64 {
		return min + p.Float64()*(max-min)
	}
}

// Bool generates a uniformly distributed boolean.
func Bool() Gen[bool] {
	return func(p *rng.PRNG, _ rng.Size) bool {
		return p.Intn(2) == 1
	}
}
