package shrink

import "math"

// Float64 shrinks a float64 toward zero per spec.md §4.3: candidates are
// 0, floor(x), ceil(x), and -x when x is negative, in that order, with x
// itself and duplicates filtered out. Unlike the integer shrinkers this is
// not a converging sequence of halving steps, and the Driver computes each
// shrink sequence once, so a surviving candidate is not shrunk further.
func Float64(x float64) []float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}
	seen := map[float64]bool{}
	var out []float64
	add := func(v float64) {
		if v == x || seen[v] {
			return
		}
		seen[v] = true
		out = append(out, v)
	}
	add(0)
	add(math.Floor(x))
	add(math.Ceil(x))
	if x < 0 {
		add(-x)
	}
	return out
}

// Float32 is Float64 narrowed to float32.
func Float32(x float32) []float32 {
	wide := Float64(float64(x))
	out := make([]float32, 0, len(wide))
	seen := map[float32]bool{}
	for _, v := range wide {
		n := float32(v)
		if n == x || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
