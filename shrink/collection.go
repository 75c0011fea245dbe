package shrink

import "fmt"

// Collection builds a Shrinker for []T out of a per-element Shrinker,
// fixing spec.md §4.3's interleaving in the order that section's Open
// Question leaves unresolved:
//
//  1. The empty slice, if v is non-empty.
//  2. For window size k descending from len(v)-1 down to 1: every
//     contiguous-window removal of width k, each one immediately
//     followed by that same removal with one of its surviving elements
//     shrunk (recursively, one element at a time) — before moving to
//     the next smaller k.
//  3. Fixed-length candidates: v with a single element, at each
//     position in turn, replaced by one of that element's own shrinks.
//
// Step 2 runs removal widths largest-to-smallest so the first candidates
// the Driver tries are the most aggressive cuts; only once no further
// window removal helps does it fall back to shrinking elements in place.
func Collection[T any](elem Shrinker[T]) Shrinker[[]T] {
	return func(v []T) [][]T {
		n := len(v)
		if n == 0 {
			return nil
		}
		var out [][]T
		seen := map[string]bool{}
		add := func(c []T) {
			k := sliceKey(c)
			if seen[k] {
				return
			}
			seen[k] = true
			out = append(out, c)
		}

		add([]T{})

		for k := n - 1; k >= 1; k-- {
			for start := 0; start+k <= n; start++ {
				window := removeWindow(v, start, k)
				add(window)
				for i := range window {
					for _, shrunk := range elem(window[i]) {
						add(withReplaced(window, i, shrunk))
					}
				}
			}
		}

		for i := 0; i < n; i++ {
			for _, shrunk := range elem(v[i]) {
				add(withReplaced(v, i, shrunk))
			}
		}

		return out
	}
}

func removeWindow[T any](v []T, start, k int) []T {
	out := make([]T, 0, len(v)-k)
	out = append(out, v[:start]...)
	out = append(out, v[start+k:]...)
	return out
}

func withReplaced[T any](v []T, i int, x T) []T {
	out := make([]T, len(v))
	copy(out, v)
	out[i] = x
	return out
}

// sliceKey gives every distinct []T candidate a content-based dedup key
// without requiring T to be comparable.
func sliceKey[T any](v []T) string {
	return fmt.Sprintf("%v", v)
}
