package arbitrary

import (
	"fmt"
	"reflect"

	"github.com/shipq/gencheck/fail"
	"github.com/shipq/gencheck/rng"
)

// dynArbitrary is the type-erased counterpart of Arbitrary[T], operating on
// reflect.Value instead of a compile-time T. It exists only at the
// boundary where the registry must recurse into a type it discovered at
// runtime (a slice's element type, a map's key/value types); Get[T]
// rewraps the result into a properly typed Arbitrary[T] once T is known
// again.
type dynArbitrary struct {
	Gen    func(p *rng.PRNG, size rng.Size) reflect.Value
	Shrink func(v reflect.Value) []reflect.Value
}

// boxDynamic adapts a typed Arbitrary[T] into its reflect.Value-based
// form, used to seed dyn from every singleton Register call so factory
// recursion can reach built-in and user-registered leaf types alike.
func boxDynamic[T any](a Arbitrary[T]) dynArbitrary {
	return dynArbitrary{
		Gen: func(p *rng.PRNG, size rng.Size) reflect.Value {
			return reflect.ValueOf(a.Gen(p, size))
		},
		Shrink: func(v reflect.Value) []reflect.Value {
			candidates := a.Shrink(v.Interface().(T))
			out := make([]reflect.Value, len(candidates))
			for i, c := range candidates {
				out[i] = reflect.ValueOf(c)
			}
			return out
		},
	}
}

// resolveType returns the dynArbitrary for t, consulting the cache first
// and otherwise building one via the matching generic-head factory,
// recursing into element types as needed. Fails with NotRegistered if t
// is neither a cached leaf type nor a supported generic head.
func resolveType(r *Registry, t reflect.Type) (dynArbitrary, error) {
	r.mu.RLock()
	if d, ok := r.dyn[t]; ok {
		r.mu.RUnlock()
		return d, nil
	}
	r.mu.RUnlock()

	head, ok := genericHeadOf(t)
	if !ok {
		return dynArbitrary{}, fail.NotRegisteredf("no arbitrary registered for %s", t)
	}

	var d dynArbitrary
	var err error
	switch head {
	case headSlice:
		d, err = sliceDynArbitrary(r, t)
	case headArray:
		d, err = arrayDynArbitrary(r, t)
	case headMap:
		d, err = mapDynArbitrary(r, t)
	}
	if err != nil {
		return dynArbitrary{}, err
	}

	r.mu.Lock()
	r.dyn[t] = d
	r.mu.Unlock()
	return d, nil
}

// sliceDynArbitrary builds the Gen/Shrink pair for a []E type: length
// drawn uniformly from [0, size) per spec §4.1, shrunk by the full
// collection procedure of spec §4.3 (empty first, then decreasing-k
// contiguous-window removal, then per-element shrinks at fixed length),
// reimplemented here over reflect.Value since E is known only at runtime.
func sliceDynArbitrary(r *Registry, t reflect.Type) (dynArbitrary, error) {
	elem, err := resolveType(r, t.Elem())
	if err != nil {
		return dynArbitrary{}, err
	}
	return dynArbitrary{
		Gen: func(p *rng.PRNG, size rng.Size) reflect.Value {
			width := int(size)
			if width <= 0 {
				return reflect.MakeSlice(t, 0, 0)
			}
			length := p.Intn(width)
			out := reflect.MakeSlice(t, length, length)
			for i := 0; i < length; i++ {
				out.Index(i).Set(elem.Gen(p, size))
			}
			return out
		},
		Shrink: func(v reflect.Value) []reflect.Value {
			return collectionShrinkReflect(t, v, elem.Shrink)
		},
	}, nil
}

// arrayDynArbitrary builds the Gen/Shrink pair for a [N]E type. A Go array
// type's length is part of its type, so — unlike a slice — it cannot be
// shortened by shrinking; only the fixed-length, per-element branch of
// spec §4.3's collection procedure applies.
func arrayDynArbitrary(r *Registry, t reflect.Type) (dynArbitrary, error) {
	elem, err := resolveType(r, t.Elem())
	if err != nil {
		return dynArbitrary{}, err
	}
	n := t.Len()
	return dynArbitrary{
		Gen: func(p *rng.PRNG, size rng.Size) reflect.Value {
			out := reflect.New(t).Elem()
			for i := 0; i < n; i++ {
				out.Index(i).Set(elem.Gen(p, size))
			}
			return out
		},
		Shrink: func(v reflect.Value) []reflect.Value {
			var out []reflect.Value
			for i := 0; i < n; i++ {
				for _, shrunk := range elem.Shrink(v.Index(i)) {
					cand := reflect.New(t).Elem()
					reflect.Copy(cand, v)
					cand.Index(i).Set(shrunk)
					out = append(out, cand)
				}
			}
			return out
		},
	}, nil
}

// mapDynArbitrary builds the Gen/Shrink pair for a map[K]V type: size
// drawn uniformly from [0, size) per the teacher's own Map/MapN
// combinators, entries drawn independently. Spec §4.3 does not define map
// shrinking explicitly (only "enumerable, array, list"); this supplements
// it with the empty-map-first, then one-entry-removed-at-a-time analogue
// of the collection procedure's window removal, skipping the recursive
// per-element shrink phase since map entries aren't positionally ordered.
func mapDynArbitrary(r *Registry, t reflect.Type) (dynArbitrary, error) {
	keyElem, err := resolveType(r, t.Key())
	if err != nil {
		return dynArbitrary{}, err
	}
	valElem, err := resolveType(r, t.Elem())
	if err != nil {
		return dynArbitrary{}, err
	}
	return dynArbitrary{
		Gen: func(p *rng.PRNG, size rng.Size) reflect.Value {
			width := int(size)
			out := reflect.MakeMap(t)
			if width <= 0 {
				return out
			}
			n := p.Intn(width)
			for i := 0; i < n; i++ {
				out.SetMapIndex(keyElem.Gen(p, size), valElem.Gen(p, size))
			}
			return out
		},
		Shrink: func(v reflect.Value) []reflect.Value {
			keys := v.MapKeys()
			if len(keys) == 0 {
				return nil
			}
			var out []reflect.Value
			out = append(out, reflect.MakeMap(t))
			for _, omit := range keys {
				cand := reflect.MakeMap(t)
				for _, k := range keys {
					if k.Interface() == omit.Interface() {
						continue
					}
					cand.SetMapIndex(k, v.MapIndex(k))
				}
				out = append(out, cand)
			}
			return out
		},
	}, nil
}

// collectionShrinkReflect mirrors shrink.Collection's algorithm exactly
// (see shrink/collection.go's doc comment for the emission order) but
// operates over reflect.Value since the element type is known only at
// runtime here.
func collectionShrinkReflect(t reflect.Type, v reflect.Value, elemShrink func(reflect.Value) []reflect.Value) []reflect.Value {
	n := v.Len()
	if n == 0 {
		return nil
	}

	var out []reflect.Value
	seen := map[string]bool{}
	add := func(cand reflect.Value) {
		key := fmtSliceKey(cand)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, cand)
	}

	add(reflect.MakeSlice(t, 0, 0))

	removeWindow := func(start, k int) reflect.Value {
		window := reflect.MakeSlice(t, n-k, n-k)
		reflect.Copy(window, v.Slice(0, start))
		reflect.Copy(window.Slice(start, n-k), v.Slice(start+k, n))
		return window
	}

	for k := n - 1; k >= 1; k-- {
		for start := 0; start+k <= n; start++ {
			window := removeWindow(start, k)
			add(window)
			for i := 0; i < window.Len(); i++ {
				for _, shrunk := range elemShrink(window.Index(i)) {
					cand := reflect.MakeSlice(t, window.Len(), window.Len())
					reflect.Copy(cand, window)
					cand.Index(i).Set(shrunk)
					add(cand)
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		for _, shrunk := range elemShrink(v.Index(i)) {
			cand := reflect.MakeSlice(t, n, n)
			reflect.Copy(cand, v)
			cand.Index(i).Set(shrunk)
			add(cand)
		}
	}

	return out
}

func fmtSliceKey(v reflect.Value) string {
	return fmt.Sprintf("%v", v.Interface())
}
