// Package arbitrary implements the type-directed registry of (Gen, Shrink)
// pairs described in spec.md §4.2, plus the built-in Arbitraries for
// primitive and collection types from §4.3.
//
// The registry itself has no grounding file in the teacher — shipq's own
// registry/ package indexes compiled SQL schema types by name, not Go
// types by reflect.Type, so only the *name* carries over; the keying rules
// and factory/singleton split are built from spec §4.2 directly.
//
// Go generics are monomorphized at compile time, so a registry queried by
// an arbitrary runtime type (spec §4.2's get(T)) cannot dispatch through
// ordinary generic functions alone — there is no way to call a generic
// constructor with a type known only as a reflect.Type. The singleton
// fast path (Register/Get[T] for a type the caller names directly) stays
// pure generics with no reflection at all. Factory-driven resolution for
// slice/array/map heads, where the registry itself must discover the
// element type, drops one level to a reflect.Value-based dynArbitrary
// (dynamic.go) and re-wraps the result back into a typed Arbitrary[T] at
// the generic Get[T] boundary, where T is known again.
package arbitrary

import (
	"reflect"
	"sync"

	"github.com/shipq/gencheck/fail"
	"github.com/shipq/gencheck/gen"
	"github.com/shipq/gencheck/rng"
	"github.com/shipq/gencheck/shrink"
)

// Arbitrary bundles a generator and a shrinker for one type.
type Arbitrary[T any] struct {
	Gen    gen.Gen[T]
	Shrink shrink.Shrinker[T]
}

// genericKey identifies the "generic head" spec §4.2 keys factories by: a
// named shape (slice, array, map) independent of its type parameters.
type genericKey string

const (
	headSlice genericKey = "slice"
	headArray genericKey = "array"
	headMap   genericKey = "map"
)

// Registry is a process-wide (or test-local) store mapping types to
// Arbitraries, with lazy factory-driven instantiation for parameterized
// types. The zero value is not usable; construct with NewRegistry.
type Registry struct {
	mu        sync.RWMutex
	singleton map[reflect.Type]any // reflect.Type(T) -> Arbitrary[T]
	dyn       map[reflect.Type]dynArbitrary
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, installing built-in
// Arbitraries on first use (spec §4.2: "initialize-at-first-use, no
// teardown").
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		installBuiltins(defaultRegistry)
	})
	return defaultRegistry
}

// NewRegistry returns an empty registry with no built-ins installed, for
// tests that want isolation from the process-wide Default.
func NewRegistry() *Registry {
	return &Registry{
		singleton: make(map[reflect.Type]any),
		dyn:       make(map[reflect.Type]dynArbitrary),
	}
}

// Register stores a singleton Arbitrary for T. Fails with AlreadyRegistered
// if T already has an entry.
func Register[T any](r *Registry, a Arbitrary[T]) error {
	t := reflect.TypeOf((*T)(nil)).Elem()
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.singleton[t]; ok {
		return fail.AlreadyRegisteredf("arbitrary already registered for %s", t)
	}
	r.singleton[t] = a
	r.dyn[t] = boxDynamic(a)
	return nil
}

// Get returns the Arbitrary for T: the cached singleton if one was
// registered directly, or one instantiated (and cached) via the matching
// generic-head factory otherwise. Fails with NotRegistered if neither
// exists.
func Get[T any](r *Registry) (Arbitrary[T], error) {
	t := reflect.TypeOf((*T)(nil)).Elem()

	r.mu.RLock()
	cached, ok := r.singleton[t]
	r.mu.RUnlock()
	if ok {
		return cached.(Arbitrary[T]), nil
	}

	dyn, err := resolveType(r, t)
	if err != nil {
		return Arbitrary[T]{}, err
	}

	a := Arbitrary[T]{
		Gen: func(p *rng.PRNG, size rng.Size) T {
			return dyn.Gen(p, size).Interface().(T)
		},
		Shrink: func(v T) []T {
			candidates := dyn.Shrink(reflect.ValueOf(v))
			out := make([]T, len(candidates))
			for i, c := range candidates {
				out[i] = c.Interface().(T)
			}
			return out
		},
	}

	r.mu.Lock()
	r.singleton[t] = a
	r.mu.Unlock()

	return a, nil
}

func genericHeadOf(t reflect.Type) (genericKey, bool) {
	switch t.Kind() {
	case reflect.Slice:
		return headSlice, true
	case reflect.Array:
		return headArray, true
	case reflect.Map:
		return headMap, true
	default:
		return "", false
	}
}
