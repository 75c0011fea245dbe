package arbitrary

import (
	"github.com/shipq/gencheck/gen"
	"github.com/shipq/gencheck/shrink"
)

// installBuiltins registers the primitive Arbitraries spec §4.2 requires
// eagerly at initialization: bool, every signed/unsigned integer width,
// float32/float64, string, and []byte (rune resolves to the int32 entry,
// since rune is an alias for int32). Slices, arrays, and maps of
// any of these (or of each other) resolve lazily through the generic-head
// factories in dynamic.go — no eager registration needed for them.
func installBuiltins(r *Registry) {
	mustRegister(r, Arbitrary[bool]{
		Gen: gen.Bool(),
		Shrink: func(v bool) []bool {
			if v {
				return []bool{false}
			}
			return nil
		},
	})

	mustRegister(r, Arbitrary[int]{Gen: gen.Int(), Shrink: shrink.Int})
	mustRegister(r, Arbitrary[int8]{Gen: gen.Map(gen.Int(), func(n int) int8 { return int8(n) }), Shrink: shrink.Int8})
	mustRegister(r, Arbitrary[int16]{Gen: gen.Map(gen.Int(), func(n int) int16 { return int16(n) }), Shrink: shrink.Int16})
	mustRegister(r, Arbitrary[int32]{Gen: gen.Map(gen.Int64(), func(n int64) int32 { return int32(n) }), Shrink: shrink.Int32})
	mustRegister(r, Arbitrary[int64]{Gen: gen.Int64(), Shrink: shrink.Int64})

	mustRegister(r, Arbitrary[uint]{
		Gen:    gen.Map(gen.Int64(), func(n int64) uint { return uint(n) }),
		Shrink: shrink.Uint,
	})
	mustRegister(r, Arbitrary[uint8]{
		Gen:    gen.Map(gen.Int64(), func(n int64) uint8 { return uint8(n) }),
		Shrink: shrink.Uint8,
	})
	mustRegister(r, Arbitrary[uint16]{
		Gen:    gen.Map(gen.Int64(), func(n int64) uint16 { return uint16(n) }),
		Shrink: shrink.Uint16,
	})
	mustRegister(r, Arbitrary[uint32]{
		Gen:    gen.Map(gen.Int64(), func(n int64) uint32 { return uint32(n) }),
		Shrink: shrink.Uint32,
	})
	mustRegister(r, Arbitrary[uint64]{
		Gen:    gen.Map(gen.Int64(), func(n int64) uint64 { return uint64(n) }),
		Shrink: shrink.Uint64,
	})

	mustRegister(r, Arbitrary[float32]{
		Gen:    gen.Map(gen.Float64(), func(f float64) float32 { return float32(f) }),
		Shrink: shrink.Float32,
	})
	mustRegister(r, Arbitrary[float64]{Gen: gen.Float64(), Shrink: shrink.Float64})

	// rune is an alias for int32, not a distinct type — Arbitrary[int32]
	// above already covers it, so Get[rune] yields integer draws. Character
	// draws and shrinks are reachable through gen.Char/shrink.Char and, via
	// string below, through the string Arbitrary.

	stringShrink := shrink.Map(shrink.Collection(shrink.Char),
		func(rs []rune) string { return string(rs) },
		func(s string) []rune { return []rune(s) },
	)
	mustRegister(r, Arbitrary[string]{Gen: gen.String(), Shrink: stringShrink})

	// byte is an alias for uint8, not a distinct type — Arbitrary[uint8]
	// above already covers it. []byte gets its own singleton (rather than
	// being left to the generic slice factory) purely so it shrinks
	// through a string's natural sibling path without extra indirection.
	mustRegister(r, Arbitrary[[]byte]{
		Gen:    gen.SliceOf(gen.Map(gen.IntRange(0, 256), func(n int) byte { return byte(n) })),
		Shrink: shrink.Collection(shrink.Uint8),
	})
}

func mustRegister[T any](r *Registry, a Arbitrary[T]) {
	if err := Register(r, a); err != nil {
		panic(err)
	}
}
