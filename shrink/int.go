package shrink

// Int64 shrinks a signed 64-bit integer toward zero: first 0, then x-x/2,
// x-x/4, ... halving the distance from x each step and emitting both the
// shrunk-toward-zero candidate and its negation, until the halved distance
// reaches zero. Duplicates are filtered. For negative x, -x itself is not
// emitted.
func Int64(x int64) []int64 {
	if x == 0 {
		return nil
	}
	m := uint64(x)
	if x < 0 {
		m = -m // unsigned negation wraps correctly even for math.MinInt64
	}

	out := make([]int64, 0, 2)
	seen := map[int64]bool{0: true}
	out = append(out, 0)
	add := func(v int64) {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}

	for k := uint(1); ; k++ {
		d := m >> k
		if d == 0 {
			break
		}
		var cand int64
		if x < 0 {
			cand = x + int64(d)
		} else {
			cand = x - int64(d)
		}
		add(cand)
		add(-cand)
	}
	return out
}

// Int32 is Int64 narrowed to int32.
func Int32(x int32) []int32 { return narrowInt[int32](x) }

// Int16 is Int64 narrowed to int16.
func Int16(x int16) []int16 { return narrowInt[int16](x) }

// Int8 is Int64 narrowed to int8.
func Int8(x int8) []int8 { return narrowInt[int8](x) }

// Int is Int64 narrowed to the platform int.
func Int(x int) []int { return narrowInt[int](x) }

type signedInt interface {
	~int | ~int8 | ~int16 | ~int32
}

func narrowInt[T signedInt](x T) []T {
	wide := Int64(int64(x))
	out := make([]T, len(wide))
	for i, v := range wide {
		out[i] = T(v)
	}
	return out
}

// Uint64 shrinks an unsigned 64-bit integer toward zero, the unsigned
// analogue of Int64 (no negation, since there is nothing to negate).
func Uint64(x uint64) []uint64 {
	if x == 0 {
		return nil
	}
	out := make([]uint64, 0, 1)
	seen := map[uint64]bool{0: true}
	out = append(out, 0)
	add := func(v uint64) {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for k := uint(1); ; k++ {
		d := x >> k
		if d == 0 {
			break
		}
		add(x - d)
	}
	return out
}

// Uint32 is Uint64 narrowed to uint32.
func Uint32(x uint32) []uint32 { return narrowUint[uint32](x) }

// Uint16 is Uint64 narrowed to uint16.
func Uint16(x uint16) []uint16 { return narrowUint[uint16](x) }

// Uint8 is Uint64 narrowed to uint8.
func Uint8(x uint8) []uint8 { return narrowUint[uint8](x) }

// Uint is Uint64 narrowed to the platform uint.
func Uint(x uint) []uint { return narrowUint[uint](x) }

type unsignedInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32
}

func narrowUint[T unsignedInt](x T) []T {
	wide := Uint64(uint64(x))
	out := make([]T, len(wide))
	for i, v := range wide {
		out[i] = T(v)
	}
	return out
}
