// Package rng implements the deterministic PRNG and size context that the
// generator algebra in package gen is built on.
//
// Given the same seed, a PRNG produces an identical sequence of outputs —
// this is the determinism invariant the whole engine's replay discipline
// depends on. Rather than wrap math/rand (as the hand-rolled property-test
// helpers this package replaces did), the keystream is drawn from ChaCha20,
// seeded by expanding the int64 seed into a key and nonce with a SplitMix64
// avalanche. This mirrors the technique Rust's rand_chacha crate uses to
// back proptest/quickcheck: a stream cipher makes a convenient, well
// distributed, cheaply reseedable deterministic PRNG.
package rng

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// Size bounds magnitudes and lengths produced by a generator. Interpretation
// is per-generator: a bound on integer magnitude, a bound on collection
// length, a scale factor for floating ranges.
type Size int

// PRNG is a deterministic pseudo-random source. The zero value is not
// usable; construct with NewPRNG.
type PRNG struct {
	seed   int64
	cipher *chacha20.Cipher
	buf    [64]byte
	pos    int
}

// NewPRNG creates a PRNG deterministically seeded from seed. Two PRNGs
// constructed with the same seed produce identical output sequences.
func NewPRNG(seed int64) *PRNG {
	p := &PRNG{seed: seed}
	p.reset()
	return p
}

// Seed returns the seed this PRNG was constructed with.
func (p *PRNG) Seed() int64 { return p.seed }

// Clone returns a freshly-seeded PRNG, independent of p's current keystream
// position, reseeded from seed. Prop's Any does not use it; Any records
// its draws and replays them instead.
func (p *PRNG) Clone(seed int64) *PRNG {
	return NewPRNG(seed)
}

func (p *PRNG) reset() {
	key, nonce := expandSeed(p.seed)
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		panic("rng: chacha20 cipher init failed: " + err.Error())
	}
	p.cipher = c
	p.pos = len(p.buf)
}

func (p *PRNG) fill() {
	for i := range p.buf {
		p.buf[i] = 0
	}
	p.cipher.XORKeyStream(p.buf[:], p.buf[:])
	p.pos = 0
}

// Uint64 returns the next 64 bits of keystream.
func (p *PRNG) Uint64() uint64 {
	if p.pos+8 > len(p.buf) {
		p.fill()
	}
	v := binary.LittleEndian.Uint64(p.buf[p.pos : p.pos+8])
	p.pos += 8
	return v
}

// Intn returns a pseudo-random int in [0, n). Panics if n <= 0.
func (p *PRNG) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with n <= 0")
	}
	return int(p.Uint64() % uint64(n))
}

// Int63n returns a pseudo-random int64 in [0, n). Panics if n <= 0.
func (p *PRNG) Int63n(n int64) int64 {
	if n <= 0 {
		panic("rng: Int63n called with n <= 0")
	}
	return int64(p.Uint64() % uint64(n))
}

// Float64 returns a pseudo-random float64 uniformly distributed in [0, 1).
func (p *PRNG) Float64() float64 {
	return float64(p.Uint64()>>11) / (1 << 53)
}

// splitmix64 advances state and returns the next avalanche output, used
// only to expand a narrow int64 seed into key/nonce material.
func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func expandSeed(seed int64) (key [32]byte, nonce [12]byte) {
	state := uint64(seed)
	var buf [48]byte
	for i := 0; i < 6; i++ {
		binary.LittleEndian.PutUint64(buf[i*8:], splitmix64(&state))
	}
	copy(key[:], buf[:32])
	copy(nonce[:], buf[32:44])
	return key, nonce
}
