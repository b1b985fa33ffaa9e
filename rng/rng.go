// Package rng provides a small, fast, seedable pseudo random source.
//
// It is used for randomised decisions (e.g. picking a random legal move). It is NOT used for hashing boards;
// the zobrist values in game/wq are derived arithmetically.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// zeroSeed replaces a zero seed. A xorshift generator with a zero state only ever yields zeroes.
const zeroSeed = 0x9e3779b97f4a7c15

// Source is a xorshift64 generator with the (21, 35, 4) triple. It implements rand.Source64.
//
// A Source is not safe for concurrent use.
type Source struct {
	state uint64
}

var _ rand.Source64 = &Source{}

// NewSource returns a Source seeded with seed.
func NewSource(seed int64) *Source {
	s := &Source{}
	s.Seed(seed)
	return s
}

// New returns a *rand.Rand backed by a Source seeded with seed.
func New(seed int64) *rand.Rand { return rand.New(NewSource(seed)) }

// Random returns a *rand.Rand seeded from crypto/rand.
func Random() *rand.Rand { return New(Seed()) }

// Seed returns a seed read from crypto/rand.
func Seed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

func (s *Source) Seed(seed int64) {
	s.state = uint64(seed)
	if s.state == 0 {
		s.state = zeroSeed
	}
}

func (s *Source) Uint64() uint64 {
	x := s.state
	x ^= x << 21
	x ^= x >> 35
	x ^= x << 4
	s.state = x
	return x
}

func (s *Source) Int63() int64 { return int64(s.Uint64() & (1<<63 - 1)) }
