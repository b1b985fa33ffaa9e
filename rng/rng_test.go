package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSource_Deterministic(t *testing.T) {
	assert := assert.New(t)
	a := NewSource(1337)
	b := NewSource(1337)
	for i := 0; i < 1000; i++ {
		assert.Equal(a.Uint64(), b.Uint64(), "step %d", i)
	}

	c := NewSource(1338)
	a.Seed(1337)
	var same int
	for i := 0; i < 100; i++ {
		if a.Uint64() == c.Uint64() {
			same++
		}
	}
	assert.NotEqual(100, same, "Different seeds should give different streams")
}

func TestSource_ZeroSeed(t *testing.T) {
	s := NewSource(0)
	for i := 0; i < 10; i++ {
		if s.Uint64() == 0 {
			t.Fatalf("A zero seed should not leave the generator stuck at 0")
		}
	}
}

func TestSource_Int63(t *testing.T) {
	s := NewSource(-42)
	for i := 0; i < 1000; i++ {
		if v := s.Int63(); v < 0 {
			t.Fatalf("Int63 returned a negative number %d", v)
		}
	}
}

func TestNew(t *testing.T) {
	r := New(7)
	for i := 0; i < 1000; i++ {
		v := r.Intn(361)
		if v < 0 || v >= 361 {
			t.Fatalf("Intn(361) returned %d", v)
		}
	}
	if Random() == nil {
		t.Fatal("Expected a *rand.Rand")
	}
}
