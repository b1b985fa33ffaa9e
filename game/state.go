package game

import (
	"fmt"
)

type Colour int32

const (
	None Colour = iota
	Black
	White
)

// IsValid reports whether the colour is one of None, Black or White.
func (cl Colour) IsValid() bool { return cl >= None && cl <= White }

// IsStone reports whether the colour is Black or White.
func (cl Colour) IsStone() bool { return cl == Black || cl == White }

func (cl Colour) Format(s fmt.State, c rune) {
	switch c {
	case 'v': // used in debug
		switch cl {
		case None:
			fmt.Fprint(s, "None")
		case Black:
			fmt.Fprint(s, "Black")
		case White:
			fmt.Fprint(s, "White")
		default:
			fmt.Fprintf(s, "Colour(%d)", int32(cl))
		}
	case 's': // used in board games
		switch cl {
		case None:
			fmt.Fprint(s, "·")
		case Black:
			fmt.Fprint(s, "X")
		case White:
			fmt.Fprint(s, "O")
		default:
			fmt.Fprint(s, "?")
		}
	case 'd':
		fmt.Fprintf(s, "%d", int32(cl))
	}
}

// Opponent returns the colour of the other player. None has no opponent and is returned as is.
func Opponent(cl Colour) Colour {
	switch cl {
	case White:
		return Black
	case Black:
		return White
	}
	return cl
}

// ParseColour parses the usual spellings of a colour ("b", "black", "w", "white", "empty", ...).
func ParseColour(a string) (Colour, bool) {
	switch a {
	case "b", "black", "x":
		return Black, true
	case "w", "white", "o":
		return White, true
	case "e", "empty", "none", ".":
		return None, true
	}
	return None, false
}

// Zobrist is a type representing a "zobrist" hash.
// The word "Zobrist" is put in quotes because only Go and chess uses zobrist hashing.
// Other games have different hashes of the boards (because only Go and Chess have subtractive boards)
type Zobrist uint32

// Avalanche is the integer finalizer shared by all hashes in this module.
// It is a bijection on uint32, so distinct inputs always give distinct outputs.
func Avalanche(x uint32) uint32 {
	x = ((x >> 16) ^ x) * 0x45d9f3b
	x = ((x >> 16) ^ x) * 0x45d9f3b
	x = (x >> 16) ^ x
	return x
}
