package 围碁

import (
	"github.com/gorgonia/goban/game"
	"github.com/pkg/errors"
)

// magics is the zobrist table, indexed by the row-major index and the colour.
// https://en.wikipedia.org/wiki/Zobrist_hashing
//
// Unlike the usual zobrist table the values are not random: each one is derived from
// (index, colour) with game.Avalanche, so every process computes the same table.
// The None column is all zeroes, which makes XORing an empty cell a no-op.
var magics [cells][3]game.Zobrist

// magicMask sets the top bits so that (0, 0) for White does not hash to 0.
const magicMask = 0xF0000000

func init() {
	for i := range magics {
		magics[i][Black] = game.Zobrist(game.Avalanche(uint32(i*2+1) ^ magicMask))
		magics[i][White] = game.Zobrist(game.Avalanche(uint32(i*2) ^ magicMask))
	}
}

// Magic returns the zobrist value of a stone of colour c at p. The value of None is 0.
func Magic(p Pos, c game.Colour) (game.Zobrist, error) {
	if !c.IsValid() {
		return 0, errors.Wrapf(ErrInvalidColour, "no zobrist value for %v at %v", c, p)
	}
	return magics[p.Index()][c], nil
}

// ApplyHash XORs the zobrist value of (p, c) into h.
// Applying the same (p, c) twice gives back h, which is how a stone is taken off.
func ApplyHash(h game.Zobrist, p Pos, c game.Colour) (game.Zobrist, error) {
	m, err := Magic(p, c)
	if err != nil {
		return h, err
	}
	return h ^ m, nil
}

// FullHash computes the zobrist hash of a row-major board from scratch.
func FullHash(board []game.Colour) (game.Zobrist, error) {
	if len(board) != cells {
		return 0, errors.Wrapf(ErrInvalidState, "expected %d cells. Got %d", cells, len(board))
	}
	var h game.Zobrist
	for i, c := range board {
		if !c.IsValid() {
			return 0, errors.Wrapf(ErrInvalidColour, "%d at index %d", int32(c), i)
		}
		h ^= magics[i][c]
	}
	return h, nil
}
