package 围碁

import (
	"fmt"

	"github.com/gorgonia/goban/game"
	"github.com/pkg/errors"
)

// Board represents an immutable 19x19 board.
//
// A *Board is never modified after it has been constructed. Every method that would change the board
// (WithCell, Place) returns a new *Board instead, leaving the receiver as it was. Boards may therefore
// be shared freely, including between goroutines.
//
// The zobrist hash is kept in step with the backing data on every derivation.
type Board struct {
	data [cells]game.Colour
	hash game.Zobrist
}

var empty = &Board{}

// Empty returns the empty board.
func Empty() *Board { return empty }

// FromSlice creates a board from a row-major slice of colours.
func FromSlice(board []game.Colour) (*Board, error) {
	h, err := FullHash(board)
	if err != nil {
		return nil, errors.WithMessage(err, "Unable to create board")
	}
	retVal := &Board{hash: h}
	copy(retVal.data[:], board)
	return retVal, nil
}

// At returns the colour at p.
func (b *Board) At(p Pos) game.Colour { return b.data[p.Index()] }

// AtXY returns the colour at (x, y).
func (b *Board) AtXY(x, y int) (game.Colour, error) {
	p, err := Of(x, y)
	if err != nil {
		return None, err
	}
	return b.At(p), nil
}

// Hash returns the zobrist hash of the board
func (b *Board) Hash() game.Zobrist { return b.hash }

// Cells returns a row-major copy of the board.
func (b *Board) Cells() []game.Colour {
	retVal := make([]game.Colour, cells)
	copy(retVal, b.data[:])
	return retVal
}

// Stones counts the cells of colour c.
func (b *Board) Stones(c game.Colour) (n int) {
	for _, v := range b.data {
		if v == c {
			n++
		}
	}
	return n
}

// Eq checks that both boards hold the same stones. The hashes are compared first.
func (b *Board) Eq(other *Board) bool {
	if b == other {
		return true
	}
	if b == nil || other == nil {
		return false
	}
	if b.hash != other.hash {
		return false
	}
	return b.data == other.data
}

// WithCell returns a board with p set to c. If p is already c, the receiver is returned.
func (b *Board) WithCell(p Pos, c game.Colour) (*Board, error) {
	if !c.IsValid() {
		return nil, errors.Wrapf(ErrInvalidColour, "Unable to set %v to %v", p, c)
	}
	i := p.Index()
	if b.data[i] == c {
		return b, nil
	}
	retVal := b.clone()
	retVal.set(i, c)
	return retVal, nil
}

// Place plays a stone of colour c at p, removing any stones it captures.
//
// If the move is against the rules (the point is occupied, or the move is suicidal) no board is produced and
// legal is false. An error is only returned for malformed input, i.e. c is not Black or White.
func (b *Board) Place(p Pos, c game.Colour) (next *Board, legal bool, err error) {
	next, _, err = b.Move(p, c)
	return next, next != nil, err
}

// Move is like Place, but also reports the rule that was broken when next is nil.
func (b *Board) Move(p Pos, c game.Colour) (next *Board, rule Rule, err error) {
	captures, rule, err := b.check(p, c)
	if err != nil || rule != Legal {
		return nil, rule, err
	}

	next = b.clone()
	for _, prisoner := range captures {
		next.set(prisoner, None)
	}
	next.set(p.Index(), c)
	return next, Legal, nil
}

// Check reports whether playing c at p is legal, and if not, which rule it breaks.
func (b *Board) Check(p Pos, c game.Colour) (Rule, error) {
	_, rule, err := b.check(p, c)
	return rule, err
}

// Format implements fmt.Formatter.
//
// %s writes one glyph per cell and a newline after each row. %v writes the framed board.
func (b *Board) Format(s fmt.State, c rune) {
	switch c {
	case 's':
		for y := 0; y < Size; y++ {
			for _, col := range b.data[y*Size : (y+1)*Size] {
				fmt.Fprintf(s, "%s", col)
			}
			fmt.Fprint(s, "\n")
		}
	case 'v':
		for y := 0; y < Size; y++ {
			fmt.Fprint(s, "⎢ ")
			for _, col := range b.data[y*Size : (y+1)*Size] {
				fmt.Fprintf(s, "%s ", col)
			}
			fmt.Fprint(s, "⎥\n")
		}
	}
}

func (b *Board) clone() *Board {
	retVal := *b
	return &retVal
}

// set must only be called on a board that has not been handed out yet.
func (b *Board) set(i int, c game.Colour) {
	b.hash ^= magics[i][b.data[i]]
	b.hash ^= magics[i][c]
	b.data[i] = c
}

// check will find the captures (if any) if the move is valid.
// Rule violations are reported in rule. err is only for malformed input.
func (b *Board) check(p Pos, c game.Colour) (captures []int, rule Rule, err error) {
	if !c.IsStone() {
		return nil, Legal, errors.Wrapf(ErrInvalidColour, "Unable to place %v at %v", c, p)
	}

	at := p.Index()
	if b.data[at] != None {
		return nil, Occupied, nil
	}

	adj := adjacency[at]
	var hasLiberty bool
	for _, a := range adj {
		if b.data[a.Index()] == None {
			hasLiberty = true
			break
		}
	}

	// neighbours are visited left, up, right, down. A friendly group left without liberties aborts the move,
	// whatever the opponent groups before or after it would have lost.
	var taken [cells]bool
	var opposite int
	var joined bool
	opp := game.Opponent(c)
	for _, a := range adj {
		ai := a.Index()
		switch b.data[ai] {
		case c:
			// all friendly neighbours join into one group through p, so one search covers them all.
			if hasLiberty || joined {
				continue
			}
			joined = true
			if len(b.nolib(ai, at, c)) > 0 {
				return nil, Suicide, nil
			}
		case opp:
			opposite++
			if taken[ai] {
				continue
			}
			for _, prisoner := range b.nolib(ai, at, c) {
				taken[prisoner] = true
				captures = append(captures, prisoner)
			}
		}
	}

	if opposite == len(adj) && len(captures) == 0 {
		return nil, Surrounded, nil
	}
	return captures, Legal, nil
}
