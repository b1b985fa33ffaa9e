// package 围碁 implements Go (the board game) related code
//
// 围碁 is a bastardized word.
// The first character is read "wei" in Chinese. The second is read "qi" in Chinese.
// However, the charcter 碁 is no longer actively used in Chinese.
// It is however, actively used in Japanese. Specifically, it's read "go" in Japanese.
//
// The main reason why this package is named with unicode characters instead of `package go`
// is because the standard library of the Go language have the prefix "go"
package 围碁

import (
	"fmt"

	"github.com/gorgonia/goban/game"
	"github.com/pkg/errors"
)

// Size is the length of a side of the board.
const Size = 19

const cells = Size * Size

const (
	None  = game.None
	Black = game.Black
	White = game.White
)

// Pos is a position on the board. (0, 0) is the top left, (18, 18) the bottom right.
//
// The zero value is (0, 0). Two Pos are equal iff their coordinates are equal.
type Pos struct {
	x, y int8
}

// tables built at init. They are never written to afterwards.
var (
	positions [cells]Pos
	posHashes [cells]uint32
	adjacency [cells][]Pos
)

// left, up, right, down
var adjacents = [4]struct{ dx, dy int }{
	{-1, 0},
	{0, -1},
	{1, 0},
	{0, 1},
}

func init() {
	backing := make([]Pos, 0, 4*cells)
	for i := range positions {
		x, y := i%Size, i/Size
		positions[i] = Pos{x: int8(x), y: int8(y)}

		// spread the coordinates over all four bytes before avalanching
		posHashes[i] = game.Avalanche(uint32(x) | uint32(y)<<8 | uint32(x)<<16 | uint32(y)<<24)
	}

	for i, p := range positions {
		start := len(backing)
		for _, d := range adjacents {
			x, y := int(p.x)+d.dx, int(p.y)+d.dy
			if !onBoard(x, y) {
				continue
			}
			backing = append(backing, positions[y*Size+x])
		}
		adjacency[i] = backing[start:len(backing):len(backing)]
	}
}

// Of returns the position at (x, y).
func Of(x, y int) (Pos, error) {
	if !onBoard(x, y) {
		return Pos{}, errors.Wrapf(ErrOutOfRange, "position (%d, %d)", x, y)
	}
	return positions[y*Size+x], nil
}

// MustOf is like Of, but panics if (x, y) is not on the board.
func MustOf(x, y int) Pos {
	p, err := Of(x, y)
	if err != nil {
		panic(err)
	}
	return p
}

// FromIndex returns the position of the given row-major index.
func FromIndex(i int) (Pos, error) {
	if i < 0 || i >= cells {
		return Pos{}, errors.Wrapf(ErrOutOfRange, "index %d", i)
	}
	return positions[i], nil
}

// Positions returns every position on the board in row-major order.
func Positions() []Pos {
	retVal := make([]Pos, cells)
	copy(retVal, positions[:])
	return retVal
}

func (p Pos) X() int { return int(p.x) }

func (p Pos) Y() int { return int(p.y) }

// Index returns the row-major index of the position.
func (p Pos) Index() int { return int(p.y)*Size + int(p.x) }

// Hash returns a hash of the position. No two positions share a hash.
func (p Pos) Hash() uint32 { return posHashes[p.Index()] }

func (p Pos) String() string { return fmt.Sprintf("(%d, %d)", p.x, p.y) }

// Neighbours returns the orthogonally adjacent positions of p that are on the board,
// in the order left, up, right, down.
func Neighbours(p Pos) []Pos {
	adj := adjacency[p.Index()]
	retVal := make([]Pos, len(adj))
	copy(retVal, adj)
	return retVal
}

func onBoard(x, y int) bool { return x >= 0 && x < Size && y >= 0 && y < Size }
