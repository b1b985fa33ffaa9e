package 围碁

import (
	"fmt"

	"github.com/gorgonia/goban/game"
)

// Rule says whether a move is legal, and if it isn't, why.
type Rule byte

const (
	Legal Rule = iota
	Occupied
	Suicide
	Surrounded // surrounded by opponent stones and capturing none of them
)

func (r Rule) String() string {
	switch r {
	case Legal:
		return "legal"
	case Occupied:
		return "point is occupied"
	case Suicide:
		return "suicide"
	case Surrounded:
		return "surrounded with no captures"
	}
	return fmt.Sprintf("Rule(%d)", byte(r))
}

// Group is a set of connected stones of the same colour.
type Group struct {
	Colour    game.Colour
	Stones    []Pos
	Liberties []Pos
}

// nolib floods the group containing start as though a stone of colour placed were at potential.
// If the group has a liberty it returns nil, otherwise it returns the (row-major) cells of the group.
//
// The group slice doubles as the BFS queue.
func (b *Board) nolib(start, potential int, placed game.Colour) []int {
	colour := func(i int) game.Colour {
		if i == potential {
			return placed
		}
		return b.data[i]
	}

	target := colour(start)
	var seen [cells]bool
	seen[start] = true
	group := []int{start}
	for q := 0; q < len(group); q++ {
		for _, a := range adjacency[group[q]] {
			ai := a.Index()
			switch colour(ai) {
			case None:
				return nil
			case target:
				if !seen[ai] {
					seen[ai] = true
					group = append(group, ai)
				}
			}
		}
	}
	return group
}

// Groups returns all the groups on the board, ordered by the row-major index of their first stone.
// Liberties are listed in the order they were found.
func (b *Board) Groups() []Group {
	var retVal []Group
	var seen [cells]bool
	for i, c := range b.data {
		if c == None || seen[i] {
			continue
		}
		retVal = append(retVal, b.group(i, &seen))
	}
	return retVal
}

// GroupAt returns the group that the stone at p belongs to. ok is false if p is empty.
func (b *Board) GroupAt(p Pos) (g Group, ok bool) {
	i := p.Index()
	if b.data[i] == None {
		return Group{}, false
	}
	var seen [cells]bool
	return b.group(i, &seen), true
}

func (b *Board) group(start int, seen *[cells]bool) Group {
	c := b.data[start]
	var libs [cells]bool
	g := Group{Colour: c}

	seen[start] = true
	queue := []int{start}
	for q := 0; q < len(queue); q++ {
		i := queue[q]
		g.Stones = append(g.Stones, positions[i])
		for _, a := range adjacency[i] {
			ai := a.Index()
			switch b.data[ai] {
			case None:
				if !libs[ai] {
					libs[ai] = true
					g.Liberties = append(g.Liberties, a)
				}
			case c:
				if !seen[ai] {
					seen[ai] = true
					queue = append(queue, ai)
				}
			}
		}
	}
	return g
}
