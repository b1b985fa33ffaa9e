package goban

import (
	"github.com/gorgonia/goban/game"
	wq "github.com/gorgonia/goban/game/wq"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
	"gorgonia.org/tensor/native"
	"gorgonia.org/vecf32"
)

// EncodeTwoPlayerBoard encodes black as 1, white as -1 for each stone placed
func EncodeTwoPlayerBoard(b *wq.Board, prealloc []float32) []float32 {
	if len(prealloc) != cells {
		prealloc = make([]float32, cells)
	}

	for i, c := range b.Cells() {
		switch c {
		case game.Black:
			prealloc[i] = 1
		case game.White:
			prealloc[i] = -1
		default:
			prealloc[i] = 0
		}
	}
	return prealloc
}

// EncodePlanes encodes a board as three planes of 361 values:
//	- the board from black's point of view (own stones 1, opponent stones -1)
//	- the board from white's point of view
//	- the player to move: all 1 for black, all -1 for white
func EncodePlanes(b *wq.Board, toMove game.Colour) []float32 {
	retVal := make([]float32, 3*cells)
	encodeBlack(b, retVal[:cells])
	encodeWhite(b, retVal[cells:2*cells])

	var encodedPlayer float32
	switch toMove {
	case game.Black:
		encodedPlayer = 1
	case game.White:
		encodedPlayer = -1
	}
	player := retVal[2*cells:]
	for i := range player {
		player[i] = encodedPlayer
	}
	return retVal
}

func encodeBlack(b *wq.Board, prealloc []float32) []float32 {
	return EncodeTwoPlayerBoard(b, prealloc)
}

func encodeWhite(b *wq.Board, prealloc []float32) []float32 {
	retVal := EncodeTwoPlayerBoard(b, prealloc)
	vecf32.Scale(retVal, -1)
	return retVal
}

// RotateBoard returns a copy of a row-major m x n board turned a quarter turn.
func RotateBoard(board []float32, m, n int) ([]float32, error) {
	if m != n {
		return nil, errors.Errorf("Cannot handle m %d, n %d. This function only takes square boards", m, n)
	}
	if len(board) != m*n {
		return nil, errors.Errorf("Expected a board of %d. Got %d", m*n, len(board))
	}
	copied := make([]float32, len(board))
	copy(copied, board)
	T := tensor.New(tensor.WithShape(m, n), tensor.WithBacking(copied))
	it, err := native.MatrixF32(T)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	for i := 0; i < m/2; i++ {
		mi1 := m - i - 1
		for j := i; j < mi1; j++ {
			mj1 := m - j - 1
			tmp := it[i][j]
			// right to top
			it[i][j] = it[j][mi1]

			// bottom to right
			it[j][mi1] = it[mi1][mj1]

			// left to bottom
			it[mi1][mj1] = it[mj1][i]

			// tmp is left
			it[mj1][i] = tmp
		}
	}
	return copied, nil
}
