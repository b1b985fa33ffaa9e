package goban

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/gorgonia/goban/game"
	wq "github.com/gorgonia/goban/game/wq"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
	"gorgonia.org/tensor/native"
	"gorgonia.org/vecf32"
)

const cells = wq.Size * wq.Size

// Values is a mutable 19x19 overlay of float32 annotations (influence, ownership, policy...), addressed like a board.
//
// Unlike a *wq.Board, Values is mutable and not safe for concurrent use.
type Values struct {
	data *tensor.Dense
	it   [][]float32 // it[y][x]
}

// NewValues creates an overlay of zeroes.
func NewValues() *Values { return valuesOf(make([]float32, cells)) }

// ValuesFrom creates an overlay from a row-major slice. The slice is copied.
func ValuesFrom(a []float32) (*Values, error) {
	if len(a) != cells {
		return nil, errors.Wrapf(wq.ErrInvalidState, "expected %d values. Got %d", cells, len(a))
	}
	backing := make([]float32, cells)
	copy(backing, a)
	return valuesOf(backing), nil
}

func valuesOf(backing []float32) *Values {
	data := tensor.New(tensor.WithShape(wq.Size, wq.Size), tensor.WithBacking(backing))
	it, err := native.MatrixF32(data)
	if err != nil {
		panic(err)
	}
	return &Values{data: data, it: it}
}

func (v *Values) At(p wq.Pos) float32 { return v.it[p.Y()][p.X()] }

func (v *Values) Set(p wq.Pos, val float32) { v.it[p.Y()][p.X()] = val }

func (v *Values) Add(p wq.Pos, delta float32) { v.it[p.Y()][p.X()] += delta }

func (v *Values) AtXY(x, y int) (float32, error) {
	p, err := wq.Of(x, y)
	if err != nil {
		return 0, err
	}
	return v.At(p), nil
}

func (v *Values) SetXY(x, y int, val float32) error {
	p, err := wq.Of(x, y)
	if err != nil {
		return err
	}
	v.Set(p, val)
	return nil
}

// Data returns the row-major backing slice. Writes to it are visible in the overlay.
func (v *Values) Data() []float32 { return v.data.Data().([]float32) }

// Tensor returns the backing (19, 19) tensor.
func (v *Values) Tensor() *tensor.Dense { return v.data }

// Reset zeroes the overlay.
func (v *Values) Reset() { v.data.Zero() }

func (v *Values) Clone() *Values {
	backing := make([]float32, cells)
	copy(backing, v.Data())
	return valuesOf(backing)
}

// Rotate returns a copy of the overlay turned a quarter turn.
func (v *Values) Rotate() (*Values, error) {
	rotated, err := RotateBoard(v.Data(), wq.Size, wq.Size)
	if err != nil {
		return nil, err
	}
	return valuesOf(rotated), nil
}

// Normalize scales the overlay so that the largest magnitude is 1. NaNs are zeroed first.
// An all zero overlay is left as is.
func (v *Values) Normalize() {
	data := v.Data()
	var peak float32
	for i, x := range data {
		if math32.IsNaN(x) {
			data[i] = 0
			continue
		}
		peak = math32.Max(peak, math32.Abs(x))
	}
	if peak == 0 || math32.IsInf(peak, 0) {
		return
	}
	vecf32.Scale(data, 1/peak)
}

// Format implements fmt.Formatter. Each row is printed on its own line.
func (v *Values) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v':
		for _, row := range v.it {
			fmt.Fprint(s, "⎢ ")
			for _, col := range row {
				fmt.Fprintf(s, "%5.2f ", col)
			}
			fmt.Fprint(s, "⎥\n")
		}
	}
}

// Counts is a mutable 19x19 overlay of integer annotations, addressed like a board.
//
// Counts is not safe for concurrent use.
type Counts struct {
	data *tensor.Dense
	it   [][]int // it[y][x]
}

// NewCounts creates an overlay of zeroes.
func NewCounts() *Counts {
	data := tensor.New(tensor.WithShape(wq.Size, wq.Size), tensor.WithBacking(make([]int, cells)))
	it, err := native.MatrixI(data)
	if err != nil {
		panic(err)
	}
	return &Counts{data: data, it: it}
}

func (c *Counts) At(p wq.Pos) int { return c.it[p.Y()][p.X()] }

func (c *Counts) Set(p wq.Pos, val int) { c.it[p.Y()][p.X()] = val }

func (c *Counts) Add(p wq.Pos, delta int) { c.it[p.Y()][p.X()] += delta }

func (c *Counts) AtXY(x, y int) (int, error) {
	p, err := wq.Of(x, y)
	if err != nil {
		return 0, err
	}
	return c.At(p), nil
}

func (c *Counts) SetXY(x, y int, val int) error {
	p, err := wq.Of(x, y)
	if err != nil {
		return err
	}
	c.Set(p, val)
	return nil
}

// Data returns the row-major backing slice. Writes to it are visible in the overlay.
func (c *Counts) Data() []int { return c.data.Data().([]int) }

func (c *Counts) Tensor() *tensor.Dense { return c.data }

func (c *Counts) Reset() { c.data.Zero() }

func (c *Counts) Format(s fmt.State, r rune) {
	switch r {
	case 's', 'v':
		for _, row := range c.it {
			fmt.Fprint(s, "⎢ ")
			for _, col := range row {
				fmt.Fprintf(s, "%2d ", col)
			}
			fmt.Fprint(s, "⎥\n")
		}
	}
}

// LibertyCounts annotates every stone with the number of liberties of its group. Empty points are 0.
func LibertyCounts(b *wq.Board) *Counts {
	retVal := NewCounts()
	for _, g := range b.Groups() {
		for _, p := range g.Stones {
			retVal.Set(p, len(g.Liberties))
		}
	}
	return retVal
}

// Ownership marks every stone +1 for Black and -1 for White, and spreads half of that onto empty neighbours.
// It is a crude influence map meant as an example consumer of Values.
func Ownership(b *wq.Board) *Values {
	retVal := NewValues()
	for _, p := range wq.Positions() {
		var sign float32
		switch b.At(p) {
		case game.Black:
			sign = 1
		case game.White:
			sign = -1
		default:
			continue
		}
		retVal.Add(p, sign)
		for _, n := range wq.Neighbours(p) {
			if b.At(n) == game.None {
				retVal.Add(n, sign/2)
			}
		}
	}
	return retVal
}
