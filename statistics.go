package goban

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/gorgonia/goban/game"
	"github.com/pkg/errors"
)

var statisticsHeader = []string{"move", "caption", "hash", "black", "white", "groups", "atari"}

// Statistics tallies a few numbers about every frame it is given, and writes them out as CSV on Flush.
// It implements OutputEncoder.
type Statistics struct {
	io.Writer

	records [][]string
}

var _ OutputEncoder = &Statistics{}

func NewStatistics(w io.Writer) *Statistics {
	return &Statistics{Writer: w}
}

func (s *Statistics) Encode(f Frame) error {
	if f.Board == nil {
		return errors.New("Cannot tally a frame without a board")
	}
	b := f.Board
	var atari int
	groups := b.Groups()
	for _, g := range groups {
		if len(g.Liberties) == 1 {
			atari++
		}
	}
	s.records = append(s.records, []string{
		strconv.Itoa(f.Move),
		f.Caption,
		fmt.Sprintf("%08x", uint32(b.Hash())),
		strconv.Itoa(b.Stones(game.Black)),
		strconv.Itoa(b.Stones(game.White)),
		strconv.Itoa(len(groups)),
		strconv.Itoa(atari),
	})
	return nil
}

// Len returns the number of frames tallied so far.
func (s *Statistics) Len() int { return len(s.records) }

// Flush writes the header and every row tallied so far.
func (s *Statistics) Flush() error {
	if s.Writer == nil {
		return errors.New("No writer to flush statistics into")
	}
	w := csv.NewWriter(s.Writer)
	if err := w.Write(statisticsHeader); err != nil {
		return errors.WithStack(err)
	}
	if err := w.WriteAll(s.records); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
