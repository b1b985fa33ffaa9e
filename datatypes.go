// Package goban holds the analysis side of an immutable Go board: per-cell overlays, board encoders
// and the interface that renderers implement.
//
// The board itself lives in game/wq.
package goban

import (
	wq "github.com/gorgonia/goban/game/wq"
)

// Frame is a single board to be rendered, along with a line of text describing it.
type Frame struct {
	Board   *wq.Board
	Caption string
	Move    int // position of the board in the sequence, starting at 1
}

// OutputEncoder encodes a sequence of frames as whatever.
//
// An example OutputEncoder is the GifEncoder. Another example would be a logger.
type OutputEncoder interface {
	Encode(f Frame) error
	Flush() error
}

// Encoders fans every frame out to all of its encoders.
type Encoders []OutputEncoder

func (es Encoders) Encode(f Frame) error {
	for _, e := range es {
		if err := e.Encode(f); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes every encoder, returning the first error encountered.
func (es Encoders) Flush() error {
	var retVal error
	for _, e := range es {
		if err := e.Flush(); err != nil && retVal == nil {
			retVal = err
		}
	}
	return retVal
}
