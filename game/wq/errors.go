package 围碁

import (
	"github.com/pkg/errors"
)

// Malformed input is reported with one of these, wrapped with the offending value.
// Use errors.Cause to recover them.
var (
	ErrOutOfRange    = errors.New("out of bounds")
	ErrInvalidColour = errors.New("invalid colour")
	ErrInvalidState  = errors.New("invalid board state")
)
