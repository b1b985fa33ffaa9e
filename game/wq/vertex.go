package 围碁

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Vertex returns the GTP name of the position, e.g. "A19" for (0, 0). The letter I is skipped.
func (p Pos) Vertex() string {
	letter := 'A' + rune(p.x)
	if letter >= 'I' {
		letter++
	}
	return fmt.Sprintf("%c%d", letter, Size-int(p.y))
}

// ParseVertex parses either a GTP vertex ("D4", case insensitive) or a pair of zero based coordinates ("3,15").
func ParseVertex(s string) (Pos, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexByte(s, ','); i >= 0 {
		x, err := strconv.Atoi(strings.TrimSpace(s[:i]))
		if err != nil {
			return Pos{}, errors.WithMessage(err, "Unable to parse x coordinate")
		}
		y, err := strconv.Atoi(strings.TrimSpace(s[i+1:]))
		if err != nil {
			return Pos{}, errors.WithMessage(err, "Unable to parse y coordinate")
		}
		return Of(x, y)
	}

	if len(s) < 2 {
		return Pos{}, errors.Errorf("vertex %q too short", s)
	}

	letter := s[0]
	if letter < 'a' || letter > 'z' {
		return Pos{}, errors.Errorf("letter part of vertex %q not in range a-z", s)
	}
	if letter == 'i' {
		return Pos{}, errors.Errorf("letter i not permitted in vertex %q", s)
	}
	x := int(letter - 'a')
	if letter > 'i' {
		x--
	}

	n, err := strconv.Atoi(s[1:])
	if err != nil {
		return Pos{}, errors.WithMessage(err, "Unable to parse number part of vertex")
	}
	return Of(x, Size-n)
}
