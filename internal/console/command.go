package console

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gorgonia/goban/encoding/dot"
	"github.com/gorgonia/goban/game"
	wq "github.com/gorgonia/goban/game/wq"
	"github.com/pkg/errors"
)

type Command interface {
	Do(id int, args []string, e *Engine) (int, string, error)
}

type stdlib func(e *Engine) string

type stdlib2 func(e *Engine, args []string) (string, error)

func (f stdlib) Do(id int, args []string, e *Engine) (int, string, error) {
	str := f(e)
	return id, str, nil
}

func (f stdlib2) Do(id int, args []string, e *Engine) (int, string, error) {
	str, err := f(e, args)
	return id, str, err
}

func protocolVersion(e *Engine) string { return "2" }
func name(e *Engine) string            { return e.name }
func version(e *Engine) string         { return e.version }

func listCommands(e *Engine) string {
	cmds := make([]string, 0, len(e.known))
	for c := range e.known {
		cmds = append(cmds, c)
	}
	sort.Strings(cmds)
	return strings.Join(cmds, "\n")
}

func quit(e *Engine) string       { e.done = true; return "" }
func clearBoard(e *Engine) string { e.reset(); return "" }
func showboard(e *Engine) string  { return "\n" + strings.TrimRight(fmt.Sprintf("%v", e.Board()), "\n") }
func hash(e *Engine) string       { return fmt.Sprintf("%#08x", uint32(e.Board().Hash())) }

func undo(e *Engine, args []string) (string, error) {
	if len(e.boards) == 1 {
		return "", errors.New("cannot undo")
	}
	e.boards = e.boards[:len(e.boards)-1]
	e.record("undo")
	return "", nil
}

func knownCommand(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"known_command\"")
	}
	if _, ok := e.known[args[0]]; ok {
		return "true", nil
	}
	return "false", nil
}

// colourAndVertex parses the "<colour> <vertex>" arguments that most board commands take.
func colourAndVertex(cmd string, args []string) (game.Colour, wq.Pos, error) {
	if len(args) < 2 {
		return game.None, wq.Pos{}, errors.Errorf("Not enough arguments for %q", cmd)
	}
	c, ok := game.ParseColour(args[0])
	if !ok {
		return game.None, wq.Pos{}, errors.Wrapf(wq.ErrInvalidColour, "%q", args[0])
	}
	p, err := wq.ParseVertex(args[1])
	if err != nil {
		return game.None, wq.Pos{}, errors.WithMessage(err, "Unable to parse vertex")
	}
	return c, p, nil
}

func play(e *Engine, args []string) (string, error) {
	c, p, err := colourAndVertex("play", args)
	if err != nil {
		return "", err
	}
	b := e.Board()
	next, rule, err := b.Move(p, c)
	if err != nil {
		return "", err
	}
	if next == nil {
		return "", errors.Errorf("illegal move: %v", rule)
	}
	e.push(next, fmt.Sprintf("%v %v", c, p.Vertex()))
	return "", nil
}

func set(e *Engine, args []string) (string, error) {
	c, p, err := colourAndVertex("set", args)
	if err != nil {
		return "", err
	}
	next, err := e.Board().WithCell(p, c)
	if err != nil {
		return "", err
	}
	e.push(next, fmt.Sprintf("set %v %v", c, p.Vertex()))
	return "", nil
}

func check(e *Engine, args []string) (string, error) {
	c, p, err := colourAndVertex("check", args)
	if err != nil {
		return "", err
	}
	rule, err := e.Board().Check(p, c)
	if err != nil {
		return "", err
	}
	return rule.String(), nil
}

func groups(e *Engine, args []string) (string, error) {
	s, err := dot.Groups(e.Board())
	if err != nil {
		return "", err
	}
	return "\n" + strings.TrimRight(s, "\n"), nil
}

func stones(e *Engine, args []string) (string, error) {
	b := e.Board()
	return fmt.Sprintf("black %d white %d", b.Stones(game.Black), b.Stones(game.White)), nil
}

// random plays a uniformly chosen legal move. It replies with the vertex played, or "pass" if there are no legal
// moves.
func random(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"random\"")
	}
	c, ok := game.ParseColour(args[0])
	if !ok || !c.IsStone() {
		return "", errors.Wrapf(wq.ErrInvalidColour, "%q", args[0])
	}
	b := e.Board()
	positions := wq.Positions()
	for _, i := range e.rand.Perm(len(positions)) {
		p := positions[i]
		next, legal, err := b.Place(p, c)
		if err != nil {
			return "", err
		}
		if legal {
			e.push(next, fmt.Sprintf("%v %v", c, p.Vertex()))
			return p.Vertex(), nil
		}
	}
	return "pass", nil
}

func StandardLib() map[string]Command {
	return map[string]Command{
		"protocol_version": stdlib(protocolVersion),
		"name":             stdlib(name),
		"version":          stdlib(version),
		"list_commands":    stdlib(listCommands),
		"quit":             stdlib(quit),
		"clear_board":      stdlib(clearBoard),
		"showboard":        stdlib(showboard),
		"hash":             stdlib(hash),

		"known_command": stdlib2(knownCommand),
		"undo":          stdlib2(undo),
		"play":          stdlib2(play),
		"set":           stdlib2(set),
		"check":         stdlib2(check),
		"groups":        stdlib2(groups),
		"stones":        stdlib2(stones),
		"random":        stdlib2(random),
	}
}
