// Package console is a line based debug console for a board. Replies follow the GTP format:
//	= [id] result
//	? [id] error
// each followed by a blank line.
package console

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"strconv"
	"strings"

	"github.com/gorgonia/goban"
	wq "github.com/gorgonia/goban/game/wq"
	"github.com/gorgonia/goban/rng"
	"github.com/pkg/errors"
)

// Engine holds a history of boards and executes commands against the latest one.
//
// An Engine must only be driven through the channels returned by Start.
type Engine struct {
	boards []*wq.Board // boards[len(boards)-1] is the current board
	moves  int         // boards produced so far

	known map[string]Command

	ch   chan string
	ret  chan string
	done bool

	rand *rand.Rand

	// Encoder, if set, receives every board the engine produces.
	Encoder goban.OutputEncoder
	Logger  *log.Logger

	name, version string
}

func New(name, version string, known map[string]Command) *Engine {
	if known == nil {
		known = StandardLib()
	}
	return &Engine{
		boards:  []*wq.Board{wq.Empty()},
		known:   known,
		rand:    rng.Random(),
		Logger:  log.New(io.Discard, "", 0),
		name:    name,
		version: version,
	}
}

// Start runs the engine in its own goroutine. Each command sent on input yields exactly one reply on output, except
// for empty lines and comments which yield none. output is closed after "quit", or when input is closed.
func (e *Engine) Start() (input, output chan string) {
	e.ch = make(chan string)
	e.ret = make(chan string)
	go e.start()
	return e.ch, e.ret
}

// Seed reseeds the generator used by "random".
func (e *Engine) Seed(seed int64) { e.rand = rng.New(seed) }

// Board returns the current board.
func (e *Engine) Board() *wq.Board { return e.boards[len(e.boards)-1] }

func (e *Engine) start() {
	defer close(e.ret)
	for cmd := range e.ch {
		id, x, args, err := e.parse(cmd)
		if x == nil && err == nil {
			continue
		}
		if err != nil {
			e.Logger.Printf("%q: %v", cmd, err)
			e.ret <- handleErr(id, err)
			continue
		}
		id, result, err := x.Do(id, args, e)
		if err != nil {
			e.Logger.Printf("%q: %v", cmd, err)
		}
		e.ret <- handleResult(id, result, err)
		if e.done {
			return
		}
	}
}

// push makes b the current board.
func (e *Engine) push(b *wq.Board, caption string) {
	e.boards = append(e.boards, b)
	e.record(caption)
}

// reset discards the history.
func (e *Engine) reset() {
	e.boards = e.boards[:1]
	e.boards[0] = wq.Empty()
	e.record("clear_board")
}

func (e *Engine) record(caption string) {
	e.moves++
	if e.Encoder == nil {
		return
	}
	f := goban.Frame{Board: e.Board(), Caption: caption, Move: e.moves}
	if err := e.Encoder.Encode(f); err != nil {
		e.Logger.Printf("Unable to encode board %d: %v", e.moves, err)
	}
}

// refer to this
// https://www.lysator.liu.se/%7Egunnar/gtp/gtp2-spec-draft2/gtp2-spec.html#SECTION00030000000000000000
func (e *Engine) parse(cmd string) (id int, x Command, args []string, err error) {
	cmd = preprocess(cmd)
	tokens := strings.Fields(cmd)
	if len(tokens) == 0 {
		return -1, nil, nil, nil
	}
	if id, err = strconv.Atoi(tokens[0]); err == nil {
		// we've consumed ID
		tokens = tokens[1:]
	} else {
		// set err to nil because ID is optional
		err = nil
		id = -1
	}

	if len(tokens) == 0 {
		return id, nil, nil, nil // GNUGo some how does nothing when there are no tokens left. An ID may be passed in but it'll be ignored
	}

	var ok bool
	if x, ok = e.known[tokens[0]]; !ok {
		return id, nil, nil, errors.Errorf("Unknown command %q", tokens[0])
	}
	if len(tokens) > 1 {
		args = tokens[1:]
	}
	return
}

func preprocess(a string) string {
	if i := strings.IndexByte(a, '#'); i >= 0 {
		a = a[:i]
	}
	return strings.ToLower(strings.TrimSpace(a))
}

func handleErr(id int, err error) string {
	if id != -1 {
		return fmt.Sprintf("? %d %v\n\n", id, err)
	}
	return fmt.Sprintf("? %v\n\n", err)
}

func handleResult(id int, result string, err error) string {
	if err != nil {
		return handleErr(id, err)
	}

	if id != -1 {
		return fmt.Sprintf("= %d %v\n\n", id, result)
	}
	return fmt.Sprintf("= %v\n\n", result)
}
