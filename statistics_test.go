package goban

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/gorgonia/goban/game"
	wq "github.com/gorgonia/goban/game/wq"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestStatistics(t *testing.T) {
	assert := assert.New(t)
	var buf bytes.Buffer
	s := NewStatistics(&buf)

	b := wq.Empty()
	assert.NoError(s.Encode(Frame{Board: b, Caption: "start"}))
	var err error
	if b, err = b.WithCell(wq.MustOf(0, 0), game.White); err != nil {
		t.Fatal(err)
	}
	if b, err = b.WithCell(wq.MustOf(1, 0), game.Black); err != nil {
		t.Fatal(err)
	}
	assert.NoError(s.Encode(Frame{Board: b, Caption: "corner, atari", Move: 2}))
	assert.Error(s.Encode(Frame{}))
	assert.Equal(2, s.Len())
	assert.NoError(s.Flush())

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	assert.Len(records, 3)
	assert.Equal(statisticsHeader, records[0])
	assert.Equal([]string{"0", "start", "00000000", "0", "0", "0", "0"}, records[1])
	assert.Equal([]string{"2", "corner, atari", records[2][2], "1", "1", "2", "1"}, records[2])
}

var errFailing = errors.New("failing")

type failing struct{ flushed bool }

func (f *failing) Encode(Frame) error { return errFailing }
func (f *failing) Flush() error       { f.flushed = true; return errFailing }

func TestEncoders(t *testing.T) {
	assert := assert.New(t)
	var buf bytes.Buffer
	s := NewStatistics(&buf)
	f := new(failing)

	es := Encoders{s, f}
	assert.Equal(errFailing, es.Encode(Frame{Board: wq.Empty()}))
	assert.Equal(1, s.Len())

	assert.Equal(errFailing, es.Flush())
	assert.True(f.flushed)
	assert.NotZero(buf.Len())
}
