// goban is a debug console for an immutable 19x19 Go board. It reads commands from stdin, one per line, and replies on
// stdout in the GTP format. Configuration comes from the environment (see Config).
package main

import (
	"bufio"
	"io"
	"log"
	"os"

	"github.com/gorgonia/goban"
	"github.com/gorgonia/goban/encoding/gif"
	"github.com/gorgonia/goban/internal/console"
	"github.com/pkg/errors"
)

func main() {
	conf, err := loadConfig()
	if err != nil {
		log.Fatalf("%+v", err)
	}
	if err := run(conf, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(conf Config, r io.Reader, w io.Writer) error {
	e := console.New(conf.Name, conf.Version, nil)
	if conf.Seed != 0 {
		e.Seed(conf.Seed)
	}

	switch conf.Log {
	case "":
	case "-":
		e.Logger = log.New(os.Stderr, conf.Name+" ", log.LstdFlags)
	default:
		f, err := os.OpenFile(conf.Log, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return errors.Wrapf(err, "Unable to open log %q", conf.Log)
		}
		defer f.Close()
		e.Logger = log.New(f, conf.Name+" ", log.LstdFlags)
	}

	var gifs *gif.Encoder
	var stats *goban.Statistics
	var encs goban.Encoders
	if conf.GIF != "" {
		gifs = gif.NewGifEncoder(conf.GIFHeight, conf.GIFWidth)
		encs = append(encs, gifs)
	}
	if conf.Stats != "" {
		stats = goban.NewStatistics(nil)
		encs = append(encs, stats)
	}
	if len(encs) > 0 {
		e.Encoder = encs
	}

	in, out := e.Start()
	done := make(chan struct{})
	defer close(done)
	go feed(r, in, done)

	bw := bufio.NewWriter(w)
	for reply := range out {
		if _, err := bw.WriteString(reply); err != nil {
			return errors.WithStack(err)
		}
		if err := bw.Flush(); err != nil {
			return errors.WithStack(err)
		}
	}

	if gifs != nil && gifs.Len() > 0 {
		if err := writeTo(conf.GIF, func(f io.Writer) error { gifs.Writer = f; return gifs.Flush() }); err != nil {
			return errors.WithMessage(err, "Unable to write gif")
		}
		log.Printf("Wrote %d boards to %v", gifs.Len(), conf.GIF)
	}
	if stats != nil {
		if err := writeTo(conf.Stats, func(f io.Writer) error { stats.Writer = f; return stats.Flush() }); err != nil {
			return errors.WithMessage(err, "Unable to write statistics")
		}
	}
	return nil
}

// feed sends every line of r to in, and closes in once r is exhausted. It gives up as soon as done is closed, as
// the engine stops reading after "quit".
func feed(r io.Reader, in chan<- string, done <-chan struct{}) {
	defer close(in)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case in <- scanner.Text():
		case <-done:
			return
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("Unable to read input: %v", err)
	}
}

func writeTo(filename string, flush func(io.Writer) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "Unable to create %q", filename)
	}
	if err := flush(f); err != nil {
		f.Close()
		return err
	}
	return errors.WithStack(f.Close())
}
