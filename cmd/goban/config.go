package main

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config configures the goban console. Every field can be overridden from the environment.
type Config struct {
	Name    string `env:"GOBAN_NAME"`
	Version string `env:"GOBAN_VERSION"`
	Seed    int64  `env:"GOBAN_SEED"` // seed for "random". 0 seeds from crypto/rand

	GIF       string `env:"GOBAN_GIF"` // if set, every board is written to this file as an animated gif
	GIFWidth  int    `env:"GOBAN_GIF_WIDTH"`
	GIFHeight int    `env:"GOBAN_GIF_HEIGHT"`

	Stats string `env:"GOBAN_STATS"` // if set, per board statistics are written to this file as CSV

	Log string `env:"GOBAN_LOG"` // "-" logs to stderr, a path logs to that file. Empty discards
}

func DefaultConfig() Config {
	return Config{
		Name:      "goban",
		Version:   "0.1",
		GIFWidth:  600,
		GIFHeight: 900,
	}
}

func (c Config) IsValid() bool {
	return c.Name != "" && c.GIFWidth > 0 && c.GIFHeight > 0
}

// loadConfig starts from DefaultConfig and applies whatever is set in the environment.
func loadConfig() (Config, error) {
	conf := DefaultConfig()
	if err := env.Parse(&conf); err != nil {
		return conf, errors.Wrap(err, "parse env")
	}
	if !conf.IsValid() {
		return conf, errors.Errorf("Invalid config %+v", conf)
	}
	return conf, nil
}
