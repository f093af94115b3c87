package repl

import (
	"log/slog"

	"github.com/0xRadioAc7iv/go-memhog/core"
	"github.com/0xRadioAc7iv/go-memhog/internal"
	"github.com/0xRadioAc7iv/go-memhog/internal/memory"
)

type options struct {
	amount   uint32
	stats    bool
	color    bool
	logger   *slog.Logger
	gen      *core.Generator
	trim     func() (bool, error)
	snapshot func() memory.Snapshot
}

func defaultOptions() *options {
	cfg := internal.DefaultConfig()
	return &options{
		amount:   cfg.Amount,
		stats:    cfg.Stats,
		trim:     memory.Trim,
		snapshot: memory.Read,
	}
}

// Option configures a Driver.
type Option func(*options)

// WithConfig applies the amount, stats and color settings of cfg.
func WithConfig(cfg *internal.Config) Option {
	return func(o *options) {
		o.amount = cfg.Amount
		o.stats = cfg.Stats
		o.color = cfg.Color
	}
}

// WithAmount sets the initial number of pairs per accumulate command.
func WithAmount(n uint32) Option {
	return func(o *options) {
		o.amount = n
	}
}

// WithStats toggles the memory table printed after each command.
func WithStats(enabled bool) Option {
	return func(o *options) {
		o.stats = enabled
	}
}

// WithColor toggles ANSI styling of the prompt and timing lines.
func WithColor(enabled bool) Option {
	return func(o *options) {
		o.color = enabled
	}
}

// WithLogger sets where operator errors are reported.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithGenerator replaces the random pair generator, e.g. with a seeded one.
func WithGenerator(g *core.Generator) Option {
	return func(o *options) {
		o.gen = g
	}
}

// WithTrimmer replaces the memory trim performed by command 4.
func WithTrimmer(trim func() (bool, error)) Option {
	return func(o *options) {
		o.trim = trim
	}
}

// WithSnapshot replaces how memory statistics are read.
func WithSnapshot(read func() memory.Snapshot) Option {
	return func(o *options) {
		o.snapshot = read
	}
}
