package utils

import (
	"flag"
	"fmt"
	"math"
	"os"

	"golang.org/x/term"

	"github.com/0xRadioAc7iv/go-memhog/internal"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// HandleCLIInputs parses the process arguments into a Config.
func HandleCLIInputs() (*internal.Config, error) {
	return ParseFlags(flag.CommandLine, os.Args[1:], func() bool {
		return term.IsTerminal(int(os.Stdout.Fd()))
	})
}

// ParseFlags parses args with fs. isTerminal decides the "auto" color mode.
func ParseFlags(fs *flag.FlagSet, args []string, isTerminal func() bool) (*internal.Config, error) {
	cfg := internal.DefaultConfig()

	amount := fs.Uint64("amount", internal.DEFAULT_AMOUNT, "Pairs inserted by each accumulate command")
	color := fs.String("color", ColorAuto, "Colorize output: auto, always or never")
	fs.BoolVar(&cfg.Stats, "stats", internal.DEFAULT_STATS, "Print memory statistics after every command")
	fs.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&cfg.Gops, "gops", false, "Start the gops diagnostics agent")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *amount > math.MaxUint32 {
		return nil, fmt.Errorf("amount %d is larger than %d", *amount, uint32(math.MaxUint32))
	}
	cfg.Amount = uint32(*amount)

	switch *color {
	case ColorAuto:
		cfg.Color = isTerminal()
	case ColorAlways:
		cfg.Color = true
	case ColorNever:
		cfg.Color = false
	default:
		return nil, fmt.Errorf("invalid color mode %q: want %s, %s or %s", *color, ColorAuto, ColorAlways, ColorNever)
	}

	return cfg, nil
}
