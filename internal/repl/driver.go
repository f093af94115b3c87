// Package repl runs the interactive loop that drives the fill strategies.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/davidmdm/ansi"

	"github.com/0xRadioAc7iv/go-memhog/core"
	"github.com/0xRadioAc7iv/go-memhog/internal"
	"github.com/0xRadioAc7iv/go-memhog/internal/memory"
	"github.com/0xRadioAc7iv/go-memhog/internal/protocol"
)

var (
	yellow = ansi.MakeStyle(ansi.FgYellow).Sprint
	cyan   = ansi.MakeStyle(ansi.FgCyan).Sprint
)

var strategies = map[protocol.Code]core.Strategy{
	protocol.AccumulateLight:     core.Light,
	protocol.AccumulateIterative: core.IterativeCollect,
	protocol.AccumulateConsuming: core.ConsumingCollect,
}

// Driver owns the accumulator and executes operator commands against it.
//
// The accumulator size counts the pairs requested since the last clear or
// reset. It is not derived from the index, so colliding draws are counted
// even though they add nothing to it.
type Driver struct {
	index  *core.InverseIndex
	size   uint64
	amount uint32

	in  *bufio.Reader
	out io.Writer

	gen      *core.Generator
	log      *slog.Logger
	stats    bool
	color    bool
	trim     func() (bool, error)
	snapshot func() memory.Snapshot
}

// New returns a Driver that reads commands from in and writes to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Driver {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.logger == nil {
		o.logger = internal.NoopLogger()
	}
	if o.gen == nil {
		o.gen = core.NewGenerator()
	}

	return &Driver{
		index:    core.NewInverseIndex(),
		amount:   o.amount,
		in:       bufio.NewReader(in),
		out:      out,
		gen:      o.gen,
		log:      o.logger,
		stats:    o.stats,
		color:    o.color,
		trim:     o.trim,
		snapshot: o.snapshot,
	}
}

// Index returns the accumulator.
func (d *Driver) Index() *core.InverseIndex { return d.index }

// Size returns the number of pairs requested since the last clear or reset.
func (d *Driver) Size() uint64 { return d.size }

// Amount returns the number of pairs each accumulate command requests.
func (d *Driver) Amount() uint32 { return d.amount }

// Run prompts for commands until the exit command is given or the input is
// exhausted. Read and parse failures are reported and the loop goes on.
func (d *Driver) Run() {
	for {
		d.printf("%s", d.style(yellow, fmt.Sprintf("Accumulator Size = %d", d.size)))
		d.printf("%s", protocol.Menu)

		line, err := d.readLine()
		if errors.Is(err, io.EOF) && line == "" {
			d.printf("\n")
			return
		}

		start := time.Now()
		if exit := d.Execute(line); exit {
			return
		}
		d.printf("%s\n\n", d.style(cyan, fmt.Sprintf("Executed in %v", time.Since(start))))

		if d.stats {
			d.printf("%s\n\n", memory.Render(d.snapshot()))
		}
	}
}

// Execute parses and runs a single command line. It reports whether the
// command was the exit command.
//
// Errors are reported through the logger and never change state.
func (d *Driver) Execute(line string) (exit bool) {
	cmd, err := protocol.ParseCommand(line)
	if err != nil {
		d.reportError(err)
		return false
	}

	switch cmd.Code {
	case protocol.AccumulateLight, protocol.AccumulateIterative, protocol.AccumulateConsuming:
		d.accumulate(strategies[cmd.Code])
	case protocol.Trim:
		d.trimMemory()
	case protocol.Clear:
		d.index.Clear() // keeps the map's storage for reuse
		d.size = 0
	case protocol.Reset:
		d.index = core.NewInverseIndex()
		d.size = 0
	case protocol.SetAmount:
		d.setAmount()
	case protocol.Exit:
		return true
	}

	return false
}

func (d *Driver) accumulate(s core.Strategy) {
	s.Fill(d.index, d.gen.Pairs(d.amount))
	d.size += uint64(d.amount)

	d.log.Debug("accumulated",
		"strategy", s,
		"amount", d.amount,
		"values", d.index.Len(),
		"keys", d.index.KeyCount(),
	)
}

func (d *Driver) trimMemory() {
	ok, err := d.trim()
	switch {
	case errors.Is(err, memory.ErrTrimNotSupported):
		d.printf("Memory trim not supported\n")
	case err != nil:
		d.log.Error("memory trim failed", "error", err)
	case ok:
		d.printf("Memory released\n")
	default:
		d.printf("No memory released\n")
	}
}

// setAmount reads the new amount from the next input line.
func (d *Driver) setAmount() {
	line, _ := d.readLine()
	n, err := protocol.ParseAmount(line)
	if err != nil {
		d.reportError(err)
		return
	}

	d.amount = n
	d.log.Debug("amount changed", "amount", n)
}

// readLine reads one line. A read failure is reported and whatever was read
// is still returned so the caller can try to parse it; io.EOF is returned to
// the caller untouched.
func (d *Driver) readLine() (string, error) {
	line, err := d.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		d.reportError(fmt.Errorf("%w: %w", protocol.ErrInputRead, err))
		return line, nil
	}
	return line, err
}

func (d *Driver) reportError(err error) {
	var (
		perr *protocol.ParseError
		ierr *protocol.InvalidCommandError
	)

	switch {
	case errors.As(err, &perr):
		d.log.Error("couldn't parse the input", "input", strings.TrimSpace(perr.Input), "error", errors.Unwrap(perr))
	case errors.As(err, &ierr):
		d.log.Error("invalid input", "command", uint32(ierr.Code))
	default:
		d.log.Error(err.Error())
	}
}

func (d *Driver) style(paint func(...any) string, s string) string {
	if !d.color {
		return s
	}
	return paint(s)
}

func (d *Driver) printf(format string, args ...any) {
	fmt.Fprintf(d.out, format, args...)
}
