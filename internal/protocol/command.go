package protocol

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Code is the number an operator types to pick a command.
type Code uint32

const (
	Exit Code = iota
	AccumulateLight
	AccumulateIterative
	AccumulateConsuming
	Trim
	Clear
	Reset
	SetAmount
)

// Command represents a parsed operator command.
type Command struct {
	Code Code
}

var (
	// ErrInputRead is returned when reading a line from the operator fails.
	ErrInputRead = errors.New("error reading the input")

	// ErrEmptyInput is returned for a line with no words on it.
	ErrEmptyInput = errors.New("empty input")

	// ErrNotSingleNumber is returned for a line holding anything besides one
	// bare number, such as several words or a quoted number.
	ErrNotSingleNumber = errors.New("expected a single number")
)

// ParseError indicates a line that is not a valid non-negative integer.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ParseError struct {
	Input string
	cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("couldn't parse the input %q: %v", e.Input, e.cause)
}

func (e *ParseError) Unwrap() error { return e.cause }

// InvalidCommandError indicates a number that is not a known command code.
type InvalidCommandError struct {
	Code Code
}

func (e *InvalidCommandError) Error() string {
	return fmt.Sprintf("invalid input: %d", e.Code)
}

// Valid reports whether c is one of the known command codes.
func (c Code) Valid() bool {
	return c <= SetAmount
}

// ParseLine splits an input line into words, honouring shell quoting.
func ParseLine(line string) ([]string, error) {
	words, err := shellquote.Split(strings.TrimSpace(line))
	if err != nil {
		return nil, &ParseError{Input: line, cause: err}
	}
	if len(words) == 0 {
		return nil, &ParseError{Input: line, cause: ErrEmptyInput}
	}
	return words, nil
}

// ParseUint parses a single non-negative 32 bit integer.
func ParseUint(word string) (uint32, error) {
	n, err := strconv.ParseUint(word, 10, 32)
	if err != nil {
		return 0, &ParseError{Input: word, cause: err}
	}
	return uint32(n), nil
}

// ParseAmount parses a line holding exactly one non-negative integer.
func ParseAmount(line string) (uint32, error) {
	words, err := ParseLine(line)
	if err != nil {
		return 0, err
	}
	if len(words) != 1 || words[0] != strings.TrimSpace(line) {
		return 0, &ParseError{Input: line, cause: ErrNotSingleNumber}
	}
	return ParseUint(words[0])
}

// ParseCommand decodes an input line into a Command.
//
// The line must hold a single non-negative integer naming a known command.
func ParseCommand(line string) (*Command, error) {
	n, err := ParseAmount(line)
	if err != nil {
		return nil, err
	}

	code := Code(n)
	if !code.Valid() {
		return nil, &InvalidCommandError{Code: code}
	}

	return &Command{Code: code}, nil
}
