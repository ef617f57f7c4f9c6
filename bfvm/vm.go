package bfvm

import (
	"fmt"

	"github.com/reusee/bftape/tapes"
)

type VM struct {
	Source    string
	Program   []OpCode
	IP        int
	Tape      *tapes.Tape
	Cursor    int
	LoopStack []int
	Input     Queue
	Output    Queue

	checkInvariants bool
}

type config struct {
	cells           []byte
	pattern         []byte
	cursor          int
	ip              int
	checkInvariants bool
}

type Option func(*config)

// WithTape sets the initial cells. Values are stored as given.
func WithTape(cells ...byte) Option {
	return func(c *config) {
		c.cells = cells
	}
}

// WithCursor sets the initial cursor.
// Positions outside the initial tape grow it until they are covered.
func WithCursor(cursor int) Option {
	return func(c *config) {
		c.cursor = cursor
	}
}

func WithFillPattern(pattern ...byte) Option {
	return func(c *config) {
		c.pattern = pattern
	}
}

func WithIP(ip int) Option {
	return func(c *config) {
		c.ip = ip
	}
}

// WithInvariantChecks verifies cursor and loop stack bounds after every step.
func WithInvariantChecks() Option {
	return func(c *config) {
		c.checkInvariants = true
	}
}

func New(source string, options ...Option) (*VM, error) {
	if err := Validate(source); err != nil {
		return nil, err
	}

	c := config{
		pattern: []byte{0},
	}
	for _, option := range options {
		option(&c)
	}
	if len(c.pattern) == 0 {
		return nil, fmt.Errorf("fill pattern: %w", ErrInvalidOption)
	}
	if c.ip < 0 {
		return nil, fmt.Errorf("instruction pointer %d: %w", c.ip, ErrInvalidOption)
	}

	tape, err := tapes.New(c.pattern, c.cells)
	if err != nil {
		return nil, err
	}

	cursor := c.cursor
	for cursor >= tape.Len() {
		tape.GrowRight()
	}
	for cursor < 0 {
		tape.GrowLeft()
		cursor++
	}

	return &VM{
		Source:          source,
		Program:         Compile(source),
		IP:              c.ip,
		Tape:            tape,
		Cursor:          cursor,
		checkInvariants: c.checkInvariants,
	}, nil
}

func (v *VM) Finished() bool {
	return v.IP >= len(v.Program)
}

// Cell returns the value under the cursor.
func (v *VM) Cell() (byte, error) {
	return v.Tape.Get(v.Cursor)
}
