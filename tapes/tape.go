package tapes

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange   = errors.New("tape index out of range")
	ErrEmptyPattern = errors.New("empty fill pattern")
)

// Tape is a line of byte cells that grows on demand at both ends.
// Cells are kept in a buffer with a movable head so prepending does not shift existing cells.
type Tape struct {
	buf        []byte
	head       int
	length     int
	pattern    []byte
	fillOffset int
}

func New(pattern []byte, cells []byte) (*Tape, error) {
	return Restore(pattern, cells, 0)
}

// Restore rebuilds a tape from its cells and fill state.
func Restore(pattern []byte, cells []byte, fillOffset int) (*Tape, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	if fillOffset > 0 || fillOffset <= -len(pattern) {
		return nil, fmt.Errorf("fill offset %d not in (-%d, 0]", fillOffset, len(pattern))
	}
	t := &Tape{
		pattern:    append([]byte(nil), pattern...),
		fillOffset: fillOffset,
	}
	if len(cells) == 0 {
		cells = []byte{t.fill(fillOffset)}
	}
	t.buf = append(make([]byte, 0, max(len(cells), minCapacity)), cells...)
	t.buf = t.buf[:cap(t.buf)]
	t.length = len(cells)
	return t, nil
}

const minCapacity = 16

func (t *Tape) Len() int {
	return t.length
}

func (t *Tape) Get(index int) (byte, error) {
	if index < 0 || index >= t.length {
		return 0, fmt.Errorf("get %d of %d: %w", index, t.length, ErrOutOfRange)
	}
	return t.buf[t.head+index], nil
}

// Set stores value modulo 256.
func (t *Tape) Set(index int, value int) error {
	if index < 0 || index >= t.length {
		return fmt.Errorf("set %d of %d: %w", index, t.length, ErrOutOfRange)
	}
	t.buf[t.head+index] = Wrap(value)
	return nil
}

// Wrap reduces value into a cell value, negative values included.
func Wrap(value int) byte {
	return byte(((value % 256) + 256) % 256)
}

func (t *Tape) GrowRight() {
	if t.head+t.length == len(t.buf) {
		t.reserve(false)
	}
	t.buf[t.head+t.length] = t.fill(t.length + t.fillOffset)
	t.length++
}

// GrowLeft prepends one cell. Every existing index shifts up by one.
func (t *Tape) GrowLeft() {
	t.fillOffset--
	value := t.fill(t.fillOffset)
	if t.fillOffset == -len(t.pattern) {
		t.fillOffset = 0
	}
	if t.head == 0 {
		t.reserve(true)
	}
	t.head--
	t.buf[t.head] = value
	t.length++
}

func (t *Tape) reserve(front bool) {
	extra := max(len(t.buf), minCapacity)
	buf := make([]byte, len(t.buf)+extra)
	head := t.head
	if front {
		head += extra
	}
	copy(buf[head:], t.buf[t.head:t.head+t.length])
	t.buf = buf
	t.head = head
}

// fill returns the pattern value for a logical position, where 0 is the first cell of the initial tape
func (t *Tape) fill(pos int) byte {
	n := len(t.pattern)
	return t.pattern[((pos%n)+n)%n]
}

func (t *Tape) Cells() []byte {
	return append([]byte(nil), t.buf[t.head:t.head+t.length]...)
}

func (t *Tape) Pattern() []byte {
	return append([]byte(nil), t.pattern...)
}

func (t *Tape) FillOffset() int {
	return t.fillOffset
}
