package bfvm

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/reusee/bftape/tapes"
)

// State is the serializable form of a VM.
type State struct {
	Source     string `cbor:"1,keyasint"`
	IP         int    `cbor:"2,keyasint"`
	Cursor     int    `cbor:"3,keyasint"`
	Cells      []byte `cbor:"4,keyasint"`
	Pattern    []byte `cbor:"5,keyasint"`
	FillOffset int    `cbor:"6,keyasint"`
	LoopStack  []int  `cbor:"7,keyasint,omitempty"`
	Input      []byte `cbor:"8,keyasint,omitempty"`
	Output     []byte `cbor:"9,keyasint,omitempty"`
}

var encMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Errorf("bfvm: cbor enc mode: %w", err))
	}
	encMode = em
}

func (v *VM) State() State {
	return State{
		Source:     v.Source,
		IP:         v.IP,
		Cursor:     v.Cursor,
		Cells:      v.Tape.Cells(),
		Pattern:    v.Tape.Pattern(),
		FillOffset: v.Tape.FillOffset(),
		LoopStack:  append([]int(nil), v.LoopStack...),
		Input:      v.Input.Bytes(),
		Output:     v.Output.Bytes(),
	}
}

// SetState replaces the whole VM state. The source is validated again.
func (v *VM) SetState(state State) error {
	if err := Validate(state.Source); err != nil {
		return err
	}
	tape, err := tapes.Restore(state.Pattern, state.Cells, state.FillOffset)
	if err != nil {
		return err
	}
	if state.Cursor < 0 || state.Cursor >= tape.Len() {
		return fmt.Errorf("cursor %d, tape length %d: %w", state.Cursor, tape.Len(), ErrInvariant)
	}
	if state.IP < 0 {
		return fmt.Errorf("instruction pointer %d: %w", state.IP, ErrInvalidOption)
	}
	program := Compile(state.Source)
	for _, pos := range state.LoopStack {
		if pos < 0 || pos >= len(program) || program[pos] != OpLoopStart {
			return fmt.Errorf("loop stack entry %d: %w", pos, ErrInvariant)
		}
	}

	v.Source = state.Source
	v.Program = program
	v.IP = state.IP
	v.Tape = tape
	v.Cursor = state.Cursor
	v.LoopStack = append([]int(nil), state.LoopStack...)
	v.Input = Queue{}
	v.Input.Push(state.Input...)
	v.Output = Queue{}
	v.Output.Push(state.Output...)
	return nil
}

func (v *VM) Snapshot(w io.Writer) error {
	bs, err := encMode.Marshal(v.State())
	if err != nil {
		return err
	}
	_, err = w.Write(bs)
	return err
}

func (v *VM) Restore(r io.Reader) error {
	var state State
	if err := cbor.NewDecoder(r).Decode(&state); err != nil {
		return fmt.Errorf("bfvm: decode state: %w", err)
	}
	return v.SetState(state)
}
