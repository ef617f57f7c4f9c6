package bfvm

import "fmt"

// Step executes one instruction and reports whether the program is finished.
// On ErrInputStarved the instruction pointer stays on the ',' so a later Step retries it.
func (v *VM) Step() (finished bool, err error) {
	if v.IP >= len(v.Program) {
		return true, nil
	}

	pos := v.IP
	op := v.Program[v.IP]
	v.IP++

	switch op {

	case OpLeft:
		if v.Cursor == 0 {
			v.Tape.GrowLeft()
		} else {
			v.Cursor--
		}

	case OpRight:
		if v.Cursor == v.Tape.Len()-1 {
			v.Tape.GrowRight()
		}
		v.Cursor++

	case OpInc, OpDec:
		cell, err := v.Tape.Get(v.Cursor)
		if err != nil {
			return false, fmt.Errorf("%v at %d: %w", op, pos, err)
		}
		delta := 1
		if op == OpDec {
			delta = -1
		}
		if err := v.Tape.Set(v.Cursor, int(cell)+delta); err != nil {
			return false, fmt.Errorf("%v at %d: %w", op, pos, err)
		}

	case OpOutput:
		cell, err := v.Tape.Get(v.Cursor)
		if err != nil {
			return false, fmt.Errorf("%v at %d: %w", op, pos, err)
		}
		v.Output.Push(cell)

	case OpInput:
		b, ok := v.Input.Pop()
		if !ok {
			v.IP--
			return false, fmt.Errorf("read at %d: %w", pos, ErrInputStarved)
		}
		if err := v.Tape.Set(v.Cursor, int(b)); err != nil {
			return false, fmt.Errorf("%v at %d: %w", op, pos, err)
		}

	case OpLoopStart:
		cell, err := v.Tape.Get(v.Cursor)
		if err != nil {
			return false, fmt.Errorf("%v at %d: %w", op, pos, err)
		}
		if cell == 0 {
			next, err := v.skipLoop(pos)
			if err != nil {
				return false, err
			}
			v.IP = next
		} else {
			v.LoopStack = append(v.LoopStack, pos)
		}

	case OpLoopEnd:
		if len(v.LoopStack) == 0 {
			return false, fmt.Errorf("%v at %d: %w", op, pos, ErrLoopStackEmpty)
		}
		back := v.LoopStack[len(v.LoopStack)-1]
		v.LoopStack = v.LoopStack[:len(v.LoopStack)-1]
		cell, err := v.Tape.Get(v.Cursor)
		if err != nil {
			return false, fmt.Errorf("%v at %d: %w", op, pos, err)
		}
		if cell != 0 {
			v.IP = back
		}

	}

	if v.checkInvariants {
		if err := v.verify(); err != nil {
			return false, fmt.Errorf("after %v at %d: %w", op, pos, err)
		}
	}

	return v.IP >= len(v.Program), nil
}

// skipLoop returns the position after the ']' matching the '[' at pos
func (v *VM) skipLoop(pos int) (int, error) {
	depth := 1
	ip := pos + 1
	for depth > 0 {
		if ip >= len(v.Program) {
			return 0, fmt.Errorf("[ at %d: %w", pos, ErrUnmatchedBracket)
		}
		switch v.Program[ip] {
		case OpLoopStart:
			depth++
		case OpLoopEnd:
			depth--
		}
		ip++
	}
	return ip, nil
}

func (v *VM) verify() error {
	if v.Cursor < 0 || v.Cursor >= v.Tape.Len() {
		return fmt.Errorf("cursor %d, tape length %d: %w", v.Cursor, v.Tape.Len(), ErrInvariant)
	}
	for _, pos := range v.LoopStack {
		if pos < 0 || pos >= len(v.Program) || v.Program[pos] != OpLoopStart {
			return fmt.Errorf("loop stack entry %d: %w", pos, ErrInvariant)
		}
	}
	return nil
}

// StepN executes up to n instructions, or until finished if n is negative.
// It stops at the first error.
func (v *VM) StepN(n int) (finished bool, err error) {
	for n != 0 {
		finished, err = v.Step()
		if err != nil || finished {
			return
		}
		n--
	}
	return v.IP >= len(v.Program), nil
}
