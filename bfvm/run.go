package bfvm

import "errors"

// Run executes until the program finishes.
// When input is needed it yields InterruptSuspend; iteration resumes at the same read, so the consumer
// should write input before continuing. Other errors are yielded once and end the run.
//
//	for intr, err := range vm.Run { ... }
func (v *VM) Run(yield func(*Interrupt, error) bool) {
	for {
		finished, err := v.Step()
		if err != nil {
			if errors.Is(err, ErrInputStarved) {
				if !yield(InterruptSuspend, nil) {
					return
				}
				continue
			}
			yield(nil, err)
			return
		}
		if finished {
			return
		}
	}
}
