package bfvm

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnmatchedBracket = errors.New("unmatched bracket")
	ErrInputStarved     = errors.New("no input to read")
	ErrLoopStackEmpty   = errors.New("loop end without loop start")
	ErrInvariant        = errors.New("engine invariant violated")
	ErrInvalidOption    = errors.New("invalid option")
)

// StructuralError reports brackets without partners.
// Close is the position of an unmatched ']' and is -1 when Open is set.
type StructuralError struct {
	Close int
	Open  []int
}

func (s *StructuralError) Error() string {
	if len(s.Open) > 0 {
		positions := make([]string, 0, len(s.Open))
		for _, pos := range s.Open {
			positions = append(positions, fmt.Sprint(pos))
		}
		return fmt.Sprintf("unmatched [ at %s", strings.Join(positions, ", "))
	}
	return fmt.Sprintf("unmatched ] at %d", s.Close)
}

func (s *StructuralError) Unwrap() error {
	return ErrUnmatchedBracket
}
