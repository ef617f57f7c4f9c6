package drivers

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/reusee/bftape/bfvm"
	"github.com/reusee/bftape/debugs"
	"github.com/reusee/bftape/logs"
)

var ErrStepBudget = errors.New("step budget exhausted")

// Session drives one VM against external input and output.
type Session struct {
	Name       string
	VM         *bfvm.VM
	Logger     logs.Logger
	MaxSteps   int
	ChunkSteps int
	Steps      int

	newSpan logs.NewSpan
}

// Feed queues everything from r as program input.
func (s *Session) Feed(r io.Reader) error {
	_, err := io.Copy(s.VM, r)
	return err
}

// Run executes until the program finishes.
// Output is flushed to out after every chunk of steps. When the program reads with no input queued,
// the next line of in is queued and execution resumes; with in nil or exhausted, Run returns an error
// matching bfvm.ErrInputStarved and the session can be resumed later.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) (err error) {
	ctx = logs.WithProgram(ctx, s.Name)
	if s.newSpan != nil {
		ctx, _ = s.newSpan(ctx, "")
	}
	defer func() {
		err = logs.WrapSpan(ctx, err)
	}()

	var lines *bufio.Reader
	if in != nil {
		lines = bufio.NewReader(in)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n := s.ChunkSteps
		if s.MaxSteps > 0 {
			left := s.MaxSteps - s.Steps
			if left <= 0 {
				s.Logger.WarnContext(ctx, "step budget exhausted",
					"steps", s.Steps,
					"ip", s.VM.IP,
				)
				return fmt.Errorf("%d steps: %w", s.Steps, ErrStepBudget)
			}
			n = min(n, left)
		}

		finished, stepErr := s.steps(n)
		if err := s.flush(out); err != nil {
			return err
		}

		if stepErr != nil {
			if !errors.Is(stepErr, bfvm.ErrInputStarved) {
				s.Logger.ErrorContext(ctx, "execution failed",
					"error", stepErr,
					"ip", s.VM.IP,
					"steps", s.Steps,
				)
				return stepErr
			}
			if lines == nil {
				s.Logger.DebugContext(ctx, "suspended on input", "ip", s.VM.IP)
				return stepErr
			}
			line, readErr := readLine(ctx, lines)
			if err := ctx.Err(); err != nil {
				return err
			}
			if len(line) > 0 {
				s.VM.WriteString(line)
				continue
			}
			if readErr != nil && !errors.Is(readErr, io.EOF) {
				return readErr
			}
			s.Logger.DebugContext(ctx, "input exhausted", "ip", s.VM.IP)
			return stepErr
		}

		if finished {
			s.Logger.InfoContext(ctx, "program finished",
				"steps", s.Steps,
				"tape", s.VM.Tape.Len(),
			)
			return nil
		}
	}
}

type lineResult struct {
	line string
	err  error
}

// readLine returns early when ctx is done. The pending read then completes in the background
// and its line is dropped.
func readLine(ctx context.Context, r *bufio.Reader) (string, error) {
	ch := make(chan lineResult, 1)
	go func() {
		line, err := r.ReadString('\n')
		ch <- lineResult{line, err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		return res.line, res.err
	}
}

func (s *Session) steps(n int) (finished bool, err error) {
	for range n {
		finished, err = s.VM.Step()
		if err != nil {
			return
		}
		s.Steps++
		if finished {
			return
		}
	}
	return s.VM.Finished(), nil
}

func (s *Session) flush(out io.Writer) error {
	if out == nil || !s.VM.CanRead() {
		return nil
	}
	_, err := out.Write(s.VM.ReadAll())
	return err
}

// Globals exposes the engine state to inspection.
// Byte buffers are tuples of ints, op(pos) names the instruction at a source position.
func (s *Session) Globals() map[string]any {
	state := s.VM.State()
	program := s.VM.Program
	return map[string]any{
		"name":         s.Name,
		"source":       state.Source,
		"ip":           state.IP,
		"cursor":       state.Cursor,
		"cells":        debugs.Cells(state.Cells),
		"fill_pattern": debugs.Cells(state.Pattern),
		"fill_offset":  state.FillOffset,
		"loop_stack":   state.LoopStack,
		"input":        debugs.Cells(state.Input),
		"output":       debugs.Cells(state.Output),
		"steps":        s.Steps,
		"finished":     s.VM.Finished(),
		"op": func(pos int) string {
			if pos < 0 || pos >= len(program) {
				return ""
			}
			return program[pos].String()
		},
	}
}

func (s *Session) Eval(expr string) (any, error) {
	return debugs.Eval(expr, s.Globals())
}
