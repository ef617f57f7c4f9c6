package debugs

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/reusee/bftape/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a Starlark REPL on stdin over globals, for inspecting a paused or finished engine.
type Tap func(ctx context.Context, what string, globals map[string]any)

// TapOutput receives print() output of the REPL. Stdout is reserved for program output.
type TapOutput io.Writer

func (Module) TapOutput() TapOutput {
	return os.Stderr
}

func (Module) Tap(
	logger logs.Logger,
	output TapOutput,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		names := slices.Sorted(maps.Keys(globals))
		logger.InfoContext(ctx, "tap", "what", what, "globals", names)
		defer logger.InfoContext(ctx, "tap end", "what", what)

		thread := &starlark.Thread{
			Name: "tap: " + what,
			Print: func(_ *starlark.Thread, msg string) {
				fmt.Fprintln(output, msg)
			},
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, toStarlarkDict(globals))
	}
}
