package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/reusee/bftape/bfconfigs"
	"github.com/reusee/bftape/bfvm"
	"github.com/reusee/bftape/cmds"
	"github.com/reusee/bftape/debugs"
	"github.com/reusee/bftape/drivers"
	"github.com/reusee/bftape/logs"
	"github.com/reusee/bftape/modes"
	"github.com/reusee/dscope"
)

var (
	programFile = cmds.Var[string]("-file", "program source file")
	exampleName = cmds.Var[string]("-example", "run an embedded example program")
	inputFile   = cmds.Var[string]("-input", "queue the content of file as input")
	inputText   = cmds.Var[string]("-text", "queue text as input")
	stateFile   = cmds.Var[string]("-state", "resume from and suspend to state file")
	interactive = cmds.Switch("-interactive", "read input lines from stdin when starved")
	tapOnExit   = cmds.Switch("-tap", "open a starlark repl over the engine state after the run")
)

func main() {
	cmds.Execute(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var code int
	dscope.New(
		new(drivers.Module),
		modes.ForProduction(),
	).Call(func(
		logger logs.Logger,
		newSession drivers.NewSession,
		evalExprs bfconfigs.EvalExprs,
		tap debugs.Tap,
	) {
		code = run(ctx, logger, newSession, evalExprs, tap)
	})
	stop()
	os.Exit(code)
}

func run(
	ctx context.Context,
	logger logs.Logger,
	newSession drivers.NewSession,
	evalExprs bfconfigs.EvalExprs,
	tap debugs.Tap,
) int {

	name, source, err := loadSource()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	session, err := newSession(name, source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return 1
	}

	if stateFile.Value != "" {
		unlock, err := drivers.LockState(stateFile.Value)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer unlock()
		if _, err := os.Stat(stateFile.Value); err == nil {
			if err := session.LoadState(stateFile.Value); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			logger.InfoContext(ctx, "resumed", "state", stateFile.Value, "ip", session.VM.IP)
		}
	}

	if inputFile.Value != "" {
		f, err := os.Open(inputFile.Value)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		err = session.Feed(f)
		f.Close()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	if inputText.Value != "" {
		session.VM.WriteString(inputText.Value)
	}

	var in io.Reader
	if *interactive {
		in = os.Stdin
	}
	runErr := session.Run(ctx, in, os.Stdout)

	for _, expr := range evalExprs {
		value, err := session.Eval(expr)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Fprintf(os.Stderr, "%s = %v\n", expr, value)
	}
	if *tapOnExit {
		tap(ctx, name, session.Globals())
	}

	switch {

	case runErr == nil:
		if stateFile.Value != "" {
			if err := os.Remove(stateFile.Value); err != nil && !errors.Is(err, os.ErrNotExist) {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
		}
		return 0

	case errors.Is(runErr, bfvm.ErrInputStarved):
		if stateFile.Value == "" {
			fmt.Fprintln(os.Stderr, "program is waiting for input at", session.VM.IP)
			return 1
		}
		if err := session.SaveState(stateFile.Value); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Fprintln(os.Stderr, "waiting for input, state saved to", stateFile.Value)
		return 0

	default:
		fmt.Fprintln(os.Stderr, runErr)
		return 1
	}
}

func loadSource() (name string, source string, err error) {
	if programFile.Value != "" {
		content, err := os.ReadFile(programFile.Value)
		if err != nil {
			return "", "", err
		}
		return filepath.Base(programFile.Value), string(content), nil
	}
	name = exampleName.Value
	if name == "" {
		name = "hello"
	}
	source, err = drivers.Example(name)
	if err != nil {
		return "", "", fmt.Errorf("%w (examples: %s)", err, strings.Join(drivers.ExampleNames(), ", "))
	}
	return name + ".bf", source, nil
}
