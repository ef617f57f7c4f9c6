package drivers

import (
	"github.com/reusee/bftape/bfconfigs"
	"github.com/reusee/bftape/bfvm"
	"github.com/reusee/bftape/debugs"
	"github.com/reusee/bftape/logs"
	"github.com/reusee/bftape/modes"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
	Debugs  debugs.Module
}

type NewSession func(name string, source string) (*Session, error)

func (Module) NewSession(
	logger logs.Logger,
	newSpan logs.NewSpan,
	pattern bfconfigs.FillPattern,
	tape bfconfigs.InitialTape,
	cursor bfconfigs.InitialCursor,
	maxSteps bfconfigs.MaxSteps,
	chunkSteps bfconfigs.ChunkSteps,
	mode modes.Mode,
) NewSession {
	return func(name string, source string) (*Session, error) {
		options := []bfvm.Option{
			bfvm.WithFillPattern(pattern...),
			bfvm.WithCursor(int(cursor)),
		}
		if len(tape) > 0 {
			options = append(options, bfvm.WithTape(tape...))
		}
		if mode == modes.ModeDevelopment {
			options = append(options, bfvm.WithInvariantChecks())
		}
		vm, err := bfvm.New(source, options...)
		if err != nil {
			return nil, err
		}
		return &Session{
			Name:       name,
			VM:         vm,
			Logger:     logger,
			MaxSteps:   int(maxSteps),
			ChunkSteps: max(int(chunkSteps), 1),
			newSpan:    newSpan,
		}, nil
	}
}
