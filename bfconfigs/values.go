package bfconfigs

import (
	"cmp"

	"github.com/reusee/bftape/cmds"
	"github.com/reusee/bftape/configs"
	"github.com/reusee/bftape/tapes"
)

type FillPattern []byte

var _ configs.Configurable = FillPattern(nil)

func (FillPattern) ConfigExpr() string {
	return "fill_pattern"
}

var fillFlag = cmds.Var[[]uint8]("-fill", "fill pattern for grown cells, comma separated")

func (Module) FillPattern(
	loader configs.Loader,
) FillPattern {
	// flag
	if len(fillFlag.Value) > 0 {
		return FillPattern(fillFlag.Value)
	}
	// config
	if values := configs.First[[]int](loader, FillPattern(nil).ConfigExpr()); len(values) > 0 {
		return FillPattern(toCells(values))
	}
	return FillPattern{0}
}

type InitialTape []byte

var _ configs.Configurable = InitialTape(nil)

func (InitialTape) ConfigExpr() string {
	return "tape"
}

var tapeFlag = cmds.Var[[]uint8]("-tape", "initial cells, comma separated")

func (Module) InitialTape(
	loader configs.Loader,
) InitialTape {
	if tapeFlag.IsSet {
		return InitialTape(tapeFlag.Value)
	}
	return InitialTape(toCells(configs.First[[]int](loader, InitialTape(nil).ConfigExpr())))
}

type InitialCursor int

var _ configs.Configurable = InitialCursor(0)

func (InitialCursor) ConfigExpr() string {
	return "cursor"
}

var cursorFlag = cmds.Var[int]("-cursor", "initial cursor")

func (Module) InitialCursor(
	loader configs.Loader,
) InitialCursor {
	return InitialCursor(cursorFlag.Or(
		configs.First[int](loader, InitialCursor(0).ConfigExpr()),
	))
}

// MaxSteps bounds a session across resumes. Zero means no limit.
type MaxSteps int

var _ configs.Configurable = MaxSteps(0)

func (MaxSteps) ConfigExpr() string {
	return "max_steps"
}

var maxStepsFlag = cmds.Var[int]("-max-steps", "step budget, 0 for none")

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	return MaxSteps(maxStepsFlag.Or(
		configs.First[int](loader, MaxSteps(0).ConfigExpr()),
	))
}

// ChunkSteps is the number of instructions executed between output flushes.
type ChunkSteps int

var _ configs.Configurable = ChunkSteps(0)

func (ChunkSteps) ConfigExpr() string {
	return "chunk_steps"
}

const defaultChunkSteps = 4096

func (Module) ChunkSteps(
	loader configs.Loader,
) ChunkSteps {
	return ChunkSteps(cmp.Or(
		configs.First[int](loader, ChunkSteps(0).ConfigExpr()),
		defaultChunkSteps,
	))
}

// EvalExprs are inspected after a run: those of every config file in load order, then flags.
type EvalExprs []string

var _ configs.Configurable = EvalExprs(nil)

func (EvalExprs) ConfigExpr() string {
	return "eval"
}

var evalFlag = cmds.Collect[string]("-eval", "starlark expression over the engine state")

func (Module) EvalExprs(
	loader configs.Loader,
) (ret EvalExprs) {
	for exprs, err := range configs.All[[]string](loader, EvalExprs(nil).ConfigExpr()) {
		if err != nil {
			panic(err)
		}
		ret = append(ret, exprs...)
	}
	return append(ret, *evalFlag...)
}

func toCells(values []int) []byte {
	if len(values) == 0 {
		return nil
	}
	ret := make([]byte, 0, len(values))
	for _, v := range values {
		ret = append(ret, tapes.Wrap(v))
	}
	return ret
}
