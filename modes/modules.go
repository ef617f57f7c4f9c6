package modes

import (
	"testing"

	"github.com/reusee/bftape/cmds"
	"github.com/reusee/dscope"
)

var devMode = cmds.Switch("-dev", "development mode, verify engine invariants after every step")

// ModuleForProduction is used by binaries. -dev switches it to development mode.
type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	if *devMode {
		return ModeDevelopment
	}
	return ModeProduction
}

// ModuleForTest runs wired tests in development mode.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
