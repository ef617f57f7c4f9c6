package modes

import (
	"testing"

	"github.com/reusee/bftape/cmds"
	"github.com/reusee/dscope"
)

func TestForProduction(t *testing.T) {
	scope := dscope.New(ForProduction())
	scope.Call(func(
		mode Mode,
		modeT *testing.T,
	) {
		if mode != ModeProduction {
			t.Fatalf("got %v", mode)
		}
		if modeT != nil {
			t.Fatal("should be nil")
		}
	})

	defer func() {
		*devMode = false
	}()
	if err := cmds.GlobalExecutor.Execute([]string{"-dev"}); err != nil {
		t.Fatal(err)
	}
	dscope.New(ForProduction()).Call(func(
		mode Mode,
	) {
		if mode != ModeDevelopment {
			t.Fatalf("got %v", mode)
		}
	})
}

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		mode Mode,
		modeT *testing.T,
	) {
		if mode != ModeDevelopment {
			t.Fatalf("got %v", mode)
		}
		if modeT != t {
			t.Fatal("should be the running test")
		}
	})
}
