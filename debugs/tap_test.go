package debugs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/bftape/logs"
	"github.com/reusee/dscope"
)

func TestTap(t *testing.T) {
	logBuf := new(bytes.Buffer)
	dscope.New(
		new(Module),
	).Fork(
		func() logs.Writer {
			return logBuf
		},
	).Call(func(
		tap Tap,
	) {
		// stdin is not a terminal under go test, the REPL returns at EOF
		tap(t.Context(), "hello.bf", map[string]any{
			"cursor": 1,
			"cells":  Cells{1, 2, 3},
		})
	})
	out := logBuf.String()
	if !strings.Contains(out, "globals=\"[cells cursor]\"") && !strings.Contains(out, "globals=[cells cursor]") {
		t.Fatalf("got %s", out)
	}
	if !strings.Contains(out, "tap end") {
		t.Fatalf("got %s", out)
	}
}
