package debugs

import (
	"fmt"
	"testing"
)

func TestEval(t *testing.T) {
	globals := map[string]any{
		"cells":  Cells{3, 0, 255},
		"cursor": 2,
		"ip":     7,
		"loops":  []int{1, 4},
		"name":   "hello",
		"raw":    []byte("hi"),
	}
	testCases := []struct {
		expr string
		want string
	}{
		{"cells[cursor]", "255"},
		{"len(cells)", "3"},
		{"ip + 1", "8"},
		{"cursor > 1", "true"},
		{"loops", "[1 4]"},
		{"name.upper()", "HELLO"},
		{"[c for c in cells if c]", "[3 255]"},
		{"cells[cursor] + 1", "256"},
		{"cells[1] == 0", "true"},
		{"len(raw)", "2"},
		{"None", "<nil>"},
		{"{'a': 1}", "map[a:1]"},
		{"0.5", "0.5"},
		{"(1, 2)", "[1 2]"},
	}
	for _, c := range testCases {
		t.Run(c.expr, func(t *testing.T) {
			got, err := Eval(c.expr, globals)
			if err != nil {
				t.Fatal(err)
			}
			if str := fmt.Sprint(got); str != c.want {
				t.Fatalf("got %s", str)
			}
		})
	}
}

func TestEvalError(t *testing.T) {
	if _, err := Eval("undefined_name", nil); err == nil {
		t.Fatal("should error")
	}
	if _, err := Eval("len", nil); err == nil {
		t.Fatal("should error")
	}
}
