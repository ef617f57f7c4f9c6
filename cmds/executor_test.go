package cmds

import (
	"fmt"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var cursor int
	executor.Define("-origin", Func(func() {
		cursor = 0
	}))
	executor.Define("-cursor", Func(func(i int) {
		cursor = i
	}))

	if err := executor.Execute([]string{
		"-cursor", "-3",
	}); err != nil {
		t.Fatal(err)
	}
	if cursor != -3 {
		t.Fatalf("got %d", cursor)
	}

	if err := executor.Execute([]string{
		"-origin",
	}); err != nil {
		t.Fatal(err)
	}
	if cursor != 0 {
		t.Fatalf("got %d", cursor)
	}

	err := executor.Execute([]string{
		"-cursor",
	})
	if err == nil || !strings.Contains(err.Error(), "-cursor: expecting argument") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"-cursr", "1",
	})
	if err == nil || !strings.Contains(err.Error(), "unknown command: -cursr") {
		t.Fatalf("got %v", err)
	}
}

func TestBoolArgument(t *testing.T) {
	executor := NewExecutor()
	var checks bool
	executor.Define("-check", Func(func(v bool) {
		checks = v
	}))
	if err := executor.Execute([]string{"-check", "on"}); err != nil {
		t.Fatal(err)
	}
	if !checks {
		t.Fatal()
	}
	if err := executor.Execute([]string{"-check", "0"}); err != nil {
		t.Fatal(err)
	}
	if checks {
		t.Fatal()
	}
	err := executor.Execute([]string{"-check", "maybe"})
	if err == nil || !strings.Contains(err.Error(), "-check: ") {
		t.Fatalf("got %v", err)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-state", Func(func(path string) error {
		return fmt.Errorf("locked: %s", path)
	}))
	err := executor.Execute([]string{"-state", "a.cbor", "-h"})
	if err == nil || err.Error() != "locked: a.cbor" {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var steps int
	var label string
	executor.Define("-run", Func(func(n *int, name *string) {
		steps = *n
		label = *name
	}))

	for _, c := range []struct {
		args  []string
		steps int
		label string
	}{
		{[]string{"-run", "100", "echo"}, 100, "echo"},
		{[]string{"-run", "7"}, 7, ""},
		{[]string{"-run"}, 0, ""},
	} {
		if err := executor.Execute(c.args); err != nil {
			t.Fatal(err)
		}
		if steps != c.steps || label != c.label {
			t.Fatalf("%v: got %d %q", c.args, steps, label)
		}
	}
}

func TestSliceArgument(t *testing.T) {
	executor := NewExecutor()
	var pattern []uint8
	var cells []int
	executor.Define("-fill", Func(func(v []uint8) {
		pattern = v
	}))
	executor.Define("-tape", Func(func(v []int) {
		cells = v
	}))
	if err := executor.Execute([]string{
		"-fill", "0,1, 255",
		"-tape", "",
	}); err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprint(pattern); str != "[0 1 255]" {
		t.Fatalf("got %s", str)
	}
	if len(cells) != 0 {
		t.Fatalf("got %v", cells)
	}

	err := executor.Execute([]string{"-fill", "1,256"})
	if err == nil || !strings.Contains(err.Error(), "convert 256") {
		t.Fatalf("got %v", err)
	}
}
