package bfvm

import (
	"errors"
	"testing"
)

func TestVM_Run(t *testing.T) {
	vm, err := New(",[.,]")
	if err != nil {
		t.Fatal(err)
	}
	inputs := []string{"ab", "c", "\x00"}
	suspends := 0
	for intr, err := range vm.Run {
		if err != nil {
			t.Fatal(err)
		}
		if !intr.Suspend {
			t.Fatal("expecting suspend")
		}
		if suspends >= len(inputs) {
			t.Fatal("too many suspends")
		}
		vm.WriteString(inputs[suspends])
		suspends++
	}
	if suspends != 3 {
		t.Fatalf("got %d", suspends)
	}
	if out := string(vm.ReadAll()); out != "abc" {
		t.Fatalf("got %q", out)
	}
	if !vm.Finished() {
		t.Fatal()
	}
}

func TestVM_RunStopOnSuspend(t *testing.T) {
	vm, err := New(",.")
	if err != nil {
		t.Fatal(err)
	}
	for intr := range vm.Run {
		if intr == InterruptSuspend {
			break
		}
	}
	if vm.IP != 0 {
		t.Fatalf("got %d", vm.IP)
	}
}

func TestVM_RunFatal(t *testing.T) {
	vm, err := New("+[]", WithIP(2))
	if err != nil {
		t.Fatal(err)
	}
	var errs []error
	for _, err := range vm.Run {
		errs = append(errs, err)
	}
	if len(errs) != 1 || !errors.Is(errs[0], ErrLoopStackEmpty) {
		t.Fatalf("got %v", errs)
	}
}
