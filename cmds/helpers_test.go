package cmds

import (
	"fmt"
	"testing"
)

func TestVar(t *testing.T) {
	file := Var[string]("TestVar-file", "program file")
	cursor := Var[int]("TestVar-cursor", "initial cursor")
	if err := GlobalExecutor.Execute([]string{
		"TestVar-file", "hello.bf",
		"TestVar-cursor", "0",
	}); err != nil {
		t.Fatal(err)
	}
	if file.Value != "hello.bf" || !file.IsSet {
		t.Fatalf("got %+v", *file)
	}
	// explicit zero is distinguishable from unset
	if !cursor.IsSet || cursor.Or(5) != 0 {
		t.Fatalf("got %+v", *cursor)
	}

	if err := GlobalExecutor.Execute([]string{
		"TestVar-cursor.",
	}); err != nil {
		t.Fatal(err)
	}
	if cursor.IsSet || cursor.Or(5) != 5 {
		t.Fatalf("got %+v", *cursor)
	}
}

func TestSwitch(t *testing.T) {
	interactive := Switch("TestSwitch", "read input from stdin")
	if err := GlobalExecutor.Execute([]string{
		"TestSwitch",
	}); err != nil {
		t.Fatal(err)
	}
	if !*interactive {
		t.Fatal()
	}
	if err := GlobalExecutor.Execute([]string{
		"!TestSwitch",
	}); err != nil {
		t.Fatal(err)
	}
	if *interactive {
		t.Fatal()
	}
}

func TestCollect(t *testing.T) {
	exprs := Collect[string]("TestCollect", "expression")
	if err := GlobalExecutor.Execute([]string{
		"TestCollect", "cells[cursor]",
		"TestCollect", "ip",
	}); err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", *exprs); str != "[cells[cursor] ip]" {
		t.Fatalf("got %s", str)
	}
}

func TestTypedVar(t *testing.T) {
	type Steps int
	v := Var[Steps]("TestTypedVar", "steps")
	if err := GlobalExecutor.Execute([]string{
		"TestTypedVar", "100",
	}); err != nil {
		t.Fatal(err)
	}
	if v.Value != 100 {
		t.Fatalf("got %v", v.Value)
	}
}
