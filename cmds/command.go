package cmds

import (
	"fmt"
	"reflect"
)

// Command is a named action run by an Executor.
// Each parameter of Func consumes one argument.
type Command struct {
	Func        reflect.Value
	Description string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("command must be a function, got %T", fn))
	}
	fnType := fnValue.Type()
	switch {
	case fnType.NumOut() > 1:
		panic(fmt.Errorf("command %v returns more than one value", fnType))
	case fnType.NumOut() == 1 && fnType.Out(0) != errorType:
		panic(fmt.Errorf("command %v must return error", fnType))
	}
	return &Command{
		Func: fnValue,
	}
}
