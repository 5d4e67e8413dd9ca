package cmds

import (
	"fmt"
	"reflect"
)

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

// Func wraps fn as a command. Each parameter of fn consumes one argument; pointer parameters are optional.
// fn may return nothing or an error.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)

	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}

	switch fnValue.Type().NumOut() {
	case 0:
	case 1:
		if fnValue.Type().Out(0) != errorType {
			panic(fmt.Errorf("must return error"))
		}
	default:
		panic(fmt.Errorf("must return 0 or 1 value"))
	}

	return &Command{
		Func: fnValue,
	}
}
