package cmds

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/reusee/taibf/vars"
)

type Executor struct {
	commands map[string]*Command
	Output   io.Writer
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
		Output:   os.Stderr,
	}

	ret.Define("-h", Func(func() {
		ret.PrintUsage()
		os.Exit(0)
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help"))

	return ret
}

func (p *Executor) Define(name string, command *Command) {
	for _, n := range append([]string{name}, command.Aliases...) {
		if _, ok := p.commands[n]; ok {
			panic(fmt.Errorf("duplicated command %s", n))
		}
		p.commands[n] = command
	}
}

var errorType = reflect.TypeFor[error]()

func (p *Executor) Execute(args []string) error {
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, ok := p.commands[name]
		if !ok {
			return fmt.Errorf("unknown command: %s", name)
		}

		fnType := command.Func.Type()
		callArgs := make([]reflect.Value, 0, fnType.NumIn())
		for i := range fnType.NumIn() {
			value, err := getArg(fnType.In(i), args)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if len(args) > 0 {
				args = args[1:]
			}
			callArgs = append(callArgs, value)
		}

		rets := command.Func.Call(callArgs)
		if len(rets) > 0 && !rets[0].IsNil() {
			return rets[0].Interface().(error)
		}
	}
	return nil
}

func (p *Executor) MustExecute(args []string) {
	if err := p.Execute(args); err != nil {
		panic(err)
	}
}

func (p *Executor) PrintUsage() {
	seen := make(map[*Command]bool)
	var names []string
	for name := range p.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		command := p.commands[name]
		if seen[command] {
			continue
		}
		seen[command] = true
		line := name
		for i := range command.Func.Type().NumIn() {
			line += " <" + command.Func.Type().In(i).String() + ">"
		}
		if len(command.Aliases) > 0 && !slices.Contains(command.Aliases, name) {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		fmt.Fprintf(p.Output, "  %-32s %s\n", line, command.Description)
	}
}

func getArg(t reflect.Type, args []string) (ret reflect.Value, err error) {
	if len(args) == 0 {
		if t.Kind() == reflect.Pointer {
			// optional
			return reflect.New(t.Elem()), nil
		}
		return ret, fmt.Errorf("expecting argument, got nothing")
	}

	if t.Kind() == reflect.Pointer {
		elemValue, err := getArg(t.Elem(), args)
		if err != nil {
			return ret, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elemValue)
		return ptr, nil
	}

	str := args[0]
	ret = reflect.New(t).Elem()

	switch t.Kind() {

	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))
		return ret, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)
		return ret, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		ret.SetUint(v)
		return ret, nil

	case reflect.String:
		ret.SetString(str)
		return ret, nil

	}

	return ret, fmt.Errorf("unsupported type: %v", t)
}

func (p *Executor) Desc(name string, desc string) {
	command, ok := p.commands[name]
	if !ok {
		panic(fmt.Errorf("unknown command %s", name))
	}
	command.Desc(desc)
}
