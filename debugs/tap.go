package debugs

import (
	"context"

	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL on stdin with the state of vm bound as globals.
type Tap func(ctx context.Context, vm *bfvm.VM, err error)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, vm *bfvm.VM, err error) {
		logger.InfoContext(ctx, "tap",
			"ip", vm.IP,
			"dp", vm.DP,
		)
		defer func() {
			logger.InfoContext(ctx, "tap end")
		}()

		globals := make(starlark.StringDict)
		for name, value := range State(vm, err) {
			globals[name] = toStarlarkValue(value)
		}

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, globals)
	}
}
