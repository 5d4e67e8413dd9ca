package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/modes"
	"github.com/reusee/taibf/sources"
)

var (
	codeArg      = cmds.Var[string]("-code")
	fileArg      = cmds.Var[string]("-file")
	urlArg       = cmds.Var[string]("-url")
	tapOnError   = cmds.Switch("-tap")
	snapshotPath = cmds.Var[string]("-snapshot")
)

func init() {
	cmds.Desc("-code", "the code to run")
	cmds.Desc("-file", "the file containing the code to run")
	cmds.Desc("-url", "fetch the code to run over http")
	cmds.Desc("-tap", "open a starlark repl on the machine state when the run fails")
	cmds.Desc("-snapshot", "write the final machine state to this file")
}

func main() {
	cmds.Execute(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var status int
	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		run Run,
	) {
		status = run(ctx, sources.Source{
			Code: *codeArg,
			File: *fileArg,
			URL:  *urlArg,
		}, Options{
			Tap:      *tapOnError,
			Snapshot: *snapshotPath,
		})
	})

	stop()
	os.Exit(status)
}
