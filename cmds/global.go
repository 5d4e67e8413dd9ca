package cmds

import (
	"fmt"
	"os"
)

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args against the global executor, exiting with usage on error.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintln(GlobalExecutor.Output, err)
		GlobalExecutor.PrintUsage()
		os.Exit(2)
	}
}

// Desc sets the description of an already defined command.
func Desc(name string, desc string) {
	GlobalExecutor.Desc(name, desc)
}
