package taibfconfigs

import (
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/vars"
)

// MaxSteps bounds the number of executed instructions of one run. Zero means unlimited.
type MaxSteps int

var maxStepsFlag = cmds.Var[int]("-max-steps")

func init() {
	cmds.Desc("-max-steps", "abort the run after this many instructions")
}

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	return MaxSteps(vars.FirstNonZero(
		*maxStepsFlag,
		configs.First[int](loader, "max_steps"),
	))
}
