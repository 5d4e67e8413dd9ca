package taibfconfigs

import (
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/vars"
)

// YieldInterval is how many instructions run between cancellation and budget checks.
type YieldInterval int

const DefaultYieldInterval = 4096

func (Module) YieldInterval(
	loader configs.Loader,
) YieldInterval {
	return YieldInterval(vars.FirstNonZero(
		configs.First[int](loader, "yield_interval"),
		DefaultYieldInterval,
	))
}
