package runs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taibf/taibfconfigs"
)

type Module struct {
	dscope.Module
	Configs taibfconfigs.Module
}
