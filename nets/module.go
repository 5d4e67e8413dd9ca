package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taibf/logs"
)

// Module needs a configs.Loader and a modes.Mode from the enclosing scope.
type Module struct {
	dscope.Module
	Logs logs.Module
}
