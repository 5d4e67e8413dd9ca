package taibfconfigs

import (
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/vars"
)

// TrailingNewline controls the line break printed after a successful run.
type TrailingNewline bool

var noNewline = cmds.Switch("-no-newline")

func init() {
	cmds.Desc("-no-newline", "do not print a line break after the output")
}

func (Module) TrailingNewline(
	loader configs.Loader,
) TrailingNewline {
	if *noNewline {
		return false
	}
	return TrailingNewline(vars.DerefOr(
		configs.First[*bool](loader, "trailing_newline"),
		true,
	))
}
