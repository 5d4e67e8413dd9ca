package taibfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/logs"
)

//go:embed schema.cue
var Schema string

var filenames = []string{
	"taibf.cue",
	".taibf.cue",
}

// ConfigsLoader looks in the working directory, then the user config dir, then /etc.
func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	var paths []string
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, Schema)
}
