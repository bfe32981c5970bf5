package tmconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"turing.cue",
	".turing.cue",
}

// ConfigPaths lists existing config files, most specific first.
type ConfigPaths []string

func (Module) ConfigPaths() ConfigPaths {
	var paths []string
	add := func(dir string) {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	// working directory
	if dir, err := os.Getwd(); err == nil {
		add(dir)
	}

	// user config dir
	if dir, err := os.UserConfigDir(); err == nil {
		add(dir)
	}

	// system wide
	add("/etc")

	return paths
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	paths ConfigPaths,
) configs.Loader {
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", []string(paths),
		)
	}
	return configs.NewLoader(paths, schema)
}
