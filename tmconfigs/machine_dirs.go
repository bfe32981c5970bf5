package tmconfigs

import (
	"os"
	"path/filepath"

	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/logs"
)

// MachineDirs are searched in order for machine files named by a relative path.
// Lists from every config file are joined, most specific file first.
type MachineDirs []string

func (Module) MachineDirs(
	loader configs.Loader,
	logger logs.Logger,
) MachineDirs {
	var dirs MachineDirs
	for list, err := range configs.All[[]string](loader, "machine_dirs") {
		if err != nil {
			logger.Warn("read machine_dirs", "error", err)
			break
		}
		dirs = append(dirs, list...)
	}
	return dirs
}

// Resolve returns path itself when it exists or is absolute, otherwise the first
// existing candidate under the dirs. Unresolved paths are returned unchanged.
func (d MachineDirs) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	for _, dir := range d {
		candidate := filepath.Join(dir, path)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return path
}
