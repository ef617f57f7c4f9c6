package bfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/bftape/cmds"
	"github.com/reusee/bftape/configs"
	"github.com/reusee/bftape/logs"
)

//go:embed schema.cue
var schema string

var configFiles = cmds.Collect[string]("-config", "cue config file")

var configNames = []string{
	"bftape.cue",
	".bftape.cue",
}

// configDirs lists directories searched for config files, most specific first.
func configDirs() (dirs []string) {
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "bftape"))
	}
	return append(dirs, "/etc")
}

// ConfigsLoader loads -config files first, then the ones found in configDirs.
func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	paths := append([]string(nil), *configFiles...)
	for _, dir := range configDirs() {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	if len(paths) > 0 {
		logger.Info("config files", "paths", paths)
	}
	return configs.NewLoader(paths, schema)
}
