package scriptconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/taiscript/cmds"
	"github.com/reusee/taiscript/configs"
	"github.com/reusee/taiscript/logs"
	"github.com/reusee/taiscript/modes"
)

//go:embed schema.cue
var schema string

var configFlag = cmds.Var[string]("-config")

var filenames = []string{
	"taiscript.cue",
	".taiscript.cue",
}

// ConfigPaths lists existing config files, most specific first.
type ConfigPaths []string

func (Module) ConfigPaths(
	mode modes.Mode,
) ConfigPaths {
	var paths []string
	add := func(dir string) {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	if *configFlag != "" {
		paths = append(paths, *configFlag)
	}

	if workingDir, err := os.Getwd(); err == nil {
		add(workingDir)
	}

	if mode == modes.ModeProduction {
		if configDir, err := os.UserConfigDir(); err == nil {
			add(configDir)
		}
		add("/etc")
	}

	return paths
}

func (Module) ConfigsLoader(
	paths ConfigPaths,
	logger logs.Logger,
) configs.Loader {
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", []string(paths),
		)
	}
	return configs.NewLoader(paths, schema)
}
