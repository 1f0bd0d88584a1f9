package commands

import (
	"github.com/wiktio/etymodb/internal/cli/config"
)

// getConfig returns the configuration loaded by the root command's
// PersistentPreRunE, falling back to defaults so a command constructor can
// also be exercised directly in a unit test (spec.md §6 defaults).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		DumpURL:       config.DefaultDumpURL,
		DownloadPath:  config.DefaultDownloadPath,
		LangTablePath: config.DefaultLangTablePath,
		OutputPath:    config.DefaultOutputPath,
		Workers:       config.DefaultWorkers,
	}
}
