package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

var (
	configFileUsed string
	currentConfig  *Config
)

// loggerKey is the context key the root command stores the run's logger
// under. Defined here (not in package cli) so commands can retrieve it
// without importing cli, which would create an import cycle.
type loggerKey struct{}

// LoggerKey returns the context key used for storing the logger.
func LoggerKey() interface{} {
	return loggerKey{}
}

// GetLogger retrieves the logger from the command context, falling back to
// a discarding logger so commands never need a nil check.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}

// findConfigFile resolves which config file to load.
// Priority: explicit path > ./etymodb.yaml > ./etymodb.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat("etymodb.yaml"); err == nil {
		return "etymodb.yaml"
	}
	if _, err := os.Stat("etymodb.yml"); err == nil {
		return "etymodb.yml"
	}
	return ""
}

// LoadConfig loads configuration from defaults, then an optional config
// file, then ETYMODB_-prefixed environment variables, then CLI flags —
// each layer overriding the one before it (spec.md §6).
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"dump_url":        DefaultDumpURL,
		"download_path":   DefaultDownloadPath,
		"lang_table_path": DefaultLangTablePath,
		"output_path":     DefaultOutputPath,
		"workers":         DefaultWorkers,
		"verbose":         false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("config: loading defaults: %w", err)
	}

	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", configFileUsed, err)
		}
	}

	if err := k.Load(env.Provider("ETYMODB_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "ETYMODB_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("config: loading env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("config: loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: decoding: %w", err)
	}
	currentConfig = &cfg
	return &cfg, nil
}

// GetConfigFileUsed returns the path of the config file the last LoadConfig
// call actually read, or "" if none was found.
func GetConfigFileUsed() string {
	return configFileUsed
}

// GetCurrentConfig returns the configuration loaded by the most recent
// LoadConfig call, or nil if none has run yet (e.g. a command constructor
// invoked directly in a unit test).
func GetCurrentConfig() *Config {
	return currentConfig
}
