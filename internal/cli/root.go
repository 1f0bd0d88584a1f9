// Package cli provides the command-line interface for etymodb.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/wiktio/etymodb/internal/cli/commands"
	"github.com/wiktio/etymodb/internal/cli/config"

	"github.com/spf13/cobra"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "etymodb",
		Short: "etymodb - Wiktionary etymology extraction pipeline",
		Long: `etymodb extracts etymological relationships (inheritance, borrowing,
affixation, and related claims) from a Wiktionary XML dump's etymology
sections, and writes them as a CSV edge list.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			cmd.SetContext(context.WithValue(cmd.Context(), config.LoggerKey(), logger))

			if cfg.Verbose {
				if used := config.GetConfigFileUsed(); used != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", used)
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./etymodb.yaml)")
	rootCmd.PersistentFlags().String("dump-url", "", "URL (or local path) of the Wiktionary XML dump")
	rootCmd.PersistentFlags().String("download-path", "", "local cache path for a downloaded dump")
	rootCmd.PersistentFlags().String("lang-table-path", "", "path to the language-code CSV table")
	rootCmd.PersistentFlags().String("output-path", "", "path to write the extracted edge CSV")
	rootCmd.PersistentFlags().Int("workers", 0, "number of concurrent extraction workers")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose logging")

	// Add subcommands
	rootCmd.AddCommand(commands.NewExtractCommand())
	rootCmd.AddCommand(commands.NewStatsCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
