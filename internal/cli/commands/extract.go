package commands

import (
	"fmt"
	"os"

	"github.com/wiktio/etymodb/internal/cli/config"
	"github.com/wiktio/etymodb/internal/dump"
	"github.com/wiktio/etymodb/internal/emit"
	"github.com/wiktio/etymodb/internal/langcode"
	"github.com/wiktio/etymodb/internal/pipeline"

	"github.com/spf13/cobra"
)

// NewExtractCommand creates the extract command: the main entry point that
// walks a dump, extracts etymology edges, and writes the CSV (spec.md §6).
func NewExtractCommand() *cobra.Command {
	var download bool

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract etymology edges from a Wiktionary dump",
		Long: `Stream a MediaWiki XML dump (local file or http(s) URL, optionally
bzip2-compressed), extract etymology edges from each article's Etymology
section, and write them as CSV.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExtract(cmd, download)
		},
	}

	cmd.Flags().BoolVar(&download, "download", false, "download dump-url to download-path first if not already cached")

	return cmd
}

func runExtract(cmd *cobra.Command, download bool) error {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	source := cfg.DumpURL
	if download {
		logger.Info("caching dump locally", "url", cfg.DumpURL, "path", cfg.DownloadPath)
		if err := dump.Download(cfg.DumpURL, cfg.DownloadPath); err != nil {
			return fmt.Errorf("extract: downloading dump: %w", err)
		}
		source = cfg.DownloadPath
	}

	langFile, err := os.Open(cfg.LangTablePath)
	if err != nil {
		return fmt.Errorf("extract: opening language table %s: %w", cfg.LangTablePath, err)
	}
	defer langFile.Close()

	table, err := langcode.Load(langFile)
	if err != nil {
		return fmt.Errorf("extract: loading language table: %w", err)
	}
	logger.Info("loaded language table", "entries", table.Len())

	r, err := dump.Open(source)
	if err != nil {
		return fmt.Errorf("extract: opening dump %s: %w", source, err)
	}
	defer r.Close()

	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("extract: creating %s: %w", cfg.OutputPath, err)
	}
	defer out.Close()

	writer := emit.NewWriter(out)
	if err := writer.WriteHeader(); err != nil {
		return fmt.Errorf("extract: writing CSV header: %w", err)
	}

	driver := &pipeline.Driver{
		Table:   table,
		Writer:  writer,
		Workers: cfg.Workers,
		Logger:  logger,
	}

	stats, err := driver.Run(cmd.Context(), r)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	printStatsTable(cmd, stats)
	return nil
}
