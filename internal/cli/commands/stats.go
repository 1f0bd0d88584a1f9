package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/wiktio/etymodb/internal/emit"
	"github.com/wiktio/etymodb/internal/etymology"
	"github.com/wiktio/etymodb/internal/pipeline"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewStatsCommand creates the stats command: recomputes an edge-count
// breakdown from a previously written CSV (spec.md §10 supplemented
// feature), without re-running extraction.
func NewStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [csv-path]",
		Short: "Summarize a previously extracted edge CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			path := cfg.OutputPath
			if len(args) == 1 {
				path = args[0]
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("stats: opening %s: %w", path, err)
			}
			defer f.Close()

			edges, err := emit.ReadEdges(f)
			if err != nil {
				return fmt.Errorf("stats: reading %s: %w", path, err)
			}

			printStatsTable(cmd, pipeline.FromEdges(edges))
			return nil
		},
	}
}

// printStatsTable renders a run summary as a go-pretty table, generalizing
// the reference's bare `print(words, etys)` progress line (spec.md §10).
func printStatsTable(cmd *cobra.Command, stats *pipeline.Stats) {
	out := cmd.OutOrStdout()

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Extraction Summary")

	t.AppendHeader(table.Row{"metric", "count"})
	t.AppendRow(table.Row{"pages_scanned", stats.PagesScanned})
	t.AppendRow(table.Row{"edges_written", stats.TotalEdges()})
	t.AppendRow(table.Row{"skipped_unmapped_langs", stats.SkippedUnmappedLangs})
	t.AppendRow(table.Row{"skipped_invalid_edges", stats.SkippedInvalidEdges})
	t.AppendSeparator()

	relTypes := make([]string, 0, len(stats.EdgesByRelType))
	for rt := range stats.EdgesByRelType {
		relTypes = append(relTypes, string(rt))
	}
	sort.Strings(relTypes)
	for _, rt := range relTypes {
		t.AppendRow(table.Row{rt, stats.EdgesByRelType[etymology.RelType(rt)]})
	}

	t.Render()
}
