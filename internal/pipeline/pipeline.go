// Package pipeline drives the end-to-end extraction: for each dump page it
// locates the language section and its etymology subsections, normalizes
// and walks their templates, dispatches each to the registry, and emits
// the resulting edges — sharded across a worker pool (spec.md §4.5, §5).
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/wiktio/etymodb/internal/dump"
	"github.com/wiktio/etymodb/internal/emit"
	"github.com/wiktio/etymodb/internal/etymology"
	"github.com/wiktio/etymodb/internal/langcode"
	"github.com/wiktio/etymodb/internal/normalize"
	"github.com/wiktio/etymodb/internal/templates"
	"github.com/wiktio/etymodb/internal/wikitext"

	"golang.org/x/sync/errgroup"
)

// Driver runs the extraction pipeline over a dump stream.
type Driver struct {
	Table   *langcode.Table
	Writer  *emit.Writer
	Workers int // defaults to 1 if <= 0
	Logger  *slog.Logger
}

// Run walks r's pages, dispatching each to a bounded worker pool, and
// writes every valid resulting edge through Driver.Writer. It blocks until
// the dump is fully consumed or ctx is cancelled, mirroring the teacher's
// errgroup.WithContext(ctx) server-loop shape (internal/ui/server.go)
// generalized from "one goroutine per concern" to "N goroutines over one
// work queue".
func (d *Driver) Run(ctx context.Context, r io.Reader) (*Stats, error) {
	workers := d.Workers
	if workers <= 0 {
		workers = 1
	}
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	stats := NewStats()
	pages := make(chan dump.Page, workers*4)
	var writeMu sync.Mutex

	eg, egctx := errgroup.WithContext(ctx)

	for i := 0; i < workers; i++ {
		eg.Go(func() error {
			for {
				select {
				case <-egctx.Done():
					return egctx.Err()
				case p, ok := <-pages:
					if !ok {
						return nil
					}
					edges := d.processPage(p, stats)
					if len(edges) == 0 {
						continue
					}
					writeMu.Lock()
					err := writeEdges(d.Writer, edges)
					writeMu.Unlock()
					if err != nil {
						return fmt.Errorf("pipeline: writing edges for %q: %w", p.Title, err)
					}
				}
			}
		})
	}

	eg.Go(func() error {
		defer close(pages)
		return dump.Walk(r, func(p dump.Page) error {
			select {
			case <-egctx.Done():
				return egctx.Err()
			case pages <- p:
				return nil
			}
		})
	})

	if err := eg.Wait(); err != nil {
		return stats, err
	}
	logger.Info("extraction complete",
		"pages_scanned", stats.PagesScanned,
		"edges_written", stats.TotalEdges(),
		"skipped_unmapped_langs", stats.SkippedUnmappedLangs,
		"skipped_invalid_edges", stats.SkippedInvalidEdges,
	)
	return stats, nil
}

func writeEdges(w *emit.Writer, edges []etymology.Edge) error {
	for _, e := range edges {
		if err := w.WriteEdge(e); err != nil {
			return err
		}
	}
	return w.Flush()
}

// processPage implements the Page Driver (spec.md §4.5): find each
// level-2 language section whose heading resolves to a known code, find
// its nested Etymology subsections, normalize and walk their templates,
// and dispatch each recognized template to the registry.
func (d *Driver) processPage(p dump.Page, stats *Stats) []etymology.Edge {
	stats.addPage()

	var edges []etymology.Edge
	for _, langSection := range wikitext.Sections(2, p.Text) {
		lang, ok := d.Table.ReverseLookup(langSection.Title)
		if !ok {
			stats.addUnmappedLang()
			continue
		}

		for _, etySection := range wikitext.EtymologySections(langSection.Body) {
			nodes := normalize.Run(wikitext.Parse(etySection.Body))
			for _, tpl := range wikitext.WalkTemplates(nodes) {
				parser := templates.Lookup(tpl.Name)
				if parser == nil {
					continue
				}
				for _, e := range parser(p.Title, lang, *tpl, d.Table) {
					if !e.IsValid() {
						stats.addInvalidEdge()
						continue
					}
					stats.addEdge(e)
					edges = append(edges, e)
				}
			}
		}
	}
	return edges
}
