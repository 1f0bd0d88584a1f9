package emit

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/wiktio/etymodb/internal/etymology"
)

// ReadEdges decodes a CSV stream previously produced by Writer back into
// Edge values. It tolerates an optional leading header row (spec.md §6:
// "No header row is required; if included it MUST match these names"),
// used by the stats subcommand to recompute a summary from a prior run's
// output.
func ReadEdges(r io.Reader) ([]etymology.Edge, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(etymology.Header())

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("emit: reading edges: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if rows[0][0] == "term_id" {
		rows = rows[1:]
	}

	edges := make([]etymology.Edge, 0, len(rows))
	for _, row := range rows {
		position, _ := strconv.Atoi(row[7])
		parentPosition := 0
		if row[10] != "" {
			parentPosition, _ = strconv.Atoi(row[10])
		}
		edges = append(edges, etymology.Edge{
			TermID:         row[0],
			Lang:           row[1],
			Term:           row[2],
			RelType:        etymology.RelType(row[3]),
			RelatedTermID:  row[4],
			RelatedLang:    row[5],
			RelatedTerm:    row[6],
			Position:       position,
			GroupTag:       row[8],
			ParentTag:      row[9],
			ParentPosition: parentPosition,
		})
	}
	return edges, nil
}
