// Package emit writes etymology.Edge records to CSV, the pipeline's only
// output contract (spec.md §6).
package emit

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/wiktio/etymodb/internal/etymology"
)

// Writer serializes edges as CSV rows. It is not goroutine-safe; callers
// sharding across workers must guard it with a mutex (spec.md §5c).
type Writer struct {
	cw *csv.Writer
}

// NewWriter wraps w in a CSV encoder using the standard library's writer,
// matching the teacher's own COPY-staging use of encoding/csv.
func NewWriter(w io.Writer) *Writer {
	return &Writer{cw: csv.NewWriter(w)}
}

// WriteHeader writes the column names in spec.md §6's required order.
func (w *Writer) WriteHeader() error {
	if err := w.cw.Write(etymology.Header()); err != nil {
		return fmt.Errorf("emit: writing header: %w", err)
	}
	return nil
}

// WriteEdge renders one edge as a row. Empty/zero fields render as empty
// strings, including parent_position when the edge has no parent.
func (w *Writer) WriteEdge(e etymology.Edge) error {
	parentPosition := ""
	if e.HasParentPosition() {
		parentPosition = strconv.Itoa(e.ParentPosition)
	}
	row := []string{
		e.TermID,
		e.Lang,
		e.Term,
		string(e.RelType),
		e.RelatedTermID,
		e.RelatedLang,
		e.RelatedTerm,
		strconv.Itoa(e.Position),
		e.GroupTag,
		e.ParentTag,
		parentPosition,
	}
	if err := w.cw.Write(row); err != nil {
		return fmt.Errorf("emit: writing edge: %w", err)
	}
	return nil
}

// Flush flushes the underlying CSV writer and returns any write error
// encountered during buffering.
func (w *Writer) Flush() error {
	w.cw.Flush()
	return w.cw.Error()
}
