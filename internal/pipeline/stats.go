package pipeline

import (
	"sync"

	"github.com/wiktio/etymodb/internal/etymology"
)

// Stats is a run summary: pages scanned, edges emitted per reltype, and
// counts for the two article/edge-scoped skip reasons spec.md §7 names.
// Generalizes the reference's bare `print(words, etys)` progress line into
// a structured breakdown (spec.md §10).
type Stats struct {
	mu sync.Mutex

	PagesScanned         int
	EdgesByRelType       map[etymology.RelType]int
	SkippedUnmappedLangs int
	SkippedInvalidEdges  int
}

// NewStats returns a zeroed, ready-to-use Stats.
func NewStats() *Stats {
	return &Stats{EdgesByRelType: make(map[etymology.RelType]int)}
}

func (s *Stats) addPage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.PagesScanned++
}

func (s *Stats) addEdge(e etymology.Edge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.EdgesByRelType[e.RelType]++
}

func (s *Stats) addUnmappedLang() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SkippedUnmappedLangs++
}

func (s *Stats) addInvalidEdge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SkippedInvalidEdges++
}

// TotalEdges sums EdgesByRelType, used by CLI summary rendering.
func (s *Stats) TotalEdges() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.EdgesByRelType {
		total += n
	}
	return total
}

// FromEdges recomputes a Stats breakdown from a previously written edge
// set, backing the `stats` subcommand (spec.md §10).
func FromEdges(edges []etymology.Edge) *Stats {
	s := NewStats()
	for _, e := range edges {
		s.addEdge(e)
	}
	return s
}
