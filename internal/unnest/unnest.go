// Package unnest builds the parent/child edge forest for a synthesized
// group template (affix-parsed, from-parsed, related-parsed). It has no
// dependency on the template registry itself — callers inject a Lookup so
// a nested group template can recurse back into the very registry that
// dispatched to this package in the first place, without an import cycle.
package unnest

import (
	"github.com/wiktio/etymodb/internal/etymology"
	"github.com/wiktio/etymodb/internal/langcode"
	"github.com/wiktio/etymodb/internal/wikitext"
)

// Parser is the shape every template parser (plain or group) satisfies.
type Parser func(term, lang string, tpl wikitext.Template, table *langcode.Table) []etymology.Edge

// Lookup resolves a template name to its Parser, or nil for unregistered
// names (the registry is the allow-list, per spec.md §7's edge-scoped
// "unknown template name" skip).
type Lookup func(name string) Parser

// Build constructs the edges for one group template: a single group-parent
// edge for the subject term, plus one subtree per positional parameter
// that contains a recognized inner template (spec.md §4.4).
func Build(term, lang string, groupKind etymology.RelType, tpl wikitext.Template, table *langcode.Table, lookup Lookup) []etymology.Edge {
	groupTag := etymology.NewGroupTag()
	edges := []etymology.Edge{
		{
			TermID:   etymology.TermID(lang, term),
			Lang:     lang,
			Term:     term,
			RelType:  groupKind,
			GroupTag: groupTag,
		},
	}

	parentPosition := 0
	for _, p := range tpl.Positional() {
		inner := wikitext.InnerTemplates(p.Value)
		used := false
		for _, it := range inner {
			parser := lookup(it.Name)
			if parser == nil {
				continue
			}
			used = true
			for _, child := range parser(term, lang, *it, table) {
				if child.ParentTag != "" {
					// Produced by a nested group one level deeper: keep
					// its own parent link (spec.md §4.4 step 2, §9
					// "nested-group parent retention").
					edges = append(edges, child)
					continue
				}
				child.ParentTag = groupTag
				child.ParentPosition = parentPosition
				edges = append(edges, child)
			}
		}
		if used {
			parentPosition++
		}
	}

	return edges
}
