package unnest

import (
	"testing"

	"github.com/wiktio/etymodb/internal/etymology"
	"github.com/wiktio/etymodb/internal/langcode"
	"github.com/wiktio/etymodb/internal/wikitext"
)

// mentionParser stands in for the real templates.mention parser, kept
// local so this package's tests don't depend on internal/templates (which
// itself depends on unnest).
func mentionParser(term, lang string, tpl wikitext.Template, _ *langcode.Table) []etymology.Edge {
	pos := tpl.PositionalStrings()
	if len(pos) < 2 {
		return nil
	}
	return []etymology.Edge{{
		TermID:        etymology.TermID(lang, term),
		Lang:          lang,
		Term:          term,
		RelType:       etymology.RelEtymologicallyRelatedTo,
		RelatedTermID: etymology.RelatedTermID(pos[0], pos[1]),
		RelatedLang:   pos[0],
		RelatedTerm:   pos[1],
	}}
}

func lookup(name string) Parser {
	if name == "m" {
		return func(term, lang string, tpl wikitext.Template, table *langcode.Table) []etymology.Edge {
			return mentionParser(term, lang, tpl, table)
		}
	}
	return nil
}

func TestBuildEmitsGroupParentAndChildren(t *testing.T) {
	nodes := wikitext.Parse("{{affix-parsed|{{m|en|foo}}|{{m|en|bar}}|{{m|en|baz}}}}")
	tpl := nodes[0].(wikitext.Template)

	edges := Build("word", "en", etymology.RelGroupAffixRoot, tpl, nil, lookup)
	if len(edges) != 4 {
		t.Fatalf("expected 1 parent + 3 children, got %d: %#v", len(edges), edges)
	}
	parent := edges[0]
	if !parent.IsGroupParent() || parent.RelType != etymology.RelGroupAffixRoot {
		t.Fatalf("expected group-parent edge first, got %#v", parent)
	}
	for i, child := range edges[1:] {
		if child.ParentTag != parent.GroupTag {
			t.Errorf("child %d ParentTag = %q, want %q", i, child.ParentTag, parent.GroupTag)
		}
		if child.ParentPosition != i {
			t.Errorf("child %d ParentPosition = %d, want %d", i, child.ParentPosition, i)
		}
	}
}

func TestBuildPreservesNestedParentTag(t *testing.T) {
	// A child that already carries a parent_tag (from a deeper nested
	// group) must not be re-parented by the outer group.
	preParented := etymology.Edge{ParentTag: "deep-tag", ParentPosition: 5, RelatedTerm: "x"}
	nested := func(term, lang string, tpl wikitext.Template, table *langcode.Table) []etymology.Edge {
		return []etymology.Edge{preParented}
	}
	nodes := wikitext.Parse("{{affix-parsed|{{inner}}}}")
	tpl := nodes[0].(wikitext.Template)

	edges := Build("word", "en", etymology.RelGroupAffixRoot, tpl, nil, func(name string) Parser {
		if name == "inner" {
			return nested
		}
		return nil
	})
	if len(edges) != 2 {
		t.Fatalf("expected 1 parent + 1 preserved child, got %d", len(edges))
	}
	if edges[1].ParentTag != "deep-tag" || edges[1].ParentPosition != 5 {
		t.Fatalf("nested parent link was overwritten: %#v", edges[1])
	}
}

func TestBuildSkipsUnregisteredInnerTemplates(t *testing.T) {
	nodes := wikitext.Parse("{{affix-parsed|{{unknown}}|{{m|en|bar}}}}")
	tpl := nodes[0].(wikitext.Template)

	edges := Build("word", "en", etymology.RelGroupAffixRoot, tpl, nil, lookup)
	// 1 parent + 1 child (from the registered {{m}}); the unregistered
	// positional contributes nothing and does not advance parent_position,
	// since it had no parseable inner template.
	if len(edges) != 2 {
		t.Fatalf("expected 2 edges, got %d: %#v", len(edges), edges)
	}
	if edges[1].ParentPosition != 0 {
		t.Fatalf("expected parent_position 0 (unregistered positional doesn't advance it), got %d", edges[1].ParentPosition)
	}
}
