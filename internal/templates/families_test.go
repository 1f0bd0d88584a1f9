package templates

import (
	"strings"
	"testing"

	"github.com/wiktio/etymodb/internal/etymology"
	"github.com/wiktio/etymodb/internal/langcode"
	"github.com/wiktio/etymodb/internal/wikitext"
)

func newTable(t *testing.T) *langcode.Table {
	t.Helper()
	tbl, err := langcode.Load(strings.NewReader("code,name\nenm,Middle English\nla,Latin\ngrc,Ancient Greek\n"))
	if err != nil {
		t.Fatalf("langcode.Load: %v", err)
	}
	return tbl
}

func parseOne(s string) wikitext.Template {
	return wikitext.Parse(s)[0].(wikitext.Template)
}

func TestInheritedThreeParams(t *testing.T) {
	tbl := newTable(t)
	tpl := parseOne("{{inh|en|enm|water}}")
	edges := Lookup("inh")("water", "en", tpl, tbl)
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(edges))
	}
	e := edges[0]
	if e.Lang != "en" || e.Term != "water" || e.RelType != etymology.RelInheritedFrom {
		t.Fatalf("unexpected edge: %#v", e)
	}
	if e.RelatedLang != "Middle English" || e.RelatedTerm != "water" {
		t.Fatalf("unexpected related fields: %#v", e)
	}
	if e.Position != 0 {
		t.Fatalf("expected position 0, got %d", e.Position)
	}
}

func TestInheritedTooFewParamsEmitsNothing(t *testing.T) {
	tbl := newTable(t)
	tpl := parseOne("{{inh|en|enm}}")
	if edges := Lookup("inh")("water", "en", tpl, tbl); len(edges) != 0 {
		t.Fatalf("expected no edges, got %#v", edges)
	}
}

func TestPrefixWithRoot(t *testing.T) {
	tbl := newTable(t)
	tpl := parseOne("{{prefix|en|un|do}}")
	edges := Lookup("prefix")("undo", "en", tpl, tbl)
	if len(edges) != 2 {
		t.Fatalf("expected 2 edges, got %d: %#v", len(edges), edges)
	}
	if edges[0].RelType != etymology.RelHasPrefix || edges[0].RelatedTerm != "un" {
		t.Errorf("unexpected prefix edge: %#v", edges[0])
	}
	if edges[1].RelType != etymology.RelHasPrefixWithRoot || edges[1].RelatedTerm != "do" {
		t.Errorf("unexpected root edge: %#v", edges[1])
	}
}

func TestPrefixWithoutRootOnlyEmitsOne(t *testing.T) {
	tbl := newTable(t)
	tpl := parseOne("{{prefix|en|un}}")
	edges := Lookup("prefix")("undo", "en", tpl, tbl)
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(edges))
	}
}

func TestSuffixReusesPrefixWithRootLabel(t *testing.T) {
	tbl := newTable(t)
	tpl := parseOne("{{suffix|en|do|er}}")
	edges := Lookup("suffix")("doer", "en", tpl, tbl)
	if len(edges) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(edges))
	}
	if edges[0].RelType != etymology.RelHasPrefixWithRoot {
		t.Errorf("expected suffix root to reuse has_prefix_with_root, got %v", edges[0].RelType)
	}
	if edges[1].RelType != etymology.RelHasSuffix {
		t.Errorf("expected has_suffix, got %v", edges[1].RelType)
	}
}

func TestConfixPrefixSuffixOnlyBothPositionZero(t *testing.T) {
	tbl := newTable(t)
	tpl := parseOne("{{confix|en|un|able}}")
	edges := Lookup("confix")("unable", "en", tpl, tbl)
	if len(edges) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(edges))
	}
	if edges[0].Position != 0 || edges[1].Position != 0 {
		t.Fatalf("expected both positions 0, got %d and %d", edges[0].Position, edges[1].Position)
	}
}

func TestConfixWithMiddleCollidesFinalPosition(t *testing.T) {
	tbl := newTable(t)
	tpl := parseOne("{{confix|en|a|b|c}}")
	edges := Lookup("confix")("abc", "en", tpl, tbl)
	if len(edges) != 3 {
		t.Fatalf("expected 3 edges, got %d", len(edges))
	}
	if edges[0].Position != 0 || edges[1].Position != 1 {
		t.Fatalf("unexpected leading positions: %d, %d", edges[0].Position, edges[1].Position)
	}
	if edges[2].Position != 1 {
		t.Fatalf("expected final position to collide at 1 (len(parts)-2), got %d", edges[2].Position)
	}
}

func TestMultiSourcePositional(t *testing.T) {
	tbl := newTable(t)
	tpl := parseOne("{{affix|en|un-|do}}")
	edges := Lookup("affix")("undo", "en", tpl, tbl)
	if len(edges) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(edges))
	}
	for i, e := range edges {
		if e.Position != i {
			t.Errorf("edge %d position = %d, want %d", i, e.Position, i)
		}
		if e.RelatedLang != "en" {
			t.Errorf("edge %d related_lang = %q, want en", i, e.RelatedLang)
		}
	}
}

func TestPieRootFixedRelatedLang(t *testing.T) {
	tbl := newTable(t)
	tpl := parseOne("{{PIE root|en|*wódr̥}}")
	edges := Lookup("PIE root")("water", "en", tpl, tbl)
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(edges))
	}
	if edges[0].RelatedLang != "ine-pro" {
		t.Fatalf("expected fixed related_lang ine-pro, got %q", edges[0].RelatedLang)
	}
}

func TestOnomatopoeicSelfLoop(t *testing.T) {
	tbl := newTable(t)
	tpl := parseOne("{{onom|en}}")
	edges := Lookup("onom")("boom", "en", tpl, tbl)
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(edges))
	}
	if edges[0].RelatedTerm != "boom" || edges[0].RelatedLang != "en" {
		t.Fatalf("unexpected self-loop edge: %#v", edges[0])
	}
}

func TestUnknownTemplateNotRegistered(t *testing.T) {
	if Lookup("not-a-real-template") != nil {
		t.Fatalf("expected nil parser for unregistered name")
	}
}

func TestGroupParserDelegatesToUnnester(t *testing.T) {
	tbl := newTable(t)
	tpl := parseOne("{{affix-parsed|{{m|en|foo}}|{{m|en|bar}}|{{m|en|baz}}}}")
	edges := Lookup("affix-parsed")("word", "en", tpl, tbl)
	if len(edges) != 4 {
		t.Fatalf("expected 1 group-parent + 3 children, got %d: %#v", len(edges), edges)
	}
	if !edges[0].IsGroupParent() || edges[0].RelType != etymology.RelGroupAffixRoot {
		t.Fatalf("expected group-parent edge first, got %#v", edges[0])
	}
}
