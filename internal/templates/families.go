package templates

import (
	"github.com/wiktio/etymodb/internal/etymology"
	"github.com/wiktio/etymodb/internal/langcode"
	"github.com/wiktio/etymodb/internal/unnest"
	"github.com/wiktio/etymodb/internal/wikitext"
)

// Parser is the shape every registered template parser satisfies. term and
// lang come from the Page Driver (spec.md §4.5 step 4); table canonicalizes
// a related language's short code before it's used for display or for
// related_term_id (spec.md §8 P2).
type Parser = unnest.Parser

func edge(term, lang string, rel etymology.RelType, relatedLang, relatedTerm string, position int, table *langcode.Table) etymology.Edge {
	canonical := table.Resolve(relatedLang)
	return etymology.Edge{
		TermID:        etymology.TermID(lang, term),
		Lang:          lang,
		Term:          term,
		RelType:       rel,
		RelatedTermID: etymology.RelatedTermID(canonical, relatedTerm),
		RelatedLang:   canonical,
		RelatedTerm:   relatedTerm,
		Position:      position,
	}
}

// binarySource builds the (lang, source_lang, source_word) -> one edge
// family: inherited, derived, borrowed, learned_borrowing,
// orthographic_borrowing, calque, semantic_loan, phono_semantic_matching,
// and derived-parsed. The template's own first positional is a redundant
// echo of the page's subject language and is consumed (to keep the
// positional-count check meaningful) but not used for Lang — the
// externally supplied lang is authoritative (spec.md §4.5 step 4).
func binarySource(rel etymology.RelType) Parser {
	return func(term, lang string, tpl wikitext.Template, table *langcode.Table) []etymology.Edge {
		pos := tpl.PositionalStrings()
		if len(pos) < 3 {
			return nil
		}
		return []etymology.Edge{edge(term, lang, rel, pos[1], pos[2], 0, table)}
	}
}

// mentionLike builds the (source_lang, source_word) -> one edge family:
// mention, cognate, non_cognate, named_after, clipping, back_form.
func mentionLike(rel etymology.RelType) Parser {
	return func(term, lang string, tpl wikitext.Template, table *langcode.Table) []etymology.Edge {
		pos := tpl.PositionalStrings()
		if len(pos) < 2 {
			return nil
		}
		return []etymology.Edge{edge(term, lang, rel, pos[0], pos[1], 0, table)}
	}
}

// multiSourcePositional builds the (source_lang, part1, ... partN) -> N
// edges family: affix, compound, blend, doublet. Every part shares the
// template's own declared language (unlike binarySource, this positional
// is used, since the parts are morphemes in that same language).
func multiSourcePositional(rel etymology.RelType) Parser {
	return func(term, lang string, tpl wikitext.Template, table *langcode.Table) []etymology.Edge {
		pos := tpl.PositionalStrings()
		if len(pos) < 2 {
			return nil
		}
		partLang, parts := pos[0], pos[1:]
		edges := make([]etymology.Edge, len(parts))
		for i, part := range parts {
			edges[i] = edge(term, lang, rel, partLang, part, i, table)
		}
		return edges
	}
}

// pieRoot is a multi-source positional parser with related_lang fixed to
// "ine-pro" regardless of the template's declared language (spec.md §4.2).
func pieRoot(term, lang string, tpl wikitext.Template, table *langcode.Table) []etymology.Edge {
	pos := tpl.PositionalStrings()
	if len(pos) < 2 {
		return nil
	}
	roots := pos[1:]
	edges := make([]etymology.Edge, len(roots))
	for i, root := range roots {
		edges[i] = edge(term, lang, etymology.RelHasPieRoot, "ine-pro", root, i, table)
	}
	return edges
}

// prefixParser: (lang, prefix, [root]) -> has_prefix(prefix), plus
// has_prefix_with_root(root) when a non-empty third positional is present.
func prefixParser(term, lang string, tpl wikitext.Template, table *langcode.Table) []etymology.Edge {
	pos := tpl.PositionalStrings()
	if len(pos) < 2 {
		return nil
	}
	edges := []etymology.Edge{edge(term, lang, etymology.RelHasPrefix, pos[0], pos[1], 0, table)}
	if len(pos) > 2 && pos[2] != "" {
		edges = append(edges, edge(term, lang, etymology.RelHasPrefixWithRoot, pos[0], pos[2], 0, table))
	}
	return edges
}

// suffixParser: (lang, root, suffix) -> has_prefix_with_root(root) (the
// source's own reused label, not a dedicated has_suffix_with_root — see
// spec.md §9 open question) and has_suffix(suffix).
func suffixParser(term, lang string, tpl wikitext.Template, table *langcode.Table) []etymology.Edge {
	pos := tpl.PositionalStrings()
	if len(pos) < 3 {
		return nil
	}
	return []etymology.Edge{
		edge(term, lang, etymology.RelHasPrefixWithRoot, pos[0], pos[1], 0, table),
		edge(term, lang, etymology.RelHasSuffix, pos[0], pos[2], 0, table),
	}
}

// confixParser: (lang, prefix, [middles...], suffix) -> one has_confix
// edge per part. Position is the part's index within the part list
// (excluding lang) for every part except the last, which instead gets
// position = len(parts) - 2 — the source's own formula, reproduced
// exactly (spec.md §9): for a prefix+suffix-only confix this collides
// both positions at 0.
func confixParser(term, lang string, tpl wikitext.Template, table *langcode.Table) []etymology.Edge {
	pos := tpl.PositionalStrings()
	if len(pos) < 3 {
		return nil
	}
	partLang, parts := pos[0], pos[1:]
	edges := make([]etymology.Edge, len(parts))
	last := len(parts) - 1
	for i, part := range parts {
		position := i
		if i == last {
			position = len(parts) - 2
		}
		edges[i] = edge(term, lang, etymology.RelHasConfix, partLang, part, position, table)
	}
	return edges
}

// onomatopoeic: (lang) -> one self-loop edge marking the term itself as
// onomatopoeic.
func onomatopoeic(term, lang string, tpl wikitext.Template, table *langcode.Table) []etymology.Edge {
	pos := tpl.PositionalStrings()
	relLang := lang
	if len(pos) > 0 && pos[0] != "" {
		relLang = pos[0]
	}
	return []etymology.Edge{edge(term, lang, etymology.RelIsOnomatopoeic, relLang, term, 0, table)}
}

// groupParser wraps unnest.Build for the three synthetic group templates
// the Normalizer produces (affix-parsed, from-parsed, related-parsed).
func groupParser(kind etymology.RelType) Parser {
	return func(term, lang string, tpl wikitext.Template, table *langcode.Table) []etymology.Edge {
		return unnest.Build(term, lang, kind, tpl, table, Lookup)
	}
}
