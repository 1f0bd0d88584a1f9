// Package templates is the closed registry of etymology template parsers:
// the ~30 names (and their aliases and upstream misspellings) Wiktionary's
// Etymology sections actually use, each producing a (possibly empty)
// sequence of edges from a template's positional parameters.
package templates

import "github.com/wiktio/etymodb/internal/etymology"

var registry map[string]Parser

func init() {
	inherited := binarySource(etymology.RelInheritedFrom)
	derived := binarySource(etymology.RelDerivedFrom)
	borrowed := binarySource(etymology.RelBorrowedFrom)
	learnedBorrowing := binarySource(etymology.RelLearnedBorrowingFrom)
	orthographicBorrowing := binarySource(etymology.RelOrthographicBorrowingFrom)
	calque := binarySource(etymology.RelCalqueOf)
	semanticLoan := binarySource(etymology.RelSemanticLoanOf)
	phonoSemanticMatching := binarySource(etymology.RelPhonoSemanticMatchingOf)

	mention := mentionLike(etymology.RelEtymologicallyRelatedTo)
	cognate := mentionLike(etymology.RelCognateOf)
	nonCognate := mentionLike(etymology.RelEtymologicallyRelatedTo)
	namedAfter := mentionLike(etymology.RelNamedAfter)
	clipping := mentionLike(etymology.RelClippingOf)
	backForm := mentionLike(etymology.RelBackFormationFrom)

	affix := multiSourcePositional(etymology.RelHasAffix)
	compound := multiSourcePositional(etymology.RelCompoundOf)
	blend := multiSourcePositional(etymology.RelBlendOf)
	doublet := multiSourcePositional(etymology.RelDoubletWith)

	// Registered keys match the upstream corpus exactly, spacing/case
	// quirks and known misspellings included (spec.md §4.2, §9).
	registry = map[string]Parser{
		"inherited": inherited, "inh": inherited,
		"derived": derived, "der": derived,
		"borrowed": borrowed, "bor": borrowed,
		"learned borrowring":   learnedBorrowing,
		"orthographic borrowing": orthographicBorrowing, "obor": orthographicBorrowing,
		"PIE root": pieRoot,
		"affix":    affix, "af": affix,
		"prefix": prefixParser,
		"confix": confixParser,
		"suffix": suffixParser,
		"compound": compound,
		"blend":    blend,
		"clipping": clipping,
		"back_form": backForm,
		"doublet":   doublet,
		"onomatopoeic": onomatopoeic, "onom": onomatopoeic,
		"calque":        calque,
		"semantic loan": semanticLoan,
		"named-after":   namedAfter,
		"phono-semantifc matching": phonoSemanticMatching, "psm": phonoSemanticMatching,
		"mention": mention, "m": mention,
		"cognate": cognate, "cog": cognate,
		"noncognate": nonCognate, "noncog": nonCognate,
		"langname-mention": mention, "m+": mention, "link": mention, "l": mention,
		"derived-parsed": derived,
		"affix-parsed":   groupParser(etymology.RelGroupAffixRoot),
		"from-parsed":    groupParser(etymology.RelGroupDerivedRoot),
		"related-parsed": groupParser(etymology.RelGroupRelatedRoot),
	}
}

// Lookup resolves a template name to its Parser, or nil if name is not
// registered (the caller skips — spec.md §4.2, §7).
func Lookup(name string) Parser {
	return registry[name]
}
