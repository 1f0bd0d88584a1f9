// Package etymology defines the etymology edge record and its identity scheme.
package etymology

import (
	"crypto/rand"
	"encoding/base64"
	"strings"

	"github.com/google/uuid"
)

// RelType is one of the closed set of etymological relation kinds.
type RelType string

// The closed set of relation kinds. Downstream consumers treat any value
// outside this set as a bug, not a new kind to learn (spec invariant I1).
const (
	RelInheritedFrom             RelType = "inherited_from"
	RelDerivedFrom               RelType = "derived_from"
	RelBorrowedFrom              RelType = "borrowed_from"
	RelLearnedBorrowingFrom      RelType = "learned_borrowing_from"
	RelOrthographicBorrowingFrom RelType = "orthographic_borrowing_from"
	RelHasPieRoot                RelType = "has_pie_root"
	RelHasAffix                  RelType = "has_affix"
	RelHasPrefix                 RelType = "has_prefix"
	RelHasPrefixWithRoot         RelType = "has_prefix_with_root"
	RelHasSuffix                 RelType = "has_suffix"
	RelHasConfix                 RelType = "has_confix"
	RelCompoundOf                RelType = "compound_of"
	RelBlendOf                   RelType = "blend_of"
	RelClippingOf                RelType = "clipping_of"
	RelBackFormationFrom         RelType = "back-formation_from"
	RelDoubletWith               RelType = "doublet_with"
	RelIsOnomatopoeic            RelType = "is_onomatopoeic"
	RelCalqueOf                  RelType = "calque_of"
	RelSemanticLoanOf            RelType = "semantic_loan_of"
	RelNamedAfter                RelType = "named_after"
	RelPhonoSemanticMatchingOf   RelType = "phono-semantic_matching_of"
	RelEtymologicallyRelatedTo   RelType = "etymologically_related_to"
	RelCognateOf                 RelType = "cognate_of"

	// Group-parent kinds. An edge carrying one of these as its RelType is a
	// header for an unnested group, never a concrete relation (invariant I2).
	RelGroupAffixRoot   RelType = "group_affix_root"
	RelGroupRelatedRoot RelType = "group_related_root"
	RelGroupDerivedRoot RelType = "group_derived_root"
)

// validRelTypes backs the P1 property check (reltype is always in the closed set).
var validRelTypes = map[RelType]bool{
	RelInheritedFrom: true, RelDerivedFrom: true, RelBorrowedFrom: true,
	RelLearnedBorrowingFrom: true, RelOrthographicBorrowingFrom: true,
	RelHasPieRoot: true, RelHasAffix: true, RelHasPrefix: true,
	RelHasPrefixWithRoot: true, RelHasSuffix: true, RelHasConfix: true,
	RelCompoundOf: true, RelBlendOf: true, RelClippingOf: true,
	RelBackFormationFrom: true, RelDoubletWith: true, RelIsOnomatopoeic: true,
	RelCalqueOf: true, RelSemanticLoanOf: true, RelNamedAfter: true,
	RelPhonoSemanticMatchingOf: true, RelEtymologicallyRelatedTo: true,
	RelCognateOf: true, RelGroupAffixRoot: true, RelGroupRelatedRoot: true,
	RelGroupDerivedRoot: true,
}

// IsValidRelType reports whether rt is a member of the closed relation set.
func IsValidRelType(rt RelType) bool {
	return validRelTypes[rt]
}

// Edge is one extracted etymological claim: one row of CSV output.
type Edge struct {
	TermID         string
	Lang           string
	Term           string
	RelType        RelType
	RelatedTermID  string
	RelatedLang    string
	RelatedTerm    string
	Position       int
	GroupTag       string
	ParentTag      string
	ParentPosition int // meaningful only when ParentTag != ""
}

// HasParentPosition reports whether ParentPosition should be rendered;
// position 0 is a legitimate ordinal, so a bool companion (rather than -1
// sentinel) keeps CSV rendering unambiguous.
func (e Edge) HasParentPosition() bool {
	return e.ParentTag != ""
}

// IsGroupParent reports whether e is a synthetic group header rather than a
// concrete relation (invariant I2).
func (e Edge) IsGroupParent() bool {
	return e.GroupTag != ""
}

// IsValid reports whether e should be emitted per invariant I5: a
// related_term of "" or "-" invalidates a non-group edge. Group parents
// (no related_term by construction) are exempt.
func (e Edge) IsValid() bool {
	if e.IsGroupParent() {
		return true
	}
	return e.RelatedTerm != "" && e.RelatedTerm != "-"
}

// Header returns the CSV column names in the order spec.md §6 requires.
func Header() []string {
	return []string{
		"term_id", "lang", "term", "reltype",
		"related_term_id", "related_lang", "related_term",
		"position", "group_tag", "parent_tag", "parent_position",
	}
}

// idNamespace mirrors the Python original's uuid.NAMESPACE_OID.
var idNamespace = uuid.NameSpaceOID

// TermID computes the stable identifier for a (lang, term) pair:
// base64url(UUIDv5(NAMESPACE_OID, lang + "^" + term)) with trailing "="
// stripped. Identical (lang, term) always yields identical output.
func TermID(lang, term string) string {
	return idFor(lang + "^" + term)
}

func idFor(name string) string {
	id := uuid.NewSHA1(idNamespace, []byte(name))
	return strings.TrimRight(base64.URLEncoding.EncodeToString(id[:]), "=")
}

// RelatedTermID computes the identifier for the object side of an edge.
// Returns "" if either input is empty, matching the optionality spec.md §3
// describes for related_term_id.
func RelatedTermID(relatedLang, relatedTerm string) string {
	if relatedLang == "" || relatedTerm == "" {
		return ""
	}
	return idFor(relatedLang + "^" + relatedTerm)
}

// NewGroupTag mints a fresh random UUIDv4 group tag for a group-parent edge.
// Tags are globally unique by construction and need no run-wide coordination
// (spec.md §5), which is what makes sharding across workers safe.
func NewGroupTag() string {
	return uuid.Must(uuid.NewRandomFromReader(rand.Reader)).String()
}
