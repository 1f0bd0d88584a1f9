// Package normalize implements the Etymology section cleanup pass: prune
// noise, fold the deprecated etyl template into its neighbor, and fuse
// `+`/`,`/`from`-connected template runs into single synthetic templates
// that the Unnester (internal/unnest) can walk as one group.
package normalize

import (
	"regexp"
	"strings"

	"github.com/wiktio/etymodb/internal/wikitext"
)

var mentionLikeNames = map[string]bool{
	"m": true, "mention": true, "m+": true,
	"langname-mention": true, "l": true, "link": true,
}

// Run applies the five ordered passes to one Etymology section's node
// sequence: prune, merge etyl, +-chains, ,-chains, from-chains. Each pass
// may feed synthetic templates to the next (a from-chain can wrap an
// affix-parsed produced earlier), so order matters.
func Run(nodes []wikitext.Node) []wikitext.Node {
	nodes = prune(nodes)
	nodes = mergeEtyl(nodes)
	nodes = combineChains(nodes, "affix-parsed", isPlusText)
	nodes = combineChains(nodes, "related-parsed", isCommaText)
	nodes = combineChains(nodes, "from-parsed", isFromText)
	return nodes
}

// prune removes any top-level node that is not Text/Wikilink/Template, and
// any Text whose trimmed value is empty. Non-recursive: template
// parameters are untouched.
func prune(nodes []wikitext.Node) []wikitext.Node {
	out := make([]wikitext.Node, 0, len(nodes))
	for _, n := range nodes {
		switch v := n.(type) {
		case wikitext.Text:
			if strings.TrimSpace(v.Value) == "" {
				continue
			}
			out = append(out, n)
		case wikitext.Wikilink:
			out = append(out, n)
		case wikitext.Template:
			out = append(out, n)
		}
	}
	return out
}

var tokenSplit = regexp.MustCompile(`[,\s]+`)

// firstToken returns the first comma-or-whitespace-delimited token of s.
func firstToken(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return tokenSplit.Split(s, 2)[0]
}

func strParam(s string) wikitext.Param {
	return wikitext.Param{Value: []wikitext.Node{wikitext.Text{Value: s}}}
}

// mergeEtyl folds each etyl template together with whatever immediately
// follows it into a derived-parsed(subj_lang, rel_lang, term) template, or
// removes the etyl outright when the following node can't be parsed.
func mergeEtyl(nodes []wikitext.Node) []wikitext.Node {
	remove := make(map[int]bool)
	replace := make(map[int]wikitext.Template)

	for i, n := range nodes {
		tpl, ok := n.(wikitext.Template)
		if !ok || tpl.Name != "etyl" || i >= len(nodes)-1 {
			continue
		}
		pos := tpl.PositionalStrings()
		if len(pos) == 0 {
			remove[i] = true
			continue
		}
		relLang := pos[0]
		subjLang := "en"
		if len(pos) > 1 {
			subjLang = pos[1]
		}

		var val string
		synthesized := false
		switch next := nodes[i+1].(type) {
		case wikitext.Text:
			val = firstToken(next.Value)
			synthesized = val != ""
		case wikitext.Wikilink:
			raw := next.Display
			if raw == "" {
				raw = next.Title
			}
			val = firstToken(raw)
			synthesized = val != ""
		case wikitext.Template:
			if mentionLikeNames[next.Name] {
				np := next.PositionalStrings()
				if len(np) > 0 {
					relLang = np[0]
				}
				if len(np) > 1 {
					val = np[1]
					synthesized = true
					remove[i+1] = true
				}
			}
		}

		if synthesized {
			replace[i] = wikitext.Template{
				Name: "derived-parsed",
				Params: []wikitext.Param{
					strParam(subjLang),
					strParam(relLang),
					strParam(val),
				},
			}
		} else {
			remove[i] = true
		}
	}

	out := make([]wikitext.Node, 0, len(nodes))
	for i, n := range nodes {
		if remove[i] {
			continue
		}
		if r, ok := replace[i]; ok {
			out = append(out, r)
			continue
		}
		out = append(out, n)
	}
	return out
}

func isPlusText(v wikitext.Text) bool  { return strings.TrimSpace(v.Value) == "+" }
func isCommaText(v wikitext.Text) bool { return strings.TrimSpace(v.Value) == "," }

var nonLetter = regexp.MustCompile(`[^a-z]+`)

func isFromText(v wikitext.Text) bool {
	if strings.TrimSpace(v.Value) == "<" {
		return true
	}
	return nonLetter.ReplaceAllString(strings.ToLower(v.Value), "") == "from"
}

// combineChains fuses maximal runs of templates connected by a trigger
// Text node (as decided by isTrigger) into a single newName template whose
// positional parameters are the fused templates, in order. Runs shorter
// than 2 templates are left untouched; the connective Text nodes
// themselves are never removed.
func combineChains(nodes []wikitext.Node, newName string, isTrigger func(wikitext.Text) bool) []wikitext.Node {
	var templateIndices []int
	textIndices := make(map[int]bool)
	for i, n := range nodes {
		switch v := n.(type) {
		case wikitext.Template:
			templateIndices = append(templateIndices, i)
		case wikitext.Text:
			if isTrigger(v) {
				textIndices[i] = true
			}
		}
	}

	var indexCombos [][]int
	var indexCombo []int
	inCombo := make(map[int]bool)
	combine := false

	flush := func() {
		if len(indexCombo) > 1 {
			cp := append([]int(nil), indexCombo...)
			indexCombos = append(indexCombos, cp)
		}
		for _, idx := range indexCombo {
			delete(inCombo, idx)
		}
		indexCombo = nil
	}

	for _, idx := range templateIndices {
		if textIndices[idx+1] || (inCombo[idx-2] && combine) {
			indexCombo = append(indexCombo, idx)
			inCombo[idx] = true
		}
		combine = textIndices[idx+1]
		if !combine {
			flush()
		}
	}
	flush()

	if len(indexCombos) == 0 {
		return nodes
	}

	replace := make(map[int]wikitext.Template)
	remove := make(map[int]bool)
	for _, combo := range indexCombos {
		params := make([]wikitext.Param, len(combo))
		for j, idx := range combo {
			params[j] = wikitext.Param{Value: []wikitext.Node{nodes[idx]}}
		}
		replace[combo[0]] = wikitext.Template{Name: newName, Params: params}
		for _, idx := range combo[1:] {
			remove[idx] = true
		}
	}

	out := make([]wikitext.Node, 0, len(nodes))
	for i, n := range nodes {
		if remove[i] {
			continue
		}
		if r, ok := replace[i]; ok {
			out = append(out, r)
			continue
		}
		out = append(out, n)
	}
	return out
}
