// Package wikitext is a small, total tokenizer for the subset of MediaWiki
// wiki-markup the etymology pipeline cares about: plain text, wikilinks,
// and (possibly nested) templates. It never errors: tags and comments
// become Other nodes, so callers can always prune them, and unbalanced
// "{{" or "[[" markup degrades to plain Text (spec.md §4.3 step 1, §7
// "the normalizer is total").
package wikitext

// Node is one element of a flat, ordered wiki-markup sequence.
type Node interface {
	node()
}

// Text is a run of plain text between markup constructs.
type Text struct {
	Value string
}

func (Text) node() {}

// Wikilink is a `[[title]]` or `[[title|display]]` construct.
type Wikilink struct {
	Title   string
	Display string // "" when the link has no explicit display text
}

func (Wikilink) node() {}

// Param is one template parameter. Key is empty for positional parameters
// (spec.md §4.2: "excluding keyed parameters ... only positional values
// participate"). Value holds the parameter's content as its own parsed
// node list, since a parameter can itself contain templates (this is what
// the Unnester walks, spec.md §4.4) or wikilinks.
type Param struct {
	Key   string
	Value []Node
}

// Template is a `{{name|...}}` construct, with Params in source order.
type Template struct {
	Name   string
	Params []Param
}

func (Template) node() {}

// Other is anything Text/Wikilink/Template doesn't account for at the top
// level: HTML-ish tags and comments. The Normalizer's pruning pass
// (spec.md §4.3 step 1) removes these.
type Other struct {
	Raw string
}

func (Other) node() {}

// Positional returns only t's unkeyed parameters, in declaration order
// (spec.md §4.2).
func (t Template) Positional() []Param {
	out := make([]Param, 0, len(t.Params))
	for _, p := range t.Params {
		if p.Key == "" {
			out = append(out, p)
		}
	}
	return out
}

// PositionalStrings is a convenience over Positional + PlainText, since
// most parser families only need the flattened string form of each
// positional parameter (spec.md §4.2 parser families).
func (t Template) PositionalStrings() []string {
	pos := t.Positional()
	out := make([]string, len(pos))
	for i, p := range pos {
		out[i] = PlainText(p.Value)
	}
	return out
}

// PlainText flattens a node list to its approximate display string: Text
// values concatenated, Wikilink display text (or title if no display text)
// substituted, and Template/Other nodes ignored. This is how most template
// parsers read a simple positional parameter like `water` or `[[water]]`.
func PlainText(nodes []Node) string {
	var out []byte
	for _, n := range nodes {
		switch v := n.(type) {
		case Text:
			out = append(out, v.Value...)
		case Wikilink:
			if v.Display != "" {
				out = append(out, v.Display...)
			} else {
				out = append(out, v.Title...)
			}
		}
	}
	return string(out)
}

// InnerTemplates returns the Template nodes found at the top level of
// nodes (non-recursive), in document order. Used by the Unnester
// (spec.md §4.4 step 2: "parse its value for top-level inner templates").
func InnerTemplates(nodes []Node) []*Template {
	var out []*Template
	for i := range nodes {
		if tpl, ok := nodes[i].(Template); ok {
			t := tpl
			out = append(out, &t)
		}
	}
	return out
}

// WalkTemplates recursively collects every Template in nodes, in document
// order, descending into parameter values (spec.md §4.5 step 4: "iterate
// templates (recursive over the section) in document order").
func WalkTemplates(nodes []Node) []*Template {
	var out []*Template
	var visit func([]Node)
	visit = func(ns []Node) {
		for _, n := range ns {
			tpl, ok := n.(Template)
			if !ok {
				continue
			}
			t := tpl
			out = append(out, &t)
			for _, p := range tpl.Params {
				visit(p.Value)
			}
		}
	}
	visit(nodes)
	return out
}
