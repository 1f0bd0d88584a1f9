package wikitext

import "strings"

// Parse tokenizes s into a flat Node sequence. It never returns an error:
// unbalanced "{{" or "[[" degrade to plain Text rather than failing the
// whole page, since a single malformed template must not sink the rest of
// an article (spec.md §7).
func Parse(s string) []Node {
	var nodes []Node
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			nodes = append(nodes, Text{Value: buf.String()})
			buf.Reset()
		}
	}

	i := 0
	for i < len(s) {
		switch {
		case strings.HasPrefix(s[i:], "{{"):
			end := matchingClose(s, i, "{{", "}}")
			if end == -1 {
				buf.WriteString(s[i:])
				i = len(s)
				continue
			}
			flush()
			inner := s[i+2 : end-2]
			nodes = append(nodes, parseTemplate(inner))
			i = end

		case strings.HasPrefix(s[i:], "[["):
			end := matchingClose(s, i, "[[", "]]")
			if end == -1 {
				buf.WriteString(s[i:])
				i = len(s)
				continue
			}
			flush()
			inner := s[i+2 : end-2]
			nodes = append(nodes, parseWikilink(inner))
			i = end

		case strings.HasPrefix(s[i:], "<!--"):
			end := strings.Index(s[i:], "-->")
			flush()
			if end == -1 {
				nodes = append(nodes, Other{Raw: s[i:]})
				i = len(s)
			} else {
				abs := i + end + len("-->")
				nodes = append(nodes, Other{Raw: s[i:abs]})
				i = abs
			}

		case s[i] == '<':
			end := strings.IndexByte(s[i:], '>')
			if end == -1 {
				buf.WriteByte(s[i])
				i++
				continue
			}
			flush()
			abs := i + end + 1
			nodes = append(nodes, Other{Raw: s[i:abs]})
			i = abs

		default:
			buf.WriteByte(s[i])
			i++
		}
	}
	flush()
	return nodes
}

// matchingClose returns the index just past the close delimiter matching
// the open delimiter starting at start, honoring nesting of the same
// delimiter pair ("{{ {{ }} }}"). Returns -1 if unbalanced.
func matchingClose(s string, start int, open, close string) int {
	depth := 0
	i := start
	for i < len(s) {
		switch {
		case strings.HasPrefix(s[i:], open):
			depth++
			i += len(open)
		case strings.HasPrefix(s[i:], close):
			depth--
			i += len(close)
			if depth == 0 {
				return i
			}
		default:
			i++
		}
	}
	return -1
}

// parseTemplate splits a template's inner content ("name|a|b|k=v") on
// top-level "|" and classifies each parameter segment as positional or
// keyed on the first top-level "=" (spec.md §4.2).
func parseTemplate(inner string) Template {
	segments := splitTopLevel(inner, '|')
	if len(segments) == 0 {
		return Template{}
	}
	t := Template{Name: strings.TrimSpace(segments[0])}
	for _, seg := range segments[1:] {
		if eq := firstTopLevelIndex(seg, '='); eq != -1 {
			key := strings.TrimSpace(seg[:eq])
			val := strings.TrimSpace(seg[eq+1:])
			t.Params = append(t.Params, Param{Key: key, Value: Parse(val)})
			continue
		}
		t.Params = append(t.Params, Param{Value: Parse(strings.TrimSpace(seg))})
	}
	return t
}

func parseWikilink(inner string) Wikilink {
	segments := splitTopLevel(inner, '|')
	link := Wikilink{Title: strings.TrimSpace(segments[0])}
	if len(segments) > 1 {
		link.Display = strings.TrimSpace(strings.Join(segments[1:], "|"))
	}
	return link
}

// splitTopLevel splits s on sep, ignoring occurrences nested inside
// "{{...}}" or "[[...]]".
func splitTopLevel(s string, sep byte) []string {
	var out []string
	depth := 0
	start := 0
	i := 0
	for i < len(s) {
		switch {
		case strings.HasPrefix(s[i:], "{{"), strings.HasPrefix(s[i:], "[["):
			depth++
			i += 2
		case strings.HasPrefix(s[i:], "}}"), strings.HasPrefix(s[i:], "]]"):
			if depth > 0 {
				depth--
			}
			i += 2
		case depth == 0 && s[i] == sep:
			out = append(out, s[start:i])
			i++
			start = i
		default:
			i++
		}
	}
	out = append(out, s[start:])
	return out
}

// firstTopLevelIndex returns the index of the first occurrence of b in s
// that is not nested inside "{{...}}" or "[[...]]", or -1.
func firstTopLevelIndex(s string, b byte) int {
	depth := 0
	i := 0
	for i < len(s) {
		switch {
		case strings.HasPrefix(s[i:], "{{"), strings.HasPrefix(s[i:], "[["):
			depth++
			i += 2
		case strings.HasPrefix(s[i:], "}}"), strings.HasPrefix(s[i:], "]]"):
			if depth > 0 {
				depth--
			}
			i += 2
		case depth == 0 && s[i] == b:
			return i
		default:
			i++
		}
	}
	return -1
}
