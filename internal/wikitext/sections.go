package wikitext

import (
	"regexp"
	"strings"
)

// Section is a heading-delimited span of a page's raw wikitext.
type Section struct {
	Level int
	Title string
	Body  string
}

var headingLine = regexp.MustCompile(`(?m)^(={1,6})\s*(.*?)\s*(={1,6})\s*$`)

type heading struct {
	level     int
	title     string
	lineStart int
	lineEnd   int // index just past the heading line (and its newline)
}

func parseHeadings(text string) []heading {
	var out []heading
	for _, loc := range headingLine.FindAllStringSubmatchIndex(text, -1) {
		level := loc[3] - loc[2] // length of the "=" run
		if loc[7]-loc[6] != level {
			continue // opening and closing "=" runs must have the same length
		}
		title := text[loc[4]:loc[5]]
		lineEnd := loc[1]
		if lineEnd < len(text) && text[lineEnd] == '\n' {
			lineEnd++
		}
		out = append(out, heading{level: level, title: title, lineStart: loc[0], lineEnd: lineEnd})
	}
	return out
}

// Sections splits text into the top-level sections headed by a heading of
// exactly the given level (e.g. level 2 for "==Language==" headers). Each
// section's Body runs to the next heading whose level is <= level, so
// deeper subsections (level 3 "===Etymology===" etc.) stay nested inside
// their parent's Body.
func Sections(level int, text string) []Section {
	heads := parseHeadings(text)
	var out []Section
	for i, h := range heads {
		if h.level != level {
			continue
		}
		end := len(text)
		for _, next := range heads[i+1:] {
			if next.level <= level {
				end = next.lineStart
				break
			}
		}
		out = append(out, Section{Level: h.level, Title: h.title, Body: text[h.lineEnd:end]})
	}
	return out
}

// EtymologySections returns the Etymology / "Etymology N" subsections
// nested anywhere inside text, regardless of their exact heading level,
// matching mwparserfromhell's flat, non-recursive get_sections(matches=...)
// behavior the original pipeline relies on (spec.md §4.5 step 3).
func EtymologySections(text string) []Section {
	heads := parseHeadings(text)
	var out []Section
	for i, h := range heads {
		if !isEtymologyHeading(h.title) {
			continue
		}
		end := len(text)
		for _, next := range heads[i+1:] {
			if next.level <= h.level {
				end = next.lineStart
				break
			}
		}
		out = append(out, Section{Level: h.level, Title: h.title, Body: text[h.lineEnd:end]})
	}
	return out
}

func isEtymologyHeading(title string) bool {
	title = strings.TrimSpace(title)
	if !strings.HasPrefix(strings.ToLower(title), "etymology") {
		return false
	}
	rest := strings.TrimSpace(title[len("etymology"):])
	if rest == "" {
		return true
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			if r != ' ' {
				return false
			}
		}
	}
	return true
}
