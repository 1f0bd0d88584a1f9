// Package langcode loads and serves the Wiktionary short-code to
// canonical-language-name lookup table (spec.md §4.1).
package langcode

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Table is an immutable, read-only mapping loaded once at startup. A zero
// Table resolves every code to itself, matching the "absent mappings
// return the input unchanged" contract.
type Table struct {
	codeToName map[string]string
	nameToCode map[string]string
}

var titleCaser = cases.Title(language.English)

// Load reads a two-column "code,name" CSV (with header row) from r and
// builds a Table. The header row's exact field names are not checked, only
// its presence — the first row is always skipped, matching the one
// documented format in spec.md §6.
func Load(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	t := &Table{
		codeToName: make(map[string]string),
		nameToCode: make(map[string]string),
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("langcode: reading table: %w", err)
	}
	if len(rows) == 0 {
		return t, nil
	}
	for _, row := range rows[1:] { // skip header
		code := strings.TrimSpace(row[0])
		name := strings.TrimSpace(row[1])
		if code == "" || name == "" {
			continue
		}
		// Canonicalize display casing (e.g. "old english" -> "Old English"),
		// grounded in the teacher's x/text/cases use for locale-aware display.
		name = titleCaser.String(name)
		t.codeToName[code] = name
		// First code wins on name collisions: several short codes can map to
		// similarly-cased variants of the same language name in the source
		// table, and the reverse table is only used to classify a page's
		// level-2 section heading, not to round-trip every code.
		if _, exists := t.nameToCode[name]; !exists {
			t.nameToCode[name] = code
		}
	}
	return t, nil
}

// Resolve maps a short code to its canonical name. If code is unknown, the
// input is returned unchanged (spec.md §4.1, §3 invariant I6).
func (t *Table) Resolve(code string) string {
	if t == nil {
		return code
	}
	if name, ok := t.codeToName[code]; ok {
		return name
	}
	return code
}

// ReverseLookup maps a canonical language name (as it appears in a level-2
// section heading) back to its short code, used by the Page Driver
// (spec.md §4.5 step 2). ok is false when the name is not in the table, in
// which case the Page Driver skips the section.
func (t *Table) ReverseLookup(name string) (code string, ok bool) {
	if t == nil {
		return "", false
	}
	code, ok = t.nameToCode[titleCaser.String(strings.TrimSpace(name))]
	return code, ok
}

// Len returns the number of loaded code/name pairs, used for logging.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.codeToName)
}
