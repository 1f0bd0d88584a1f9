package wikitext

import (
	"strings"
	"testing"
)

const samplePage = `==English==

===Etymology===
From {{inh|en|enm|water}}.

===Pronunciation===
{{IPA|en|/ˈwɔːtər/}}

===Noun===
{{en-noun}}

==French==

===Etymology 1===
{{inh|fr|VL.|aqua}}

===Etymology 2===
Unrelated sense, {{uncertain|fr}}.

===Noun===
{{fr-noun}}
`

func TestSectionsLevel2(t *testing.T) {
	secs := Sections(2, samplePage)
	if len(secs) != 2 {
		t.Fatalf("expected 2 level-2 sections, got %d", len(secs))
	}
	if secs[0].Title != "English" || secs[1].Title != "French" {
		t.Fatalf("unexpected titles: %q, %q", secs[0].Title, secs[1].Title)
	}
	// The English section's body must contain its nested Pronunciation and
	// Noun subsections too, not just the Etymology one.
	if !strings.Contains(secs[0].Body, "Pronunciation") || !strings.Contains(secs[0].Body, "en-noun") {
		t.Fatalf("level-2 body missing nested subsections: %q", secs[0].Body)
	}
}

func TestEtymologySectionsFindsNumberedVariants(t *testing.T) {
	secs := Sections(2, samplePage)
	french := secs[1].Body
	ety := EtymologySections(french)
	if len(ety) != 2 {
		t.Fatalf("expected 2 etymology sections in French, got %d: %#v", len(ety), ety)
	}
	if ety[0].Title != "Etymology 1" || ety[1].Title != "Etymology 2" {
		t.Fatalf("unexpected titles: %q, %q", ety[0].Title, ety[1].Title)
	}
	if !strings.Contains(ety[0].Body, "aqua") {
		t.Fatalf("Etymology 1 body missing expected content: %q", ety[0].Body)
	}
	if strings.Contains(ety[0].Body, "uncertain") {
		t.Fatalf("Etymology 1 body bled into Etymology 2: %q", ety[0].Body)
	}
}

func TestEtymologySectionsStopsAtSiblingHeading(t *testing.T) {
	english := Sections(2, samplePage)[0].Body
	ety := EtymologySections(english)
	if len(ety) != 1 {
		t.Fatalf("expected 1 etymology section, got %d", len(ety))
	}
	if strings.Contains(ety[0].Body, "Pronunciation") || strings.Contains(ety[0].Body, "IPA") {
		t.Fatalf("Etymology body bled into Pronunciation: %q", ety[0].Body)
	}
}

func TestIsEtymologyHeading(t *testing.T) {
	cases := map[string]bool{
		"Etymology":     true,
		"Etymology 1":   true,
		"Etymology 12":  true,
		"Pronunciation": false,
		"Etymologies":   false,
	}
	for title, want := range cases {
		if got := isEtymologyHeading(title); got != want {
			t.Errorf("isEtymologyHeading(%q) = %v, want %v", title, got, want)
		}
	}
}
