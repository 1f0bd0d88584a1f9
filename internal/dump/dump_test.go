package dump

import (
	"strings"
	"testing"
)

const sampleDump = `<mediawiki>
<page>
<title>water</title>
<ns>0</ns>
<revision><text>==English==
===Etymology===
{{inh|en|enm|water}}
</text></revision>
</page>
<page>
<title>Talk:water</title>
<ns>1</ns>
<revision><text>discussion</text></revision>
</page>
<page>
<title>fire</title>
<ns>0</ns>
<revision><text>==English==
===Etymology===
{{m|en|fier}}
</text></revision>
</page>
</mediawiki>`

func TestWalkFiltersToMainNamespace(t *testing.T) {
	var titles []string
	err := Walk(strings.NewReader(sampleDump), func(p Page) error {
		titles = append(titles, p.Title)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(titles) != 2 || titles[0] != "water" || titles[1] != "fire" {
		t.Fatalf("unexpected titles: %v", titles)
	}
}

func TestWalkExtractsRevisionText(t *testing.T) {
	var text string
	err := Walk(strings.NewReader(sampleDump), func(p Page) error {
		if p.Title == "water" {
			text = p.Text
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if !strings.Contains(text, "inh|en|enm|water") {
		t.Fatalf("expected revision text to contain the etymology template, got %q", text)
	}
}

func TestWalkPropagatesCallbackError(t *testing.T) {
	sentinel := strings.NewReader(sampleDump)
	callCount := 0
	err := Walk(sentinel, func(p Page) error {
		callCount++
		if callCount == 1 {
			return errStop
		}
		return nil
	})
	if err != errStop {
		t.Fatalf("expected errStop propagated, got %v", err)
	}
	if callCount != 1 {
		t.Fatalf("expected Walk to stop after first callback error, got %d calls", callCount)
	}
}

var errStop = stopError("stop")

type stopError string

func (e stopError) Error() string { return string(e) }

func TestHasBZ2Suffix(t *testing.T) {
	cases := map[string]bool{
		"dump.xml.bz2":              true,
		"dump.xml.bz2?query=1":      true,
		"dump.xml":                  false,
		"https://x/dump.xml.bz2#a":  true,
	}
	for in, want := range cases {
		if got := hasBZ2Suffix(in); got != want {
			t.Errorf("hasBZ2Suffix(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsHTTPURL(t *testing.T) {
	if !isHTTPURL("https://example.org/dump.xml.bz2") {
		t.Error("expected https URL to be recognized")
	}
	if isHTTPURL("/tmp/dump.xml.bz2") {
		t.Error("expected local path to not be recognized as HTTP")
	}
}
