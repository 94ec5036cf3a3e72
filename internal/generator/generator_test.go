package generator

import (
	"strings"
	"testing"
	"unicode"
)

func TestGenerateCount(t *testing.T) {
	g := NewWithSeed(1)
	words := []string{"alpha", "beta", "gamma"}
	got := g.Generate(words, Options{Count: 10})
	if len(got) != 10 {
		t.Fatalf("Generate returned %d words, want 10", len(got))
	}
	for _, w := range got {
		if w != "alpha" && w != "beta" && w != "gamma" {
			t.Fatalf("Generate returned %q, not in the list", w)
		}
	}
}

func TestGenerateEmpty(t *testing.T) {
	g := NewWithSeed(1)
	if got := g.Generate(nil, Options{Count: 5}); got != nil {
		t.Fatalf("Generate(nil) = %q, want nil", got)
	}
	if got := g.Generate([]string{"a"}, Options{}); got != nil {
		t.Fatalf("Generate(count 0) = %q, want nil", got)
	}
}

func TestGenerateAlwaysCapsAndPunct(t *testing.T) {
	g := NewWithSeed(7)
	got := g.Generate([]string{"word"}, Options{Count: 20, CapsPct: 1, PunctPct: 1, PunctSet: []rune(".!")})
	for _, w := range got {
		if !unicode.IsUpper([]rune(w)[0]) {
			t.Fatalf("%q is not capitalized", w)
		}
		if !strings.HasSuffix(w, ".") && !strings.HasSuffix(w, "!") {
			t.Fatalf("%q has no punctuation", w)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	words := []string{"one", "two", "three", "four"}
	opts := Options{Count: 8, CapsPct: 0.5, PunctPct: 0.5, PunctSet: []rune(",;")}
	a := NewWithSeed(42).Generate(words, opts)
	b := NewWithSeed(42).Generate(words, opts)
	if strings.Join(a, " ") != strings.Join(b, " ") {
		t.Fatalf("same seed produced %q and %q", a, b)
	}
}
