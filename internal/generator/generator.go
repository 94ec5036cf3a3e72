// Package generator builds randomized drill text from a word list.
package generator

import (
	"math/rand"
	"time"
	"unicode"
)

// Options controls a generated drill.
type Options struct {
	Count    int
	CapsPct  float64
	PunctPct float64
	PunctSet []rune
}

// Generator produces randomized drill words.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a deterministic Generator.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Generate picks opts.Count words uniformly, capitalizing and punctuating
// each with the configured probabilities. It returns nil for an empty list.
func (g *Generator) Generate(words []string, opts Options) []string {
	if len(words) == 0 || opts.Count <= 0 {
		return nil
	}
	result := make([]string, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		word := words[g.rnd.Intn(len(words))]
		word = g.capitalize(word, opts.CapsPct)
		word = g.punctuate(word, opts.PunctPct, opts.PunctSet)
		result = append(result, word)
	}
	return result
}

func (g *Generator) capitalize(word string, pct float64) string {
	if pct <= 0 || g.rnd.Float64() > pct {
		return word
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func (g *Generator) punctuate(word string, pct float64, set []rune) string {
	if pct <= 0 || len(set) == 0 || g.rnd.Float64() > pct {
		return word
	}
	return word + string(set[g.rnd.Intn(len(set))])
}
