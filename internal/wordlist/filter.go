package wordlist

import "github.com/verte-zerg/tuit/internal/keyboard"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// Typeable keeps words whose every character can be typed on layout.
func Typeable(layout *keyboard.Layout, table *keyboard.ComboTable) FilterFunc {
	return func(word string) bool {
		if word == "" {
			return false
		}
		for _, r := range word {
			if !layout.CanType(table, r) {
				return false
			}
		}
		return true
	}
}

// Filter returns the words keep accepts, in order.
func Filter(words []string, keep FilterFunc) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}
