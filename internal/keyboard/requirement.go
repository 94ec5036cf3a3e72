package keyboard

import (
	"strings"
	"unicode"
)

// SpaceLabel is the label of the space bar.
const SpaceLabel = "Space"

// Kind tags the shape of a Requirement.
type Kind int

const (
	// KindNone means no key on the layout produces the character.
	KindNone Kind = iota
	// KindSpace is the space bar.
	KindSpace
	// KindLiteral is a single unmodified key.
	KindLiteral
	// KindCombo is a modifier held together with a base key.
	KindCombo
)

func (k Kind) String() string {
	switch k {
	case KindSpace:
		return "space"
	case KindLiteral:
		return "literal"
	case KindCombo:
		return "combo"
	default:
		return "none"
	}
}

// Requirement is the set of keys that must be held to type one character.
type Requirement struct {
	Kind     Kind
	Label    string
	Modifier string
}

// Space returns the space bar requirement.
func Space() Requirement {
	return Requirement{Kind: KindSpace, Label: SpaceLabel}
}

// Literal returns a single-key requirement.
func Literal(label string) Requirement {
	return Requirement{Kind: KindLiteral, Label: label}
}

// ComboOf returns a two-key requirement.
func ComboOf(modifier, base string) Requirement {
	return Requirement{Kind: KindCombo, Modifier: modifier, Label: base}
}

// Labels returns the keys in press order: modifier first for combos.
func (r Requirement) Labels() []string {
	switch r.Kind {
	case KindSpace, KindLiteral:
		return []string{r.Label}
	case KindCombo:
		return []string{r.Modifier, r.Label}
	default:
		return nil
	}
}

// String joins the labels with "+".
func (r Requirement) String() string {
	return strings.Join(r.Labels(), "+")
}

// RequiredKeys returns the keys needed to type target. Combo lookups run
// before the uppercase fallback, and both before the single-key fallback.
func RequiredKeys(table *ComboTable, target rune) Requirement {
	if target == ' ' {
		return Space()
	}
	if target == 0 || !unicode.IsPrint(target) {
		return Requirement{}
	}
	if c, ok := table.RequiredPairFor(target); ok {
		return ComboOf(c.Modifier, c.Base)
	}
	if isUpperLetter(target) {
		return ComboOf(ShiftLabel, string(unicode.ToLower(target)))
	}
	return Literal(string(target))
}

func isUpperLetter(r rune) bool {
	return unicode.IsLetter(r) && unicode.IsUpper(r)
}

// CanType reports whether every key needed for r appears on the layout.
func (l *Layout) CanType(table *ComboTable, r rune) bool {
	labels := RequiredKeys(table, r).Labels()
	if len(labels) == 0 {
		return false
	}
	for _, label := range labels {
		if !l.Has(label) {
			return false
		}
	}
	return true
}
