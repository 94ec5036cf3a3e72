package keyboard

import (
	"errors"
	"fmt"
	"strings"
)

// ShiftLabel is the modifier used by every default combo.
const ShiftLabel = "Shift"

// ErrDuplicateCombo is returned when a table repeats a key pair or a result.
var ErrDuplicateCombo = errors.New("duplicate combo")

// Combo is a character produced by holding Modifier together with Base.
type Combo struct {
	Modifier string
	Base     string
	Result   rune
}

// Labels returns the combo keys in press order.
func (c Combo) Labels() []string {
	return []string{c.Modifier, c.Base}
}

type keyPair struct {
	modifier string
	base     string
}

// ComboTable is an immutable set of combos with forward and reverse indexes.
type ComboTable struct {
	combos   []Combo
	byPair   map[keyPair]rune
	byResult map[rune]Combo
}

// DefaultCombos returns the Shift combos of a US keyboard.
func DefaultCombos() []Combo {
	pairs := []struct {
		base   string
		result rune
	}{
		{"`", '~'}, {"1", '!'}, {"2", '@'}, {"3", '#'}, {"4", '$'}, {"5", '%'},
		{"6", '^'}, {"7", '&'}, {"8", '*'}, {"9", '('}, {"0", ')'}, {"-", '_'},
		{"=", '+'},
	}
	combos := make([]Combo, 0, 47)
	for _, p := range pairs {
		combos = append(combos, Combo{Modifier: ShiftLabel, Base: p.base, Result: p.result})
	}
	for _, r := range "qwertyuiopasdfghjklzxcvbnm" {
		combos = append(combos, Combo{Modifier: ShiftLabel, Base: string(r), Result: r - 'a' + 'A'})
	}
	punct := []struct {
		base   string
		result rune
	}{
		{"[", '{'}, {"]", '}'}, {"\\", '|'}, {";", ':'}, {"'", '"'},
		{",", '<'}, {".", '>'}, {"/", '?'},
	}
	for _, p := range punct {
		combos = append(combos, Combo{Modifier: ShiftLabel, Base: p.base, Result: p.result})
	}
	return combos
}

// NewComboTable indexes combos. Pairs are compared case-insensitively.
func NewComboTable(combos []Combo) (*ComboTable, error) {
	t := &ComboTable{
		combos:   make([]Combo, 0, len(combos)),
		byPair:   make(map[keyPair]rune, len(combos)),
		byResult: make(map[rune]Combo, len(combos)),
	}
	for _, c := range combos {
		pair := keyPair{modifier: strings.ToLower(c.Modifier), base: strings.ToLower(c.Base)}
		if _, ok := t.byPair[pair]; ok {
			return nil, fmt.Errorf("%w: %s+%s", ErrDuplicateCombo, c.Modifier, c.Base)
		}
		if _, ok := t.byResult[c.Result]; ok {
			return nil, fmt.Errorf("%w: result %q", ErrDuplicateCombo, c.Result)
		}
		t.byPair[pair] = c.Result
		t.byResult[c.Result] = c
		t.combos = append(t.combos, c)
	}
	return t, nil
}

// DefaultTable returns the table built from DefaultCombos.
func DefaultTable() *ComboTable {
	t, err := NewComboTable(DefaultCombos())
	if err != nil {
		panic(err)
	}
	return t
}

// Produce returns the character produced by holding modifier and base.
func (t *ComboTable) Produce(modifier, base string) (rune, bool) {
	r, ok := t.byPair[keyPair{modifier: strings.ToLower(modifier), base: strings.ToLower(base)}]
	return r, ok
}

// RequiredPairFor returns the combo producing r. It returns false when r is
// typed with a single unmodified key.
func (t *ComboTable) RequiredPairFor(r rune) (Combo, bool) {
	c, ok := t.byResult[r]
	return c, ok
}

// Combos returns the combos in definition order.
func (t *ComboTable) Combos() []Combo {
	return append([]Combo(nil), t.combos...)
}

// Len returns the number of combos.
func (t *ComboTable) Len() int {
	return len(t.combos)
}
