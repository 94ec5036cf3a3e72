package keyboard

import "strings"

// PressedSet holds the virtual keys currently down. Labels are stored lower-cased
// and keep the order they were first pressed in.
type PressedSet struct {
	order []string
	held  map[string]struct{}
}

// NewPressedSet returns a set holding labels.
func NewPressedSet(labels ...string) *PressedSet {
	s := &PressedSet{held: map[string]struct{}{}}
	for _, l := range labels {
		s.Add(l)
	}
	return s
}

// Add marks label as held. Empty labels are ignored.
func (s *PressedSet) Add(label string) {
	norm := strings.ToLower(label)
	if norm == "" {
		return
	}
	if s.held == nil {
		s.held = map[string]struct{}{}
	}
	if _, ok := s.held[norm]; ok {
		return
	}
	s.held[norm] = struct{}{}
	s.order = append(s.order, norm)
}

// Remove releases label.
func (s *PressedSet) Remove(label string) {
	norm := strings.ToLower(label)
	if _, ok := s.held[norm]; !ok {
		return
	}
	delete(s.held, norm)
	for i, l := range s.order {
		if l == norm {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Clear releases every key.
func (s *PressedSet) Clear() {
	s.order = s.order[:0]
	for k := range s.held {
		delete(s.held, k)
	}
}

// Has reports whether label is held.
func (s *PressedSet) Has(label string) bool {
	_, ok := s.held[strings.ToLower(label)]
	return ok
}

// Len returns the number of held keys.
func (s *PressedSet) Len() int {
	return len(s.order)
}

// Labels returns the held labels in press order.
func (s *PressedSet) Labels() []string {
	return append([]string(nil), s.order...)
}

// Resolve returns the character produced by the held keys. Combos are tried in
// table definition order; otherwise a single held key produces itself. It
// returns false while the input is incomplete: nothing held, a lone modifier,
// or several keys that form no combo.
func Resolve(table *ComboTable, pressed *PressedSet) (rune, bool) {
	if pressed == nil || pressed.Len() == 0 {
		return 0, false
	}
	for _, c := range table.combos {
		if pressed.Has(c.Modifier) && pressed.Has(c.Base) {
			return c.Result, true
		}
	}
	if pressed.Len() != 1 {
		return 0, false
	}
	single := pressed.order[0]
	if single == strings.ToLower(SpaceLabel) {
		return ' ', true
	}
	runes := []rune(single)
	if len(runes) != 1 {
		return 0, false
	}
	return runes[0], true
}

// PressLabels returns the keys a terminal keystroke stands for: an uppercase
// letter is Shift plus the lower-case letter, a space is the space bar, and any
// other character is its own key.
func PressLabels(r rune) []string {
	switch {
	case r == ' ':
		return []string{SpaceLabel}
	case isUpperLetter(r):
		return []string{ShiftLabel, strings.ToLower(string(r))}
	default:
		return []string{string(r)}
	}
}
