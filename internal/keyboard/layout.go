// Package keyboard models the virtual keyboard and the rules that map keys to characters.
package keyboard

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// BoxHeight is the number of lines a key box occupies.
	BoxHeight = 3
	// RowGap is the number of blank lines between key rows.
	RowGap = 1
	// borderWidth is the horizontal space taken by the two box edges.
	borderWidth = 2
	// keyPadding is the blank column between neighbouring boxes.
	keyPadding = 1
)

// KeySpec is a key label and its inner width.
type KeySpec struct {
	Label string
	Width int
}

// RowSpec describes one keyboard row.
type RowSpec struct {
	Offset int
	Keys   []KeySpec
}

// Box is one on-screen key box.
type Box struct {
	Label string
	Row   int
	Col   int
	Width int
}

// Right returns the last column covered by the box, border included.
func (b Box) Right() int {
	return b.Col + b.Width + borderWidth - 1
}

// DefaultRows is the US-style layout drawn by the tutor.
var DefaultRows = []RowSpec{
	{Offset: 0, Keys: []KeySpec{
		{"~", 5}, {"1", 3}, {"2", 3}, {"3", 3}, {"4", 3}, {"5", 3},
		{"6", 3}, {"7", 3}, {"8", 3}, {"9", 3}, {"0", 3}, {"-", 3},
		{"=", 3}, {"Bksp", 5},
	}},
	{Offset: 2, Keys: []KeySpec{
		{"Tab", 5}, {"Q", 3}, {"W", 3}, {"E", 3}, {"R", 3}, {"T", 3},
		{"Y", 3}, {"U", 3}, {"I", 3}, {"O", 3}, {"P", 3}, {"[", 3},
		{"]", 3}, {"\\", 3},
	}},
	{Offset: 4, Keys: []KeySpec{
		{"Caps", 5}, {"A", 3}, {"S", 3}, {"D", 3}, {"F", 3}, {"G", 3},
		{"H", 3}, {"J", 3}, {"K", 3}, {"L", 3}, {";", 3}, {"'", 3},
		{"Enter", 5},
	}},
	{Offset: 5, Keys: []KeySpec{
		{"Shift", 6}, {"Z", 3}, {"X", 3}, {"C", 3}, {"V", 3}, {"B", 3},
		{"N", 3}, {"M", 3}, {",", 3}, {".", 3}, {"/", 3}, {"Shift", 6},
	}},
	{Offset: 8, Keys: []KeySpec{
		{"Ctrl", 4}, {"Alt", 3}, {"Space", 15}, {"Alt", 3}, {"Ctrl", 4},
	}},
}

// labelAliases maps key names that are printed differently on the keycap.
var labelAliases = map[string]string{
	"`": "~",
}

// LayoutError reports a row spec that cannot be drawn.
type LayoutError struct {
	Row    int
	Label  string
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("malformed layout: row %d key %q: %s", e.Row, e.Label, e.Reason)
}

// Layout maps key labels to their screen boxes. It is read-only after Build.
type Layout struct {
	origin int
	rows   int
	boxes  []Box
	byKey  map[string][]Box
}

// Build places DefaultRows starting at originRow.
func Build(originRow int) (*Layout, error) {
	return BuildRows(originRow, DefaultRows)
}

// BuildRows places the given rows starting at originRow and validates that
// no two boxes in a row overlap.
func BuildRows(originRow int, rows []RowSpec) (*Layout, error) {
	l := &Layout{
		origin: originRow,
		rows:   len(rows),
		byKey:  map[string][]Box{},
	}
	y := originRow
	for ri, row := range rows {
		if row.Offset < 0 {
			return nil, &LayoutError{Row: ri, Reason: "negative offset"}
		}
		x := row.Offset
		prevRight := -1
		for _, key := range row.Keys {
			if key.Label == "" {
				return nil, &LayoutError{Row: ri, Reason: "empty label"}
			}
			if key.Width <= 0 {
				return nil, &LayoutError{Row: ri, Label: key.Label, Reason: "width must be > 0"}
			}
			box := Box{Label: key.Label, Row: y, Col: x, Width: key.Width}
			if box.Col <= prevRight {
				return nil, &LayoutError{Row: ri, Label: key.Label, Reason: "overlaps previous key"}
			}
			l.boxes = append(l.boxes, box)
			norm := strings.ToLower(key.Label)
			l.byKey[norm] = append(l.byKey[norm], box)
			prevRight = box.Right()
			x += key.Width + borderWidth + keyPadding
		}
		y += BoxHeight + RowGap
	}
	return l, nil
}

// Positions returns every box drawn for label. Lookup ignores case.
func (l *Layout) Positions(label string) []Box {
	norm := strings.ToLower(label)
	if alias, ok := labelAliases[norm]; ok {
		norm = alias
	}
	return l.byKey[norm]
}

// Has reports whether label appears on the layout.
func (l *Layout) Has(label string) bool {
	return len(l.Positions(label)) > 0
}

// Boxes returns all boxes in row order.
func (l *Layout) Boxes() []Box {
	return append([]Box(nil), l.boxes...)
}

// Labels returns the distinct labels, sorted.
func (l *Layout) Labels() []string {
	seen := map[string]struct{}{}
	labels := make([]string, 0, len(l.byKey))
	for _, b := range l.boxes {
		if _, ok := seen[b.Label]; ok {
			continue
		}
		seen[b.Label] = struct{}{}
		labels = append(labels, b.Label)
	}
	sort.Strings(labels)
	return labels
}

// Origin returns the first row of the layout.
func (l *Layout) Origin() int {
	return l.origin
}

// Height returns the number of lines the layout covers, trailing gap included.
func (l *Layout) Height() int {
	return l.rows * (BoxHeight + RowGap)
}

// Width returns the widest row extent in columns.
func (l *Layout) Width() int {
	w := 0
	for _, b := range l.boxes {
		if r := b.Right() + 1; r > w {
			w = r
		}
	}
	return w
}

// LayoutHeight returns the height of DefaultRows without building them.
func LayoutHeight() int {
	return len(DefaultRows) * (BoxHeight + RowGap)
}
