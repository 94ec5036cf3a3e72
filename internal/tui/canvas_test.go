package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestDrawKeyBox(t *testing.T) {
	c := NewCanvas(12, 4)
	c.DrawKeyBox(1, 2, "Tab", 5, StyleRequired)
	lines := c.Lines()
	want := []string{
		"",
		"  ┌─────┐",
		"  │ Tab │",
		"  └─────┘",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if c.cells[2][4].style != StyleRequired {
		t.Fatalf("box cell style = %v, want %v", c.cells[2][4].style, StyleRequired)
	}
}

func TestWriteLineClipsAndClears(t *testing.T) {
	c := NewCanvas(5, 1)
	c.WriteLine(0, "abcdefgh", StyleTarget)
	if got := c.Lines()[0]; got != "abcde" {
		t.Fatalf("clipped line = %q, want %q", got, "abcde")
	}
	c.WriteLine(0, "xy", StyleTarget)
	if got := c.Lines()[0]; got != "xy" {
		t.Fatalf("rewritten line = %q, want %q", got, "xy")
	}
}

func TestWriteAtWideRunes(t *testing.T) {
	c := NewCanvas(6, 1)
	next := c.WriteAt(0, 0, "日本語", StyleDefault)
	if next != 6 {
		t.Fatalf("WriteAt returned col %d, want 6", next)
	}
	if got := c.Lines()[0]; got != "日本語" {
		t.Fatalf("line = %q", got)
	}
	if next := c.WriteAt(0, 5, "日", StyleDefault); next != 5 {
		t.Fatalf("wide rune at the edge was written, col %d", next)
	}
}

func TestWriteOutsideIsIgnored(t *testing.T) {
	c := NewCanvas(3, 2)
	c.WriteAt(-1, 0, "x", StyleDefault)
	c.WriteAt(5, 0, "x", StyleDefault)
	c.DrawKeyBox(1, 1, "A", 3, StyleDefault)
	if got := strings.Join(c.Lines(), "|"); got != "| ┌─" {
		t.Fatalf("lines = %q", got)
	}
}

func TestClearRegion(t *testing.T) {
	c := NewCanvas(4, 2)
	c.WriteLine(0, "abcd", StyleTarget)
	c.WriteLine(1, "efgh", StyleTarget)
	c.ClearRegion(0, 1, 2, 2)
	if got := strings.Join(c.Lines(), "|"); got != "a  d|e  h" {
		t.Fatalf("lines = %q", got)
	}
}

func TestRenderGroupsRuns(t *testing.T) {
	c := NewCanvas(4, 1)
	c.WriteAt(0, 0, "ab", StyleTarget)
	c.WriteAt(0, 2, "cd", StyleTyped)
	styles := map[StyleID]lipgloss.Style{
		StyleTarget: lipgloss.NewStyle(),
		StyleTyped:  lipgloss.NewStyle(),
	}
	if got := c.Render(styles); got != "abcd" {
		t.Fatalf("Render = %q, want %q", got, "abcd")
	}
}
