package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type cell struct {
	r     rune
	style StyleID
	// cont marks the second column of a wide rune.
	cont bool
}

// Canvas is a fixed grid of styled cells that the view paints into before
// rendering it as one string.
type Canvas struct {
	width  int
	height int
	cells  [][]cell
}

// NewCanvas returns a blank width x height canvas.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &Canvas{width: width, height: height, cells: make([][]cell, height)}
	for y := range c.cells {
		c.cells[y] = make([]cell, width)
	}
	c.ClearRegion(0, 0, height, width)
	return c
}

// Width returns the number of columns.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the number of rows.
func (c *Canvas) Height() int {
	return c.height
}

// ClearRegion blanks a rectangle.
func (c *Canvas) ClearRegion(row, col, height, width int) {
	for y := row; y < row+height; y++ {
		for x := col; x < col+width; x++ {
			if c.inside(y, x) {
				c.cells[y][x] = cell{r: ' '}
			}
		}
	}
}

// WriteAt writes text starting at (row, col), clipped to the canvas.
// It returns the column after the last cell written.
func (c *Canvas) WriteAt(row, col int, text string, style StyleID) int {
	x := col
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if !c.inside(row, x) || x+w > c.width {
			break
		}
		c.cells[row][x] = cell{r: r, style: style}
		if w == 2 {
			c.cells[row][x+1] = cell{style: style, cont: true}
		}
		x += w
	}
	return x
}

// WriteLine clears row and writes text from its first column.
func (c *Canvas) WriteLine(row int, text string, style StyleID) {
	c.ClearRegion(row, 0, 1, c.width)
	c.WriteAt(row, 0, text, style)
}

// DrawKeyBox draws a three-line box whose inner width is width, with label
// centred on the middle line.
func (c *Canvas) DrawKeyBox(row, col int, label string, width int, style StyleID) {
	horiz := strings.Repeat("─", width)
	label = runewidth.Truncate(label, width, "")
	pad := width - runewidth.StringWidth(label)
	left := pad / 2
	mid := strings.Repeat(" ", left) + label + strings.Repeat(" ", pad-left)
	c.WriteAt(row, col, "┌"+horiz+"┐", style)
	c.WriteAt(row+1, col, "│"+mid+"│", style)
	c.WriteAt(row+2, col, "└"+horiz+"┘", style)
}

func (c *Canvas) inside(row, col int) bool {
	return row >= 0 && row < c.height && col >= 0 && col < c.width
}

// Lines returns the canvas as unstyled text, trailing blanks trimmed.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.height)
	for y, row := range c.cells {
		var b strings.Builder
		for _, cl := range row {
			if !cl.cont {
				b.WriteRune(cl.r)
			}
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return lines
}

// Render returns the canvas with each run of cells drawn in its style.
func (c *Canvas) Render(styles map[StyleID]lipgloss.Style) string {
	out := make([]string, c.height)
	for y, row := range c.cells {
		var b, run strings.Builder
		current := StyleDefault
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if st, ok := styles[current]; ok && current != StyleDefault {
				b.WriteString(st.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.cont {
				continue
			}
			if cl.style != current {
				flush()
				current = cl.style
			}
			run.WriteRune(cl.r)
		}
		flush()
		out[y] = b.String()
	}
	return strings.Join(out, "\n")
}
