package tui

import "github.com/mattn/go-runewidth"

// span is a half-open rune range of one display line.
type span struct {
	start int
	end   int
}

// wrapSpans breaks runes into lines no wider than width, preferring to break
// after a space. The target and typed lines share the spans so they stay
// aligned column for column.
func wrapSpans(runes []rune, width int) []span {
	if width <= 0 || len(runes) == 0 {
		return []span{{start: 0, end: len(runes)}}
	}
	var spans []span
	start := 0
	lineWidth := 0
	lastSpace := -1
	for i := 0; i < len(runes); i++ {
		w := runewidth.RuneWidth(runes[i])
		if lineWidth+w > width && i > start {
			end := i
			if lastSpace >= start {
				end = lastSpace + 1
			}
			spans = append(spans, span{start: start, end: end})
			start = end
			lineWidth = widthOf(runes[start:i])
			lastSpace = lastSpaceIndex(runes, start, i)
		}
		lineWidth += w
		if runes[i] == ' ' {
			lastSpace = i
		}
	}
	return append(spans, span{start: start, end: len(runes)})
}

func widthOf(runes []rune) int {
	total := 0
	for _, r := range runes {
		total += runewidth.RuneWidth(r)
	}
	return total
}

func lastSpaceIndex(runes []rune, from, to int) int {
	for i := to - 1; i >= from; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}
