package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/codekingdoms/internal/entity"
	"github.com/samdwyer/codekingdoms/internal/world"
)

// DrawText draws s starting at (x, y) and returns the number of cells used.
func DrawText(c entity.Canvas, x, y int, s string, style tcell.Style) int {
	return DrawTextClipped(c, x, y, -1, s, style)
}

// DrawTextClipped draws s starting at (x, y), stopping before it would
// exceed maxWidth cells. A negative maxWidth means no limit.
func DrawTextClipped(c entity.Canvas, x, y, maxWidth int, s string, style tcell.Style) int {
	used := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if maxWidth >= 0 && used+w > maxWidth {
			break
		}
		c.SetContent(x+used, y, r, style)
		used += w
	}
	return used
}

// DrawCentered draws s horizontally centered on row y.
func DrawCentered(c Canvas, y int, s string, style tcell.Style) {
	w, _ := c.Size()
	DrawText(c, (w-runewidth.StringWidth(s))/2, y, s, style)
}

// WrapText splits s into lines of at most width cells, breaking at spaces.
// Words wider than width are split.
func WrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}

	var (
		lines []string
		line  strings.Builder
		used  int
	)
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		used = 0
	}

	for _, word := range strings.Fields(s) {
		ww := runewidth.StringWidth(word)
		if used > 0 && used+1+ww > width {
			flush()
		}
		if used > 0 {
			line.WriteByte(' ')
			used++
		}
		for ww > width-used {
			head := runewidth.Truncate(word, width-used, "")
			if head == "" {
				break
			}
			line.WriteString(head)
			flush()
			word = strings.TrimPrefix(word, head)
			ww = runewidth.StringWidth(word)
		}
		line.WriteString(word)
		used += ww
	}
	if used > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

// Fill sets every cell of r to ch.
func Fill(c entity.Canvas, r world.Rect, ch rune, style tcell.Style) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			c.SetContent(x, y, ch, style)
		}
	}
}

// DrawBorder draws a single-line frame along the edge of r.
func DrawBorder(c entity.Canvas, r world.Rect, style tcell.Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	right, bottom := r.X+r.Width-1, r.Y+r.Height-1
	for x := r.X + 1; x < right; x++ {
		c.SetContent(x, r.Y, tcell.RuneHLine, style)
		c.SetContent(x, bottom, tcell.RuneHLine, style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		c.SetContent(r.X, y, tcell.RuneVLine, style)
		c.SetContent(right, y, tcell.RuneVLine, style)
	}
	c.SetContent(r.X, r.Y, tcell.RuneULCorner, style)
	c.SetContent(right, r.Y, tcell.RuneURCorner, style)
	c.SetContent(r.X, bottom, tcell.RuneLLCorner, style)
	c.SetContent(right, bottom, tcell.RuneLRCorner, style)
}
