// Package editor implements the multi-line text buffer behind the in-game
// code editor.
package editor

import (
	"strings"
	"unicode"

	"github.com/samdwyer/codekingdoms/internal/input"
)

// Action is what a key event did to the buffer.
type Action int

const (
	// ActionNone means the event was ignored.
	ActionNone Action = iota
	// ActionEdit means the text or the cursor changed.
	ActionEdit
	// ActionSubmit means the player asked to run the code. The buffer is
	// left untouched.
	ActionSubmit
)

// Buffer is an editable list of lines with a cursor. It always holds at
// least one line, and the cursor always addresses a valid position.
type Buffer struct {
	lines [][]rune
	line  int
	col   int
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{lines: [][]rune{{}}}
}

// HandleKey applies one key event.
func (b *Buffer) HandleKey(ev input.Event) Action {
	if ev.Kind != input.KindKey {
		return ActionNone
	}
	if ev.IsSubmit() {
		return ActionSubmit
	}

	switch ev.Key {
	case input.KeyEnter:
		b.SplitLine()
	case input.KeyBackspace:
		b.Backspace()
	case input.KeyLeft:
		b.MoveLeft()
	case input.KeyRight:
		b.MoveRight()
	case input.KeyUp:
		b.MoveUp()
	case input.KeyDown:
		b.MoveDown()
	case input.KeyText:
		if b.Insert(ev.Text) == 0 {
			return ActionNone
		}
	default:
		return ActionNone
	}
	return ActionEdit
}

// Insert places printable characters at the cursor and returns how many were
// inserted. Control characters are dropped.
func (b *Buffer) Insert(text string) int {
	var ins []rune
	for _, r := range text {
		if unicode.IsPrint(r) {
			ins = append(ins, r)
		}
	}
	if len(ins) == 0 {
		return 0
	}

	cur := b.lines[b.line]
	next := make([]rune, 0, len(cur)+len(ins))
	next = append(next, cur[:b.col]...)
	next = append(next, ins...)
	next = append(next, cur[b.col:]...)
	b.lines[b.line] = next
	b.col += len(ins)
	return len(ins)
}

// SplitLine breaks the current line at the cursor and moves to the start of
// the new line.
func (b *Buffer) SplitLine() {
	cur := b.lines[b.line]
	head := append([]rune(nil), cur[:b.col]...)
	tail := append([]rune(nil), cur[b.col:]...)

	lines := make([][]rune, 0, len(b.lines)+1)
	lines = append(lines, b.lines[:b.line]...)
	lines = append(lines, head, tail)
	lines = append(lines, b.lines[b.line+1:]...)
	b.lines = lines

	b.line++
	b.col = 0
}

// Backspace deletes the character before the cursor, or joins the current
// line onto the previous one when the cursor is at the start of a line.
func (b *Buffer) Backspace() {
	switch {
	case b.col > 0:
		cur := b.lines[b.line]
		b.lines[b.line] = append(cur[:b.col-1:b.col-1], cur[b.col:]...)
		b.col--
	case b.line > 0:
		prev := b.lines[b.line-1]
		join := len(prev)
		b.lines[b.line-1] = append(prev[:join:join], b.lines[b.line]...)
		b.lines = append(b.lines[:b.line], b.lines[b.line+1:]...)
		b.line--
		b.col = join
	}
}

// MoveLeft moves one character back, wrapping to the end of the previous line.
func (b *Buffer) MoveLeft() {
	switch {
	case b.col > 0:
		b.col--
	case b.line > 0:
		b.line--
		b.col = len(b.lines[b.line])
	}
}

// MoveRight moves one character forward, wrapping to the start of the next line.
func (b *Buffer) MoveRight() {
	switch {
	case b.col < len(b.lines[b.line]):
		b.col++
	case b.line < len(b.lines)-1:
		b.line++
		b.col = 0
	}
}

// MoveUp keeps the column, clamped to the length of the line above.
func (b *Buffer) MoveUp() {
	if b.line == 0 {
		return
	}
	b.line--
	b.col = min(b.col, len(b.lines[b.line]))
}

// MoveDown keeps the column, clamped to the length of the line below.
func (b *Buffer) MoveDown() {
	if b.line >= len(b.lines)-1 {
		return
	}
	b.line++
	b.col = min(b.col, len(b.lines[b.line]))
}

// Cursor returns the line index and character index of the cursor.
func (b *Buffer) Cursor() (line, col int) {
	return b.line, b.col
}

// Lines returns a copy of the buffer contents.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l)
	}
	return out
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// BeforeCursor returns the text of the current line left of the cursor.
func (b *Buffer) BeforeCursor() string {
	return string(b.lines[b.line][:b.col])
}

// String joins the lines with newlines.
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// Matches compares the buffer against answer with all whitespace removed
// from both sides.
func (b *Buffer) Matches(answer string) bool {
	return Normalize(b.String()) == Normalize(answer)
}

// Normalize strips every whitespace character from s.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), "")
}
