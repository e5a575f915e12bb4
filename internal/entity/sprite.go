// Package entity provides the sprites drawn in the world and in kingdom
// levels. Sprites are independent values composed in a Scene.
package entity

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/codekingdoms/internal/assets"
	"github.com/samdwyer/codekingdoms/internal/world"
)

// Canvas is the drawing surface sprites render onto.
type Canvas interface {
	SetContent(x, y int, r rune, style tcell.Style)
}

// Sprite is anything that advances with time and draws itself.
type Sprite interface {
	Update(now time.Time, dt time.Duration)
	Draw(c Canvas)
}

// Scene is an ordered collection of sprites. Later sprites draw on top.
type Scene struct {
	sprites []Sprite
}

// NewScene creates a scene with the given sprites.
func NewScene(sprites ...Sprite) *Scene {
	return &Scene{sprites: sprites}
}

// Add appends a sprite.
func (s *Scene) Add(sp Sprite) {
	s.sprites = append(s.sprites, sp)
}

// Len returns the number of sprites.
func (s *Scene) Len() int {
	return len(s.sprites)
}

// Update advances every sprite.
func (s *Scene) Update(now time.Time, dt time.Duration) {
	for _, sp := range s.sprites {
		sp.Update(now, dt)
	}
}

// Draw renders every sprite in order.
func (s *Scene) Draw(c Canvas) {
	for _, sp := range s.sprites {
		sp.Draw(c)
	}
}

// DrawArt draws art with its top-left corner at (x, y). Spaces are
// transparent so sprites do not blank out the background.
func DrawArt(c Canvas, a assets.Art, x, y int, flip bool) {
	style := tcell.StyleDefault.Foreground(a.Color)
	for row, line := range a.Lines {
		if flip {
			line = mirror(line)
		}
		col := x
		for _, r := range line {
			if r != ' ' {
				c.SetContent(col, y+row, r, style)
			}
			col += max(runewidth.RuneWidth(r), 1)
		}
	}
}

// feetRect returns the cell rectangle of a w×h sprite anchored at its
// bottom center.
func feetRect(x, y float64, w, h int) world.Rect {
	return world.Rect{
		X:      int(x) - w/2,
		Y:      int(y) - h + 1,
		Width:  w,
		Height: h,
	}
}

var mirrored = map[rune]rune{
	'/': '\\', '\\': '/', '(': ')', ')': '(', '<': '>', '>': '<',
	'[': ']', ']': '[', '{': '}', '}': '{', 'd': 'b', 'b': 'd',
}

func mirror(s string) string {
	rs := []rune(s)
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
	for i, r := range rs {
		if m, ok := mirrored[r]; ok {
			rs[i] = m
		}
	}
	return string(rs)
}
