package entity

import (
	"time"

	"github.com/samdwyer/codekingdoms/internal/assets"
	"github.com/samdwyer/codekingdoms/internal/world"
)

// HitShakeDuration is how long the boss shakes after being hit.
const HitShakeDuration = 500 * time.Millisecond

// Boss guards a kingdom's challenges. X, Y are the cell coordinates of the
// sprite's feet.
type Boss struct {
	X, Y float64
	art  assets.Art

	hit    bool
	hitAt  time.Time
	offset int
}

// NewBoss creates a boss with the given art.
func NewBoss(art assets.Art) *Boss {
	return &Boss{art: art}
}

// SetArt swaps the boss art, keeping its position.
func (b *Boss) SetArt(art assets.Art) {
	b.art = art
}

// SetPos places the boss's feet at (x, y) and ends any shake.
func (b *Boss) SetPos(x, y float64) {
	b.X, b.Y = x, y
	b.hit = false
	b.offset = 0
}

// Hit starts the hit shake.
func (b *Boss) Hit(now time.Time) {
	b.hit = true
	b.hitAt = now
}

// IsHit reports whether the boss is still shaking.
func (b *Boss) IsHit() bool {
	return b.hit
}

// Update advances the shake. The offset cycles through -2..1 cells every
// 100ms while the shake lasts.
func (b *Boss) Update(now time.Time, _ time.Duration) {
	if !b.hit {
		return
	}
	elapsed := now.Sub(b.hitAt)
	if elapsed >= HitShakeDuration {
		b.hit = false
		b.offset = 0
		return
	}
	phase := elapsed % (100 * time.Millisecond)
	b.offset = int(phase/(25*time.Millisecond)) - 2
}

// Offset returns the current horizontal shake offset.
func (b *Boss) Offset() int {
	return b.offset
}

// Draw renders the boss, shifted by the shake offset.
func (b *Boss) Draw(c Canvas) {
	r := b.Bounds()
	DrawArt(c, b.art, r.X+b.offset, r.Y, false)
}

// Bounds returns the cells covered by the boss at rest.
func (b *Boss) Bounds() world.Rect {
	return feetRect(b.X, b.Y, b.art.Width(), b.art.Height())
}

// Center returns the center of the boss in cell coordinates.
func (b *Boss) Center() (float64, float64) {
	return b.X, b.Y - float64(b.art.Height())/2
}
