package entity

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/codekingdoms/internal/assets"
)

// MapIcon is a static marker on the world map, centered on (X, Y).
type MapIcon struct {
	X, Y    float64
	Art     assets.Art
	Cleared bool
}

// Update is a no-op; icons do not animate.
func (m *MapIcon) Update(time.Time, time.Duration) {}

// Draw renders the icon, greyed out once its kingdom is cleared.
func (m *MapIcon) Draw(c Canvas) {
	a := m.Art
	if m.Cleared {
		a.Color = tcell.ColorDarkGray
	}
	x := int(m.X) - a.Width()/2
	y := int(m.Y) - a.Height()/2
	DrawArt(c, a, x, y, false)
}
