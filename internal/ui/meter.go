package ui

import "github.com/charmbracelet/harmonica"

// Meter eases a displayed fraction toward its target with a critically
// damped spring, one frame per Update.
type Meter struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

// NewMeter creates a meter stepped at fps updates per second.
func NewMeter(fps int) *Meter {
	if fps <= 0 {
		fps = 60
	}
	return &Meter{spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0)}
}

// Update advances the meter one frame toward target.
func (m *Meter) Update(target float64) {
	m.pos, m.vel = m.spring.Update(m.pos, m.vel, target)
}

// Snap jumps straight to v.
func (m *Meter) Snap(v float64) {
	m.pos, m.vel = v, 0
}

// Value returns the displayed fraction, clamped to [0, 1].
func (m *Meter) Value() float64 {
	return max(0, min(m.pos, 1))
}
