package input

import (
	"math"
	"time"
)

// Direction is one of the four movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// DefaultHoldWindow covers the gap between a terminal's first key press and
// its auto-repeat.
const DefaultHoldWindow = 550 * time.Millisecond

// repeatWindow is how long a key stays held once auto-repeat has started.
const repeatWindow = 120 * time.Millisecond

// MovementOf maps arrow keys and WASD to a direction.
func MovementOf(e Event) (Direction, bool) {
	if e.Kind != KindKey {
		return 0, false
	}
	switch e.Key {
	case KeyUp:
		return DirUp, true
	case KeyDown:
		return DirDown, true
	case KeyLeft:
		return DirLeft, true
	case KeyRight:
		return DirRight, true
	case KeyText:
		switch e.Text {
		case "w", "W":
			return DirUp, true
		case "s", "S":
			return DirDown, true
		case "a", "A":
			return DirLeft, true
		case "d", "D":
			return DirRight, true
		}
	}
	return 0, false
}

// Held approximates continuously held movement keys. Terminals only report
// presses and auto-repeats, so a direction counts as held while presses keep
// arriving within the hold window.
type Held struct {
	window  time.Duration
	pressed [4]time.Time
	repeats [4]bool
}

// NewHeld creates a tracker with the given hold window.
func NewHeld(window time.Duration) *Held {
	return &Held{window: window}
}

// Press records a press or auto-repeat of d.
func (h *Held) Press(d Direction, now time.Time) {
	last := h.pressed[d]
	h.repeats[d] = !last.IsZero() && now.Sub(last) < h.window
	h.pressed[d] = now
	// Opposite directions cancel so a reversal takes effect immediately.
	h.pressed[opposite(d)] = time.Time{}
	h.repeats[opposite(d)] = false
}

// IsHeld reports whether d is held at now.
func (h *Held) IsHeld(d Direction, now time.Time) bool {
	last := h.pressed[d]
	if last.IsZero() {
		return false
	}
	window := h.window
	if h.repeats[d] {
		window = repeatWindow
	}
	return now.Sub(last) < window
}

// Vector returns the held direction as a unit vector (or zero).
func (h *Held) Vector(now time.Time) (dx, dy float64) {
	if h.IsHeld(DirRight, now) {
		dx++
	}
	if h.IsHeld(DirLeft, now) {
		dx--
	}
	if h.IsHeld(DirDown, now) {
		dy++
	}
	if h.IsHeld(DirUp, now) {
		dy--
	}
	if length := math.Hypot(dx, dy); length > 0 {
		dx /= length
		dy /= length
	}
	return dx, dy
}

// Reset releases every direction.
func (h *Held) Reset() {
	*h = Held{window: h.window}
}

func opposite(d Direction) Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}
