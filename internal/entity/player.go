package entity

import (
	"time"

	"github.com/samdwyer/codekingdoms/internal/assets"
	"github.com/samdwyer/codekingdoms/internal/world"
)

const (
	// PlayerSpeed is the walking speed in cells per second.
	PlayerSpeed = 30.0

	playerFrameDuration = 100 * time.Millisecond
)

// Status is the player's animation status.
type Status int

const (
	StatusIdle Status = iota
	StatusWalk
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusWalk:
		return "walk"
	default:
		return "unknown"
	}
}

// Player is the hero walking around a kingdom level. X, Y are the cell
// coordinates of the sprite's feet.
type Player struct {
	X, Y float64

	idle []assets.Art
	walk []assets.Art

	status       Status
	frame        int
	frameElapsed time.Duration
	facingRight  bool

	dirX, dirY float64
	arena      world.Arena
}

// NewPlayer creates a player using the given idle and walk animations.
// Both must be non-empty.
func NewPlayer(idle, walk []assets.Art) *Player {
	return &Player{
		idle:        idle,
		walk:        walk,
		facingRight: true,
	}
}

// SetPos places the player's feet at (x, y) and stops it.
func (p *Player) SetPos(x, y float64) {
	p.X, p.Y = x, y
	p.dirX, p.dirY = 0, 0
}

// SetArena sets the area movement is clamped to.
func (p *Player) SetArena(a world.Arena) {
	p.arena = a
}

// SetDirection sets the movement direction for the next updates. The vector
// is expected to be of unit length or zero.
func (p *Player) SetDirection(dx, dy float64) {
	p.dirX, p.dirY = dx, dy
	if dx > 0 {
		p.facingRight = true
	} else if dx < 0 {
		p.facingRight = false
	}
}

// Update animates the player and moves it along its direction.
func (p *Player) Update(_ time.Time, dt time.Duration) {
	status := StatusIdle
	if p.dirX != 0 || p.dirY != 0 {
		status = StatusWalk
	}
	if status != p.status {
		p.status = status
		p.frame = 0
	}

	p.frameElapsed += dt
	if p.frameElapsed >= playerFrameDuration {
		p.frameElapsed = 0
		p.frame = (p.frame + 1) % len(p.frames())
	}

	step := PlayerSpeed * dt.Seconds()
	p.X += p.dirX * step
	p.Y += p.dirY * step
	if p.arena.Width > 0 && p.arena.Height > 0 {
		a := p.current()
		p.X, p.Y = p.arena.ClampFeet(p.X, p.Y, a.Width(), a.Height())
	}
}

// Draw renders the current animation frame, mirrored when facing left.
func (p *Player) Draw(c Canvas) {
	r := p.Bounds()
	DrawArt(c, p.current(), r.X, r.Y, !p.facingRight)
}

// Bounds returns the cells covered by the player.
func (p *Player) Bounds() world.Rect {
	a := p.current()
	return feetRect(p.X, p.Y, a.Width(), a.Height())
}

// Status returns the current animation status.
func (p *Player) Status() Status {
	return p.status
}

// FacingRight reports the horizontal facing.
func (p *Player) FacingRight() bool {
	return p.facingRight
}

func (p *Player) frames() []assets.Art {
	if p.status == StatusWalk {
		return p.walk
	}
	return p.idle
}

func (p *Player) current() assets.Art {
	frames := p.frames()
	return frames[p.frame%len(frames)]
}

// Center returns the center of the player in cell coordinates.
func (p *Player) Center() (float64, float64) {
	return p.X, p.Y - float64(p.current().Height())/2
}
