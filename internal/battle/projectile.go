package battle

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/samdwyer/codekingdoms/internal/assets"
	"github.com/samdwyer/codekingdoms/internal/entity"
	"github.com/samdwyer/codekingdoms/internal/world"
)

// ProjectileSpeed is the projectile speed in cells per second.
const ProjectileSpeed = 60.0

// Projectile is the forged weapon flying from the player to the boss. It
// moves in fixed frame steps, as many as the elapsed time covers, so dropped
// ticks do not slow it down.
type Projectile struct {
	motion  *harmonica.Projectile
	art     assets.Art
	step    time.Duration
	pending time.Duration
}

// NewProjectile aims a projectile from (fromX, fromY) at (toX, toY). A
// projectile with coincident ends does not move.
func NewProjectile(fromX, fromY, toX, toY float64, fps int, art assets.Art) *Projectile {
	if fps <= 0 {
		fps = 60
	}
	var vel harmonica.Vector
	dx, dy := toX-fromX, toY-fromY
	if length := math.Hypot(dx, dy); length > 0 {
		vel = harmonica.Vector{X: dx / length * ProjectileSpeed, Y: dy / length * ProjectileSpeed}
	}
	return &Projectile{
		motion: harmonica.NewProjectile(harmonica.FPS(fps), harmonica.Point{X: fromX, Y: fromY}, vel, harmonica.Vector{}),
		art:    art,
		step:   time.Second / time.Duration(fps),
	}
}

// Update advances the projectile by dt. Time short of a full frame carries
// over to the next call.
func (p *Projectile) Update(_ time.Time, dt time.Duration) {
	p.pending += dt
	for p.pending >= p.step {
		p.motion.Update()
		p.pending -= p.step
	}
}

// Draw renders the projectile centered on its position.
func (p *Projectile) Draw(c entity.Canvas) {
	r := p.Rect()
	entity.DrawArt(c, p.art, r.X, r.Y, p.motion.Velocity().X < 0)
}

// Position returns the projectile's center.
func (p *Projectile) Position() (float64, float64) {
	pos := p.motion.Position()
	return pos.X, pos.Y
}

// Velocity returns the projectile's velocity in cells per second.
func (p *Projectile) Velocity() (float64, float64) {
	v := p.motion.Velocity()
	return v.X, v.Y
}

// Rect returns the cells covered by the projectile.
func (p *Projectile) Rect() world.Rect {
	x, y := p.Position()
	w, h := p.art.Width(), p.art.Height()
	return world.Rect{
		X:      int(math.Round(x)) - w/2,
		Y:      int(math.Round(y)) - h/2,
		Width:  w,
		Height: h,
	}
}

// Within reports whether any part of the projectile is inside bounds.
func (p *Projectile) Within(bounds world.Rect) bool {
	return p.Rect().Intersects(bounds)
}
