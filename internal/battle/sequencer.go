package battle

import (
	"time"

	"github.com/samdwyer/codekingdoms/internal/assets"
	"github.com/samdwyer/codekingdoms/internal/progression"
	"github.com/samdwyer/codekingdoms/internal/quest"
	"github.com/samdwyer/codekingdoms/internal/world"
)

// Positioned is anything with a center point on screen.
type Positioned interface {
	Center() (float64, float64)
}

// Target is the side of the battle that gets hit.
type Target interface {
	Positioned
	Hit(now time.Time)
}

// Encounter describes the participants and the arena of one battle.
type Encounter struct {
	Attacker Positioned
	Target   Target
	Bounds   world.Rect
	Weapon   assets.Art
	FPS      int
}

// Sequencer runs one battle from forging to resolution. It pays the current
// challenge's reward into the tracker and advances the quests when victory
// begins.
type Sequencer struct {
	enc      Encounter
	progress *progression.Tracker
	quests   *quest.Sequencer

	stage      Stage
	stageStart time.Time
	projectile *Projectile
	lastTick   time.Time
}

// NewSequencer starts a battle in the forging stage at now.
func NewSequencer(enc Encounter, progress *progression.Tracker, quests *quest.Sequencer, now time.Time) *Sequencer {
	if enc.FPS <= 0 {
		enc.FPS = 60
	}
	return &Sequencer{
		enc:        enc,
		progress:   progress,
		quests:     quests,
		stage:      StageForging,
		stageStart: now,
	}
}

// Update advances the battle to now and returns what happened.
func (s *Sequencer) Update(now time.Time) []Event {
	elapsed := now.Sub(s.stageStart)

	switch s.stage {
	case StageForging:
		if elapsed >= ForgingDuration {
			s.spawnProjectile()
			s.lastTick = now
			s.enter(StageAttacking, now)
			return []Event{{Kind: EventProjectileSpawned}}
		}

	case StageAttacking:
		var events []Event
		if s.projectile != nil {
			s.projectile.Update(now, now.Sub(s.lastTick))
			s.lastTick = now
			if !s.projectile.Within(s.enc.Bounds) {
				s.projectile = nil
				events = append(events, Event{Kind: EventProjectileRemoved})
			}
		}
		if s.projectile == nil || elapsed >= AttackingTimeout {
			if s.projectile != nil {
				s.projectile = nil
				events = append(events, Event{Kind: EventProjectileRemoved})
			}
			s.enc.Target.Hit(now)
			s.enter(StageImpact, now)
			events = append(events, Event{Kind: EventImpact})
		}
		return events

	case StageImpact:
		if elapsed >= ImpactDuration {
			s.enter(StageVictory, now)
			return []Event{s.payReward(now)}
		}

	case StageVictory:
		if elapsed >= VictoryDuration {
			s.enter(StageResolved, now)
			return []Event{{Kind: EventResolved}}
		}
	}
	return nil
}

func (s *Sequencer) spawnProjectile() {
	fromX, fromY := s.enc.Attacker.Center()
	toX, toY := s.enc.Target.Center()
	s.projectile = NewProjectile(fromX, fromY, toX, toY, s.enc.FPS, s.enc.Weapon)
}

func (s *Sequencer) payReward(now time.Time) Event {
	ev := Event{Kind: EventVictory}
	if c, ok := s.quests.Current(); ok {
		ev.Reward = c.XPReward
		ev.LeveledUp = s.progress.Award(c.XPReward, now)
	}
	s.quests.Advance()
	return ev
}

func (s *Sequencer) enter(stage Stage, now time.Time) {
	s.stage = stage
	s.stageStart = now
}

// Stage returns the current stage.
func (s *Sequencer) Stage() Stage {
	return s.stage
}

// StageStart returns when the current stage began.
func (s *Sequencer) StageStart() time.Time {
	return s.stageStart
}

// Projectile returns the flying projectile, or nil.
func (s *Sequencer) Projectile() *Projectile {
	return s.projectile
}

// Resolved reports whether the battle has finished.
func (s *Sequencer) Resolved() bool {
	return s.stage == StageResolved
}
