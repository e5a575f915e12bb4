// Package battle provides the timed animation sequence that plays after a
// challenge is solved and pays out its reward.
package battle

import "time"

// Stage is a step of the battle sequence. Stages only move forward.
type Stage int

const (
	// StageForging shows the weapon being forged.
	StageForging Stage = iota
	// StageAttacking flies the projectile at the boss.
	StageAttacking
	// StageImpact shakes the boss.
	StageImpact
	// StageVictory shows the success banner; the reward is paid on entry.
	StageVictory
	// StageResolved is terminal; the caller leaves the battle.
	StageResolved
)

// Stage timings.
const (
	ForgingDuration  = 500 * time.Millisecond
	AttackingTimeout = 1000 * time.Millisecond
	ImpactDuration   = 300 * time.Millisecond
	VictoryDuration  = 1500 * time.Millisecond
)

// String returns a human-readable stage name.
func (s Stage) String() string {
	switch s {
	case StageForging:
		return "forging"
	case StageAttacking:
		return "attacking"
	case StageImpact:
		return "impact"
	case StageVictory:
		return "victory"
	case StageResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// EventKind identifies a visual event produced by the sequencer.
type EventKind int

const (
	EventProjectileSpawned EventKind = iota
	EventProjectileRemoved
	EventImpact
	EventVictory
	EventResolved
)

// String returns a human-readable event name.
func (k EventKind) String() string {
	switch k {
	case EventProjectileSpawned:
		return "projectile_spawned"
	case EventProjectileRemoved:
		return "projectile_removed"
	case EventImpact:
		return "impact"
	case EventVictory:
		return "victory"
	case EventResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Event is something the sequencer did during an update.
type Event struct {
	Kind EventKind
	// Reward and LeveledUp are set on EventVictory.
	Reward    int
	LeveledUp bool
}
