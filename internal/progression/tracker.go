// Package progression tracks the player's level and experience.
package progression

import "time"

const (
	// StartingNextLevelXP is the experience needed to leave level 1.
	StartingNextLevelXP = 100

	// LevelUpFlashDuration is how long the level-up highlight stays active.
	LevelUpFlashDuration = time.Second

	levelScale = 1.5
)

// Tracker holds the player's level, experience, and level-up highlight.
type Tracker struct {
	Level       int
	XP          int
	NextLevelXP int

	LevelUpActive bool
	LevelUpAt     time.Time
}

// NewTracker returns a level 1 player with no experience.
func NewTracker() *Tracker {
	return &Tracker{
		Level:       1,
		NextLevelXP: StartingNextLevelXP,
	}
}

// Award adds xp and applies at most one level-up. It reports whether the
// player leveled up.
func (t *Tracker) Award(xp int, now time.Time) bool {
	if xp <= 0 {
		return false
	}
	t.XP += xp
	if t.XP < t.NextLevelXP {
		return false
	}

	t.Level++
	t.XP -= t.NextLevelXP
	t.NextLevelXP = int(float64(t.NextLevelXP) * levelScale)
	t.LevelUpActive = true
	t.LevelUpAt = now
	return true
}

// Update clears the level-up highlight once it has run its course.
func (t *Tracker) Update(now time.Time) {
	if t.LevelUpActive && now.Sub(t.LevelUpAt) >= LevelUpFlashDuration {
		t.LevelUpActive = false
	}
}

// Fraction returns progress toward the next level in [0, 1].
func (t *Tracker) Fraction() float64 {
	if t.NextLevelXP <= 0 {
		return 0
	}
	f := float64(t.XP) / float64(t.NextLevelXP)
	return max(0, min(f, 1))
}
