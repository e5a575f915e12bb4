package ui

import (
	"fmt"
	"time"

	"github.com/samdwyer/codekingdoms/internal/progression"
	"github.com/samdwyer/codekingdoms/internal/quest"
)

// levelFlashPeriod is how long each gold/white phase of the level-up flash lasts.
const levelFlashPeriod = 200 * time.Millisecond

// HUD is a snapshot of what the heads-up display shows.
type HUD struct {
	Level         int
	XP            int
	NextLevelXP   int
	LevelUpActive bool
	LevelUpAt     time.Time
	// Fill is the displayed xp bar fraction, which may lag the real one.
	Fill float64
	// Objective is the current quest name, or empty once the kingdom is cleared.
	Objective string
}

// NewHUD captures the tracker and quest state.
func NewHUD(t *progression.Tracker, q *quest.Sequencer, fill float64) HUD {
	h := HUD{
		Level:         t.Level,
		XP:            t.XP,
		NextLevelXP:   t.NextLevelXP,
		LevelUpActive: t.LevelUpActive,
		LevelUpAt:     t.LevelUpAt,
		Fill:          fill,
	}
	if q != nil {
		if c, ok := q.Current(); ok {
			h.Objective = c.QuestName
		}
	}
	return h
}

// LevelText returns the level line.
func (h HUD) LevelText() string {
	return fmt.Sprintf("Level: %d", h.Level)
}

// XPText returns the experience line.
func (h HUD) XPText() string {
	return fmt.Sprintf("XP: %d / %d", h.XP, h.NextLevelXP)
}

// ObjectiveText returns the objective line.
func (h HUD) ObjectiveText() string {
	if h.Objective == "" {
		return "Kingdom Cleared!"
	}
	return "Objective: " + h.Objective
}

// LevelGold reports whether the level line is in a gold phase of the
// level-up flash at now.
func (h HUD) LevelGold(now time.Time) bool {
	if !h.LevelUpActive {
		return false
	}
	return (now.Sub(h.LevelUpAt)/levelFlashPeriod)%2 == 0
}
