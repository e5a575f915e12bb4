package ui

import (
	"github.com/samdwyer/codekingdoms/internal/world"
)

// Layout constants, in cells unless noted.
const (
	challengeWidthPct  = 80
	challengeHeightPct = 60

	hintInsetX = 2
	hintInsetY = 1

	hudX     = 1
	hudY     = 1
	hudWidth = 34
	// HUD rows: level, xp text, xp bar, objective, plus a border above and below.
	hudHeight = 6
)

// Map marker for the player, as a screen fraction.
var playerMapIcon = world.Point{X: 0.9, Y: 0.9}

// PlayerMapIcon returns where the player marker sits on the world map.
func PlayerMapIcon() world.Point {
	return playerMapIcon
}

// ChallengeBox returns the challenge dialog: 80% × 60% of the screen,
// centered.
func ChallengeBox(width, height int) world.Rect {
	w := width * challengeWidthPct / 100
	h := height * challengeHeightPct / 100
	return world.Rect{
		X:      (width - w) / 2,
		Y:      (height - h) / 2,
		Width:  w,
		Height: h,
	}
}

// HintButton returns the hint button rectangle for a w×h button in the
// top-right corner of box.
func HintButton(box world.Rect, w, h int) world.Rect {
	return world.Rect{
		X:      box.X + box.Width - hintInsetX - w,
		Y:      box.Y + hintInsetY,
		Width:  w,
		Height: h,
	}
}

// HUDRect returns the area covered by the HUD panel.
func HUDRect() world.Rect {
	return world.Rect{X: hudX, Y: hudY, Width: hudWidth, Height: hudHeight}
}
