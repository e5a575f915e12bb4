package assets

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/codekingdoms/internal/gamedata"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestProviderServesArt(t *testing.T) {
	p := NewProvider([]gamedata.ArtDef{
		{Name: "weapon", Color: "#00FFFF", Frames: [][]string{{"=>"}}},
		{Name: "walk", Color: "#FFFFFF", Frames: [][]string{{"a"}, {"b"}}},
	}, quietLogger())

	a := p.Art("weapon", 1, 1, tcell.ColorRed)
	if a.Lines[0] != "=>" {
		t.Errorf("Art(weapon).Lines = %q, want [\"=>\"]", a.Lines)
	}
	if a.Color != tcell.NewRGBColor(0, 255, 255) {
		t.Errorf("Art(weapon).Color = %v, want cyan", a.Color)
	}
	if got := len(p.Animation("walk", 1, 1, tcell.ColorRed)); got != 2 {
		t.Errorf("Animation(walk) has %d frames, want 2", got)
	}
	if !p.Has("walk") || p.Has("run") {
		t.Error("Has() disagrees with loaded art")
	}
}

func TestProviderFallsBackToPlaceholder(t *testing.T) {
	p := NewProvider(nil, quietLogger())

	a := p.Art("boss.missing", 4, 2, tcell.ColorGreen)
	if a.Width() != 4 || a.Height() != 2 {
		t.Errorf("placeholder size = %dx%d, want 4x2", a.Width(), a.Height())
	}
	if a.Color != tcell.ColorGreen {
		t.Errorf("placeholder color = %v, want green", a.Color)
	}

	// Deterministic: the same request yields the same art.
	b := p.Art("boss.missing", 4, 2, tcell.ColorGreen)
	if a.Lines[0] != b.Lines[0] || len(a.Lines) != len(b.Lines) {
		t.Error("placeholder is not deterministic")
	}
}

func TestPlaceholderMinimumSize(t *testing.T) {
	a := Placeholder(0, -3, tcell.ColorWhite)
	if a.Width() != 1 || a.Height() != 1 {
		t.Errorf("Placeholder(0,-3) size = %dx%d, want 1x1", a.Width(), a.Height())
	}
}

func TestProviderSkipsEmptyAndBadColor(t *testing.T) {
	p := NewProvider([]gamedata.ArtDef{
		{Name: "empty"},
		{Name: "odd", Color: "bogus", Frames: [][]string{{"x"}}},
	}, quietLogger())

	if p.Has("empty") {
		t.Error("art without frames should be skipped")
	}
	if got := p.Art("odd", 1, 1, tcell.ColorRed).Color; got != tcell.ColorWhite {
		t.Errorf("bad color fallback = %v, want white", got)
	}
}

func TestLoadProviderEmbedded(t *testing.T) {
	p := LoadProvider(quietLogger())
	if !p.Has("player.idle") {
		t.Error("embedded art should include player.idle")
	}
}
