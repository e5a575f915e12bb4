package ui

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/codekingdoms/internal/assets"
	"github.com/samdwyer/codekingdoms/internal/battle"
	"github.com/samdwyer/codekingdoms/internal/challenge"
	"github.com/samdwyer/codekingdoms/internal/entity"
	"github.com/samdwyer/codekingdoms/internal/world"
)

// Theme colors.
var (
	colorBackground      = tcell.NewHexColor(0x1a1a2e)
	colorText            = tcell.NewHexColor(0xF2E9E4)
	colorGold            = tcell.ColorGold
	colorYellow          = tcell.ColorYellow
	colorRed             = tcell.ColorRed
	colorXPBarBackground = tcell.NewHexColor(0x4a4a6a)
	colorXPBarFill       = tcell.NewHexColor(0x34d399)
	colorChallengeBG     = tcell.NewHexColor(0x22223B)
	colorPanel           = tcell.NewHexColor(0x101018)
	colorCleared         = tcell.ColorDarkGray
)

const (
	footerText    = "[Shift+Enter / Ctrl+S] Run code  [F1] Hint"
	splashPrompt  = "Press any key or click to begin"
	mapPrompt     = "Click a kingdom to enter it. Esc quits."
	gameOverTitle = "VICTORY!"
	forgingText   = "Forging Weapon..."
	successText   = "SUCCESS!"
)

// Renderer draws one frame. It only reads the state it is given.
type Renderer struct {
	c   Canvas
	now time.Time
}

// NewRenderer creates a renderer drawing onto c at time now.
func NewRenderer(c Canvas, now time.Time) *Renderer {
	return &Renderer{c: c, now: now}
}

func (r *Renderer) bounds() world.Rect {
	w, h := r.c.Size()
	return world.Rect{Width: w, Height: h}
}

// Clear paints the whole canvas in bg.
func (r *Renderer) Clear(bg tcell.Color) {
	Fill(r.c, r.bounds(), ' ', tcell.StyleDefault.Background(bg))
}

// Splash draws the title screen.
func (r *Renderer) Splash(banner assets.Art) {
	r.Clear(colorBackground)
	_, h := r.c.Size()
	w := r.bounds().Width

	top := max(0, h/2-banner.Height()-1)
	entity.DrawArt(r.c, banner, (w-banner.Width())/2, top, false)
	DrawCentered(r.c, top+banner.Height()+2, splashPrompt,
		tcell.StyleDefault.Foreground(colorText).Background(colorBackground))
}

// WorldMap draws the terrain, each kingdom's region, and the icons scene.
// cleared reports whether a kingdom has been completed.
func (r *Renderer) WorldMap(m *world.Map, cleared func(name string) bool, icons *entity.Scene) {
	b := r.bounds()
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			t := world.TerrainAt(x, y)
			r.c.SetContent(x, y, t.Rune(), terrainStyle(t))
		}
	}

	for _, s := range m.Sites {
		rect := s.Region.Scale(b.Width, b.Height)
		style := tcell.StyleDefault.Foreground(colorGold).Background(colorBackground)
		label := " " + s.Name + " "
		if cleared(s.Name) {
			style = tcell.StyleDefault.Foreground(colorCleared).Background(colorBackground)
			label = " " + s.Name + " (cleared) "
		}
		DrawBorder(r.c, rect, style)
		DrawTextClipped(r.c, rect.X+2, rect.Y, rect.Width-4, label, style.Bold(true))
	}

	icons.Draw(r.c)
	DrawCentered(r.c, b.Height-1, mapPrompt,
		tcell.StyleDefault.Foreground(colorText).Background(colorBackground))
}

func terrainStyle(t world.Tile) tcell.Style {
	base := tcell.StyleDefault.Background(colorBackground)
	switch t {
	case world.TileTree:
		return base.Foreground(tcell.ColorDarkGreen)
	case world.TileHill:
		return base.Foreground(tcell.ColorSaddleBrown)
	case world.TileWater:
		return base.Foreground(tcell.ColorSteelBlue)
	default:
		return base.Foreground(tcell.NewHexColor(0x2f3b2f))
	}
}

// Level draws a kingdom's backdrop and the sprites on it.
func (r *Renderer) Level(bg tcell.Color, scene *entity.Scene) {
	r.Clear(bg)
	scene.Draw(r.c)
}

// HUD draws the level, experience and objective panel.
func (r *Renderer) HUD(h HUD) {
	rect := HUDRect()
	panel := tcell.StyleDefault.Background(colorPanel).Foreground(colorText)
	Fill(r.c, rect, ' ', panel)
	DrawBorder(r.c, rect, panel.Foreground(colorCleared))

	x, inner := rect.X+2, rect.Width-4

	levelStyle := panel.Bold(true)
	if h.LevelGold(r.now) {
		levelStyle = levelStyle.Foreground(colorGold)
	}
	DrawTextClipped(r.c, x, rect.Y+1, inner, h.LevelText(), levelStyle)
	DrawTextClipped(r.c, x, rect.Y+2, inner, h.XPText(), panel)

	filled := int(h.Fill*float64(inner) + 0.5)
	for i := 0; i < inner; i++ {
		style := panel.Background(colorXPBarBackground)
		if i < filled {
			style = panel.Background(colorXPBarFill)
		}
		r.c.SetContent(x+i, rect.Y+3, ' ', style)
	}

	DrawTextClipped(r.c, x, rect.Y+4, inner, h.ObjectiveText(), panel)
}

// Challenge draws the challenge dialog: prompt, editor, cursor, footer and
// hint button. The border turns red while the error flash is showing.
func (r *Renderer) Challenge(w *challenge.Widget, hint assets.Art) {
	b := r.bounds()
	box := ChallengeBox(b.Width, b.Height)
	body := tcell.StyleDefault.Background(colorChallengeBG).Foreground(colorText)
	Fill(r.c, box, ' ', body)

	border := body
	if w.ShowError() {
		border = body.Foreground(colorRed).Bold(true)
	}
	DrawBorder(r.c, box, border)

	button := HintButton(box, hint.Width(), hint.Height())
	entity.DrawArt(r.c, hint, button.X, button.Y, false)

	x, inner := box.X+3, box.Width-6
	y := box.Y + 1
	c := w.Challenge()
	DrawTextClipped(r.c, x, y, button.X-x-1, c.QuestName, body.Foreground(colorGold).Bold(true))
	y += 2
	for _, line := range WrapText(c.ProblemText, inner) {
		DrawTextClipped(r.c, x, y, inner, line, body)
		y++
	}
	y++

	footerY := box.Y + box.Height - 2
	DrawTextClipped(r.c, x, footerY, inner, footerText, body.Foreground(colorYellow))

	r.editor(w, x, y, inner, footerY-1-y, body)
}

// editor draws the buffer into a width×rows area at (x, y), scrolled so the
// cursor cell is visible in both directions.
func (r *Renderer) editor(w *challenge.Widget, x, y, width, rows int, style tcell.Style) {
	if rows <= 0 || width <= 0 {
		return
	}
	buf := w.Buffer()
	lines := buf.Lines()
	line, col := buf.Cursor()

	cursorX := runewidth.StringWidth(buf.BeforeCursor())
	first := max(0, line-rows+1)
	left := max(0, cursorX-width+1)
	for i := 0; i < rows && first+i < len(lines); i++ {
		DrawTextClipped(r.c, x, y+i, width, runewidth.TruncateLeft(lines[first+i], left, ""), style)
	}

	if !w.CursorVisible() {
		return
	}
	under := ' '
	if rs := []rune(lines[line]); col < len(rs) {
		under = rs[col]
	}
	r.c.SetContent(x+cursorX-left, y+line-first, under, style.Reverse(true))
}

// Battle draws the projectile and the stage banner.
func (r *Renderer) Battle(stage battle.Stage, p *battle.Projectile) {
	if p != nil {
		p.Draw(r.c)
	}
	_, h := r.c.Size()
	switch stage {
	case battle.StageForging:
		DrawCentered(r.c, h/2, forgingText, tcell.StyleDefault.Foreground(colorYellow).Bold(true))
	case battle.StageVictory:
		DrawCentered(r.c, h/2, successText, tcell.StyleDefault.Foreground(colorGold).Bold(true))
	}
}

// GameOver draws the final victory screen.
func (r *Renderer) GameOver() {
	r.Clear(colorBackground)
	_, h := r.c.Size()
	style := tcell.StyleDefault.Background(colorBackground)
	DrawCentered(r.c, h/2, gameOverTitle, style.Foreground(colorGold).Bold(true))
	DrawCentered(r.c, h/2+2, "Every kingdom has been freed. Press Esc to quit.", style.Foreground(colorText))
}

// Message draws a one-line notice on the bottom row.
func (r *Renderer) Message(msg string) {
	if strings.TrimSpace(msg) == "" {
		return
	}
	_, h := r.c.Size()
	DrawCentered(r.c, h-1, msg, tcell.StyleDefault.Foreground(colorYellow).Background(colorPanel))
}
