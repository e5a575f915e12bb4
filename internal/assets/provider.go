// Package assets looks up ASCII art by logical name. Missing art is replaced
// by a solid placeholder so rendering never fails on absent assets.
package assets

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/codekingdoms/internal/gamedata"
)

// placeholderRune fills placeholder art.
const placeholderRune = '█'

// Art is one frame of ASCII art.
type Art struct {
	Lines []string
	Color tcell.Color
}

// Width returns the display width of the widest line.
func (a Art) Width() int {
	w := 0
	for _, l := range a.Lines {
		w = max(w, runewidth.StringWidth(l))
	}
	return w
}

// Height returns the number of lines.
func (a Art) Height() int {
	return len(a.Lines)
}

// Placeholder returns a solid w×h block in the given color.
func Placeholder(w, h int, color tcell.Color) Art {
	w, h = max(w, 1), max(h, 1)
	row := strings.Repeat(string(placeholderRune), w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = row
	}
	return Art{Lines: lines, Color: color}
}

// Provider serves art loaded from game data.
type Provider struct {
	frames map[string][]Art
	logger *log.Logger
}

// NewProvider indexes the given art definitions. Definitions without frames
// are skipped; an unparsable color falls back to white.
func NewProvider(defs []gamedata.ArtDef, logger *log.Logger) *Provider {
	p := &Provider{
		frames: make(map[string][]Art, len(defs)),
		logger: logger,
	}
	for _, def := range defs {
		if len(def.Frames) == 0 {
			continue
		}
		color, err := gamedata.ParseHexColor(def.Color)
		if err != nil {
			color = tcell.ColorWhite
		}
		frames := make([]Art, len(def.Frames))
		for i, lines := range def.Frames {
			frames[i] = Art{Lines: lines, Color: color}
		}
		p.frames[def.Name] = frames
	}
	return p
}

// LoadProvider builds a provider from the embedded art file. A failure to
// load leaves an empty provider that serves placeholders only.
func LoadProvider(logger *log.Logger) *Provider {
	defs, err := gamedata.LoadArt()
	if err != nil {
		logger.Warn("art unavailable, using placeholders", "err", err)
	}
	return NewProvider(defs, logger)
}

// Has reports whether art with the given name exists.
func (p *Provider) Has(name string) bool {
	_, ok := p.frames[name]
	return ok
}

// Art returns the first frame of the named art, or a w×h placeholder in the
// fallback color.
func (p *Provider) Art(name string, w, h int, fallback tcell.Color) Art {
	return p.Animation(name, w, h, fallback)[0]
}

// Animation returns every frame of the named art, or a single placeholder
// frame. The result is never empty.
func (p *Provider) Animation(name string, w, h int, fallback tcell.Color) []Art {
	if frames, ok := p.frames[name]; ok {
		return frames
	}
	p.logger.Debug("asset missing, using placeholder", "name", name, "w", w, "h", h)
	return []Art{Placeholder(w, h, fallback)}
}
