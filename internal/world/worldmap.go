package world

// Site is a kingdom's clickable area on the world map.
type Site struct {
	Name   string
	Region Region
	Icon   Point
}

// Map is the world map: kingdom sites in draw order.
type Map struct {
	Sites []Site
}

// NewMap creates a map from the given sites.
func NewMap(sites []Site) *Map {
	return &Map{Sites: sites}
}

// SiteAt returns the first site whose region contains cell (x, y) on a
// width×height screen.
func (m *Map) SiteAt(x, y, width, height int) (Site, bool) {
	for _, s := range m.Sites {
		if s.Region.Scale(width, height).Contains(x, y) {
			return s, true
		}
	}
	return Site{}, false
}

// Level start positions, as screen fractions of the sprites' feet.
var (
	PlayerStart = Point{X: 0.1, Y: 0.8}
	BossStart   = Point{X: 0.9, Y: 0.8}
)

// Arena bounds movement inside a kingdom level.
type Arena struct {
	Width, Height int
}

// Bounds returns the arena as a rectangle.
func (a Arena) Bounds() Rect {
	return Rect{Width: a.Width, Height: a.Height}
}

// ClampFeet keeps a sprite of size w×h anchored at its bottom center fully
// inside the arena.
func (a Arena) ClampFeet(x, y float64, w, h int) (float64, float64) {
	minX := float64(w) / 2
	maxX := float64(a.Width) - float64(w)/2
	minY := float64(h - 1)
	maxY := float64(a.Height - 1)
	return clamp(x, minX, maxX), clamp(y, minY, maxY)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
