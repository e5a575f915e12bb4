package world

// Tile is a decorative world map terrain cell.
type Tile rune

const (
	// TileGrass is open land.
	TileGrass Tile = '.'
	// TileTree is a forest cell.
	TileTree Tile = '♣'
	// TileHill is rough terrain.
	TileHill Tile = '^'
	// TileWater is a lake or river cell.
	TileWater Tile = '~'
)

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// TerrainAt returns the terrain at a cell. The pattern is a fixed hash of
// the coordinates so the map looks the same every frame.
func TerrainAt(x, y int) Tile {
	h := uint32(x)*73856093 ^ uint32(y)*19349663
	switch h % 23 {
	case 0, 1:
		return TileTree
	case 2:
		return TileHill
	case 3:
		return TileWater
	default:
		return TileGrass
	}
}
