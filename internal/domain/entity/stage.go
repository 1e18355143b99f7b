package entity

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileWall
	TileSpike
)

// Tile represents a single tile in the stage
type Tile struct {
	Type   TileType
	Solid  bool
	Hazard bool
}

// Stage is the current stage's tile grid in world coordinates.
// The grid is Y-up: tile (0,0) occupies the bottom-left corner of the
// world, tile (tx,ty) spans [tx*TileSize, (tx+1)*TileSize) on X and
// [ty*TileSize, (ty+1)*TileSize) on Y.
type Stage struct {
	Width    int
	Height   int
	TileSize float64
	Tiles    [][]Tile // indexed [ty][tx], row 0 at the bottom
	Spawn    Vec2
}

// GetTile returns the tile at the given tile coordinates. Out-of-bounds
// coordinates report solid walls so the world is closed.
func (s *Stage) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return Tile{Type: TileWall, Solid: true}
	}
	return s.Tiles[ty][tx]
}

// TileAt returns the tile containing the world point (x, y).
func (s *Stage) TileAt(x, y float64) Tile {
	tx := int(x / s.TileSize)
	ty := int(y / s.TileSize)
	if x < 0 {
		tx--
	}
	if y < 0 {
		ty--
	}
	return s.GetTile(tx, ty)
}

// SolidAt reports whether the world point (x, y) is inside a solid tile.
func (s *Stage) SolidAt(x, y float64) bool {
	return s.TileAt(x, y).Solid
}

// HazardAt reports whether the world point (x, y) is inside a hazard tile.
func (s *Stage) HazardAt(x, y float64) bool {
	return s.TileAt(x, y).Hazard
}
