package system

import (
	"github.com/HarunOYusuf/Game-Feel/internal/domain/entity"
	"github.com/HarunOYusuf/Game-Feel/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a Stage entity. The config lists
// collision rows top-first; the stage grid is Y-up, so rows are flipped.
func LoadStage(cfg *config.StageConfig) *entity.Stage {
	tileWidth := int(float64(cfg.Size.Width) / cfg.Size.TileSize)
	tileHeight := len(cfg.Layers.Collision)

	tiles := make([][]entity.Tile, tileHeight)
	for row, line := range cfg.Layers.Collision {
		ty := tileHeight - 1 - row
		tiles[ty] = make([]entity.Tile, tileWidth)
		for x, char := range line {
			if x >= tileWidth {
				break
			}
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				tiles[ty][x] = entity.Tile{Type: entity.TileEmpty}
				continue
			}

			var tileType entity.TileType
			switch mapping.Type {
			case "wall":
				tileType = entity.TileWall
			case "spike":
				tileType = entity.TileSpike
			default:
				tileType = entity.TileEmpty
			}

			tiles[ty][x] = entity.Tile{
				Type:   tileType,
				Solid:  mapping.Solid,
				Hazard: mapping.Hazard,
			}
		}
	}

	return &entity.Stage{
		Width:    tileWidth,
		Height:   tileHeight,
		TileSize: cfg.Size.TileSize,
		Tiles:    tiles,
		Spawn:    entity.Vec2{X: cfg.PlayerSpawn.X, Y: cfg.PlayerSpawn.Y},
	}
}
