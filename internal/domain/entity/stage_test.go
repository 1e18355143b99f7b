package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// createTestStage builds a 4x3 stage with a solid bottom row and one
// hazard tile at (2,1).
func createTestStage() *Stage {
	tiles := [][]Tile{
		{{Type: TileWall, Solid: true}, {Type: TileWall, Solid: true}, {Type: TileWall, Solid: true}, {Type: TileWall, Solid: true}},
		{{}, {}, {Type: TileSpike, Hazard: true}, {}},
		{{}, {}, {}, {}},
	}
	return &Stage{
		Width:    4,
		Height:   3,
		TileSize: 16,
		Tiles:    tiles,
		Spawn:    Vec2{X: 24, Y: 26},
	}
}

func TestStage_GetTile(t *testing.T) {
	s := createTestStage()

	t.Run("in bounds", func(t *testing.T) {
		assert.True(t, s.GetTile(0, 0).Solid)
		assert.False(t, s.GetTile(1, 1).Solid)
	})

	t.Run("out of bounds reports solid walls", func(t *testing.T) {
		assert.True(t, s.GetTile(-1, 0).Solid)
		assert.True(t, s.GetTile(4, 0).Solid)
		assert.True(t, s.GetTile(0, -1).Solid)
		assert.True(t, s.GetTile(0, 3).Solid)
	})
}

func TestStage_SolidAt(t *testing.T) {
	s := createTestStage()

	t.Run("bottom row is solid", func(t *testing.T) {
		assert.True(t, s.SolidAt(8, 8))
		assert.True(t, s.SolidAt(63, 15))
	})

	t.Run("air above floor", func(t *testing.T) {
		assert.False(t, s.SolidAt(8, 24))
	})

	t.Run("negative coordinates are outside", func(t *testing.T) {
		assert.True(t, s.SolidAt(-0.5, 24))
		assert.True(t, s.SolidAt(8, -0.5))
	})
}

func TestStage_HazardAt(t *testing.T) {
	s := createTestStage()

	assert.True(t, s.HazardAt(40, 24))
	assert.False(t, s.HazardAt(8, 24))
	assert.False(t, s.HazardAt(40, 8))
}

func TestBody_Edges(t *testing.T) {
	b := NewBody(Vec2{X: 100, Y: 50}, Vec2{X: 12, Y: 20})

	assert.Equal(t, 94.0, b.Left())
	assert.Equal(t, 106.0, b.Right())
	assert.Equal(t, 40.0, b.Bottom())
	assert.Equal(t, 60.0, b.Top())
}

func TestBody_Teleport(t *testing.T) {
	b := NewBody(Vec2{X: 1, Y: 2}, Vec2{X: 10, Y: 10})
	b.SetVelocity(Vec2{X: 50, Y: -30})

	b.Teleport(Vec2{X: 9, Y: 9})

	assert.Equal(t, Vec2{X: 9, Y: 9}, b.Position())
	assert.Equal(t, Vec2{}, b.Velocity())
}

func TestBody_NudgeX(t *testing.T) {
	b := NewBody(Vec2{X: 10, Y: 10}, Vec2{X: 10, Y: 10})
	b.SetVelocity(Vec2{X: 5, Y: 5})

	b.NudgeX(-2.5)

	assert.Equal(t, 7.5, b.Position().X)
	assert.Equal(t, Vec2{X: 5, Y: 5}, b.Velocity(), "nudge must not touch velocity")
}
