package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HarunOYusuf/Game-Feel/internal/domain/entity"
	"github.com/HarunOYusuf/Game-Feel/internal/infrastructure/config"
)

func createTestStageConfig() *config.StageConfig {
	return &config.StageConfig{
		ID: "test",
		Size: config.StageSizeConfig{
			Width:    64,
			Height:   48,
			TileSize: 16,
		},
		PlayerSpawn: config.PositionConfig{X: 24, Y: 26},
		Layers: config.LayersConfig{
			Collision: []string{
				"....",
				"..^.",
				"####",
			},
		},
		TileMapping: map[string]config.TileMappingConfig{
			"#": {Type: "wall", Solid: true},
			"^": {Type: "spike", Hazard: true},
		},
	}
}

func TestLoadStage(t *testing.T) {
	stage := LoadStage(createTestStageConfig())

	require.Equal(t, 4, stage.Width)
	require.Equal(t, 3, stage.Height)
	assert.Equal(t, 16.0, stage.TileSize)
	assert.Equal(t, entity.Vec2{X: 24, Y: 26}, stage.Spawn)

	t.Run("rows flip so row zero is the bottom", func(t *testing.T) {
		assert.Equal(t, entity.TileWall, stage.GetTile(0, 0).Type)
		assert.True(t, stage.GetTile(0, 0).Solid)
		assert.Equal(t, entity.TileEmpty, stage.GetTile(0, 2).Type)
	})

	t.Run("hazard mapping", func(t *testing.T) {
		spike := stage.GetTile(2, 1)
		assert.Equal(t, entity.TileSpike, spike.Type)
		assert.True(t, spike.Hazard)
		assert.False(t, spike.Solid)
	})

	t.Run("unmapped characters become empty", func(t *testing.T) {
		tile := stage.GetTile(1, 2)
		assert.Equal(t, entity.TileEmpty, tile.Type)
		assert.False(t, tile.Solid)
	})
}

func TestIntegrator_Step(t *testing.T) {
	stage := LoadStage(createTestStageConfig())
	integ := NewIntegrator(stage)

	t.Run("free fall moves the body", func(t *testing.T) {
		body := entity.NewBody(entity.Vec2{X: 32, Y: 40}, entity.Vec2{X: 12, Y: 20})
		body.SetVelocity(entity.Vec2{Y: -60})

		integ.Step(body, 0.1)
		assert.Equal(t, 34.0, body.Position().Y)
	})

	t.Run("floor stops downward motion", func(t *testing.T) {
		body := entity.NewBody(entity.Vec2{X: 8, Y: 27}, entity.Vec2{X: 12, Y: 20})
		body.SetVelocity(entity.Vec2{Y: -600})

		integ.Step(body, 0.1)

		// Floor tiles end at y=16; the body bottom cannot pass it.
		assert.GreaterOrEqual(t, body.Bottom(), 16.0-1e-2)
		assert.Equal(t, -600.0, body.Velocity().Y, "integrator never touches velocity")
	})

	t.Run("stage edge stops horizontal motion", func(t *testing.T) {
		body := entity.NewBody(entity.Vec2{X: 32, Y: 30}, entity.Vec2{X: 12, Y: 20})
		body.SetVelocity(entity.Vec2{X: 600})

		integ.Step(body, 0.1)

		// Out-of-bounds reads are solid, so the right wall is x=64.
		assert.LessOrEqual(t, body.Right(), 64.0+1e-2)
	})
}
