package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadMovement(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadMovement()
	require.NoError(t, err)

	assert.Equal(t, 320, cfg.Display.ScreenWidth)
	assert.Equal(t, 240, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 140.0, cfg.Movement.MaxSpeed)
	assert.Equal(t, 0.15, cfg.Jump.CoyoteTime)
	assert.True(t, cfg.Jump.Apex.Enabled)
	assert.Equal(t, -1.5, cfg.Fall.GroundingForce)
	assert.True(t, cfg.Wall.SlideEnabled)
	assert.Equal(t, 30.0, cfg.Clone.SampleRate)
	assert.Equal(t, 3, cfg.Clone.MaxActive)
}

func TestLoader_LoadStage(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadStage("demo")
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.ID)
	assert.Equal(t, 320, cfg.Size.Width)
	assert.Equal(t, 16.0, cfg.Size.TileSize)
	assert.Equal(t, 48.0, cfg.PlayerSpawn.X)
	assert.Len(t, cfg.Layers.Collision, 15)

	wall, ok := cfg.TileMapping["#"]
	require.True(t, ok)
	assert.True(t, wall.Solid)
	assert.Equal(t, "wall", wall.Type)

	spike, ok := cfg.TileMapping["^"]
	require.True(t, ok)
	assert.False(t, spike.Solid)
	assert.True(t, spike.Hazard)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Movement)
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, ".")

	_, err := loader.LoadMovement()
	assert.Error(t, err)

	_, err = loader.LoadStage("nope")
	assert.Error(t, err)
}

func TestLoader_RejectsInvalidMovement(t *testing.T) {
	fsys := fstest.MapFS{
		"movement.json": &fstest.MapFile{Data: []byte(`{"movement": {"maxSpeed": 0}}`)},
	}
	loader := NewFSLoader(fsys, ".")

	_, err := loader.LoadMovement()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maxSpeed")
}

func TestLoader_RejectsMalformedJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"movement.json": &fstest.MapFile{Data: []byte(`{not json`)},
	}
	loader := NewFSLoader(fsys, ".")

	_, err := loader.LoadMovement()
	assert.Error(t, err)
}
