package config

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	Size        StageSizeConfig              `json:"size"`
	PlayerSpawn PositionConfig               `json:"playerSpawn"`
	Layers      LayersConfig                 `json:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping"`
}

type StageSizeConfig struct {
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	TileSize float64 `json:"tileSize"`
}

// PositionConfig is a world position. Y is up, matching the simulation.
type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LayersConfig holds the ASCII collision layer, one string per row,
// top row first (rows are flipped to Y-up at load).
type LayersConfig struct {
	Collision []string `json:"collision"`
}

type TileMappingConfig struct {
	Type   string `json:"type"`
	Solid  bool   `json:"solid"`
	Hazard bool   `json:"hazard,omitempty"`
}
