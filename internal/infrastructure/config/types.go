package config

import (
	"errors"
	"fmt"
)

// MovementConfig is the root config for movement.json. The controller
// treats every value as already validated; Validate is the single place
// ranges are checked.
type MovementConfig struct {
	Display  DisplayConfig  `json:"display"`
	Input    InputConfig    `json:"input"`
	Movement MoveConfig     `json:"movement"`
	Jump     JumpConfig     `json:"jump"`
	Fall     FallConfig     `json:"fall"`
	Edge     EdgeConfig     `json:"edge"`
	Dash     DashConfig     `json:"dash"`
	Wall     WallConfig     `json:"wall"`
	Clone    CloneConfig    `json:"clone"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// InputConfig controls raw input snapping.
type InputConfig struct {
	SnapInput          bool    `json:"snapInput"`
	HorizontalDeadzone float64 `json:"horizontalDeadzone"`
	VerticalDeadzone   float64 `json:"verticalDeadzone"`
}

type MoveConfig struct {
	MaxSpeed           float64 `json:"maxSpeed"`
	Acceleration       float64 `json:"acceleration"`
	GroundDeceleration float64 `json:"groundDeceleration"`
	AirDeceleration    float64 `json:"airDeceleration"`
}

type JumpConfig struct {
	Power                float64           `json:"power"`
	Buffer               float64           `json:"buffer"`
	CoyoteTime           float64           `json:"coyoteTime"`
	CutGravityMultiplier float64           `json:"cutGravityMultiplier"`
	Apex                 ApexModifierConfig `json:"apexModifier"`
}

// ApexModifierConfig adds hang-time bonuses near the top of a jump arc.
type ApexModifierConfig struct {
	Enabled           bool    `json:"enabled"`
	Threshold         float64 `json:"threshold"`
	GravityMultiplier float64 `json:"gravityMultiplier"`
	SpeedBonus        float64 `json:"speedBonus"`
	AccelerationBonus float64 `json:"accelerationBonus"`
}

type FallConfig struct {
	Acceleration   float64 `json:"acceleration"`
	MaxFallSpeed   float64 `json:"maxFallSpeed"`
	GroundingForce float64 `json:"groundingForce"` // negative: keeps the body seated on ground probes
	ProbeDistance  float64 `json:"probeDistance"`
}

// EdgeConfig controls ledge-edge detection and the corrective nudge.
type EdgeConfig struct {
	Enabled            bool    `json:"enabled"`
	RayOffset          float64 `json:"rayOffset"`
	CorrectionStrength float64 `json:"correctionStrength"`
}

type DashConfig struct {
	Enabled  bool    `json:"enabled"`
	Speed    float64 `json:"speed"`
	Duration float64 `json:"duration"`
	EndSpeed float64 `json:"endSpeed"`
}

type WallConfig struct {
	SlideEnabled      bool    `json:"slideEnabled"`
	SlideSpeed        float64 `json:"slideSpeed"`
	SlideAcceleration float64 `json:"slideAcceleration"`
	CheckDistance     float64 `json:"checkDistance"`
	JumpPowerX        float64 `json:"jumpPowerX"`
	JumpPowerY        float64 `json:"jumpPowerY"`
	CoyoteTime        float64 `json:"coyoteTime"`
}

// CloneConfig tunes the temporal record & playback subsystem.
type CloneConfig struct {
	SampleRate        float64 `json:"sampleRate"` // samples per second
	MaxRetain         float64 `json:"maxRetain"`  // seconds of history kept
	ReplayDuration    float64 `json:"replayDuration"`
	SpawnCooldown     float64 `json:"spawnCooldown"`
	MaxActive         int     `json:"maxActive"`
	Interpolate       bool    `json:"interpolate"`
	PlaybackSpeed     float64 `json:"playbackSpeed"`
	DestroyOnComplete bool    `json:"destroyOnComplete"`
}

// Validate checks that the tuning values the simulation divides by or
// integrates with are usable. The controller itself never clamps config.
func (c *MovementConfig) Validate() error {
	var errs []error

	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Display.Framerate > 0, "display.framerate must be positive, got %d", c.Display.Framerate)
	check(c.Movement.MaxSpeed > 0, "movement.maxSpeed must be positive, got %v", c.Movement.MaxSpeed)
	check(c.Movement.Acceleration > 0, "movement.acceleration must be positive, got %v", c.Movement.Acceleration)
	check(c.Movement.GroundDeceleration >= 0, "movement.groundDeceleration must be non-negative, got %v", c.Movement.GroundDeceleration)
	check(c.Movement.AirDeceleration >= 0, "movement.airDeceleration must be non-negative, got %v", c.Movement.AirDeceleration)
	check(c.Jump.Power > 0, "jump.power must be positive, got %v", c.Jump.Power)
	check(c.Jump.Buffer >= 0, "jump.buffer must be non-negative, got %v", c.Jump.Buffer)
	check(c.Jump.CoyoteTime >= 0, "jump.coyoteTime must be non-negative, got %v", c.Jump.CoyoteTime)
	check(c.Jump.CutGravityMultiplier >= 1, "jump.cutGravityMultiplier must be >= 1, got %v", c.Jump.CutGravityMultiplier)
	check(c.Fall.Acceleration > 0, "fall.acceleration must be positive, got %v", c.Fall.Acceleration)
	check(c.Fall.MaxFallSpeed > 0, "fall.maxFallSpeed must be positive, got %v", c.Fall.MaxFallSpeed)
	check(c.Fall.GroundingForce <= 0, "fall.groundingForce must be non-positive, got %v", c.Fall.GroundingForce)
	check(c.Fall.ProbeDistance > 0, "fall.probeDistance must be positive, got %v", c.Fall.ProbeDistance)
	if c.Jump.Apex.Enabled {
		check(c.Jump.Apex.Threshold > 0, "jump.apexModifier.threshold must be positive, got %v", c.Jump.Apex.Threshold)
	}
	if c.Dash.Enabled {
		check(c.Dash.Speed > 0, "dash.speed must be positive, got %v", c.Dash.Speed)
		check(c.Dash.Duration > 0, "dash.duration must be positive, got %v", c.Dash.Duration)
		check(c.Dash.EndSpeed >= 0, "dash.endSpeed must be non-negative, got %v", c.Dash.EndSpeed)
	}
	if c.Wall.SlideEnabled {
		check(c.Wall.SlideSpeed > 0, "wall.slideSpeed must be positive, got %v", c.Wall.SlideSpeed)
		check(c.Wall.SlideAcceleration > 0, "wall.slideAcceleration must be positive, got %v", c.Wall.SlideAcceleration)
		check(c.Wall.CheckDistance > 0, "wall.checkDistance must be positive, got %v", c.Wall.CheckDistance)
		check(c.Wall.CoyoteTime >= 0, "wall.coyoteTime must be non-negative, got %v", c.Wall.CoyoteTime)
	}
	check(c.Clone.SampleRate > 0, "clone.sampleRate must be positive, got %v", c.Clone.SampleRate)
	check(c.Clone.MaxRetain > 0, "clone.maxRetain must be positive, got %v", c.Clone.MaxRetain)
	check(c.Clone.ReplayDuration > 0, "clone.replayDuration must be positive, got %v", c.Clone.ReplayDuration)
	check(c.Clone.SpawnCooldown >= 0, "clone.spawnCooldown must be non-negative, got %v", c.Clone.SpawnCooldown)
	check(c.Clone.MaxActive > 0, "clone.maxActive must be positive, got %d", c.Clone.MaxActive)
	check(c.Clone.PlaybackSpeed > 0, "clone.playbackSpeed must be positive, got %v", c.Clone.PlaybackSpeed)

	return errors.Join(errs...)
}
