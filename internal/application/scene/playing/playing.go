// Package playing provides the movement sandbox scene: the live
// player, its snapshot recorder and the temporal clones replaying it.
package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/HarunOYusuf/Game-Feel/internal/application/replay"
	"github.com/HarunOYusuf/Game-Feel/internal/application/scene"
	"github.com/HarunOYusuf/Game-Feel/internal/application/state"
	"github.com/HarunOYusuf/Game-Feel/internal/application/system"
	"github.com/HarunOYusuf/Game-Feel/internal/domain/entity"
	"github.com/HarunOYusuf/Game-Feel/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorWall       = color.RGBA{80, 80, 100, 255}
	colorSpike      = color.RGBA{200, 50, 50, 255}
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorPlayerDash = color.RGBA{240, 240, 140, 255}
	colorPlayerWall = color.RGBA{120, 160, 240, 255}
	colorClone      = color.RGBA{150, 120, 220, 160}
	colorFacing     = color.RGBA{230, 230, 230, 255}
)

// playerSize is the collision box of the player and its clones.
var playerSize = entity.Vec2{X: 12, Y: 20}

// Playing is the sandbox gameplay scene
type Playing struct {
	cfg        *config.MovementConfig
	stage      *entity.Stage
	body       *entity.Body
	controller *system.Controller
	caster     *system.Caster
	integrator *system.Integrator
	inputSys   *system.InputSystem
	recorder   *replay.Recorder
	spawner    *replay.Spawner
	state      state.GameState
	screenW    int
	screenH    int

	// Debug counters fed by controller events
	jumpCount   int
	dashCount   int
	lastImpact  float64
	unsubscribe []func()
}

// New wires the full simulation for one stage. It fails when the config
// or a collaborator cannot be constructed; the scene never runs with
// partial wiring.
func New(cfg *config.MovementConfig, stage *entity.Stage) (*Playing, error) {
	body := entity.NewBody(stage.Spawn, playerSize)
	caster := system.NewCaster(stage, stage.TileSize/2)

	controller, err := system.NewController(cfg, body, caster)
	if err != nil {
		return nil, fmt.Errorf("playing: %w", err)
	}

	recorder, err := replay.NewRecorder(controller, cfg.Clone.SampleRate, cfg.Clone.MaxRetain)
	if err != nil {
		return nil, fmt.Errorf("playing: %w", err)
	}

	spawner, err := replay.NewSpawner(recorder, cfg.Clone)
	if err != nil {
		return nil, fmt.Errorf("playing: %w", err)
	}

	p := &Playing{
		cfg:        cfg,
		stage:      stage,
		body:       body,
		controller: controller,
		caster:     caster,
		integrator: system.NewIntegrator(stage),
		inputSys:   system.NewInputSystem(),
		recorder:   recorder,
		spawner:    spawner,
		state:      state.StatePlaying,
		screenW:    cfg.Display.ScreenWidth,
		screenH:    cfg.Display.ScreenHeight,
	}

	events := controller.Events()
	p.unsubscribe = append(p.unsubscribe,
		events.OnJumped(func() { p.jumpCount++ }),
		events.OnDashChanged(func(dashing bool) {
			if dashing {
				p.dashCount++
			}
		}),
		events.OnGroundedChanged(func(grounded bool, impact float64) {
			if grounded {
				p.lastImpact = impact
			}
		}),
	)

	return p, nil
}

// Update runs one fixed step of the sandbox.
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if p.state == state.StatePaused {
			p.state = state.StatePlaying
		} else {
			p.state = state.StatePaused
		}
	}
	if p.state == state.StatePaused {
		return nil, nil
	}

	in := p.inputSys.Poll()
	p.controller.Update(in, dt)
	p.integrator.Step(p.body, dt)

	// Spikes send the player back to spawn; the run-up to them stays in
	// the recording, so clones happily repeat the mistake.
	if p.caster.OverlapHazard(p.body.Position(), p.body.Size) {
		p.controller.Teleport(p.stage.Spawn)
	}

	p.recorder.Update(dt)
	p.spawner.Update(dt)

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		p.spawner.Spawn()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		p.spawner.DestroyAll()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.controller.Teleport(p.stage.Spawn)
	}

	return nil, nil
}

// Draw renders the stage, clones and player with a debug overlay.
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	ts := float32(p.stage.TileSize)
	for ty := 0; ty < p.stage.Height; ty++ {
		for tx := 0; tx < p.stage.Width; tx++ {
			tile := p.stage.GetTile(tx, ty)
			if tile.Type == entity.TileEmpty {
				continue
			}
			c := colorWall
			if tile.Type == entity.TileSpike {
				c = colorSpike
			}
			sx := float32(tx) * ts
			sy := float32(p.screenH) - float32(ty+1)*ts
			vector.DrawFilledRect(screen, sx, sy, ts, ts, c, false)
		}
	}

	for _, clone := range p.spawner.Clones() {
		p.drawActor(screen, clone.Position(), clone.Facing(), colorClone)
	}

	c := colorPlayer
	if p.controller.Dashing() {
		c = colorPlayerDash
	} else if p.controller.WallSliding() {
		c = colorPlayerWall
	}
	p.drawActor(screen, p.body.Position(), p.controller.Facing(), c)

	vel := p.controller.Velocity()
	msg := fmt.Sprintf(
		"vel (%.0f, %.0f)  grounded %v  wall %d\nclones %d/%d  samples %d\njumps %d  dashes %d  impact %.0f\n[space] jump  [shift] dash  [c] clone  [x] clear  [r] reset  [p] pause",
		vel.X, vel.Y, p.controller.Grounded(), p.controller.WallDirection(),
		p.spawner.Active(), p.cfg.Clone.MaxActive, p.recorder.Len(),
		p.jumpCount, p.dashCount, p.lastImpact,
	)
	if p.state == state.StatePaused {
		msg = "PAUSED\n" + msg
	}
	ebitenutil.DebugPrint(screen, msg)
}

// drawActor draws a body box plus a facing tick, converting the Y-up
// world position to screen coordinates.
func (p *Playing) drawActor(screen *ebiten.Image, pos entity.Vec2, facing int, c color.Color) {
	w := float32(playerSize.X)
	h := float32(playerSize.Y)
	sx := float32(pos.X) - w/2
	sy := float32(p.screenH) - float32(pos.Y) - h/2
	vector.DrawFilledRect(screen, sx, sy, w, h, c, false)

	tickX := sx + w/2 + float32(facing)*w/2 - 1
	vector.DrawFilledRect(screen, tickX, sy+3, 2, 2, colorFacing, false)
}

// OnEnter implements scene.Scene.
func (p *Playing) OnEnter() {}

// OnExit tears down clones and event subscriptions.
func (p *Playing) OnExit() {
	p.spawner.DestroyAll()
	for _, unsub := range p.unsubscribe {
		unsub()
	}
	p.unsubscribe = nil
}
