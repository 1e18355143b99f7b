package system

import (
	"errors"
	"math"

	"github.com/HarunOYusuf/Game-Feel/internal/domain/entity"
	"github.com/HarunOYusuf/Game-Feel/internal/infrastructure/config"
)

// never is a time sentinel far enough in the past that no grace window
// can reach it.
const never = -1e9

// Controller is the fixed-timestep movement state machine. It consumes
// raw input and probe results every step and commits the resulting
// velocity to the physics body; the host integrates position.
//
// All state is owned by the controller and mutated only inside Update,
// in a fixed order: probes, dash, wall slide, jump, horizontal, gravity.
type Controller struct {
	cfg    *config.MovementConfig
	body   *entity.Body
	caster *Caster
	events *Events

	time float64
	vel  entity.Vec2
	in   RawInput

	grounded          bool
	frameLeftGrounded float64

	onWall       bool
	wallDir      int // side currently touched, 0 if neither
	lastWallDir  int // retained for wall-coyote jumps after losing contact
	timeLeftWall float64
	wallSliding  bool

	dashing   bool
	dashStart float64
	dashDir   entity.Vec2
	canDash   bool

	jumpToConsume        bool
	bufferedJumpUsable   bool
	coyoteUsable         bool
	wallJumpCoyoteUsable bool
	endedJumpEarly       bool
	timeJumpPressed      float64

	dashRequested bool

	apex   float64 // clamped to [0,1]
	facing int     // -1 or 1
}

// NewController wires the controller to its collaborators. All three are
// required; a nil dependency or invalid config is refused outright.
func NewController(cfg *config.MovementConfig, body *entity.Body, caster *Caster) (*Controller, error) {
	if cfg == nil {
		return nil, errors.New("controller: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if body == nil {
		return nil, errors.New("controller: nil body")
	}
	if caster == nil {
		return nil, errors.New("controller: nil caster")
	}
	return &Controller{
		cfg:               cfg,
		body:              body,
		caster:            caster,
		events:            NewEvents(),
		canDash:           true,
		facing:            1,
		frameLeftGrounded: never,
		timeLeftWall:      never,
		timeJumpPressed:   never,
	}, nil
}

// Update runs one fixed step. dt is the fixed step duration in seconds.
// No input combination is an error; unactionable intents are dropped.
func (c *Controller) Update(in RawInput, dt float64) {
	c.time += dt
	c.gatherInput(in)
	c.checkCollisions(dt)

	if !c.handleDash() {
		c.handleWallSlide()
		c.handleJump()
		c.updateApex()
		c.handleHorizontal(dt)
		c.handleGravity(dt)
	}

	c.body.SetVelocity(c.vel)
}

func (c *Controller) gatherInput(in RawInput) {
	if c.cfg.Input.SnapInput {
		in.Move.X = snapAxis(in.Move.X, c.cfg.Input.HorizontalDeadzone)
		in.Move.Y = snapAxis(in.Move.Y, c.cfg.Input.VerticalDeadzone)
	}
	c.in = in

	if in.JumpPressed {
		c.jumpToConsume = true
		c.timeJumpPressed = c.time
	}
	if in.DashPressed {
		c.dashRequested = true
	}
}

func snapAxis(v, deadzone float64) float64 {
	if math.Abs(v) < deadzone {
		return 0
	}
	return entity.Sign(v)
}

// checkCollisions runs the probe pass and the resulting transitions:
// ceiling clamp, grounded flip (with landing impact speed), wall contact
// bookkeeping and edge correction.
func (c *Controller) checkCollisions(dt float64) {
	params := ProbeParams{
		GroundDistance: c.cfg.Fall.ProbeDistance,
	}
	if c.cfg.Wall.SlideEnabled && !c.grounded {
		params.WallDistance = c.cfg.Wall.CheckDistance
	}
	if c.cfg.Edge.Enabled && c.grounded {
		params.EdgeOffset = c.cfg.Edge.RayOffset
	}

	res := c.caster.Probe(c.body.Position(), c.body.Size, params)

	// Ceiling clamps upward velocity.
	if res.Ceiling && c.vel.Y > 0 {
		c.vel.Y = 0
	}

	switch {
	case !c.grounded && res.Ground:
		c.grounded = true
		c.coyoteUsable = true
		c.bufferedJumpUsable = true
		c.wallJumpCoyoteUsable = false
		c.endedJumpEarly = false
		c.canDash = true
		c.events.emitGroundedChanged(true, math.Abs(c.vel.Y))
	case c.grounded && !res.Ground:
		c.grounded = false
		c.frameLeftGrounded = c.time
		c.events.emitGroundedChanged(false, 0)
	}

	if c.cfg.Wall.SlideEnabled && !c.grounded {
		dir := res.WallDir()
		if c.onWall && dir == 0 {
			c.timeLeftWall = c.time
			c.wallJumpCoyoteUsable = true
		}
		c.onWall = dir != 0
		c.wallDir = dir
		if dir != 0 {
			c.lastWallDir = dir
		}
	} else {
		c.onWall = false
		c.wallDir = 0
	}

	// Edge correction nudges toward the supported side when the player
	// gives no horizontal input.
	if c.cfg.Edge.Enabled && c.grounded && c.in.Move.X == 0 {
		if res.OnLeftEdge() {
			c.body.NudgeX(c.cfg.Edge.CorrectionStrength * dt)
		} else if res.OnRightEdge() {
			c.body.NudgeX(-c.cfg.Edge.CorrectionStrength * dt)
		}
	}
}

// handleDash resolves dash start, hold and expiry. It reports whether the
// dash owned the velocity this step; jump, horizontal and gravity handling
// are suspended for such steps, including the expiry step.
func (c *Controller) handleDash() bool {
	if c.dashRequested && c.canDash && c.cfg.Dash.Enabled && !c.dashing {
		if c.wallSliding {
			c.wallSliding = false
			c.events.emitWallSlideChanged(false)
		}
		c.dashing = true
		c.canDash = false
		c.dashStart = c.time
		if c.in.Move.IsZero() {
			c.dashDir = entity.Vec2{X: float64(c.facing)}
		} else {
			c.dashDir = c.in.Move.Normalized()
		}
		c.events.emitDashChanged(true)
	}
	c.dashRequested = false

	if !c.dashing {
		return false
	}

	c.vel = c.dashDir.Scale(c.cfg.Dash.Speed)
	if c.time-c.dashStart >= c.cfg.Dash.Duration {
		c.dashing = false
		c.vel = c.dashDir.Scale(c.cfg.Dash.EndSpeed)
		c.events.emitDashChanged(false)
	}
	return true
}

// handleWallSlide flips the wall-slide flag edge-triggered. Entering a
// slide re-arms the dash.
func (c *Controller) handleWallSlide() {
	should := c.cfg.Wall.SlideEnabled && c.onWall && !c.grounded && c.vel.Y <= 0
	if should == c.wallSliding {
		return
	}
	c.wallSliding = should
	if should {
		c.canDash = true
	}
	c.events.emitWallSlideChanged(should)
}

func (c *Controller) handleJump() {
	// Releasing the button while still ascending arms the jump cut.
	if !c.endedJumpEarly && !c.grounded && !c.in.JumpHeld && c.vel.Y > 0 {
		c.endedJumpEarly = true
	}

	hasBuffered := c.bufferedJumpUsable && c.time < c.timeJumpPressed+c.cfg.Jump.Buffer
	if !c.jumpToConsume && !hasBuffered {
		return
	}

	switch {
	case c.canWallJump():
		c.executeWallJump()
	case c.grounded || c.canUseCoyote():
		c.executeJump()
	}
	// An unactionable intent is simply dropped; the buffer window expires
	// on its own.
	c.jumpToConsume = false
}

func (c *Controller) canUseCoyote() bool {
	return c.coyoteUsable && !c.grounded && c.time < c.frameLeftGrounded+c.cfg.Jump.CoyoteTime
}

func (c *Controller) canWallJump() bool {
	if !c.cfg.Wall.SlideEnabled {
		return false
	}
	if c.wallSliding || c.onWall {
		return true
	}
	return c.wallJumpCoyoteUsable && c.time < c.timeLeftWall+c.cfg.Wall.CoyoteTime
}

func (c *Controller) executeJump() {
	c.endedJumpEarly = false
	c.timeJumpPressed = never
	c.bufferedJumpUsable = false
	c.coyoteUsable = false
	c.vel.Y = c.cfg.Jump.Power
	c.events.emitJumped()
}

func (c *Controller) executeWallJump() {
	c.endedJumpEarly = false
	c.timeJumpPressed = never
	c.bufferedJumpUsable = false
	c.wallJumpCoyoteUsable = false
	if c.wallSliding {
		c.wallSliding = false
		c.events.emitWallSlideChanged(false)
	}
	dir := c.wallDir
	if dir == 0 {
		dir = c.lastWallDir
	}
	c.vel = entity.Vec2{
		X: -float64(dir) * c.cfg.Wall.JumpPowerX,
		Y: c.cfg.Wall.JumpPowerY,
	}
	c.events.emitJumped()
}

// updateApex recomputes the apex interpolant: 1 at zero vertical speed,
// 0 at or beyond the threshold, 0 whenever grounded.
func (c *Controller) updateApex() {
	if c.grounded {
		c.apex = 0
		return
	}
	c.apex = entity.InverseLerp(c.cfg.Jump.Apex.Threshold, 0, math.Abs(c.vel.Y))
}

func (c *Controller) handleHorizontal(dt float64) {
	if c.in.Move.X > 0 {
		c.facing = 1
	} else if c.in.Move.X < 0 {
		c.facing = -1
	}

	if c.in.Move.X == 0 {
		decel := c.cfg.Movement.GroundDeceleration
		if !c.grounded {
			decel = c.cfg.Movement.AirDeceleration
		}
		c.vel.X = entity.MoveToward(c.vel.X, 0, decel*dt)
		return
	}

	speed := c.cfg.Movement.MaxSpeed
	accel := c.cfg.Movement.Acceleration
	if c.cfg.Jump.Apex.Enabled && !c.grounded {
		speed += c.cfg.Jump.Apex.SpeedBonus * c.apex
		accel += c.cfg.Jump.Apex.AccelerationBonus * c.apex
	}
	c.vel.X = entity.MoveToward(c.vel.X, c.in.Move.X*speed, accel*dt)
}

func (c *Controller) handleGravity(dt float64) {
	if c.grounded && c.vel.Y <= 0 {
		c.vel.Y = c.cfg.Fall.GroundingForce
		return
	}

	if c.wallSliding {
		c.vel.Y = entity.MoveToward(c.vel.Y, -c.cfg.Wall.SlideSpeed, c.cfg.Wall.SlideAcceleration*dt)
		return
	}

	accel := c.cfg.Fall.Acceleration
	if c.endedJumpEarly && c.vel.Y > 0 {
		accel *= c.cfg.Jump.CutGravityMultiplier
	} else if c.cfg.Jump.Apex.Enabled {
		accel = entity.LerpFloat(accel, accel*c.cfg.Jump.Apex.GravityMultiplier, c.apex)
	}
	c.vel.Y = entity.MoveToward(c.vel.Y, -c.cfg.Fall.MaxFallSpeed, accel*dt)
}

// ApplyImpulse adds v to the current velocity. With reset, the current
// velocity is discarded first.
func (c *Controller) ApplyImpulse(v entity.Vec2, reset bool) {
	if reset {
		c.vel = v
	} else {
		c.vel = c.vel.Add(v)
	}
	c.body.SetVelocity(c.vel)
}

// Teleport moves the body to pos and zeroes velocity.
func (c *Controller) Teleport(pos entity.Vec2) {
	c.vel = entity.Vec2{}
	c.body.Teleport(pos)
}

// ResetDash forces the dash to be available again, e.g. when the support
// context changes.
func (c *Controller) ResetDash() {
	c.canDash = true
}

// Events returns the controller's event surface.
func (c *Controller) Events() *Events {
	return c.events
}

// Position returns the body center.
func (c *Controller) Position() entity.Vec2 { return c.body.Position() }

// Velocity returns the velocity committed by the last step.
func (c *Controller) Velocity() entity.Vec2 { return c.vel }

// Grounded reports ground contact.
func (c *Controller) Grounded() bool { return c.grounded }

// Jumping reports upward airborne motion.
func (c *Controller) Jumping() bool { return !c.grounded && c.vel.Y > 0 }

// Falling reports downward airborne motion.
func (c *Controller) Falling() bool { return !c.grounded && c.vel.Y < 0 }

// AtApex reports being inside the apex window of a jump arc.
func (c *Controller) AtApex() bool { return !c.grounded && c.apex > 0 }

// WallSliding reports an active wall slide.
func (c *Controller) WallSliding() bool { return c.wallSliding }

// WallDirection returns the side of the wall currently touched:
// -1 left, 1 right, 0 none.
func (c *Controller) WallDirection() int { return c.wallDir }

// Dashing reports an active dash.
func (c *Controller) Dashing() bool { return c.dashing }

// DashAvailable reports whether a dash request would be honored.
func (c *Controller) DashAvailable() bool { return c.canDash }

// Facing returns the facing direction, -1 or 1.
func (c *Controller) Facing() int { return c.facing }

// MoveInput returns the (possibly snapped) movement axis of the last step.
func (c *Controller) MoveInput() entity.Vec2 { return c.in.Move }

// Time returns the controller's monotonic simulation clock in seconds.
func (c *Controller) Time() float64 { return c.time }
