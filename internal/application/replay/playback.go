package replay

import (
	"math"

	"github.com/HarunOYusuf/Game-Feel/internal/domain/entity"
)

// State is a playback session's lifecycle state.
type State int

const (
	StateIdle State = iota
	StatePlaying
	StateComplete
)

// String returns the string representation of the playback state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePlaying:
		return "Playing"
	case StateComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// Frame is the derived per-step output of a playback session, exposed to
// animation/visual consumers.
type Frame struct {
	Position    entity.Vec2
	Facing      int
	Grounded    bool
	Dashing     bool
	WallSliding bool
	// HorizontalSpeed is computed from the rendered position delta, not
	// the recorded velocity, so it matches actual on-screen motion.
	HorizontalSpeed float64
	// JumpTriggered fires for one step on a recorded grounded-to-airborne
	// transition with upward velocity.
	JumpTriggered bool
}

// Session replays a slice of snapshots on an independent actor.
// Lifecycle: Idle -> Playing -> Complete; Complete is terminal.
type Session struct {
	samples     []Snapshot
	cursor      int
	clock       float64
	speed       float64
	interpolate bool
	state       State
	wasGrounded bool
	lastPos     entity.Vec2
	frame       Frame
	onComplete  func()
}

// NewSession creates an idle session. speed is the playback speed
// multiplier; onComplete may be nil and fires exactly once, on natural
// completion or Stop.
func NewSession(speed float64, interpolate bool, onComplete func()) *Session {
	if speed <= 0 {
		speed = 1
	}
	return &Session{
		speed:       speed,
		interpolate: interpolate,
		onComplete:  onComplete,
	}
}

// Start seeds the session with a snapshot slice and transitions
// Idle -> Playing. An empty slice is a no-op: Start returns false and the
// session stays Idle, signalling the caller to discard it (and any actor
// attached to it) immediately.
func (s *Session) Start(samples []Snapshot) bool {
	if s.state != StateIdle || len(samples) == 0 {
		return s.state == StatePlaying
	}
	s.samples = samples
	s.state = StatePlaying
	first := samples[0]
	s.wasGrounded = first.Grounded
	s.lastPos = first.Position
	s.frame = Frame{
		Position: first.Position,
		Facing:   sampleFacing(first),
		Grounded: first.Grounded,
		Dashing:  first.Dashing,
	}
	return true
}

// Update advances the session by dt and returns the derived frame.
// Frames after Complete hold the final position.
func (s *Session) Update(dt float64) Frame {
	if s.state != StatePlaying {
		return s.frame
	}

	s.clock += dt * s.speed

	// Monotonic cursor scan; never regresses.
	for s.cursor+1 < len(s.samples) && s.samples[s.cursor+1].Timestamp <= s.clock {
		s.cursor++
	}

	if s.cursor >= len(s.samples)-1 {
		last := s.samples[len(s.samples)-1]
		s.emitFrame(last, last.Position, dt)
		s.complete()
		return s.frame
	}

	a := s.samples[s.cursor]
	b := s.samples[s.cursor+1]

	pos := a.Position
	if s.interpolate {
		t := (s.clock - a.Timestamp) / (b.Timestamp - a.Timestamp)
		pos = entity.Lerp(a.Position, b.Position, t)
		// Interpolating across uneven ground probes jitters the floor
		// height; hold Y while both samples are grounded.
		if a.Grounded && b.Grounded {
			pos.Y = a.Position.Y
		}
	}

	s.emitFrame(a, pos, dt)
	return s.frame
}

// emitFrame fills the derived frame from the earlier bracketing sample.
func (s *Session) emitFrame(a Snapshot, pos entity.Vec2, dt float64) {
	jump := s.wasGrounded && !a.Grounded && a.Velocity.Y > 0
	s.wasGrounded = a.Grounded

	speed := 0.0
	if dt > 0 {
		speed = math.Abs(pos.X-s.lastPos.X) / dt
	}
	s.lastPos = pos

	s.frame = Frame{
		Position:        pos,
		Facing:          sampleFacing(a),
		Grounded:        a.Grounded,
		Dashing:         a.Dashing,
		WallSliding:     a.WallSliding,
		HorizontalSpeed: speed,
		JumpTriggered:   jump,
	}
}

// sampleFacing mirrors the live controller's sprite-flip rule: a
// wall-sliding sample faces away from its wall.
func sampleFacing(s Snapshot) int {
	if s.WallSliding && s.WallDir != 0 {
		return -s.WallDir
	}
	if s.Facing == 0 {
		return 1
	}
	return s.Facing
}

// Stop forces Playing -> Complete, firing the same completion signal as
// natural completion. Idempotent on an already-complete or idle session.
func (s *Session) Stop() {
	if s.state != StatePlaying {
		s.state = StateComplete
		return
	}
	if len(s.samples) > 0 {
		s.frame.Position = s.samples[len(s.samples)-1].Position
	}
	s.complete()
}

func (s *Session) complete() {
	s.state = StateComplete
	s.frame.JumpTriggered = false
	if s.onComplete != nil {
		fn := s.onComplete
		s.onComplete = nil
		fn()
	}
}

// State returns the session lifecycle state.
func (s *Session) State() State { return s.state }

// Playing reports whether the session is actively replaying.
func (s *Session) Playing() bool { return s.state == StatePlaying }

// Clock returns the local playback clock in seconds.
func (s *Session) Clock() float64 { return s.clock }

// Cursor returns the current sample index. It never decreases.
func (s *Session) Cursor() int { return s.cursor }
