package system

import (
	"github.com/HarunOYusuf/Game-Feel/internal/domain/entity"
)

// Integrator is the host side of the simulation: it moves a body by its
// velocity each fixed step with axis-separated substep collision against
// the stage. The movement controller never sees it; it only observes the
// resulting geometry through probes.
type Integrator struct {
	stage *entity.Stage
}

// NewIntegrator creates an integrator over the given stage.
func NewIntegrator(stage *entity.Stage) *Integrator {
	return &Integrator{stage: stage}
}

// Step moves the body by velocity*dt, clamping against solid tiles one
// substep at a time. Velocity is left untouched; the controller owns it.
func (s *Integrator) Step(body *entity.Body, dt float64) {
	// Substep size well below a tile keeps fast bodies from tunneling.
	sub := s.stage.TileSize / 4

	s.moveAxis(body, body.Vel.X*dt, sub, true)
	s.moveAxis(body, body.Vel.Y*dt, sub, false)
}

func (s *Integrator) moveAxis(body *entity.Body, delta, sub float64, horizontal bool) {
	for delta != 0 {
		step := delta
		if step > sub {
			step = sub
		} else if step < -sub {
			step = -sub
		}
		delta -= step

		next := body.Pos
		if horizontal {
			next.X += step
		} else {
			next.Y += step
		}
		if s.collides(next, body.Size) {
			return
		}
		body.Pos = next
	}
}

// collides checks the box outline at pos against solid tiles. A small
// inset keeps touching surfaces from counting as overlap.
func (s *Integrator) collides(pos, size entity.Vec2) bool {
	const inset = 1e-3
	halfW := size.X/2 - inset
	halfH := size.Y/2 - inset

	step := s.stage.TileSize / 2
	for y := pos.Y - halfH; ; y += step {
		if y > pos.Y+halfH {
			y = pos.Y + halfH
		}
		for x := pos.X - halfW; ; x += step {
			if x > pos.X+halfW {
				x = pos.X + halfW
			}
			if s.stage.SolidAt(x, y) {
				return true
			}
			if x == pos.X+halfW {
				break
			}
		}
		if y == pos.Y+halfH {
			break
		}
	}
	return false
}
