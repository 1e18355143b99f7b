package system

import (
	"github.com/HarunOYusuf/Game-Feel/internal/domain/entity"
)

// World is the solid/hazard classification the caster queries. Coordinates
// are world units, Y-up.
type World interface {
	SolidAt(x, y float64) bool
	HazardAt(x, y float64) bool
}

// ProbeParams are the cast distances for one probe pass.
type ProbeParams struct {
	GroundDistance float64 // downward cast below the feet
	WallDistance   float64 // sideways cast past each edge; 0 skips wall casts
	EdgeOffset     float64 // inward offset of the two edge rays; 0 skips edge rays
}

// ProbeResult holds the boolean hits of one probe pass.
type ProbeResult struct {
	Ground  bool
	Ceiling bool

	WallLeft  bool
	WallRight bool

	// Edge rays: a missing hit under exactly one foot means the body is
	// standing on an edge.
	GroundUnderLeft  bool
	GroundUnderRight bool
}

// WallDir returns -1 for a left wall, 1 for a right wall, 0 for neither.
// A body wedged between two walls reports the right one.
func (r ProbeResult) WallDir() int {
	if r.WallRight {
		return 1
	}
	if r.WallLeft {
		return -1
	}
	return 0
}

// OnLeftEdge reports standing on the left edge of a platform.
func (r ProbeResult) OnLeftEdge() bool {
	return r.GroundUnderRight && !r.GroundUnderLeft
}

// OnRightEdge reports standing on the right edge of a platform.
func (r ProbeResult) OnRightEdge() bool {
	return r.GroundUnderLeft && !r.GroundUnderRight
}

// Caster issues the per-step shape casts against a World. It is stateless
// apart from the hazard-sensitivity query mode, which every method must
// restore before returning.
type Caster struct {
	world      World
	sampleStep float64
	hitHazards bool
}

// NewCaster creates a caster over the given world. sampleStep is the
// spacing of sample points along cast edges; it must be smaller than the
// thinnest solid feature (typically half a tile).
func NewCaster(world World, sampleStep float64) *Caster {
	return &Caster{world: world, sampleStep: sampleStep}
}

// Probe runs the four probe classes for a box of the given size centered
// at pos and returns the combined result. Casts are solid-only; the hazard
// query mode is forced off for the duration and restored on return.
func (c *Caster) Probe(pos, size entity.Vec2, p ProbeParams) ProbeResult {
	prev := c.hitHazards
	c.hitHazards = false
	defer func() { c.hitHazards = prev }()

	halfW := size.X / 2
	halfH := size.Y / 2
	var r ProbeResult

	// Ground: bottom edge swept down.
	r.Ground = c.castEdge(
		entity.Vec2{X: pos.X - halfW, Y: pos.Y - halfH - p.GroundDistance},
		entity.Vec2{X: pos.X + halfW, Y: pos.Y - halfH - p.GroundDistance},
	)

	// Ceiling: top edge swept up by the same distance.
	r.Ceiling = c.castEdge(
		entity.Vec2{X: pos.X - halfW, Y: pos.Y + halfH + p.GroundDistance},
		entity.Vec2{X: pos.X + halfW, Y: pos.Y + halfH + p.GroundDistance},
	)

	if p.WallDistance > 0 {
		r.WallLeft = c.castEdge(
			entity.Vec2{X: pos.X - halfW - p.WallDistance, Y: pos.Y - halfH + 1e-3},
			entity.Vec2{X: pos.X - halfW - p.WallDistance, Y: pos.Y + halfH - 1e-3},
		)
		r.WallRight = c.castEdge(
			entity.Vec2{X: pos.X + halfW + p.WallDistance, Y: pos.Y - halfH + 1e-3},
			entity.Vec2{X: pos.X + halfW + p.WallDistance, Y: pos.Y + halfH - 1e-3},
		)
	}

	if p.EdgeOffset > 0 {
		footY := pos.Y - halfH - p.GroundDistance
		r.GroundUnderLeft = c.hit(pos.X-halfW+p.EdgeOffset, footY)
		r.GroundUnderRight = c.hit(pos.X+halfW-p.EdgeOffset, footY)
	}

	return r
}

// OverlapHazard reports whether the box at pos overlaps a hazard. It runs
// with the hazard query mode enabled and restores the previous mode before
// returning.
func (c *Caster) OverlapHazard(pos, size entity.Vec2) bool {
	prev := c.hitHazards
	c.hitHazards = true
	defer func() { c.hitHazards = prev }()

	halfW := size.X / 2
	halfH := size.Y / 2
	for _, y := range c.samples(pos.Y-halfH, pos.Y+halfH) {
		for _, x := range c.samples(pos.X-halfW, pos.X+halfW) {
			if c.hit(x, y) {
				return true
			}
		}
	}
	return false
}

// castEdge checks a line segment between two points for hits. Both
// endpoints are axis-aligned in practice.
func (c *Caster) castEdge(from, to entity.Vec2) bool {
	if from.Y == to.Y {
		for _, x := range c.samples(from.X, to.X) {
			if c.hit(x, from.Y) {
				return true
			}
		}
		return false
	}
	for _, y := range c.samples(from.Y, to.Y) {
		if c.hit(from.X, y) {
			return true
		}
	}
	return false
}

// samples returns points from lo to hi spaced at most sampleStep apart,
// endpoints included.
func (c *Caster) samples(lo, hi float64) []float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	n := int((hi-lo)/c.sampleStep) + 1
	pts := make([]float64, 0, n+1)
	for v := lo; v < hi; v += c.sampleStep {
		pts = append(pts, v)
	}
	return append(pts, hi)
}

func (c *Caster) hit(x, y float64) bool {
	if c.world.SolidAt(x, y) {
		return true
	}
	return c.hitHazards && c.world.HazardAt(x, y)
}
