package entity

// Body is the physics body handle the movement controller writes to.
// The controller owns velocity; the host integrates position once per
// fixed step. Pos is the center of the collision box.
type Body struct {
	Pos  Vec2
	Vel  Vec2
	Size Vec2 // collision box width/height
}

// NewBody creates a body centered at pos with the given box size.
func NewBody(pos, size Vec2) *Body {
	return &Body{Pos: pos, Size: size}
}

// Position returns the body center.
func (b *Body) Position() Vec2 {
	return b.Pos
}

// Velocity returns the current velocity.
func (b *Body) Velocity() Vec2 {
	return b.Vel
}

// SetVelocity replaces the current velocity. Called by the controller at
// the end of each step.
func (b *Body) SetVelocity(v Vec2) {
	b.Vel = v
}

// Teleport moves the body to pos and zeroes velocity.
func (b *Body) Teleport(pos Vec2) {
	b.Pos = pos
	b.Vel = Vec2{}
}

// NudgeX shifts the body horizontally without touching velocity. Used for
// edge correction.
func (b *Body) NudgeX(dx float64) {
	b.Pos.X += dx
}

// Left returns the X coordinate of the body's left edge.
func (b *Body) Left() float64 { return b.Pos.X - b.Size.X/2 }

// Right returns the X coordinate of the body's right edge.
func (b *Body) Right() float64 { return b.Pos.X + b.Size.X/2 }

// Bottom returns the Y coordinate of the body's bottom edge.
func (b *Body) Bottom() float64 { return b.Pos.Y - b.Size.Y/2 }

// Top returns the Y coordinate of the body's top edge.
func (b *Body) Top() float64 { return b.Pos.Y + b.Size.Y/2 }
