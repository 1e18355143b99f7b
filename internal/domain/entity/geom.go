package entity

import "math"

// Vec2 is a 2D vector in world units. The world is Y-up: positive Y is
// away from the ground, so jump velocities are positive and gravity pulls
// toward negative Y.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the vector length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns v with length 1, or the zero vector if v is zero.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Lerp linearly interpolates between a and b by t in [0,1].
func Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// LerpFloat linearly interpolates between a and b by t.
func LerpFloat(a, b, t float64) float64 {
	return a + (b-a)*t
}

// MoveToward moves current toward target by at most maxDelta, never
// overshooting.
func MoveToward(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// InverseLerp returns where value sits between a and b as a fraction,
// clamped to [0,1]. Returns 0 when a == b.
func InverseLerp(a, b, value float64) float64 {
	if a == b {
		return 0
	}
	return Clamp01((value - a) / (b - a))
}

// Clamp01 clamps t to [0,1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Sign returns -1, 0 or 1 depending on the sign of x.
func Sign(x float64) float64 {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
