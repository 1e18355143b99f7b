// Package replay implements the temporal record & playback subsystem:
// a bounded ring of movement snapshots sampled from the live controller,
// playback sessions that drive clone actors from a slice of that history,
// and the spawn manager that owns clone lifecycles.
package replay

import (
	"github.com/HarunOYusuf/Game-Feel/internal/domain/entity"
)

// Snapshot is one immutable, timestamped sample of movement state.
// Timestamp is seconds since recording start.
type Snapshot struct {
	Timestamp   float64
	Position    entity.Vec2
	Velocity    entity.Vec2
	Grounded    bool
	WallSliding bool
	Dashing     bool
	Facing      int
	WallDir     int
}

// Source is the capability set the recorder samples. The live movement
// controller satisfies it; any alternative movement implementation that
// does too can be recorded and replayed interchangeably.
type Source interface {
	Position() entity.Vec2
	Velocity() entity.Vec2
	Grounded() bool
	WallSliding() bool
	Dashing() bool
	Facing() int
	WallDirection() int
}
