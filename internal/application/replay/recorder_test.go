package replay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HarunOYusuf/Game-Feel/internal/domain/entity"
)

// fakeSource is a controllable movement source; tests mutate the fields
// between recorder updates.
type fakeSource struct {
	pos         entity.Vec2
	vel         entity.Vec2
	grounded    bool
	wallSliding bool
	dashing     bool
	facing      int
	wallDir     int
}

func (f *fakeSource) Position() entity.Vec2 { return f.pos }
func (f *fakeSource) Velocity() entity.Vec2 { return f.vel }
func (f *fakeSource) Grounded() bool        { return f.grounded }
func (f *fakeSource) WallSliding() bool     { return f.wallSliding }
func (f *fakeSource) Dashing() bool         { return f.dashing }
func (f *fakeSource) Facing() int           { return f.facing }
func (f *fakeSource) WallDirection() int    { return f.wallDir }

func TestNewRecorder(t *testing.T) {
	src := &fakeSource{}

	t.Run("valid", func(t *testing.T) {
		rec, err := NewRecorder(src, 30, 5)
		require.NoError(t, err)
		assert.Equal(t, 0, rec.Len())
	})

	t.Run("nil source", func(t *testing.T) {
		_, err := NewRecorder(nil, 30, 5)
		assert.Error(t, err)
	})

	t.Run("zero sample rate", func(t *testing.T) {
		_, err := NewRecorder(src, 0, 5)
		assert.Error(t, err)
	})

	t.Run("zero retain", func(t *testing.T) {
		_, err := NewRecorder(src, 30, 0)
		assert.Error(t, err)
	})
}

func TestRecorder_SampleCadence(t *testing.T) {
	src := &fakeSource{facing: 1}

	// 2 Hz sampling stepped at 4 Hz: every other step samples.
	rec, err := NewRecorder(src, 2, 10)
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		rec.Update(0.25)
	}

	assert.Equal(t, 4, rec.Len())
	assert.Equal(t, 2.0, rec.Now())
}

func TestRecorder_SlowHostNeverDoubleSamples(t *testing.T) {
	src := &fakeSource{}

	// Host steps at 1 Hz against a 2 Hz sampling rate: one sample per
	// step, skipped intervals are not backfilled.
	rec, err := NewRecorder(src, 2, 10)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		rec.Update(1.0)
	}

	assert.Equal(t, 4, rec.Len())
}

func TestRecorder_HostAtSamplingRate(t *testing.T) {
	src := &fakeSource{}

	// 60 Hz sampling stepped at 60 Hz: the accumulated clock rounds each
	// step, but every sampling slot must still be hit.
	rec, err := NewRecorder(src, 60, 5)
	require.NoError(t, err)

	const dt = 1.0 / 60.0
	for i := 0; i < 600; i++ {
		rec.Update(dt)
	}

	assert.InDelta(t, 10.0, rec.Now(), 1e-6)
	assert.InDelta(t, 300, float64(rec.Len()), 2)
	assert.InDelta(t, rec.Now()-5.0, rec.OldestTimestamp(), 0.05)
}

func TestRecorder_HalfRateSampling(t *testing.T) {
	src := &fakeSource{}

	// 30 Hz sampling stepped at 60 Hz: every other step samples, for the
	// whole run.
	rec, err := NewRecorder(src, 30, 5)
	require.NoError(t, err)

	const dt = 1.0 / 60.0
	for i := 0; i < 600; i++ {
		rec.Update(dt)
	}

	assert.InDelta(t, 150, float64(rec.Len()), 2)
}

func TestRecorder_EvictsBeyondRetain(t *testing.T) {
	src := &fakeSource{}

	rec, err := NewRecorder(src, 4, 1.0)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		rec.Update(0.25)
	}

	assert.Equal(t, 5.0, rec.Now())
	assert.Equal(t, 5, rec.Len(), "only the last second of samples is retained")
	assert.Equal(t, 4.0, rec.OldestTimestamp())
}

func TestRecorder_Extract(t *testing.T) {
	src := &fakeSource{facing: 1}

	rec, err := NewRecorder(src, 4, 2.0)
	require.NoError(t, err)

	// Position tracks the clock so extracted samples are identifiable.
	for i := 0; i < 12; i++ {
		rec.Update(0.25)
		src.pos.X = rec.Now()
	}

	t.Run("rebased to zero", func(t *testing.T) {
		out := rec.Extract(1.0)
		require.Len(t, out, 5)

		assert.Equal(t, 0.0, out[0].Timestamp)
		assert.Equal(t, 1.0, out[len(out)-1].Timestamp)
		for i := 1; i < len(out); i++ {
			assert.Greater(t, out[i].Timestamp, out[i-1].Timestamp)
		}
	})

	t.Run("window holds the most recent samples", func(t *testing.T) {
		out := rec.Extract(1.0)
		require.Len(t, out, 5)

		// The recorder clock was 3.0 at the end; the window starts one
		// second earlier. Position lags the clock by one step at sample
		// time.
		assert.Equal(t, 1.75, out[0].Position.X)
		assert.Equal(t, 2.75, out[len(out)-1].Position.X)
	})

	t.Run("duration clamped to retain limit", func(t *testing.T) {
		out := rec.Extract(100)
		assert.Len(t, out, 9)
	})

	t.Run("copies are isolated from the buffer", func(t *testing.T) {
		out := rec.Extract(1.0)
		out[0].Position = entity.Vec2{X: -999}

		again := rec.Extract(1.0)
		assert.Equal(t, 1.75, again[0].Position.X)
	})
}

func TestRecorder_ExtractEmpty(t *testing.T) {
	rec, err := NewRecorder(&fakeSource{}, 30, 5)
	require.NoError(t, err)

	assert.Nil(t, rec.Extract(3), "no samples yet means not ready, not an error")
}

func TestRecorder_CapturesSourceState(t *testing.T) {
	src := &fakeSource{
		pos:         entity.Vec2{X: 10, Y: 20},
		vel:         entity.Vec2{X: -30, Y: 40},
		wallSliding: true,
		facing:      -1,
		wallDir:     -1,
	}

	rec, err := NewRecorder(src, 2, 10)
	require.NoError(t, err)
	rec.Update(0.5)

	out := rec.Extract(10)
	require.Len(t, out, 1)

	snap := out[0]
	assert.Equal(t, entity.Vec2{X: 10, Y: 20}, snap.Position)
	assert.Equal(t, entity.Vec2{X: -30, Y: 40}, snap.Velocity)
	assert.True(t, snap.WallSliding)
	assert.False(t, snap.Grounded)
	assert.Equal(t, -1, snap.Facing)
	assert.Equal(t, -1, snap.WallDir)
}
