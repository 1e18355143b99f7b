package replay

import (
	"errors"
)

// Recorder samples a Source at a fixed cadence into a time-bounded,
// time-ordered buffer. Append-only at the tail, trimmed at the head;
// Extract hands out copies, never live references into the buffer.
type Recorder struct {
	src        Source
	interval   float64
	maxRetain  float64
	clock      float64
	lastSample float64
	buffer     []Snapshot
}

// NewRecorder creates a recorder sampling src at sampleRate Hz, retaining
// at most maxRetain seconds of history.
func NewRecorder(src Source, sampleRate, maxRetain float64) (*Recorder, error) {
	if src == nil {
		return nil, errors.New("recorder: nil source")
	}
	if sampleRate <= 0 {
		return nil, errors.New("recorder: sample rate must be positive")
	}
	if maxRetain <= 0 {
		return nil, errors.New("recorder: max retain must be positive")
	}
	return &Recorder{
		src:        src,
		interval:   1.0 / sampleRate,
		maxRetain:  maxRetain,
		lastSample: -1.0 / sampleRate, // first Update samples immediately
		buffer:     make([]Snapshot, 0, int(maxRetain*sampleRate)+1),
	}, nil
}

// cadenceSlack absorbs the rounding drift of an accumulated clock, so a
// host stepping at exactly the sampling interval hits every slot.
const cadenceSlack = 1e-9

// Update advances the recorder clock. At most one sample is appended per
// elapsed sampling interval: a host stepping slower than the sampling
// rate skips samples, it never double-samples an interval.
func (r *Recorder) Update(dt float64) {
	r.clock += dt
	if r.clock-r.lastSample < r.interval-cadenceSlack {
		return
	}
	if r.lastSample < 0 {
		// First sample anchors the schedule.
		r.lastSample = r.clock
	} else {
		r.lastSample += r.interval
		// A slow host realigns to its own clock instead of backfilling
		// the skipped slots.
		if r.clock-r.lastSample >= r.interval {
			r.lastSample = r.clock
		}
	}

	r.buffer = append(r.buffer, Snapshot{
		Timestamp:   r.clock,
		Position:    r.src.Position(),
		Velocity:    r.src.Velocity(),
		Grounded:    r.src.Grounded(),
		WallSliding: r.src.WallSliding(),
		Dashing:     r.src.Dashing(),
		Facing:      r.src.Facing(),
		WallDir:     r.src.WallDirection(),
	})
	r.trim()
}

// trim drops head entries older than (now - maxRetain).
func (r *Recorder) trim() {
	cutoff := r.clock - r.maxRetain
	drop := 0
	for drop < len(r.buffer) && r.buffer[drop].Timestamp < cutoff {
		drop++
	}
	if drop > 0 {
		r.buffer = append(r.buffer[:0], r.buffer[drop:]...)
	}
}

// Extract returns a copy of the retained samples covering the last
// duration seconds (clamped to the retain limit), re-based so the
// earliest returned sample is at timestamp 0. An empty result means the
// recording is not ready; callers must not treat it as an error.
func (r *Recorder) Extract(duration float64) []Snapshot {
	if duration > r.maxRetain {
		duration = r.maxRetain
	}
	cutoff := r.clock - duration

	start := 0
	for start < len(r.buffer) && r.buffer[start].Timestamp < cutoff {
		start++
	}
	if start >= len(r.buffer) {
		return nil
	}

	out := make([]Snapshot, len(r.buffer)-start)
	copy(out, r.buffer[start:])
	base := out[0].Timestamp
	for i := range out {
		out[i].Timestamp -= base
	}
	return out
}

// Len returns the number of retained samples.
func (r *Recorder) Len() int {
	return len(r.buffer)
}

// OldestTimestamp returns the timestamp of the oldest retained sample on
// the recorder clock, or 0 if the buffer is empty.
func (r *Recorder) OldestTimestamp() float64 {
	if len(r.buffer) == 0 {
		return 0
	}
	return r.buffer[0].Timestamp
}

// Now returns the recorder clock in seconds.
func (r *Recorder) Now() float64 {
	return r.clock
}
