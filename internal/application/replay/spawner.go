package replay

import (
	"errors"

	"github.com/HarunOYusuf/Game-Feel/internal/domain/entity"
	"github.com/HarunOYusuf/Game-Feel/internal/infrastructure/config"
)

// Clone is an independent actor driven entirely by a playback session.
type Clone struct {
	session *Session
	frame   Frame
	done    bool
}

// Frame returns the clone's derived state for the current step.
func (c *Clone) Frame() Frame { return c.frame }

// Position returns the clone's current position.
func (c *Clone) Position() entity.Vec2 { return c.frame.Position }

// Facing returns the clone's facing direction, -1 or 1.
func (c *Clone) Facing() int { return c.frame.Facing }

// Playing reports whether the clone is still replaying.
func (c *Clone) Playing() bool { return c.session.Playing() }

// Spawner owns clone lifecycles and enforces admission control: a spawn
// cooldown and a maximum concurrent clone count. Completion always
// deregisters a clone from the active set; the destroy-on-complete
// policy only decides whether the finished actor is destroyed or kept
// around for display.
type Spawner struct {
	rec      *Recorder
	cfg      config.CloneConfig
	clock    float64
	last     float64
	clones   []*Clone
	finished []*Clone

	// OnSpawned and OnDestroyed fire synchronously inside Spawn,
	// Update and DestroyAll. Either may be nil.
	OnSpawned   func(*Clone)
	OnDestroyed func(*Clone)
}

// NewSpawner creates a spawn manager over the given recorder.
func NewSpawner(rec *Recorder, cfg config.CloneConfig) (*Spawner, error) {
	if rec == nil {
		return nil, errors.New("spawner: nil recorder")
	}
	return &Spawner{
		rec:  rec,
		cfg:  cfg,
		last: -cfg.SpawnCooldown, // first spawn is not throttled
	}, nil
}

// CanSpawn reports whether a spawn request would pass admission control.
func (s *Spawner) CanSpawn() bool {
	return s.clock-s.last >= s.cfg.SpawnCooldown && len(s.clones) < s.cfg.MaxActive
}

// Spawn extracts the configured replay duration from the recorder and
// starts a clone on it. Returns nil when admission control rejects the
// request or the recording is not ready; neither is an error.
func (s *Spawner) Spawn() *Clone {
	if !s.CanSpawn() {
		return nil
	}

	samples := s.rec.Extract(s.cfg.ReplayDuration)
	if len(samples) == 0 {
		return nil
	}

	clone := &Clone{}
	clone.session = NewSession(s.cfg.PlaybackSpeed, s.cfg.Interpolate, func() {
		clone.done = true
	})
	if !clone.session.Start(samples) {
		return nil
	}
	clone.frame = clone.session.Update(0)

	s.last = s.clock
	s.clones = append(s.clones, clone)
	if s.OnSpawned != nil {
		s.OnSpawned(clone)
	}
	return clone
}

// Update advances all active clones by dt. Completed clones leave the
// active set immediately; they are destroyed or moved to the retained
// list depending on the destroy-on-complete policy.
func (s *Spawner) Update(dt float64) {
	s.clock += dt

	kept := s.clones[:0]
	for _, c := range s.clones {
		c.frame = c.session.Update(dt)
		if c.done {
			if s.cfg.DestroyOnComplete {
				if s.OnDestroyed != nil {
					s.OnDestroyed(c)
				}
			} else {
				s.finished = append(s.finished, c)
			}
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(s.clones); i++ {
		s.clones[i] = nil
	}
	s.clones = kept
}

// DestroyAll stops and removes every clone, active and retained.
// Idempotent; calling it with no clones is a no-op.
func (s *Spawner) DestroyAll() {
	for _, c := range s.clones {
		c.session.Stop()
		if s.OnDestroyed != nil {
			s.OnDestroyed(c)
		}
	}
	s.clones = nil
	for _, c := range s.finished {
		if s.OnDestroyed != nil {
			s.OnDestroyed(c)
		}
	}
	s.finished = nil
}

// Active returns the number of clones still replaying. Finished clones
// retained for display never count against the concurrency limit.
func (s *Spawner) Active() int {
	return len(s.clones)
}

// Clones returns every clone actor for rendering, active first.
func (s *Spawner) Clones() []*Clone {
	if len(s.finished) == 0 {
		return s.clones
	}
	out := make([]*Clone, 0, len(s.clones)+len(s.finished))
	out = append(out, s.clones...)
	return append(out, s.finished...)
}
