package neondash

import (
	"github.com/vovakirdan/neon-dash/internal/config"
)

// spawner decides when and what to spawn. Draw order per spawn event is
// fixed: fire-check, kind, floating, group size.
type spawner struct {
	cfg      config.Spawn
	viewport config.Viewport
	rng      Rand
	nextID   uint64
}

func newSpawner(cfg config.NeonConfig, rng Rand) *spawner {
	return &spawner{
		cfg:      cfg.Spawn,
		viewport: cfg.Viewport,
		rng:      rng,
	}
}

// spawn runs the policy for the current frame and appends new obstacles at
// the right viewport edge. Returns how many were added.
func (s *spawner) spawn(w *World) int {
	if w.Frame%s.cfg.Period != 0 {
		return 0
	}
	if s.rng.Float64() <= s.cfg.SkipThreshold {
		return 0
	}

	kind := KindSpike
	if s.rng.Float64() > s.cfg.BlockThreshold {
		kind = KindBlock
	}
	// Drawn for every spawn so the sequence does not depend on the kind.
	floating := s.rng.Float64() > s.cfg.FloatingThreshold && kind == KindBlock
	count := 1
	if s.rng.Float64() > s.cfg.GroupThreshold {
		count = 2
	}

	size := s.cfg.Spike
	if kind == KindBlock {
		size = s.cfg.Block
	}
	y := s.viewport.GroundY() - size.Height
	if floating {
		y -= s.cfg.FloatOffset
	}

	for i := 0; i < count; i++ {
		s.nextID++
		w.Obstacles = append(w.Obstacles, Obstacle{
			ID:       s.nextID,
			Kind:     kind,
			Floating: floating,
			X:        s.viewport.Width + float64(i)*size.Width,
			Y:        y,
			Width:    size.Width,
			Height:   size.Height,
		})
	}
	return count
}
