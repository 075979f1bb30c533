package neondash

import "github.com/vovakirdan/neon-dash/internal/config"

// Autopilot jumps over ground obstacles for headless runs. It is a simple
// reach check, not a planner: closely packed obstacles can still beat it.
type Autopilot struct {
	// Lead is the gap between the player's leading edge and the next
	// obstacle at which a jump is started.
	Lead float64
}

// NewAutopilot returns an autopilot tuned for the given constants.
func NewAutopilot(cfg config.NeonConfig) Autopilot {
	return Autopilot{Lead: 15 * cfg.Physics.Speed}
}

// ShouldJump reports whether the player should jump before the next tick.
// Floating blocks are left alone: the player runs underneath them.
func (a Autopilot) ShouldJump(s Snapshot) bool {
	if s.State != StatePlaying || !s.Player.Grounded {
		return false
	}
	front := s.Player.X + s.Player.Width
	for _, o := range s.Obstacles {
		if o.Passed || o.Floating || o.Right() <= s.Player.X {
			continue
		}
		gap := o.X - front
		return gap > 0 && gap <= a.Lead
	}
	return false
}
