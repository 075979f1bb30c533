package neondash

import (
	"math"

	"github.com/vovakirdan/neon-dash/internal/config"
)

const rightAngle = math.Pi / 2

// integrate advances the player by one tick: gravity, velocity, rotation
// easing, then a single ground clamp.
func integrate(p *Player, phys config.Physics, ground float64) {
	p.VY += phys.Gravity
	p.Y += p.VY

	if !p.Grounded {
		p.Rotation += phys.SpinRate
	} else {
		snap := math.Round(p.Rotation/rightAngle) * rightAngle
		p.Rotation = p.Rotation*phys.SnapBlend + snap*(1-phys.SnapBlend)
	}

	if p.Y >= ground {
		p.Y = ground
		p.VY = 0
		p.Grounded = true
	}
}

// jump launches a grounded player. Reports whether the jump happened.
func jump(p *Player, impulse float64) bool {
	if !p.Grounded {
		return false
	}
	p.VY = impulse
	p.Grounded = false
	return true
}
