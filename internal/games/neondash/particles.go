package neondash

import (
	"github.com/vovakirdan/neon-dash/internal/config"
	"github.com/vovakirdan/neon-dash/internal/core"
)

// burst appends an explosion of cfg.BurstCount particles at (x, y).
// Draws per particle: vx, vy, size.
func burst(ps []Particle, x, y float64, color core.Color, cfg config.Particles, rng Rand) []Particle {
	for i := 0; i < cfg.BurstCount; i++ {
		vx := (rng.Float64() - 0.5) * cfg.BurstSpeed
		vy := (rng.Float64() - 0.5) * cfg.BurstSpeed
		size := rng.Float64()*cfg.BurstSizeRange + cfg.BurstSizeMin
		ps = append(ps, Particle{
			X:     x,
			Y:     y,
			VX:    vx,
			VY:    vy,
			Life:  1,
			Color: color,
			Size:  size,
		})
	}
	return ps
}

// advanceParticles moves and ages every particle, dropping dead ones in place.
func advanceParticles(ps []Particle, decay float64) []Particle {
	alive := ps[:0]
	for _, p := range ps {
		p.X += p.VX
		p.Y += p.VY
		p.Life -= decay
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	return alive
}

// emitTrail adds one trail particle behind the player while it moves
// vertically, or at random while grounded when flicker is on.
func emitTrail(w *World, cfg config.Particles, rng Rand) bool {
	p := w.Player
	if p.VY == 0 && !(cfg.TrailFlicker && rng.Float64() > cfg.TrailFlickerThreshold) {
		return false
	}
	w.Particles = append(w.Particles, Particle{
		X:     p.X,
		Y:     p.Y + p.Height/2,
		VX:    -cfg.TrailSpeed,
		VY:    (rng.Float64() - 0.5) * cfg.TrailSpread,
		Life:  cfg.TrailLife,
		Color: core.ColorCyan,
		Size:  cfg.TrailSize,
	})
	return true
}
