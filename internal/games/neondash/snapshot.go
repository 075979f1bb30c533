package neondash

// Snapshot is a read-only copy of the world handed to renderers and hosts.
// Its slices are owned by the snapshot and never alias the live world.
type Snapshot struct {
	State     RunState
	Player    Player
	Obstacles []Obstacle
	Particles []Particle
	Score     int
	Frame     int
	Muted     bool

	BackgroundOffset float64
	GroundOffset     float64
}

// Snapshot copies the current world.
func (g *Game) Snapshot() Snapshot {
	w := &g.world
	return Snapshot{
		State:            g.state,
		Player:           w.Player,
		Obstacles:        append([]Obstacle(nil), w.Obstacles...),
		Particles:        append([]Particle(nil), w.Particles...),
		Score:            w.Score,
		Frame:            w.Frame,
		Muted:            g.muted,
		BackgroundOffset: w.BackgroundOffset,
		GroundOffset:     w.GroundOffset,
	}
}

// NextObstacle returns the closest obstacle the player has not yet passed.
func (s Snapshot) NextObstacle() (Obstacle, bool) {
	for _, o := range s.Obstacles {
		if !o.Passed {
			return o, true
		}
	}
	return Obstacle{}, false
}
