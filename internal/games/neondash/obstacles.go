package neondash

// advanceObstacles scrolls every obstacle left and scores the ones whose
// trailing edge moved behind the player. Passed obstacles never score again.
// Returns the number of obstacles scored this tick.
func advanceObstacles(w *World, speed float64, increment int) int {
	scored := 0
	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		o.X -= speed
		if !o.Passed && o.Right() < w.Player.X {
			o.Passed = true
			w.Score += increment
			scored++
		}
	}
	return scored
}

// cullObstacles drops obstacles whose trailing edge is more than margin
// behind the left viewport edge.
func cullObstacles(w *World, margin float64) {
	kept := w.Obstacles[:0]
	for _, o := range w.Obstacles {
		if o.Right() >= -margin {
			kept = append(kept, o)
		}
	}
	// Zero the tail so dropped obstacles do not linger in the backing array.
	for i := len(kept); i < len(w.Obstacles); i++ {
		w.Obstacles[i] = Obstacle{}
	}
	w.Obstacles = kept
}
