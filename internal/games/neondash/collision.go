package neondash

// collide returns the index of the first obstacle, in list order, whose
// inset box overlaps the player's inset box.
func collide(w *World, inset float64) (int, bool) {
	player := w.Player.Box().Inset(inset)
	for i, o := range w.Obstacles {
		if player.Intersects(o.Box().Inset(inset)) {
			return i, true
		}
	}
	return -1, false
}
