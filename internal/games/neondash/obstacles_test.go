package neondash

import "testing"

func TestScoringIdempotence(t *testing.T) {
	w := World{Player: Player{X: 200}}
	w.Obstacles = []Obstacle{obstacleAt(175)}

	total := 0
	for i := 0; i < 20; i++ {
		total += advanceObstacles(&w, 7, 100)
	}

	if total != 1 {
		t.Errorf("obstacle scored %d times, expected once", total)
	}
	if w.Score != 100 {
		t.Errorf("score = %d, expected 100", w.Score)
	}
	if !w.Obstacles[0].Passed {
		t.Error("obstacle should be marked passed")
	}
}

func TestScoringEdge(t *testing.T) {
	w := World{Player: Player{X: 200}}

	// Trailing edge lands exactly on the player's X: not yet behind it.
	w.Obstacles = []Obstacle{obstacleAt(177)}
	if n := advanceObstacles(&w, 7, 100); n != 0 {
		t.Errorf("edge at player X scored %d", n)
	}
	if n := advanceObstacles(&w, 7, 100); n != 1 {
		t.Errorf("edge behind player X scored %d, expected 1", n)
	}
}

func TestCullBoundary(t *testing.T) {
	tests := []struct {
		name  string
		right float64
		kept  bool
	}{
		{"on screen", 50, true},
		{"just off screen", -50, true},
		{"exactly at margin", -100, true},
		{"past margin", -100.5, false},
		{"far past margin", -400, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := World{Obstacles: []Obstacle{obstacleAt(tc.right - 30)}}
			cullObstacles(&w, 100)
			if got := len(w.Obstacles) == 1; got != tc.kept {
				t.Errorf("right edge %g: kept = %v, expected %v", tc.right, got, tc.kept)
			}
		})
	}
}

func TestCullKeepsOrder(t *testing.T) {
	w := World{Obstacles: []Obstacle{
		{ID: 1, X: -300, Width: 30},
		{ID: 2, X: 10, Width: 30},
		{ID: 3, X: -200, Width: 30},
		{ID: 4, X: 500, Width: 30},
	}}
	cullObstacles(&w, 100)

	if len(w.Obstacles) != 2 || w.Obstacles[0].ID != 2 || w.Obstacles[1].ID != 4 {
		t.Errorf("unexpected survivors: %+v", w.Obstacles)
	}
}
