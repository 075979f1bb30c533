package neondash

import "testing"

func TestCollisionForgiveness(t *testing.T) {
	// Player inset box spans x 208..232, y 588..612.
	player := Player{X: 200, Y: 580, Width: 40, Height: 40}

	tests := []struct {
		name string
		x    float64
		hit  bool
	}{
		{"raw edges touch", 240, false},
		{"raw overlap only", 230, false},
		{"inset edges touch", 224, false},
		{"inset overlap by one", 223, true},
		{"deep overlap", 205, true},
		{"inset overlap on the far side", 186 - 1, false},
		{"far side by one", 186 + 1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := World{Player: player, Obstacles: []Obstacle{obstacleAt(tc.x)}}
			_, hit := collide(&w, 8)
			if hit != tc.hit {
				t.Errorf("obstacle at x=%g: hit = %v, expected %v", tc.x, hit, tc.hit)
			}
		})
	}
}

func TestCollisionFloatingBlock(t *testing.T) {
	w := World{
		Player:    Player{X: 200, Y: 580, Width: 40, Height: 40},
		Obstacles: []Obstacle{{Kind: KindBlock, Floating: true, X: 200, Y: 530, Width: 40, Height: 40}},
	}
	if _, hit := collide(&w, 8); hit {
		t.Error("grounded player should run under a floating block")
	}

	w.Player.Y = 540
	if _, hit := collide(&w, 8); !hit {
		t.Error("airborne player should hit a floating block")
	}
}

func TestCollisionFirstHitWins(t *testing.T) {
	w := World{
		Player: Player{X: 200, Y: 580, Width: 40, Height: 40},
		Obstacles: []Obstacle{
			obstacleAt(600),
			obstacleAt(210),
			obstacleAt(200),
		},
	}
	i, hit := collide(&w, 8)
	if !hit || i != 1 {
		t.Errorf("collide = (%d, %v), expected (1, true)", i, hit)
	}
}

func TestCollisionCollapsedHitbox(t *testing.T) {
	// A 16-high spike insets to zero height, centred inside the player's box.
	w := World{
		Player:    Player{X: 200, Y: 580, Width: 40, Height: 40},
		Obstacles: []Obstacle{{Kind: KindSpike, X: 205, Y: 592, Width: 30, Height: 16}},
	}
	if _, hit := collide(&w, 8); hit {
		t.Error("an obstacle whose hitbox collapsed to zero height should never hit")
	}
}
