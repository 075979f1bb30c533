// Package core provides fundamental types and utilities shared by the game and
// the platform layer. It has no external dependencies (especially no Bubble Tea)
// so game logic stays pure and testable.
package core

import "math"

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned bounding box in world units.
// Y grows downwards, matching screen space.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewBox creates a box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the centre point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Inset shrinks the box by d on every side.
// A box thinner than 2*d collapses to zero size around its centre.
func (b Box) Inset(d float64) Box {
	w := b.W - 2*d
	h := b.H - 2*d
	cx, cy := b.Center()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Box{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Intersects reports whether the two boxes overlap with positive area.
// Touching edges and zero-size boxes do not count as overlap.
func (b Box) Intersects(other Box) bool {
	if b.W <= 0 || b.H <= 0 || other.W <= 0 || other.H <= 0 {
		return false
	}
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Wrap returns v modulo period, always in [0, period).
func Wrap(v, period float64) float64 {
	if period <= 0 {
		return 0
	}
	m := math.Mod(v, period)
	if m < 0 {
		m += period
	}
	return m
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
