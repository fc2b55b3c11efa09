// Package core holds the engine-free building blocks shared by the runner and
// its frontends: a character screen buffer, world geometry, input actions and
// runtime configuration. Nothing here imports a UI toolkit.
package core

import "math"

// Rect is an integer cell rectangle on a Screen.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a cell rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned box in world units (pixels of the virtual stage).
// X/Y is the top-left corner; Y grows downwards.
type Box struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the trailing edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Overlaps reports whether two boxes share any area. Touching edges do not count.
func (b Box) Overlaps(o Box) bool {
	if b.X >= o.Right() || o.X >= b.Right() {
		return false
	}
	if b.Y >= o.Bottom() || o.Y >= b.Bottom() {
		return false
	}
	return true
}

// Inset shrinks the box by dx/dy on every side. Used for forgiving hitboxes.
func (b Box) Inset(dx, dy float64) Box {
	w := math.Max(0, b.W-2*dx)
	h := math.Max(0, b.H-2*dy)
	return Box{X: b.X + dx, Y: b.Y + dy, W: w, H: h}
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
