package scene

import (
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Sprite is an axis-aligned box on the stage. Obstacles are static sprites
// moved by the controller; the player is a dynamic sprite with gravity.
type Sprite struct {
	box       core.Box
	vy        float64 // pixels per second, positive = down
	gravity   float64 // pixels per second squared
	dynamic   bool
	grounded  bool
	visible   bool
	enabled   bool
	destroyed bool
	pose      runner.Pose
	variant   int
}

// SetVisible shows or hides the sprite.
func (s *Sprite) SetVisible(v bool) { s.visible = v }

// SetEnabled turns physics and collisions on or off.
func (s *Sprite) SetEnabled(v bool) { s.enabled = v }

// Position returns the top-left corner.
func (s *Sprite) Position() (float64, float64) { return s.box.X, s.box.Y }

// SetPosition moves the top-left corner. The sprite counts as airborne
// until the next step finds it on the ground.
func (s *Sprite) SetPosition(x, y float64) {
	s.box.X, s.box.Y = x, y
	s.grounded = false
}

// Size returns the width and height.
func (s *Sprite) Size() (float64, float64) { return s.box.W, s.box.H }

// Destroy removes the sprite from the stage on the next step.
func (s *Sprite) Destroy() {
	s.destroyed = true
	s.visible = false
	s.enabled = false
}

// Grounded reports whether the last step left the sprite on the ground.
func (s *Sprite) Grounded() bool { return s.grounded }

// SetVelocityY sets the vertical speed, negative is up.
func (s *Sprite) SetVelocityY(vy float64) { s.vy = vy }

// SetGravity sets the downward acceleration.
func (s *Sprite) SetGravity(g float64) { s.gravity = g }

// SetPose selects the frame drawn for the sprite.
func (s *Sprite) SetPose(p runner.Pose) { s.pose = p }

// Box returns the sprite's bounds.
func (s *Sprite) Box() core.Box { return s.box }

// Visible reports whether the sprite is drawn.
func (s *Sprite) Visible() bool { return s.visible && !s.destroyed }

// Pose returns the current pose.
func (s *Sprite) Pose() runner.Pose { return s.pose }

// Variant returns the obstacle variant id, 0 for the player.
func (s *Sprite) Variant() int { return s.variant }

// integrate applies gravity for dt milliseconds and keeps the sprite between
// the top of the world and the ground.
func (s *Sprite) integrate(dt, groundY float64) {
	if !s.dynamic || !s.enabled {
		return
	}
	sec := dt / 1000
	s.vy += s.gravity * sec
	s.box.Y += s.vy * sec

	if s.box.Y < 0 {
		s.box.Y = 0
		if s.vy < 0 {
			s.vy = 0
		}
	}
	s.grounded = false
	if s.box.Bottom() >= groundY {
		s.box.Y = groundY - s.box.H
		if s.vy > 0 {
			s.vy = 0
		}
		s.grounded = true
	}
}
