// Package scene is a minimal presentation layer for the runner: boxes with
// constant gravity, player vs obstacle overlap tests, a two-frame run
// animation and a character renderer. It implements runner.Stage.
package scene

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Run animation timing.
const (
	AnimFPS    = 10
	AnimFrames = 2
)

// cloudParallax is the fraction of the ground scroll applied to clouds.
const cloudParallax = 0.25

const cloudHeight = 20

// Sounder plays sound cues. audio.Cues implements it.
type Sounder interface {
	Play(c runner.Cue)
}

type cloud struct {
	x, y, w float64
}

// Stage holds everything drawn in the world and implements runner.Stage.
type Stage struct {
	world      config.WorldConfig
	variants   []config.VariantConfig
	inset      float64
	player     *Sprite
	obstacles  []*Sprite
	clouds     []cloud
	background string
	panels     map[runner.Panel]bool
	scenery    bool
	groundX    float64 // ground scroll offset in world units

	clockPaused bool
	animPaused  bool
	animTime    float64 // ms of running animation played

	sounder   Sounder
	onCollide func()
}

// NewStage creates a stage for the given config. snd may be nil for silence.
func NewStage(cfg config.RunnerConfig, snd Sounder) *Stage {
	st := &Stage{
		world:    cfg.World,
		variants: cfg.Obstacles.Variants,
		inset:    cfg.Player.HitboxInset,
		player: &Sprite{
			box:     core.Box{X: cfg.Player.X, Y: cfg.Player.Y - cfg.Player.Height, W: cfg.Player.Width, H: cfg.Player.Height},
			dynamic: true,
			pose:    runner.PoseIdle,
		},
		obstacles: make([]*Sprite, 0, 8),
		panels:    make(map[runner.Panel]bool),
		sounder:   snd,
	}
	w := cfg.World.Width
	st.clouds = []cloud{
		{x: w * 0.12, y: cfg.World.Height * 0.12, w: 60},
		{x: w * 0.48, y: cfg.World.Height * 0.25, w: 80},
		{x: w * 0.80, y: cfg.World.Height * 0.08, w: 50},
	}
	return st
}

// OnCollide registers the player vs obstacle callback.
func (st *Stage) OnCollide(fn func()) {
	st.onCollide = fn
}

// Player returns the player body.
func (st *Stage) Player() runner.Body {
	return st.player
}

// SpawnObstacle places an obstacle of the given variant with its bottom-left
// corner at (x, y).
func (st *Stage) SpawnObstacle(variant int, x, y float64) runner.Entity {
	v := st.variants[core.Clamp(variant, 1, len(st.variants))-1]
	s := &Sprite{
		box:     core.Box{X: x, Y: y - v.Height, W: v.Width, H: v.Height},
		visible: true,
		enabled: true,
		variant: variant,
	}
	st.obstacles = append(st.obstacles, s)
	return s
}

// SetSceneryVisible shows or hides the ground and clouds.
func (st *Stage) SetSceneryVisible(v bool) { st.scenery = v }

// SetBackground sets the background colour as "#RRGGBB".
func (st *Stage) SetBackground(c string) { st.background = c }

// PauseClock freezes physics.
func (st *Stage) PauseClock() { st.clockPaused = true }

// ResumeClock unfreezes physics.
func (st *Stage) ResumeClock() { st.clockPaused = false }

// PauseAnimations stops the run animation.
func (st *Stage) PauseAnimations() { st.animPaused = true }

// ResumeAnimations restarts the run animation.
func (st *Stage) ResumeAnimations() { st.animPaused = false }

// ScrollGround moves the ground and, slower, the clouds left by dx.
func (st *Stage) ScrollGround(dx float64) {
	st.groundX = math.Mod(st.groundX+dx, st.world.Width)
	for i := range st.clouds {
		c := &st.clouds[i]
		c.x -= dx * cloudParallax
		if c.x+c.w < 0 {
			c.x += st.world.Width + c.w
		}
	}
}

// ShowPanel shows or hides an overlay.
func (st *Stage) ShowPanel(p runner.Panel, visible bool) {
	st.panels[p] = visible
}

// PanelVisible reports whether an overlay is shown.
func (st *Stage) PanelVisible(p runner.Panel) bool {
	return st.panels[p]
}

// PlaySound forwards a cue to the sounder.
func (st *Stage) PlaySound(c runner.Cue) {
	if st.sounder != nil {
		st.sounder.Play(c)
	}
}

// Background returns the current background colour.
func (st *Stage) Background() string {
	return st.background
}

// ClockPaused reports whether physics is frozen.
func (st *Stage) ClockPaused() bool {
	return st.clockPaused
}

// AnimFrame returns the current run animation frame.
func (st *Stage) AnimFrame() int {
	return int(st.animTime*AnimFPS/1000) % AnimFrames
}

// PlayerSprite returns the player for drawing.
func (st *Stage) PlayerSprite() *Sprite {
	return st.player
}

// World returns the world geometry.
func (st *Stage) World() config.WorldConfig {
	return st.world
}

// SceneryVisible reports whether the ground and clouds are shown.
func (st *Stage) SceneryVisible() bool {
	return st.scenery
}

// GroundOffset is how far the ground has scrolled, in world units.
func (st *Stage) GroundOffset() float64 {
	return st.groundX
}

// Clouds returns the cloud outlines in world units.
func (st *Stage) Clouds() []core.Box {
	boxes := make([]core.Box, len(st.clouds))
	for i, c := range st.clouds {
		boxes[i] = core.Box{X: c.x, Y: c.y, W: c.w, H: cloudHeight}
	}
	return boxes
}

// Obstacles returns the obstacles still on the stage.
func (st *Stage) Obstacles() []*Sprite {
	return st.obstacles
}

// Step advances physics by dt milliseconds and reports a collision between
// the player and any obstacle. Nothing moves while the clock is paused.
func (st *Stage) Step(dt float64) {
	st.prune()
	if st.clockPaused {
		return
	}
	if !st.animPaused {
		st.animTime += dt
	}

	st.player.integrate(dt, st.world.GroundY)

	if !st.player.enabled || st.onCollide == nil {
		return
	}
	hit := st.player.box.Inset(st.inset, st.inset)
	for _, o := range st.obstacles {
		if o.enabled && hit.Overlaps(o.box) {
			st.onCollide()
			return
		}
	}
}

// prune drops destroyed obstacles.
func (st *Stage) prune() {
	live := st.obstacles[:0]
	for _, o := range st.obstacles {
		if !o.destroyed {
			live = append(live, o)
		}
	}
	for i := len(live); i < len(st.obstacles); i++ {
		st.obstacles[i] = nil
	}
	st.obstacles = live
}
