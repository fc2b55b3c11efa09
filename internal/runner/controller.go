// Package runner implements the run controller of the side-scrolling runner:
// the menu/settings/play/pause/game-over state machine, score and high score
// bookkeeping, obstacle spawn timing and background colour cycling.
//
// The controller never draws, simulates physics or detects collisions. It
// drives a Stage through show/hide and enable/disable calls, receives one
// Update per rendered frame and is told about collisions via OnCollision.
// All methods must be called from the frame loop goroutine.
package runner

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Controller owns RunState and the current Settings.
type Controller struct {
	cfg        config.RunnerConfig
	limits     Limits
	settings   Settings // edited in place by the settings menu
	backup     Settings // snapshot taken when the settings menu opens
	applied    Settings // settings the current run started with
	state      RunState
	stage      Stage
	player     Body
	obstacles  *obstacleSet
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	cursor     int
	logger     *log.Logger
	onRunEnd   []func(RunResult)
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for transition tracing.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSeed seeds the obstacle variant RNG. 0 means time based.
func WithSeed(seed int64) Option {
	return func(c *Controller) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSettings starts the session with the given settings instead of the
// configured defaults. Values are clamped.
func WithSettings(s Settings) Option {
	return func(c *Controller) {
		c.settings = s.Clamp(c.limits)
	}
}

// OnRunEnd registers a callback invoked once per game over.
func OnRunEnd(fn func(RunResult)) Option {
	return func(c *Controller) {
		c.onRunEnd = append(c.onRunEnd, fn)
	}
}

// New creates a controller in the main menu phase and puts the stage into
// its menu layout.
func New(cfg config.RunnerConfig, stage Stage, opts ...Option) *Controller {
	limits := LimitsFromConfig(cfg.Settings)
	c := &Controller{
		cfg:        cfg,
		limits:     limits,
		settings:   limits.Defaults(),
		stage:      stage,
		player:     stage.Player(),
		obstacles:  newObstacleSet(),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	c.stage.SetBackground(c.cfg.Background.Palette[0])
	c.showMainMenu()
	return c
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.state.Phase
}

// IsRunning reports whether the simulation is advancing.
func (c *Controller) IsRunning() bool {
	return c.state.Phase == PhasePlaying
}

// State returns a copy of the run state.
func (c *Controller) State() RunState {
	s := c.state
	s.Obstacles = c.obstacles.len()
	return s
}

// Settings returns the current (possibly mid-edit) settings.
func (c *Controller) Settings() Settings {
	return c.settings
}

// Limits returns the clamp ranges of the settings.
func (c *Controller) Limits() Limits {
	return c.limits
}

// Obstacles returns the live obstacles in no particular order.
func (c *Controller) Obstacles() []Obstacle {
	return c.obstacles.snapshot()
}

// Background returns the current background colour.
func (c *Controller) Background() string {
	return c.cfg.Background.Palette[c.state.BackgroundIndex]
}

// OpenSettings moves from the main menu to the settings menu, remembering the
// current settings so Cancel can restore them.
func (c *Controller) OpenSettings() {
	if c.state.Phase != PhaseMainMenu {
		return
	}
	c.backup = c.settings
	c.stage.ShowPanel(PanelMainMenu, false)
	c.stage.ShowPanel(PanelSettings, true)
	c.stage.ShowPanel(PanelPause, false)
	c.setPhase(PhaseSettings)
}

// AdjustSetting changes a field by steps while the settings menu is open.
func (c *Controller) AdjustSetting(f Field, steps int) {
	if c.state.Phase != PhaseSettings {
		return
	}
	c.settings.Adjust(f, steps, c.limits)
	c.logger.Debug("setting changed", "field", f, "value", c.settings.Get(f))
}

// CommitSettings keeps the edits (they are already applied) and returns to
// the main menu.
func (c *Controller) CommitSettings() {
	if c.state.Phase != PhaseSettings {
		return
	}
	c.showMainMenu()
}

// CancelSettings restores the snapshot taken by OpenSettings and returns to
// the main menu.
func (c *Controller) CancelSettings() {
	if c.state.Phase != PhaseSettings {
		return
	}
	c.settings = c.backup
	c.showMainMenu()
}

// StartGame begins a fresh run. Valid from the main menu, after a game over
// and from the pause menu; ignored while playing or editing settings.
func (c *Controller) StartGame() {
	switch c.state.Phase {
	case PhaseMainMenu, PhaseGameOver, PhasePaused:
	default:
		return
	}

	c.stage.ShowPanel(PanelMainMenu, false)
	c.stage.ShowPanel(PanelSettings, false)
	c.stage.ShowPanel(PanelPause, false)
	c.stage.ShowPanel(PanelGameOver, false)
	c.stage.ShowPanel(PanelCongrats, false)
	c.stage.ShowPanel(PanelHUD, true)

	c.applied = c.settings
	c.player.SetGravity(float64(c.applied.Gravity))
	c.player.SetVelocityY(0)
	c.player.SetPosition(c.cfg.Player.X, c.cfg.Player.Y-c.cfg.Player.Height)
	c.player.SetPose(PoseRunning)
	c.player.SetVisible(true)
	c.player.SetEnabled(true)
	c.stage.SetSceneryVisible(true)

	high := c.state.HighScore
	c.state = RunState{
		HighScore: high,
		Speed:     float64(c.applied.Speed),
		Interval:  c.applied.ObstacleInterval,
	}
	c.stage.SetBackground(c.cfg.Background.Palette[0])
	c.obstacles.clear()

	c.stage.ResumeAnimations()
	c.stage.ResumeClock()
	c.setPhase(PhasePlaying)
}

// Pause freezes a running simulation and shows the pause menu.
func (c *Controller) Pause() {
	if c.state.Phase != PhasePlaying {
		return
	}
	c.stage.PauseClock()
	c.stage.PauseAnimations()
	c.state.PauseScore = c.state.Score
	c.stage.ShowPanel(PanelPause, true)
	c.setPhase(PhasePaused)
}

// Resume unfreezes a paused run.
func (c *Controller) Resume() {
	if c.state.Phase != PhasePaused {
		return
	}
	c.stage.ShowPanel(PanelPause, false)
	c.stage.ResumeAnimations()
	c.stage.ResumeClock()
	c.setPhase(PhasePlaying)
}

// Escape is the pause key: ignored in menus, toggles pause otherwise.
func (c *Controller) Escape() {
	switch c.state.Phase {
	case PhasePaused:
		c.Resume()
	case PhasePlaying:
		c.Pause()
	}
}

// BackToMenu discards the current run and shows the main menu. Valid while
// paused or after a game over.
func (c *Controller) BackToMenu() {
	if c.state.Phase != PhasePaused && c.state.Phase != PhaseGameOver {
		return
	}
	c.stage.ResumeClock()
	c.obstacles.clear()
	c.showMainMenu()
}

// Jump launches the player if it is standing on the ground.
func (c *Controller) Jump() {
	if c.state.Phase != PhasePlaying || !c.player.Grounded() {
		return
	}
	c.player.SetVelocityY(c.cfg.Player.JumpVelocity)
	c.stage.PlaySound(CueJump)
}

// OnCollision is the stage's collision callback for player vs obstacle.
func (c *Controller) OnCollision() {
	c.GameOver()
}

// GameOver ends a running run: records the high score, freezes the
// simulation and shows the game over panel.
func (c *Controller) GameOver() {
	if c.state.Phase != PhasePlaying {
		return
	}

	if c.state.Score > c.state.HighScore {
		c.state.HighScore = c.state.Score
		c.state.NewHighScore = true
		c.stage.ShowPanel(PanelCongrats, true)
	}

	c.stage.PauseClock()
	c.state.SpawnTimer = 0
	c.stage.PauseAnimations()
	c.player.SetPose(PoseHurt)
	c.stage.PlaySound(CueHit)
	c.stage.ShowPanel(PanelGameOver, true)
	c.setPhase(PhaseGameOver)

	result := RunResult{
		Score:        c.state.Score,
		HighScore:    c.state.HighScore,
		NewHighScore: c.state.NewHighScore,
		Frames:       c.state.Frames,
		Elapsed:      c.state.Elapsed,
		Settings:     c.applied,
	}
	c.logger.Info("run ended", "score", result.Score, "high", result.HighScore, "frames", result.Frames)
	for _, fn := range c.onRunEnd {
		fn(result)
	}
}

// Update advances the run by one frame. delta is the elapsed time since the
// previous frame in milliseconds. Does nothing unless playing.
func (c *Controller) Update(delta float64) {
	if c.state.Phase != PhasePlaying {
		return
	}
	c.state.Frames++
	c.state.Elapsed += delta

	c.state.Speed = c.difficulty.Speed(c.applied.Speed, c.state.Score, c.state.Frames)
	c.state.Interval = c.difficulty.Interval(c.applied.ObstacleInterval, c.limits.ObstacleInterval.Min, c.state.Score, c.state.Frames)

	c.stage.ScrollGround(c.state.Speed)

	c.state.SpawnTimer += delta
	if c.state.SpawnTimer > float64(c.state.Interval) {
		c.spawnObstacle()
		c.state.SpawnTimer -= float64(c.state.Interval)
	}

	c.obstacles.advance(c.state.Speed)

	c.state.FrameCounter++
	if c.state.FrameCounter >= c.cfg.Scoring.FramesPerTick {
		c.state.FrameCounter -= c.cfg.Scoring.FramesPerTick
		c.addScore(c.cfg.Scoring.PointsPerTick)
	}

	if c.player.Grounded() {
		c.player.SetPose(PoseRunning)
	} else {
		c.player.SetPose(PoseAirborne)
	}
}

// spawnObstacle creates one obstacle with a uniformly random variant at the
// spawn point.
func (c *Controller) spawnObstacle() {
	variant := c.rng.Intn(len(c.cfg.Obstacles.Variants)) + 1
	e := c.stage.SpawnObstacle(variant, c.cfg.Obstacles.SpawnX, c.cfg.Obstacles.SpawnY)
	o := c.obstacles.add(variant, e)
	c.logger.Debug("obstacle spawned", "id", o.ID, "variant", variant)
}

// addScore adds points and advances the background once for every new
// multiple of BackgroundEvery reached.
func (c *Controller) addScore(points int) {
	c.state.Score += points

	every := c.cfg.Scoring.BackgroundEvery
	changed := false
	for next := c.state.LastBgChangeScore + every; next <= c.state.Score; next += every {
		c.state.BackgroundIndex = (c.state.BackgroundIndex + 1) % len(c.cfg.Background.Palette)
		c.state.LastBgChangeScore = next
		changed = true
	}
	if changed {
		c.stage.SetBackground(c.Background())
		c.logger.Debug("background changed", "index", c.state.BackgroundIndex, "score", c.state.Score)
	}
}

// showMainMenu puts the stage into the menu layout: only the main menu is
// visible, the run's entities are hidden and disabled.
func (c *Controller) showMainMenu() {
	c.stage.ShowPanel(PanelMainMenu, true)
	c.stage.ShowPanel(PanelSettings, false)
	c.stage.ShowPanel(PanelPause, false)
	c.stage.ShowPanel(PanelGameOver, false)
	c.stage.ShowPanel(PanelHUD, false)
	c.stage.ShowPanel(PanelCongrats, false)

	c.player.SetVisible(false)
	c.player.SetEnabled(false)
	c.stage.SetSceneryVisible(false)

	c.obstacles.clear()
	c.stage.ResumeClock()
	c.setPhase(PhaseMainMenu)
}

func (c *Controller) setPhase(p Phase) {
	if c.state.Phase != p {
		c.logger.Debug("phase", "from", c.state.Phase, "to", p)
	}
	c.state.Phase = p
	c.cursor = 0
}
