package runner

import "github.com/vovakirdan/tui-runner/internal/config"

type fakeEntity struct {
	x, y, w, h float64
	visible    bool
	enabled    bool
	destroyed  bool
}

func (e *fakeEntity) SetVisible(v bool)            { e.visible = v }
func (e *fakeEntity) SetEnabled(v bool)            { e.enabled = v }
func (e *fakeEntity) Position() (float64, float64) { return e.x, e.y }
func (e *fakeEntity) SetPosition(x, y float64)     { e.x, e.y = x, y }
func (e *fakeEntity) Size() (float64, float64)     { return e.w, e.h }
func (e *fakeEntity) Destroy()                     { e.destroyed = true }

type fakeBody struct {
	fakeEntity
	grounded bool
	vy       float64
	gravity  float64
	pose     Pose
}

func (b *fakeBody) Grounded() bool          { return b.grounded }
func (b *fakeBody) SetVelocityY(vy float64) { b.vy = vy }
func (b *fakeBody) SetGravity(g float64)    { b.gravity = g }
func (b *fakeBody) SetPose(p Pose)          { b.pose = p }

type fakeStage struct {
	cfg         config.RunnerConfig
	player      *fakeBody
	spawned     []*fakeEntity
	variants    []int
	panels      map[Panel]bool
	background  string
	scenery     bool
	scrolled    float64
	clockPaused bool
	animPaused  bool
	sounds      []Cue
}

func newFakeStage(cfg config.RunnerConfig) *fakeStage {
	return &fakeStage{
		cfg:    cfg,
		player: &fakeBody{fakeEntity: fakeEntity{w: cfg.Player.Width, h: cfg.Player.Height}, grounded: true},
		panels: make(map[Panel]bool),
	}
}

func (s *fakeStage) Player() Body { return s.player }

func (s *fakeStage) SpawnObstacle(variant int, x, y float64) Entity {
	v := s.cfg.Obstacles.Variants[variant-1]
	e := &fakeEntity{x: x, y: y - v.Height, w: v.Width, h: v.Height, visible: true, enabled: true}
	s.spawned = append(s.spawned, e)
	s.variants = append(s.variants, variant)
	return e
}

func (s *fakeStage) SetSceneryVisible(v bool)   { s.scenery = v }
func (s *fakeStage) ScrollGround(dx float64)    { s.scrolled += dx }
func (s *fakeStage) SetBackground(color string) { s.background = color }
func (s *fakeStage) ShowPanel(p Panel, v bool)  { s.panels[p] = v }
func (s *fakeStage) PauseClock()                { s.clockPaused = true }
func (s *fakeStage) ResumeClock()               { s.clockPaused = false }
func (s *fakeStage) PauseAnimations()           { s.animPaused = true }
func (s *fakeStage) ResumeAnimations()          { s.animPaused = false }
func (s *fakeStage) PlaySound(c Cue)            { s.sounds = append(s.sounds, c) }

// visiblePanels returns the panels currently shown.
func (s *fakeStage) visiblePanels() []Panel {
	var out []Panel
	for _, p := range Panels {
		if s.panels[p] {
			out = append(out, p)
		}
	}
	return out
}
