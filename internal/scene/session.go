package scene

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Session is one player's runner: a stage and the controller driving it.
type Session struct {
	Stage      *Stage
	Controller *runner.Controller
}

// NewSession wires a stage and a controller together, including the
// collision callback.
func NewSession(cfg config.RunnerConfig, snd Sounder, opts ...runner.Option) *Session {
	st := NewStage(cfg, snd)
	c := runner.New(cfg, st, opts...)
	st.OnCollide(c.OnCollision)
	return &Session{Stage: st, Controller: c}
}

// Frame runs physics and then the controller for dt milliseconds.
func (s *Session) Frame(dt float64) {
	s.Stage.Step(dt)
	s.Controller.Update(dt)
}

// Draw renders the world and its overlays.
func (s *Session) Draw(dst *core.Screen) {
	s.Stage.Render(dst)
	s.Stage.DrawPanels(dst, s.Controller)
}
