// Package gui is the windowed frontend: an ebiten game that runs the same
// session as the terminal and draws it with filled rectangles.
package gui

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/scene"
)

// Options configures a Game.
type Options struct {
	Config     config.RunnerConfig
	Cues       *audio.Cues // nil plays no sound
	Controller []runner.Option
	Logger     *log.Logger
	Scale      float64 // window size relative to the world, default 1
}

// Game implements ebiten.Game.
type Game struct {
	session *scene.Session
	world   config.WorldConfig
	cues    *audio.Cues
	logger  *log.Logger
	input   core.InputFrame
	scale   float64
	focused bool
}

type keyBinding struct {
	key    ebiten.Key
	action core.Action
}

var keyBindings = []keyBinding{
	{ebiten.KeySpace, core.ActionJump},
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyEnter, core.ActionConfirm},
	{ebiten.KeyB, core.ActionBack},
	{ebiten.KeyBackspace, core.ActionBack},
	{ebiten.KeyEscape, core.ActionEscape},
	{ebiten.KeyP, core.ActionEscape},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyQ, core.ActionQuit},
}

// New creates a game in the main menu.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	var snd scene.Sounder
	if opts.Cues != nil {
		snd = opts.Cues
	}
	ctrlOpts := append([]runner.Option{runner.WithLogger(logger)}, opts.Controller...)

	return &Game{
		session: scene.NewSession(opts.Config, snd, ctrlOpts...),
		world:   opts.Config.World,
		cues:    opts.Cues,
		logger:  logger,
		input:   core.NewInputFrame(),
		scale:   opts.Scale,
		focused: true,
	}
}

// Controller exposes the session's controller.
func (g *Game) Controller() *runner.Controller {
	return g.session.Controller
}

// Update reads input and advances the session by one tick.
func (g *Game) Update() error {
	c := g.session.Controller

	g.input.Clear()
	for _, kb := range keyBindings {
		if inpututil.IsKeyJustPressed(kb.key) {
			g.input.Set(kb.action)
		}
	}
	if g.input.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	for _, a := range g.input.Actions() {
		c.HandleAction(a)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.cues != nil {
		g.cues.SetMuted(!g.cues.Muted())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.click(ebiten.CursorPosition())
	}

	focused := ebiten.IsFocused()
	if g.focused && !focused {
		c.Pause()
	}
	g.focused = focused

	g.session.Frame(1000 / float64(ebiten.TPS()))
	return nil
}

// click presses the button under the pointer. Anywhere else during a run
// it jumps.
func (g *Game) click(x, y int) {
	c := g.session.Controller
	if c.Phase() == runner.PhasePlaying {
		c.Jump()
		return
	}

	p, ok := g.menuPanel()
	if !ok {
		return
	}
	buttons := c.Buttons()
	w, h := g.Layout(0, 0)
	l := layoutPanel(scene.PanelLines(p, c), len(buttons), w, h)
	i, ok := l.buttonAt(x, y)
	if !ok {
		return
	}

	b := buttons[i]
	if f, isField := b.Field(); isField {
		steps := 1
		if x < l.rect.Min.X+l.rect.Dx()/2 {
			steps = -1
		}
		c.AdjustSetting(f, steps)
		return
	}
	c.Press(b)
}

// menuPanel returns the topmost visible panel that has buttons.
func (g *Game) menuPanel() (runner.Panel, bool) {
	for i := len(runner.Panels) - 1; i >= 0; i-- {
		p := runner.Panels[i]
		if p == runner.PanelHUD || p == runner.PanelCongrats {
			continue
		}
		if g.session.Stage.PanelVisible(p) {
			return p, true
		}
	}
	return 0, false
}

// Layout keeps the logical screen at world size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.world.Width), int(g.world.Height)
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(int(float64(w)*g.scale), int(float64(h)*g.scale))
	ebiten.SetWindowTitle("Runner")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(g)
}
