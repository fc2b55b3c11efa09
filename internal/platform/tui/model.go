package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/scene"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// maxFrameDelta caps the time fed to one frame so a stalled terminal does
// not turn into a burst of spawns.
const maxFrameDelta = 100 * time.Millisecond

// Options configures a Model.
type Options struct {
	Config   config.RunnerConfig
	Runtime  core.RuntimeConfig
	Store    *storage.Store // nil disables run history
	Cues     *audio.Cues    // nil plays no sound
	Player   string         // name stored with each run
	Settings *runner.Settings
	Logger   *log.Logger
}

// Model is the Bubble Tea model for playing the runner.
type Model struct {
	session    *scene.Session
	screen     *core.Screen
	keys       KeyMap
	input      core.InputFrame // actions since the last tick
	help       help.Model
	store      *storage.Store
	cues       *audio.Cues
	runtime    core.RuntimeConfig
	logger     *log.Logger
	scoreboard *ScoreboardModel // non-nil while the run history is shown
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model with a fresh session in the main menu.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	ctrlOpts := []runner.Option{
		runner.WithSeed(opts.Runtime.Seed),
		runner.WithLogger(logger),
	}
	if opts.Settings != nil {
		ctrlOpts = append(ctrlOpts, runner.WithSettings(*opts.Settings))
	}
	if opts.Store != nil {
		store, player := opts.Store, opts.Player
		ctrlOpts = append(ctrlOpts, runner.OnRunEnd(func(r runner.RunResult) {
			if _, err := store.SaveRun(storage.RunFromResult(player, r)); err != nil {
				logger.Warn("could not save run", "error", err)
			}
		}))
	}

	var snd scene.Sounder
	if opts.Cues != nil {
		snd = opts.Cues
	}

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return Model{
		session: scene.NewSession(opts.Config, snd, ctrlOpts...),
		screen:  core.NewScreen(opts.Runtime.ScreenW, playHeight(opts.Runtime.ScreenH)),
		keys:    DefaultKeyMap(),
		input:   core.NewInputFrame(),
		help:    h,
		store:   opts.Store,
		cues:    opts.Cues,
		runtime: opts.Runtime,
		logger:  logger,
	}
}

// playHeight leaves the last row for the help footer.
func playHeight(h int) int {
	return max(h-1, 1)
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		m.session.Controller.Pause()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		updated, cmd := m.scoreboard.Update(msg)
		sb := updated.(ScoreboardModel)
		switch {
		case sb.IsQuitting():
			m.quitting = true
			return m, tea.Quit
		case sb.IsGoingBack():
			m.scoreboard = nil
		default:
			m.scoreboard = &sb
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Mute):
		if m.cues != nil {
			m.cues.SetMuted(!m.cues.Muted())
		}
		return m, nil

	case key.Matches(msg, m.keys.Scores):
		if m.session.Controller.Phase() == runner.PhaseMainMenu {
			sb := NewScoreboardModel(m.store, m.runtime.ScreenW, m.runtime.ScreenH)
			m.scoreboard = &sb
		}
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.input.Set(action)
	return m, nil
}

// handleResize processes window resize events. The world is scaled, so a
// resize never restarts the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width

	if m.scoreboard != nil {
		updated, _ := m.scoreboard.Update(msg)
		sb := updated.(ScoreboardModel)
		m.scoreboard = &sb
	}
	return m, nil
}

// handleTick applies the queued actions and advances the session by the
// wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, a := range m.input.Actions() {
		m.session.Controller.HandleAction(a)
	}
	m.input.Clear()

	dt := time.Second / time.Duration(m.runtime.TickRate)
	if !m.lastTick.IsZero() {
		dt = min(now.Sub(m.lastTick), maxFrameDelta)
	}
	m.lastTick = now

	m.session.Frame(float64(dt) / float64(time.Millisecond))

	return m, tickCmd(m.runtime.TickRate)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() (string, error) {
	m.session.Draw(m.screen)

	dir := filepath.Join(config.UserDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("runner_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// Controller exposes the session's controller.
func (m Model) Controller() *runner.Controller {
	return m.session.Controller
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.session.Draw(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local player.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithReportFocus(), // pause when the terminal loses focus
	)

	_, err := p.Run()
	return err
}
