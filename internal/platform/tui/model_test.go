package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	return NewModel(Options{
		Config:  config.DefaultRunnerConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 3},
		Store:   store,
		Player:  "tester",
	})
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func enter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }

// press sends a key and the tick that applies it.
func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	m, _ = send(t, m, msg)
	m, _ = send(t, m, TickMsg(time.Time{}))
	return m
}

func TestModelStartsInMainMenu(t *testing.T) {
	m := newTestModel(t, nil)

	assert.Equal(t, runner.PhaseMainMenu, m.Controller().Phase())
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "R U N N E R")
}

func TestModelEnterStartsRun(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(t, m, enter())
	assert.Equal(t, runner.PhaseMainMenu, m.Controller().Phase(), "applied on the next tick")

	m, _ = send(t, m, TickMsg(time.Time{}))
	assert.Equal(t, runner.PhasePlaying, m.Controller().Phase())
}

func TestModelTickAdvancesRun(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, enter())

	start := time.Unix(1000, 0)
	var cmd tea.Cmd
	for i := 0; i < 99; i++ {
		m, cmd = send(t, m, TickMsg(start.Add(time.Duration(i)*16*time.Millisecond)))
		assert.NotNil(t, cmd, "tick must be rescheduled")
	}

	st := m.Controller().State()
	assert.Equal(t, 100, st.Frames)
	assert.Equal(t, 100, st.Score)
}

func TestModelTickDeltaIsCapped(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, enter())

	start := time.Unix(1000, 0)
	m, _ = send(t, m, TickMsg(start))
	m, _ = send(t, m, TickMsg(start.Add(5*time.Second)))

	want := 2*1000.0/60 + float64(maxFrameDelta/time.Millisecond)
	assert.InDelta(t, want, m.Controller().State().Elapsed, 0.01)
}

func TestModelBlurPauses(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, enter())

	m, _ = send(t, m, tea.BlurMsg{})
	assert.Equal(t, runner.PhasePaused, m.Controller().Phase())

	// Blur in the menu is a no-op
	m2 := newTestModel(t, nil)
	m2, _ = send(t, m2, tea.BlurMsg{})
	assert.Equal(t, runner.PhaseMainMenu, m2.Controller().Phase())
}

func TestModelEscapeTogglesPause(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, enter())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, runner.PhasePaused, m.Controller().Phase())
	assert.Contains(t, m.View(), "Score: 00000")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, runner.PhasePlaying, m.Controller().Phase())
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := send(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestModelScoreboardOnlyFromMainMenu(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, m.scoreboard)
	assert.Equal(t, runner.PhaseMainMenu, m.Controller().Phase())

	// Enter is not forwarded to the controller while the scoreboard is open
	m = press(t, m, enter())
	assert.Equal(t, runner.PhaseMainMenu, m.Controller().Phase())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.scoreboard)

	m = press(t, m, enter())
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Nil(t, m.scoreboard)
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, enter())

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 29, m.screen.Height())
	assert.Equal(t, runner.PhasePlaying, m.Controller().Phase(), "resize keeps the run")
}

func TestModelSavesRunOnGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer store.Close()

	m := newTestModel(t, store)
	m = press(t, m, enter())

	start := time.Unix(1000, 0)
	for i := 0; i < 2000 && m.Controller().Phase() == runner.PhasePlaying; i++ {
		m, _ = send(t, m, TickMsg(start.Add(time.Duration(i)*16*time.Millisecond)))
	}
	require.Equal(t, runner.PhaseGameOver, m.Controller().Phase())

	runs, err := store.TopRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "tester", runs[0].Player)
	assert.Equal(t, m.Controller().State().Score, runs[0].Score)

	// The game over view shows the final score
	assert.True(t, strings.Contains(m.View(), "High score"))
}

func TestModelScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	m := newTestModel(t, nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(filepath.Join(home, ".runner", "screenshots"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(home, ".runner", "screenshots", entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "R U N N E R")
	assert.Equal(t, runner.PhaseMainMenu, m.Controller().Phase())
}
