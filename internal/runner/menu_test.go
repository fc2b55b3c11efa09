package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestButtonsPerPhase(t *testing.T) {
	c, _ := newTestController(t)

	assert.Equal(t, []Button{ButtonPlay, ButtonSettings}, c.Buttons())

	c.OpenSettings()
	assert.Equal(t, []Button{ButtonSpeed, ButtonGravity, ButtonObstacleInterval, ButtonOK, ButtonCancel}, c.Buttons())
	c.CommitSettings()

	c.StartGame()
	assert.Empty(t, c.Buttons())
	_, ok := c.Focused()
	assert.False(t, ok)

	c.Pause()
	assert.Equal(t, []Button{ButtonResume, ButtonBackToMenu}, c.Buttons())
	c.Resume()

	c.OnCollision()
	assert.Equal(t, []Button{ButtonRestart}, c.Buttons())
}

func TestHandleActionMainMenu(t *testing.T) {
	c, _ := newTestController(t)

	b, ok := c.Focused()
	require.True(t, ok)
	assert.Equal(t, ButtonPlay, b)

	c.HandleAction(core.ActionUp)
	b, _ = c.Focused()
	assert.Equal(t, ButtonPlay, b, "cursor clamps at the top")

	c.HandleAction(core.ActionDown)
	c.HandleAction(core.ActionDown)
	b, _ = c.Focused()
	assert.Equal(t, ButtonSettings, b, "cursor clamps at the bottom")

	c.HandleAction(core.ActionConfirm)
	assert.Equal(t, PhaseSettings, c.Phase())
	b, _ = c.Focused()
	assert.Equal(t, ButtonSpeed, b, "cursor resets on phase change")
}

func TestHandleActionSettingsEditing(t *testing.T) {
	c, _ := newTestController(t)
	c.OpenSettings()

	c.HandleAction(core.ActionRight)
	c.HandleAction(core.ActionRight)
	c.HandleAction(core.ActionDown)
	c.HandleAction(core.ActionLeft)
	c.HandleAction(core.ActionDown)
	c.HandleAction(core.ActionLeft)
	assert.Equal(t, Settings{Speed: 7, Gravity: 950, ObstacleInterval: 900}, c.Settings())

	// Left/Right on OK does nothing
	c.HandleAction(core.ActionDown)
	c.HandleAction(core.ActionRight)
	assert.Equal(t, Settings{Speed: 7, Gravity: 950, ObstacleInterval: 900}, c.Settings())

	c.HandleAction(core.ActionConfirm)
	assert.Equal(t, PhaseMainMenu, c.Phase())
	assert.Equal(t, 7, c.Settings().Speed)
}

func TestHandleActionSettingsBackCancels(t *testing.T) {
	c, _ := newTestController(t)
	c.OpenSettings()
	c.HandleAction(core.ActionRight)

	c.HandleAction(core.ActionEscape)
	assert.Equal(t, PhaseSettings, c.Phase(), "escape is ignored in menus")

	c.HandleAction(core.ActionBack)
	assert.Equal(t, PhaseMainMenu, c.Phase())
	assert.Equal(t, 5, c.Settings().Speed)
}

func TestHandleActionPlaying(t *testing.T) {
	c, stage := newTestController(t)
	c.HandleAction(core.ActionConfirm)
	require.Equal(t, PhasePlaying, c.Phase())

	c.HandleAction(core.ActionJump)
	assert.Equal(t, []Cue{CueJump}, stage.sounds)

	// Menu actions do nothing during a run
	c.HandleAction(core.ActionDown)
	c.HandleAction(core.ActionConfirm)
	c.HandleAction(core.ActionRestart)
	c.HandleAction(core.ActionBack)
	assert.Equal(t, PhasePlaying, c.Phase())

	c.HandleAction(core.ActionEscape)
	assert.Equal(t, PhasePaused, c.Phase())
}

func TestHandleActionPauseMenu(t *testing.T) {
	c, _ := newTestController(t)
	c.StartGame()
	c.HandleAction(core.ActionEscape)

	c.HandleAction(core.ActionConfirm)
	assert.Equal(t, PhasePlaying, c.Phase(), "resume is focused first")

	c.HandleAction(core.ActionEscape)
	c.HandleAction(core.ActionDown)
	c.HandleAction(core.ActionConfirm)
	assert.Equal(t, PhaseMainMenu, c.Phase())

	c.StartGame()
	c.Pause()
	c.HandleAction(core.ActionBack)
	assert.Equal(t, PhaseMainMenu, c.Phase())
}

func TestHandleActionGameOver(t *testing.T) {
	c, _ := newTestController(t)
	c.StartGame()
	runFrames(c, 200)
	c.OnCollision()

	c.HandleAction(core.ActionRestart)
	assert.Equal(t, PhasePlaying, c.Phase())
	assert.Zero(t, c.State().Score)

	c.OnCollision()
	c.HandleAction(core.ActionConfirm)
	assert.Equal(t, PhasePlaying, c.Phase())

	c.OnCollision()
	c.HandleAction(core.ActionBack)
	assert.Equal(t, PhaseMainMenu, c.Phase())

	c.HandleAction(core.ActionRestart)
	assert.Equal(t, PhaseMainMenu, c.Phase(), "restart only applies after a game over")
}

func TestPressIgnoresButtonsOffPanel(t *testing.T) {
	c, _ := newTestController(t)

	c.Press(ButtonResume)
	c.Press(ButtonOK)
	c.Press(ButtonRestart)
	assert.Equal(t, PhaseMainMenu, c.Phase())

	c.Press(ButtonSettings)
	assert.Equal(t, PhaseSettings, c.Phase())
	c.Press(ButtonPlay)
	assert.Equal(t, PhaseSettings, c.Phase())
	c.Press(ButtonCancel)
	assert.Equal(t, PhaseMainMenu, c.Phase())

	c.Press(ButtonPlay)
	assert.Equal(t, PhasePlaying, c.Phase())
}

func TestButtonLabelsAndFields(t *testing.T) {
	for _, b := range []Button{ButtonPlay, ButtonSettings, ButtonSpeed, ButtonGravity, ButtonObstacleInterval, ButtonOK, ButtonCancel, ButtonResume, ButtonBackToMenu, ButtonRestart} {
		assert.NotEqual(t, "?", b.Label())
	}

	f, ok := ButtonGravity.Field()
	assert.True(t, ok)
	assert.Equal(t, FieldGravity, f)

	_, ok = ButtonOK.Field()
	assert.False(t, ok)
}
