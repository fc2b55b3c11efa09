package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Button is a pressable item on one of the menu panels.
type Button int

const (
	ButtonPlay Button = iota
	ButtonSettings
	ButtonSpeed
	ButtonGravity
	ButtonObstacleInterval
	ButtonOK
	ButtonCancel
	ButtonResume
	ButtonBackToMenu
	ButtonRestart
)

// Label returns the text shown on the button.
func (b Button) Label() string {
	switch b {
	case ButtonPlay:
		return "PLAY"
	case ButtonSettings:
		return "SETTINGS"
	case ButtonSpeed:
		return "SPEED"
	case ButtonGravity:
		return "GRAVITY"
	case ButtonObstacleInterval:
		return "OBSTACLE (ms)"
	case ButtonOK:
		return "OK"
	case ButtonCancel:
		return "CANCEL"
	case ButtonResume:
		return "RESUME"
	case ButtonBackToMenu:
		return "BACK TO MENU"
	case ButtonRestart:
		return "RESTART"
	default:
		return "?"
	}
}

// Field returns the setting a value row edits.
func (b Button) Field() (Field, bool) {
	switch b {
	case ButtonSpeed:
		return FieldSpeed, true
	case ButtonGravity:
		return FieldGravity, true
	case ButtonObstacleInterval:
		return FieldObstacleInterval, true
	default:
		return 0, false
	}
}

var (
	mainMenuButtons = []Button{ButtonPlay, ButtonSettings}
	settingsButtons = []Button{ButtonSpeed, ButtonGravity, ButtonObstacleInterval, ButtonOK, ButtonCancel}
	pauseButtons    = []Button{ButtonResume, ButtonBackToMenu}
	gameOverButtons = []Button{ButtonRestart}
)

// Buttons returns the buttons of the panel visible in the current phase.
func (c *Controller) Buttons() []Button {
	switch c.state.Phase {
	case PhaseMainMenu:
		return mainMenuButtons
	case PhaseSettings:
		return settingsButtons
	case PhasePaused:
		return pauseButtons
	case PhaseGameOver:
		return gameOverButtons
	default:
		return nil
	}
}

// Focused returns the button under the cursor.
func (c *Controller) Focused() (Button, bool) {
	buttons := c.Buttons()
	if len(buttons) == 0 {
		return 0, false
	}
	return buttons[core.Clamp(c.cursor, 0, len(buttons)-1)], true
}

// Press activates a button. Buttons that are not on the current panel are ignored.
func (c *Controller) Press(b Button) {
	if !c.onPanel(b) {
		return
	}
	switch b {
	case ButtonPlay, ButtonRestart:
		c.StartGame()
	case ButtonSettings:
		c.OpenSettings()
	case ButtonOK:
		c.CommitSettings()
	case ButtonCancel:
		c.CancelSettings()
	case ButtonResume:
		c.Resume()
	case ButtonBackToMenu:
		c.BackToMenu()
	}
}

// HandleAction routes a keyboard action according to the current phase.
func (c *Controller) HandleAction(a core.Action) {
	if c.state.Phase == PhasePlaying {
		switch a {
		case core.ActionJump, core.ActionUp:
			c.Jump()
		case core.ActionEscape:
			c.Pause()
		}
		return
	}

	switch a {
	case core.ActionEscape:
		c.Escape()
	case core.ActionUp:
		c.moveCursor(-1)
	case core.ActionDown:
		c.moveCursor(1)
	case core.ActionLeft:
		c.adjustFocused(-1)
	case core.ActionRight:
		c.adjustFocused(1)
	case core.ActionConfirm:
		if b, ok := c.Focused(); ok {
			c.Press(b)
		}
	case core.ActionRestart:
		if c.state.Phase == PhaseGameOver {
			c.StartGame()
		}
	case core.ActionBack:
		switch c.state.Phase {
		case PhaseSettings:
			c.CancelSettings()
		case PhasePaused, PhaseGameOver:
			c.BackToMenu()
		}
	}
}

func (c *Controller) moveCursor(d int) {
	n := len(c.Buttons())
	if n == 0 {
		return
	}
	c.cursor = core.Clamp(c.cursor+d, 0, n-1)
}

func (c *Controller) adjustFocused(steps int) {
	b, ok := c.Focused()
	if !ok {
		return
	}
	if f, ok := b.Field(); ok {
		c.AdjustSetting(f, steps)
	}
}

func (c *Controller) onPanel(b Button) bool {
	for _, got := range c.Buttons() {
		if got == b {
			return true
		}
	}
	return false
}
