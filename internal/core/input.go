package core

// Action is a semantic input, abstracted from physical keys so the runner
// never sees a key code.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, w, k - move menu cursor up, jump while running
	ActionDown           // Down arrow, s, j - move menu cursor down
	ActionLeft           // Left arrow, a, h - decrease focused setting
	ActionRight          // Right arrow, d, l - increase focused setting
	ActionJump           // Space - jump while running
	ActionConfirm        // Enter - press the focused button
	ActionBack           // B, Backspace - cancel settings, leave pause to main menu
	ActionEscape         // Esc, P - pause/resume toggle
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionEscape:
		return "Escape"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two frames, in order.
// Every key press is an edge, so a held key does not repeat a jump unless
// the terminal sends another press.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{actions: make([]Action, 0, 4)}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the recorded actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Clear resets the frame for reuse.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
