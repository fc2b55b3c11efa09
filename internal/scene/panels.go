package scene

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Line is one row of an overlay panel.
type Line struct {
	Text    string
	Focused bool // button under the cursor
	Accent  bool
}

// PanelLines returns the text of a panel for the controller's current state.
func PanelLines(p runner.Panel, c *runner.Controller) []Line {
	s := c.State()
	switch p {
	case runner.PanelHUD:
		return []Line{{Text: fmt.Sprintf("HI %05d  %05d", s.HighScore, s.Score)}}
	case runner.PanelCongrats:
		return []Line{{Text: "NEW HIGH SCORE!", Accent: true}}
	case runner.PanelMainMenu:
		return append([]Line{{Text: "R U N N E R", Accent: true}, {}}, buttonLines(c)...)
	case runner.PanelSettings:
		return append([]Line{{Text: "SETTINGS", Accent: true}, {}}, buttonLines(c)...)
	case runner.PanelPause:
		head := []Line{{Text: "PAUSED", Accent: true}, {Text: fmt.Sprintf("Score: %05d", s.PauseScore)}, {}}
		return append(head, buttonLines(c)...)
	case runner.PanelGameOver:
		head := []Line{
			{Text: "GAME OVER", Accent: true},
			{Text: fmt.Sprintf("Score: %05d", s.Score)},
			{Text: fmt.Sprintf("High score: %05d", s.HighScore)},
			{},
		}
		return append(head, buttonLines(c)...)
	default:
		return nil
	}
}

func buttonLines(c *runner.Controller) []Line {
	focused, _ := c.Focused()
	settings := c.Settings()

	var lines []Line
	for _, b := range c.Buttons() {
		text := b.Label()
		if f, ok := b.Field(); ok {
			text = fmt.Sprintf("%-14s < %4d >", text, settings.Get(f))
		}
		lines = append(lines, Line{Text: text, Focused: b == focused})
	}
	return lines
}

// DrawPanels draws every visible overlay on top of the rendered world.
func (st *Stage) DrawPanels(dst *core.Screen, c *runner.Controller) {
	for _, p := range runner.Panels {
		if !st.panels[p] {
			continue
		}
		lines := PanelLines(p, c)
		switch p {
		case runner.PanelHUD:
			text := lines[0].Text
			dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(text)-2, 0, text, core.ColorInk)
		case runner.PanelCongrats:
			dst.DrawTextCentered(2, lines[0].Text, core.ColorAccent)
		default:
			drawBox(dst, lines)
		}
	}
}

// drawBox draws lines in a bordered box centered on the screen.
func drawBox(dst *core.Screen, lines []Line) {
	inner := 0
	for _, l := range lines {
		inner = max(inner, utf8.RuneCountInString(l.Text))
	}
	boxW := inner + 6
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorMuted)

	for i, l := range lines {
		y := box.Y + 1 + i
		x := box.X + (boxW-utf8.RuneCountInString(l.Text))/2
		switch {
		case l.Focused:
			dst.SetColored(box.X+1, y, '>', core.ColorAccent)
			dst.DrawTextColored(x, y, l.Text, core.ColorAccent)
		case l.Accent:
			dst.DrawTextColored(x, y, l.Text, core.ColorAccent)
		default:
			dst.DrawTextColored(x, y, l.Text, core.ColorInk)
		}
	}
}
