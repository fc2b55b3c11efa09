package gui

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/scene"
)

// Debug font metrics.
const (
	charW = 6
	lineH = 16
)

const (
	panelPad   = 14
	legH       = 16
	groundMark = 40
)

var palette = map[core.Color]color.RGBA{
	core.ColorDefault: {0x30, 0x30, 0x30, 0xff},
	core.ColorInk:     {0x53, 0x53, 0x53, 0xff},
	core.ColorGround:  {0x87, 0x5f, 0x00, 0xff},
	core.ColorCactus:  {0x00, 0x87, 0x00, 0xff},
	core.ColorCloud:   {0xff, 0xff, 0xff, 0xff},
	core.ColorHurt:    {0xd7, 0x00, 0x00, 0xff},
	core.ColorAccent:  {0x5f, 0x00, 0xff, 0xff},
	core.ColorMuted:   {0x8a, 0x8a, 0x8a, 0xff},
}

var panelFill = color.RGBA{0x10, 0x10, 0x18, 0xd0}

// parseHex reads "#RRGGBB" (the "#" is optional). Anything else is white.
func parseHex(s string) color.RGBA {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{0xff, 0xff, 0xff, 0xff}
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xff}
}

// Draw renders the stage and its panels.
func (g *Game) Draw(screen *ebiten.Image) {
	st := g.session.Stage
	screen.Fill(parseHex(st.Background()))

	if st.SceneryVisible() {
		for _, c := range st.Clouds() {
			fillBox(screen, c, palette[core.ColorCloud])
		}
		g.drawGround(screen, st.GroundOffset())
	}
	for _, o := range st.Obstacles() {
		if o.Visible() {
			fillBox(screen, o.Box(), palette[core.ColorCactus])
		}
	}
	if p := st.PlayerSprite(); p.Visible() {
		drawPlayer(screen, p, st.AnimFrame())
	}

	g.drawPanels(screen)
}

func fillBox(dst *ebiten.Image, b core.Box, c color.Color) {
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c, false)
}

func (g *Game) drawGround(dst *ebiten.Image, offset float64) {
	y := float32(g.world.GroundY)
	w := float32(g.world.Width)
	c := palette[core.ColorGround]
	vector.DrawFilledRect(dst, 0, y, w, 2, c, false)

	for x := -float32(math.Mod(offset, groundMark)); x < w; x += groundMark {
		vector.DrawFilledRect(dst, x, y+5, 6, 3, c, false)
	}
}

// drawPlayer draws the body, a head block and two legs whose lengths follow
// the pose and animation frame.
func drawPlayer(dst *ebiten.Image, p *scene.Sprite, frame int) {
	b := p.Box()
	c := palette[core.ColorInk]
	if p.Pose() == runner.PoseHurt {
		c = palette[core.ColorHurt]
	}

	body := core.Box{X: b.X, Y: b.Y, W: b.W, H: b.H - legH}
	fillBox(dst, body, c)
	fillBox(dst, core.Box{X: b.Right() - 14, Y: b.Y + 6, W: 6, H: 6}, color.White)

	left, right := float64(legH), float64(legH)
	switch p.Pose() {
	case runner.PoseAirborne:
		left, right = legH/2, legH/2
	case runner.PoseRunning:
		if frame == 0 {
			right = legH / 2
		} else {
			left = legH / 2
		}
	}
	legW := b.W / 5
	fillBox(dst, core.Box{X: b.X + legW, Y: body.Bottom(), W: legW, H: left}, c)
	fillBox(dst, core.Box{X: b.Right() - 2*legW, Y: body.Bottom(), W: legW, H: right}, c)
}

func (g *Game) drawPanels(screen *ebiten.Image) {
	c := g.session.Controller
	w, h := g.Layout(0, 0)

	for _, p := range runner.Panels {
		if !g.session.Stage.PanelVisible(p) {
			continue
		}
		lines := scene.PanelLines(p, c)
		switch p {
		case runner.PanelHUD:
			text := lines[0].Text
			ebitenutil.DebugPrintAt(screen, text, w-len(text)*charW-10, 8)
		case runner.PanelCongrats:
			text := lines[0].Text
			ebitenutil.DebugPrintAt(screen, text, (w-len(text)*charW)/2, 40)
		default:
			drawPanel(screen, layoutPanel(lines, len(c.Buttons()), w, h))
		}
	}
}

func drawPanel(dst *ebiten.Image, l panelLayout) {
	r := l.rect
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), panelFill, false)
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, palette[core.ColorMuted], false)

	for i, line := range l.lines {
		lr := l.lineRect(i)
		if line.Focused {
			vector.DrawFilledRect(dst, float32(lr.Min.X), float32(lr.Min.Y), float32(lr.Dx()), float32(lr.Dy()), palette[core.ColorAccent], false)
		}
		x := r.Min.X + (r.Dx()-len(line.Text)*charW)/2
		ebitenutil.DebugPrintAt(dst, line.Text, x, lr.Min.Y)
	}
}

// panelLayout places a panel's lines in a box centered on the screen. The
// last buttons lines are buttons, in Controller.Buttons order.
type panelLayout struct {
	rect    image.Rectangle
	lines   []scene.Line
	buttons int
}

func layoutPanel(lines []scene.Line, buttons, screenW, screenH int) panelLayout {
	inner := 0
	for _, l := range lines {
		inner = max(inner, len(l.Text)*charW)
	}
	w := inner + 4*panelPad
	h := len(lines)*lineH + 2*panelPad
	x := (screenW - w) / 2
	y := (screenH - h) / 2
	return panelLayout{
		rect:    image.Rect(x, y, x+w, y+h),
		lines:   lines,
		buttons: min(buttons, len(lines)),
	}
}

func (l panelLayout) lineRect(i int) image.Rectangle {
	y := l.rect.Min.Y + panelPad + i*lineH
	return image.Rect(l.rect.Min.X+panelPad/2, y, l.rect.Max.X-panelPad/2, y+lineH)
}

// buttonAt returns the index of the button under (x, y).
func (l panelLayout) buttonAt(x, y int) (int, bool) {
	first := len(l.lines) - l.buttons
	pt := image.Pt(x, y)
	for i := first; i < len(l.lines); i++ {
		if pt.In(l.lineRect(i)) {
			return i - first, true
		}
	}
	return 0, false
}
