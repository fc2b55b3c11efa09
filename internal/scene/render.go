package scene

import (
	"math"
	"strings"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Visual characters for rendering
const (
	BodyRune   = '█'
	HeadRune   = '◆'
	Leg1Rune   = '╱'
	Leg2Rune   = '╲'
	HurtRune   = '╳'
	CactusRune = '▓'
	GroundRune = '═'
	GroundMark = '╧'
	CloudRune  = '~'
)

// groundMarkEvery is the spacing of ground marks in cells.
const groundMarkEvery = 7

// viewport maps world units to screen cells.
type viewport struct {
	sx, sy float64
}

func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	x1 := int(math.Floor(b.Right() * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	y1 := int(math.Floor(b.Bottom() * v.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws the world scaled to dst. Overlays are drawn by DrawPanels.
func (st *Stage) Render(dst *core.Screen) {
	dst.Clear()
	dst.SetBackground(st.background)

	v := viewport{
		sx: float64(dst.Width()) / st.world.Width,
		sy: float64(dst.Height()) / st.world.Height,
	}

	if st.scenery {
		st.drawClouds(dst, v)
		st.drawGround(dst, v)
	}
	for _, o := range st.obstacles {
		if o.Visible() {
			dst.DrawRect(v.rect(o.box), CactusRune, core.ColorCactus)
		}
	}
	if st.player.Visible() {
		st.drawPlayer(dst, v.rect(st.player.box))
	}
}

func (st *Stage) drawGround(dst *core.Screen, v viewport) {
	y := int(math.Floor(st.world.GroundY * v.sy))
	offset := int(st.groundX * v.sx)
	for x := 0; x < dst.Width(); x++ {
		r := GroundRune
		if (x+offset)%groundMarkEvery == 0 {
			r = GroundMark
		}
		dst.SetColored(x, y, r, core.ColorGround)
	}
}

func (st *Stage) drawClouds(dst *core.Screen, v viewport) {
	for _, c := range st.clouds {
		w := int(math.Max(1, c.w*v.sx))
		text := "(" + strings.Repeat(string(CloudRune), max(w-2, 1)) + ")"
		dst.DrawTextColored(int(c.x*v.sx), int(c.y*v.sy), text, core.ColorCloud)
	}
}

// drawPlayer fills the body, puts the head on the top row and animates the
// legs on the bottom row according to the pose.
func (st *Stage) drawPlayer(dst *core.Screen, r core.Rect) {
	color := core.ColorInk
	if st.player.pose == runner.PoseHurt {
		color = core.ColorHurt
	}
	dst.DrawRect(r, BodyRune, color)
	dst.SetColored(r.Right()-1, r.Y, HeadRune, color)
	if r.H < 2 {
		return
	}

	legs := r.Bottom() - 1
	dst.DrawHLine(r.X, legs, r.W, ' ', color)
	left, right := r.X, r.Right()-1
	switch st.player.pose {
	case runner.PoseHurt:
		dst.SetColored(left, legs, HurtRune, color)
		dst.SetColored(right, legs, HurtRune, color)
	case runner.PoseAirborne:
		dst.SetColored(left, legs, Leg1Rune, color)
		dst.SetColored(left+1, legs, Leg2Rune, color)
	default:
		if st.AnimFrame() == 0 {
			dst.SetColored(left, legs, Leg1Rune, color)
			dst.SetColored(right, legs, Leg2Rune, color)
		} else {
			dst.SetColored(left+1, legs, Leg1Rune, color)
			dst.SetColored(right-1, legs, Leg2Rune, color)
		}
	}
}
