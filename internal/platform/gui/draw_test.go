package gui

import (
	"image/color"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/scene"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#AEE7FF", color.RGBA{0xae, 0xe7, 0xff, 0xff}},
		{"ffdfae", color.RGBA{0xff, 0xdf, 0xae, 0xff}},
		{"", color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"#zzzzzz", color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"#fff", color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"#0a0", color.RGBA{0x00, 0xaa, 0x00, 0xff}},
	}
	for _, tt := range tests {
		if got := parseHex(tt.in); got != tt.want {
			t.Errorf("parseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLayoutPanelCentered(t *testing.T) {
	lines := []scene.Line{{Text: "PAUSED"}, {Text: "Resume"}, {Text: "Back to menu"}}
	l := layoutPanel(lines, 2, 800, 320)

	if got, want := l.rect.Dx(), len("Back to menu")*charW+4*panelPad; got != want {
		t.Errorf("width = %d, want %d", got, want)
	}
	if got, want := l.rect.Dy(), 3*lineH+2*panelPad; got != want {
		t.Errorf("height = %d, want %d", got, want)
	}
	if l.rect.Min.X+l.rect.Max.X != 800-(800-l.rect.Dx())%2 {
		t.Errorf("panel not centered: %v", l.rect)
	}
}

func TestButtonAt(t *testing.T) {
	lines := []scene.Line{{Text: "PAUSED"}, {Text: "Score: 00100"}, {}, {Text: "Resume"}, {Text: "Back to menu"}}
	l := layoutPanel(lines, 2, 800, 320)

	center := func(i int) (int, int) {
		r := l.lineRect(i)
		return (r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2
	}

	x, y := center(3)
	if i, ok := l.buttonAt(x, y); !ok || i != 0 {
		t.Errorf("buttonAt(resume) = %d, %v; want 0, true", i, ok)
	}
	x, y = center(4)
	if i, ok := l.buttonAt(x, y); !ok || i != 1 {
		t.Errorf("buttonAt(back) = %d, %v; want 1, true", i, ok)
	}
	x, y = center(0)
	if _, ok := l.buttonAt(x, y); ok {
		t.Error("title line should not be a button")
	}
	if _, ok := l.buttonAt(0, 0); ok {
		t.Error("outside the panel should not be a button")
	}
}
