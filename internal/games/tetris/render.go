package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetra/internal/core"
)

// Layout constants. Each board cell is two columns wide.
const (
	hudHeight  = 1
	panelW     = 16
	boxW       = 2*Width + 2
	minScreenW = boxW + 1 + panelW + 1
	minScreenH = hudHeight + Height + 2
)

var (
	borderColor = core.Gray
	gridColor   = core.DarkGray
	labelColor  = core.Highlight
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.Snapshot()

	g.renderHUD(dst, s)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	dst.DrawBox(core.NewRect(g.boardX-1, g.boardY-1, 2*s.Width+2, s.Height+2), borderColor)
	g.renderBoard(dst, s)
	g.renderPanel(dst, s)

	if !s.Active {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen, s Snapshot) {
	hud := fmt.Sprintf(" Tetra  Score: %d  Level: %s  Lines: %d", s.Score, s.LevelLabel(), s.Lines)
	dst.DrawText(0, 0, hud)
}

// drawCell writes one board cell as a two-column glyph pair.
func (g *Game) drawCell(dst *core.Screen, x, y int, glyph string, c core.RGBA) {
	dst.DrawTextColored(g.boardX+2*x, g.boardY+y, glyph, c)
}

func (g *Game) renderBoard(dst *core.Screen, s Snapshot) {
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			switch c := s.At(x, y); {
			case c != EmptyCell:
				g.drawCell(dst, x, y, "██", c)
			case s.Toggles.Grid:
				g.drawCell(dst, x, y, " ·", gridColor)
			}
		}
	}

	if s.Toggles.Landing && s.Landing.Pivot != s.Live.Pivot {
		for _, c := range s.Landing.Absolute() {
			g.drawCell(dst, c.X, c.Y, "░░", s.Landing.Color)
		}
	}
	for _, c := range s.Live.Absolute() {
		g.drawCell(dst, c.X, c.Y, "██", s.Live.Color)
	}
}

func (g *Game) renderPanel(dst *core.Screen, s Snapshot) {
	x := g.boardX + 2*s.Width + 2
	y := g.boardY

	hold := "HOLD"
	if !s.Toggles.Hold {
		hold = "HOLD (off)"
	}
	dst.DrawTextColored(x, y, hold, labelColor)
	if s.Held != nil {
		drawMini(dst, x, y+1, *s.Held)
	}
	y += 6

	if s.Toggles.Queue {
		dst.DrawTextColored(x, y, "NEXT", labelColor)
		if len(s.Upcoming) > 0 {
			drawMini(dst, x, y+1, s.Upcoming[0])
			col := x
			for _, p := range s.Upcoming[1:] {
				dst.DrawTextColored(col, y+5, p.Kind.String(), p.Color)
				col += 2
			}
		}
	}
	y += 7

	stats := []struct{ label, value string }{
		{"SCORE", fmt.Sprint(s.Score)},
		{"LEVEL", s.LevelLabel()},
		{"LINES", fmt.Sprint(s.Lines)},
	}
	for _, st := range stats {
		dst.DrawTextColored(x, y, st.label, labelColor)
		dst.DrawText(x, y+1, st.value)
		y += 3
	}

	dst.DrawText(x, y, toggleLine(s.Toggles))
	dst.DrawText(x, y+2, "P pause  Q quit")
}

// drawMini draws a piece in spawn orientation inside a 4x4 cell area at (x, y).
func drawMini(dst *core.Screen, x, y int, p Piece) {
	for _, c := range shapes[p.Kind] {
		dst.DrawTextColored(x+2*(c.X+1), y+c.Y+1, "██", p.Color)
	}
}

// toggleLine summarises the feature switches as their key letters,
// lower case when off.
func toggleLine(t Toggles) string {
	flags := []struct {
		key string
		on  bool
	}{
		{"G", t.Grid}, {"T", t.Hold}, {"L", t.HoldLimit}, {"V", t.Landing}, {"N", t.Queue},
	}
	var sb strings.Builder
	for _, f := range flags {
		if f.on {
			sb.WriteString(f.key)
		} else {
			sb.WriteString(strings.ToLower(f.key))
		}
		sb.WriteByte(' ')
	}
	return strings.TrimSpace(sb.String())
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len(line1), len(line2)) + 4
	h := 5
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(r, ' ', core.NoColor)
	dst.DrawBox(r, core.White)
	dst.DrawTextColored(r.X+(w-len(line1))/2, r.Y+1, line1, core.Yellow)
	dst.DrawText(r.X+(w-len(line2))/2, r.Y+3, line2)
}
