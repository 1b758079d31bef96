package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetra/internal/core"
)

// Painter converts Screen buffers to styled strings. It caches one lipgloss
// style per color, so it is not safe for concurrent use; each program owns
// its own Painter.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[core.RGBA]lipgloss.Style
}

// NewPainter creates a Painter. A nil renderer uses lipgloss' default
// renderer (the local terminal); SSH sessions pass a per-session one.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: r,
		styles:   make(map[core.RGBA]lipgloss.Style),
	}
}

func (p *Painter) style(c core.RGBA) lipgloss.Style {
	if st, ok := p.styles[c]; ok {
		return st
	}
	st := p.renderer.NewStyle()
	if !c.IsZero() {
		st = st.Foreground(lipgloss.Color(c.Hex()))
	}
	p.styles[c] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p *Painter) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Blank runs carry no visible color.
			text := run.String()
			if color.IsZero() || strings.TrimSpace(text) == "" {
				sb.WriteString(text)
				continue
			}
			sb.WriteString(p.style(color).Render(text))
		}
	}
	return sb.String()
}
