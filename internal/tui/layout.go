package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	contentHeight := max(1, m.Height-ChromeHeight)
	m.Grid.SetSize(m.Width, contentHeight)
	m.Detail.SetSize(m.Width, m.Height)
	m.Help.Width = m.Width
}

// rect is a screen region in cells
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// centered returns where lipgloss.Place puts a block of the given rendered
// content inside the window.
func (m Model) centered(block string) rect {
	w, h := lipgloss.Width(block), lipgloss.Height(block)
	return rect{
		x: max(0, (m.Width-w)/2),
		y: max(0, (m.Height-h)/2),
		w: w,
		h: h,
	}
}
