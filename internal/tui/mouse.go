package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/podview/internal/state"
)

// handleMouseMsg handles clicks and wheel events
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.Modal.Visible() {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			box := m.centered(m.Detail.View(m.Modal.Phase(), m.Spinner.View()))
			if !box.contains(msg.X, msg.Y) {
				m.closeDetail()
			}
			return m, nil
		}

		// wheel scrolling inside the modal
		var cmd tea.Cmd
		m.Detail, cmd = m.Detail.Update(msg)
		return m, cmd
	}

	if m.State != StateBrowsing || m.SortModal.IsVisible() {
		return m, nil
	}
	if m.Catalog.Phase() != state.PhaseLoaded {
		return m, nil
	}

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		idx, ok := m.Grid.CardAt(msg.X, msg.Y-HeaderHeight)
		if !ok {
			return m, nil
		}
		m.Grid.SetCursor(idx)
		if p, ok := m.Grid.Selected(); ok {
			return m, m.openDetail(p)
		}

	case msg.Button == tea.MouseButtonWheelDown:
		m.Grid.SetCursor(m.Grid.Cursor() + m.Grid.Columns())

	case msg.Button == tea.MouseButtonWheelUp:
		m.Grid.SetCursor(m.Grid.Cursor() - m.Grid.Columns())
	}
	return m, nil
}
