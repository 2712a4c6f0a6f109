package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/podview/internal/domain"
	"github.com/mmcdole/podview/internal/state"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.ForceQuit) {
		m.cancelDetail()
		return m, tea.Quit
	}

	if m.State == StateHelp {
		m.State = StateBrowsing
		return m, nil
	}

	// Route to active modal if any
	if handled, newModel, cmd := m.routeToModal(msg); handled {
		return newModel, cmd
	}

	// Filter input swallows everything while typing
	if m.Grid.IsFilterTyping() {
		var cmd tea.Cmd
		m.Grid, cmd = m.Grid.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Refresh):
		return m, m.beginCatalogLoad()
	}

	// Everything below needs a loaded, non-empty catalog
	if m.Catalog.Phase() != state.PhaseLoaded || m.Catalog.Empty() {
		return m, nil
	}

	switch {
	case key.Matches(msg, Keys.Open):
		if p, ok := m.Grid.Selected(); ok {
			return m, m.openDetail(p)
		}
		return m, nil

	case key.Matches(msg, Keys.Sort):
		m.SortModal.Show(m.Sort)
		return m, nil

	case key.Matches(msg, Keys.Filter) && !m.Grid.IsFiltering():
		m.Grid.ToggleFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.Grid, cmd = m.Grid.Update(msg)
	return m, cmd
}

// routeToModal sends keys to the topmost overlay. Returns handled=false
// when no overlay is visible.
func (m Model) routeToModal(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	if m.Modal.Visible() {
		switch {
		case key.Matches(msg, Keys.Modal.Close):
			m.closeDetail()
			return true, m, nil

		case key.Matches(msg, Keys.Modal.Retry) && m.Modal.Phase() == state.ModalError:
			id := m.Modal.PodcastID()
			p, ok := m.podcastByID(id)
			if !ok {
				p = domain.PodcastSummary{ID: id}
			}
			return true, m, m.openDetail(p)
		}

		var cmd tea.Cmd
		m.Detail, cmd = m.Detail.Update(msg)
		return true, m, cmd
	}

	if m.SortModal.IsVisible() {
		_, selection := m.SortModal.HandleKey(msg.String())
		if selection != nil {
			return true, m, m.applySort(*selection)
		}
		return true, m, nil
	}

	return false, m, nil
}

// podcastByID finds a loaded catalog entry
func (m Model) podcastByID(id string) (domain.PodcastSummary, bool) {
	for _, p := range m.Catalog.Podcasts() {
		if p.ID == id {
			return p, true
		}
	}
	return domain.PodcastSummary{}, false
}
