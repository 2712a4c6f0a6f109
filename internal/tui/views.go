package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/podview/internal/state"
	"github.com/mmcdole/podview/internal/tui/styles"
)

// Catalog screen texts
const (
	LoadingText = "Loading podcasts..."
	EmptyText   = "No podcasts found."
	RetryHint   = "[r] Retry"
)

// View renders the whole screen
func (m Model) View() string {
	if !m.Ready {
		return m.Spinner.View() + " " + LoadingText
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderContent(),
		m.renderFooter(),
	)

	// Overlay sort modal if visible
	if m.SortModal.IsVisible() {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.SortModal.View())
	}

	// Overlay detail modal if visible
	if m.Modal.Visible() {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.Detail.View(m.Modal.Phase(), m.Spinner.View()))
	}

	return view
}

// renderContent picks the catalog screen for the current phase
func (m Model) renderContent() string {
	height := max(1, m.Height-ChromeHeight)

	var block string
	switch m.Catalog.Phase() {
	case state.PhaseIdle, state.PhaseLoading:
		block = m.Spinner.View() + " " + styles.SubtitleStyle.Render(LoadingText)
	case state.PhaseError:
		msg := lipgloss.NewStyle().Width(min(m.Width-4, 70)).Align(lipgloss.Center).
			Render(styles.ErrorStyle.Render(m.Catalog.Message()))
		block = lipgloss.JoinVertical(lipgloss.Center, msg, "", styles.AccentStyle.Render(RetryHint))
	default:
		if m.Catalog.Empty() {
			block = lipgloss.JoinVertical(lipgloss.Center,
				styles.SubtitleStyle.Render(EmptyText), "", styles.AccentStyle.Render(RetryHint))
		} else {
			return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(m.Grid.View())
		}
	}

	return lipgloss.Place(m.Width, height, lipgloss.Center, lipgloss.Center, block)
}

// renderHeader renders the title bar with catalog counts and sort order
func (m Model) renderHeader() string {
	left := styles.HeaderStyle.Render("podview")

	var right string
	if m.Catalog.Phase() == state.PhaseLoaded && !m.Catalog.Empty() {
		count := fmt.Sprintf("%d podcasts", m.Grid.Total())
		if m.Grid.IsFiltering() && m.Grid.FilterQuery() != "" {
			count = fmt.Sprintf("%d of %d podcasts", m.Grid.Len(), m.Grid.Total())
		}
		right = styles.DimStyle.Render(count + " · sort: " + m.Sort.String())
	}

	gap := max(1, m.Width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", gap) + right
}

// renderFooter renders a single-line footer: status on the left, key hints on the right
func (m Model) renderFooter() string {
	var left string
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.DimStyle.Render(m.StatusMsg)
		}
	}

	var right string
	switch {
	case m.Modal.Visible():
		right = m.Help.ShortHelpView(Keys.ModalHelp())
	case m.Catalog.Phase() == state.PhaseLoaded && !m.Catalog.Empty():
		right = m.Help.View(Keys)
	default:
		right = m.Help.ShortHelpView(Keys.RetryHelp())
	}

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderHelp renders the full key reference
func (m Model) renderHelp() string {
	h := m.Help
	h.ShowAll = true
	body := styles.ModalTitleStyle.Render("Keys") + "\n" + h.View(Keys) +
		"\n\n" + styles.DimStyle.Render("Press any key to return...")

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(body))
}
