package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/podview/internal/service"
	"github.com/mmcdole/podview/internal/tui/styles"
)

// SortOptions lists the orders offered for the catalog grid
func SortOptions() []service.SortField {
	return []service.SortField{service.SortDefault, service.SortTitle, service.SortUpdated}
}

// SortModal is a small popup for choosing the grid order
type SortModal struct {
	visible bool
	options []service.SortField
	cursor  int
	active  service.SortField
}

// NewSortModal creates a new sort modal
func NewSortModal() SortModal {
	return SortModal{options: SortOptions()}
}

// Show displays the modal with the cursor on the active order
func (m *SortModal) Show(active service.SortField) {
	m.visible = true
	m.active = active
	m.cursor = 0
	for i, opt := range m.options {
		if opt == active {
			m.cursor = i
			break
		}
	}
}

// Hide dismisses the modal
func (m *SortModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m SortModal) IsVisible() bool {
	return m.visible
}

// HandleKey processes a key press. selection is non-nil when the user
// confirmed a choice. All keys are consumed while visible.
func (m *SortModal) HandleKey(key string) (handled bool, selection *service.SortField) {
	if !m.visible {
		return false, nil
	}

	switch key {
	case "j", "down":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		chosen := m.options[m.cursor]
		m.visible = false
		return true, &chosen
	case "esc", "s", "q":
		m.visible = false
	}
	return true, nil
}

// View renders the sort modal
func (m SortModal) View() string {
	if !m.visible {
		return ""
	}

	lines := make([]string, 0, len(m.options))
	for i, opt := range m.options {
		prefix := "  "
		if opt == m.active {
			prefix = "✓ "
		}
		text := styles.Pad(prefix+opt.String(), 22)

		switch {
		case i == m.cursor:
			lines = append(lines, styles.SelectedItemStyle.Render(text))
		case opt == m.active:
			lines = append(lines, styles.AccentStyle.Render(text))
		default:
			lines = append(lines, styles.NormalItemStyle.Render(text))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Accent).
		Background(styles.SlateDark).
		Padding(0, 1).
		Render(styles.ModalTitleStyle.Render("Sort by") + "\n" + strings.Join(lines, "\n"))
}
