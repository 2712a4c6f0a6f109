package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/podview/internal/domain"
	"github.com/mmcdole/podview/internal/format"
	"github.com/mmcdole/podview/internal/state"
	"github.com/mmcdole/podview/internal/tui/styles"
)

// Modal size limits in cells, border included
const (
	ModalMaxWidth  = 84
	ModalMaxHeight = 32
	modalMinWidth  = 30
	modalMinHeight = 10
)

// DetailModal renders the podcast detail overlay. Scrolling is delegated to
// a viewport; the header and footer stay fixed.
type DetailModal struct {
	viewport viewport.Model
	title    string
	width    int // outer width
	height   int // outer height
	now      func() time.Time
	keys     ModalKeyMap
}

// NewDetailModal creates a modal sized for an 80x24 terminal until SetSize
func NewDetailModal(now func() time.Time) DetailModal {
	if now == nil {
		now = time.Now
	}
	d := DetailModal{
		viewport: viewport.New(0, 0),
		now:      now,
		keys:     DefaultModalKeyMap(),
	}
	d.SetSize(80, 24)
	return d
}

// SetSize fits the modal inside a terminal of the given size
func (d *DetailModal) SetSize(termWidth, termHeight int) {
	d.width = max(modalMinWidth, min(ModalMaxWidth, termWidth-4))
	d.height = max(modalMinHeight, min(ModalMaxHeight, termHeight-2))

	frameW, frameH := styles.ModalStyle.GetFrameSize()
	d.viewport.Width = max(1, d.width-frameW)
	// title line + its margin, footer hint line + spacer
	d.viewport.Height = max(1, d.height-frameH-4)
}

// Reset clears previous content when the modal opens for a podcast
func (d *DetailModal) Reset(title string) {
	d.title = title
	d.viewport.SetContent("")
	d.viewport.GotoTop()
}

// SetDetail fills the scrollable body from a loaded detail
func (d *DetailModal) SetDetail(detail *domain.PodcastDetail) {
	d.title = detail.Title
	d.viewport.SetContent(RenderDetailBody(detail, d.viewport.Width, d.now()))
	d.viewport.GotoTop()
}

// Update forwards scroll keys and mouse wheel events to the viewport
func (d DetailModal) Update(msg tea.Msg) (DetailModal, tea.Cmd) {
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

// ScrollPercent reports how far the body is scrolled, 0..1
func (d DetailModal) ScrollPercent() float64 {
	return d.viewport.ScrollPercent()
}

// View renders the modal box for the given phase
func (d DetailModal) View(phase state.ModalPhase, spinnerView string) string {
	frameW, frameH := styles.ModalStyle.GetFrameSize()
	innerW := d.width - frameW

	title := d.title
	if title == "" {
		title = "Podcast"
	}
	header := styles.ModalTitleStyle.Render(styles.Truncate(title, innerW))

	var body, hint string
	switch phase {
	case state.ModalLoading:
		body = spinnerView + " " + styles.DimStyle.Render("Loading...")
		hint = "esc close"
	case state.ModalError:
		body = lipgloss.NewStyle().Width(innerW).Render(styles.ErrorStyle.Render(state.DetailErrorMessage))
		hint = "r retry · esc close"
	default:
		body = d.viewport.View()
		hint = "j/k scroll · esc close"
		if !d.viewport.AtTop() || !d.viewport.AtBottom() {
			hint = fmt.Sprintf("%3.0f%% · %s", d.viewport.ScrollPercent()*100, hint)
		}
	}

	bodyHeight := d.height - frameH - 4
	body = lipgloss.NewStyle().Height(max(1, bodyHeight)).MaxHeight(max(1, bodyHeight)).Render(body)

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		"",
		styles.DimStyle.Render(hint),
	)

	return styles.ModalStyle.
		Width(d.width - styles.ModalStyle.GetHorizontalBorderSize()).
		Render(content)
}

// RenderDetailBody lays out everything below the title, wrapped to width
func RenderDetailBody(detail *domain.PodcastDetail, w int, now time.Time) string {
	wrap := lipgloss.NewStyle().Width(w)
	var b strings.Builder

	if detail.ImageURL != "" {
		b.WriteString(styles.CardCoverStyle.Render(styles.Truncate("▣ "+detail.ImageURL, w)))
		b.WriteString("\n")
	}

	tags := make([]string, 0, len(detail.Genres))
	for _, g := range detail.Genres {
		tags = append(tags, styles.TagStyle.Render(g))
	}
	if len(tags) > 0 {
		b.WriteString(wrap.Render(strings.Join(tags, " ")))
		b.WriteString("\n")
	}

	b.WriteString(styles.SubtitleStyle.Render("Last updated: " + format.RelativeTime(detail.UpdatedAt, now)))
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render(fmt.Sprintf("%s · %s",
		domain.SeasonLabel(len(detail.Seasons)), domain.EpisodeLabel(detail.EpisodeCount()))))
	b.WriteString("\n\n")

	if strings.TrimSpace(detail.Description) != "" {
		b.WriteString(wrap.Render(detail.Description))
		b.WriteString("\n\n")
	}

	b.WriteString(styles.AccentStyle.Render("Seasons"))
	b.WriteString("\n")
	if !detail.HasSeasons() {
		b.WriteString(styles.DimStyle.Render("No seasons available"))
		return b.String()
	}

	for i, s := range detail.Seasons {
		line := fmt.Sprintf("%s · %s", s.DisplayTitle(), s.EpisodeLabel())
		b.WriteString(styles.NormalItemStyle.Render(styles.Truncate(line, w)))
		if i < len(detail.Seasons)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
