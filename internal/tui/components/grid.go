package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/podview/internal/domain"
	"github.com/mmcdole/podview/internal/format"
	"github.com/mmcdole/podview/internal/genre"
	"github.com/mmcdole/podview/internal/search"
	"github.com/mmcdole/podview/internal/tui/styles"
)

// FilterBarLines is the height reserved for the filter input when active
const FilterBarLines = 1

// Grid renders the catalog as rows of podcast cards
type Grid struct {
	podcasts []domain.PodcastSummary
	index    *search.Index
	genres   *genre.Table
	visible  []search.Match

	cursor    int
	rowOffset int

	width   int
	height  int
	columns int // fixed column count, 0 = fit to width

	now  func() time.Time
	keys GridKeyMap

	filterActive bool
	filterInput  textinput.Model
}

// NewGrid creates an empty grid. columns <= 0 fits cards to the width.
func NewGrid(genres *genre.Table, columns int, now func() time.Time) Grid {
	ti := textinput.New()
	ti.Placeholder = "title or genre:name"
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	if genres == nil {
		genres = genre.Default
	}
	if now == nil {
		now = time.Now
	}
	return Grid{
		genres:      genres,
		columns:     columns,
		now:         now,
		keys:        DefaultGridKeyMap(),
		filterInput: ti,
		index:       search.NewIndex(nil),
	}
}

// SetPodcasts replaces the grid content. An active filter is reapplied and
// the selection is kept on the same podcast when it is still visible.
func (g *Grid) SetPodcasts(podcasts []domain.PodcastSummary) {
	selectedID := ""
	if p, ok := g.Selected(); ok {
		selectedID = p.ID
	}

	g.podcasts = podcasts
	g.index = search.NewIndex(podcasts)
	g.applyFilter()

	g.cursor = 0
	for i, m := range g.visible {
		if m.Podcast.ID == selectedID {
			g.cursor = i
			break
		}
	}
	g.ensureVisible()
}

// SetSize updates the component dimensions
func (g *Grid) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.ensureVisible()
}

// Columns returns the number of cards per row
func (g Grid) Columns() int {
	if g.columns > 0 {
		return g.columns
	}
	cardW, _ := cardSize()
	if cols := g.width / cardW; cols > 1 {
		return cols
	}
	return 1
}

// visibleRows returns how many card rows fit in the current height
func (g Grid) visibleRows() int {
	_, cardH := cardSize()
	h := g.height
	if g.filterActive {
		h -= FilterBarLines
	}
	if rows := h / cardH; rows > 1 {
		return rows
	}
	return 1
}

// Len is the number of cards currently shown
func (g Grid) Len() int { return len(g.visible) }

// Total is the number of podcasts before filtering
func (g Grid) Total() int { return len(g.podcasts) }

// Cursor returns the index of the selected card
func (g Grid) Cursor() int { return g.cursor }

// Selected returns the podcast under the cursor
func (g Grid) Selected() (domain.PodcastSummary, bool) {
	if g.cursor < 0 || g.cursor >= len(g.visible) {
		return domain.PodcastSummary{}, false
	}
	return g.visible[g.cursor].Podcast, true
}

// SetCursor moves the selection, clamped to the visible cards
func (g *Grid) SetCursor(pos int) {
	if len(g.visible) == 0 {
		g.cursor = 0
		return
	}
	g.cursor = max(0, min(pos, len(g.visible)-1))
	g.ensureVisible()
}

func (g *Grid) move(delta int) {
	g.SetCursor(g.cursor + delta)
}

// ensureVisible scrolls so the cursor row is on screen
func (g *Grid) ensureVisible() {
	cols := g.Columns()
	row := g.cursor / cols
	rows := g.visibleRows()
	if row < g.rowOffset {
		g.rowOffset = row
	}
	if row >= g.rowOffset+rows {
		g.rowOffset = row - rows + 1
	}
	if g.rowOffset < 0 {
		g.rowOffset = 0
	}
}

// CardAt maps a position relative to the grid's top-left corner to a
// visible card index.
func (g Grid) CardAt(x, y int) (int, bool) {
	if x < 0 || y < 0 {
		return 0, false
	}
	cardW, cardH := cardSize()
	col := x / cardW
	row := y / cardH
	if col >= g.Columns() || row >= g.visibleRows() {
		return 0, false
	}
	idx := (g.rowOffset+row)*g.Columns() + col
	if idx >= len(g.visible) {
		return 0, false
	}
	return idx, true
}

// ToggleFilter activates the filter input
func (g *Grid) ToggleFilter() {
	g.filterActive = true
	g.filterInput.Focus()
	g.ensureVisible()
}

// IsFiltering returns true if filter results are shown
func (g Grid) IsFiltering() bool {
	return g.filterActive
}

// IsFilterTyping returns true if the filter input has focus
func (g Grid) IsFilterTyping() bool {
	return g.filterActive && g.filterInput.Focused()
}

// FilterQuery returns the current filter text
func (g Grid) FilterQuery() string {
	return g.filterInput.Value()
}

// ClearFilter deactivates the filter and shows all cards
func (g *Grid) ClearFilter() {
	g.filterActive = false
	g.filterInput.SetValue("")
	g.filterInput.Blur()
	g.applyFilter()
	g.cursor = 0
	g.rowOffset = 0
}

func (g *Grid) applyFilter() {
	query := ""
	if g.filterActive {
		query = g.filterInput.Value()
	}
	g.visible = g.index.Filter(query, g.genres)
}

// Update handles key messages while the grid has focus
func (g Grid) Update(msg tea.Msg) (Grid, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if g.IsFilterTyping() {
		if isKey {
			switch keyMsg.String() {
			case "esc":
				g.ClearFilter()
				return g, nil
			case "enter":
				g.filterInput.Blur()
				return g, nil
			case "backspace":
				if g.filterInput.Value() == "" {
					g.ClearFilter()
					return g, nil
				}
			}
		}

		var cmd tea.Cmd
		g.filterInput, cmd = g.filterInput.Update(msg)
		g.applyFilter()
		g.cursor = 0
		g.rowOffset = 0
		return g, cmd
	}

	if !isKey {
		return g, nil
	}

	if g.filterActive {
		switch {
		case key.Matches(keyMsg, g.keys.ClearFilter):
			g.ClearFilter()
			return g, nil
		case key.Matches(keyMsg, g.keys.Filter):
			g.filterInput.Focus()
			return g, nil
		}
	}

	cols := g.Columns()
	switch {
	case key.Matches(keyMsg, g.keys.Left):
		g.move(-1)
	case key.Matches(keyMsg, g.keys.Right):
		g.move(1)
	case key.Matches(keyMsg, g.keys.Up):
		if g.cursor-cols >= 0 {
			g.move(-cols)
		}
	case key.Matches(keyMsg, g.keys.Down):
		if g.cursor+cols < len(g.visible) {
			g.move(cols)
		}
	case key.Matches(keyMsg, g.keys.Home):
		g.SetCursor(0)
	case key.Matches(keyMsg, g.keys.End):
		g.SetCursor(len(g.visible) - 1)
	case key.Matches(keyMsg, g.keys.PageDown):
		g.move(cols * g.visibleRows())
	case key.Matches(keyMsg, g.keys.PageUp):
		g.move(-cols * g.visibleRows())
	}
	return g, nil
}

// View renders the visible card rows and the filter bar
func (g Grid) View() string {
	var content string
	if len(g.visible) == 0 {
		msg := "No podcasts"
		if g.filterActive && g.filterInput.Value() != "" {
			msg = "No matches"
		}
		content = lipgloss.Place(g.width, max(1, g.height-FilterBarLines),
			lipgloss.Center, lipgloss.Center, styles.DimStyle.Render(msg))
	} else {
		content = g.renderRows()
	}

	if g.filterActive {
		content = lipgloss.JoinVertical(lipgloss.Left, content, g.renderFilterBar())
	}
	return content
}

func (g Grid) renderRows() string {
	cols := g.Columns()
	now := g.now()

	var rows []string
	for r := 0; r < g.visibleRows(); r++ {
		start := (g.rowOffset + r) * cols
		if start >= len(g.visible) {
			break
		}
		end := min(start+cols, len(g.visible))

		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, RenderCard(g.visible[i], i == g.cursor, now))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderFilterBar renders the filter input with a match count
func (g Grid) renderFilterBar() string {
	input := g.filterInput.View()
	if g.filterInput.Value() == "" {
		return input
	}
	return input + styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", len(g.visible), len(g.podcasts)))
}

// RenderCard draws one catalog card: title, cover, season count, the first
// two genres and the last update.
func RenderCard(m search.Match, selected bool, now time.Time) string {
	inner := styles.CardWidth - 2
	p := m.Podcast

	cover := "no cover"
	if p.ImageURL != "" {
		cover = coverLabel(p.ImageURL)
	}

	lines := []string{
		highlightTitle(p.Title, m.MatchedIndexes, inner),
		styles.CardCoverStyle.Render(styles.Truncate("▣ "+cover, inner)),
		styles.CardMetaStyle.Render(p.SeasonLabel()),
		styles.CardGenreStyle.Render(styles.Truncate(p.CardGenres(), inner)),
		styles.DimStyle.Render(styles.Truncate(format.Updated(p.UpdatedAt, now), inner)),
	}

	style := styles.CardStyle
	if selected {
		style = styles.CardSelectedStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

// coverLabel shortens an image URL to its last path segment
func coverLabel(url string) string {
	if i := strings.LastIndex(url, "/"); i >= 0 && i < len(url)-1 {
		return url[i+1:]
	}
	return url
}

// highlightTitle truncates title and styles the runes that matched the filter
func highlightTitle(title string, matched []int, width int) string {
	title = styles.Truncate(title, width)
	if len(matched) == 0 {
		return styles.CardTitleStyle.Render(title)
	}

	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}

	var b strings.Builder
	for i, r := range []rune(title) {
		if hit[i] {
			b.WriteString(styles.MatchHighlightStyle.Render(string(r)))
		} else {
			b.WriteString(styles.CardTitleStyle.Render(string(r)))
		}
	}
	return b.String()
}

// cardSize measures the outer size of a rendered card
func cardSize() (int, int) {
	card := styles.CardStyle.Render("")
	return lipgloss.Width(card), lipgloss.Height(card)
}
