package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mmcdole/podview/internal/domain"
	"github.com/mmcdole/podview/internal/format"
	"github.com/mmcdole/podview/internal/search"
	"github.com/mmcdole/podview/internal/tui/components"
	"github.com/mmcdole/podview/internal/tui/styles"
)

const titleColumnWidth = 40

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.DimStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return cellStyle.Bold(true)
			}
			return cellStyle
		})
}

// RenderCatalog writes one row per podcast followed by a count line
func RenderCatalog(w io.Writer, matches []search.Match, total int, now time.Time) error {
	if len(matches) == 0 {
		if total == 0 {
			_, err := fmt.Fprintln(w, "No podcasts found.")
			return err
		}
		_, err := fmt.Fprintln(w, "No matches.")
		return err
	}

	t := newTable().Headers("ID", "TITLE", "SEASONS", "GENRES", "UPDATED")
	for _, m := range matches {
		p := m.Podcast
		t.Row(
			p.ID,
			styles.Truncate(p.Title, titleColumnWidth),
			strconv.Itoa(p.SeasonCount),
			p.CardGenres(),
			format.RelativeTime(p.UpdatedAt, now),
		)
	}

	count := format.Plural(total, "podcast")
	if len(matches) != total {
		count = fmt.Sprintf("%d of %s", len(matches), count)
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", t.String(), styles.DimStyle.Render(count))
	return err
}

// RenderDetail writes the same body the detail modal shows
func RenderDetail(w io.Writer, detail *domain.PodcastDetail, width int, now time.Time) error {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(detail.Title))
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render("id " + detail.ID))
	b.WriteString("\n\n")
	b.WriteString(components.RenderDetailBody(detail, width, now))
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderGenres writes the genre table
func RenderGenres(w io.Writer, genres []domain.Genre) error {
	t := newTable().Headers("ID", "GENRE")
	for _, g := range genres {
		t.Row(strconv.Itoa(g.ID), g.Title)
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}
