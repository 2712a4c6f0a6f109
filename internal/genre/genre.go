// Package genre holds the compiled-in genre table and the enrichment step
// that turns genre ids into display names.
package genre

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/podview/internal/domain"
	"github.com/samber/lo"
)

// builtin mirrors the genre ids served by the podcast API
var builtin = []domain.Genre{
	{ID: 1, Title: "Personal Growth"},
	{ID: 2, Title: "Investigative Journalism"},
	{ID: 3, Title: "History"},
	{ID: 4, Title: "Comedy"},
	{ID: 5, Title: "Entertainment"},
	{ID: 6, Title: "Business"},
	{ID: 7, Title: "Fiction"},
	{ID: 8, Title: "News"},
	{ID: 9, Title: "Kids and Family"},
}

// Table is a read-only id -> genre mapping. Safe for concurrent use.
type Table struct {
	byID   map[int]domain.Genre
	sorted []domain.Genre
}

var _ domain.GenreLookup = (*Table)(nil)

// Default is the table loaded at process start
var Default = NewTable(builtin)

// NewTable builds a table from the given genres. Later duplicates win.
func NewTable(genres []domain.Genre) *Table {
	byID := make(map[int]domain.Genre, len(genres))
	for _, g := range genres {
		byID[g.ID] = g
	}
	sorted := lo.Values(byID)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return &Table{byID: byID, sorted: sorted}
}

// Lookup returns the genre for id
func (t *Table) Lookup(id int) (domain.Genre, bool) {
	g, ok := t.byID[id]
	return g, ok
}

// All returns every genre ordered by id
func (t *Table) All() []domain.Genre {
	out := make([]domain.Genre, len(t.sorted))
	copy(out, t.sorted)
	return out
}

// Names maps ids to display names in input order. Empty input yields
// ["Uncategorized"]; ids missing from the table yield "Unknown".
func (t *Table) Names(ids []int) []string {
	if len(ids) == 0 {
		return []string{domain.GenreUncategorized}
	}
	return lo.Map(ids, func(id int, _ int) string {
		if g, ok := t.byID[id]; ok {
			return g.Title
		}
		return domain.GenreUnknown
	})
}

// Match returns the genres whose title fuzzily matches query, best first
func (t *Table) Match(query string) []domain.Genre {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	titles := lo.Map(t.sorted, func(g domain.Genre, _ int) string { return g.Title })
	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	sort.Sort(ranks)
	return lo.Map(ranks, func(r fuzzy.Rank, _ int) domain.Genre {
		return t.sorted[r.OriginalIndex]
	})
}
