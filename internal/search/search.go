// Package search filters the loaded catalog for the grid's "/" prompt.
package search

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/podview/internal/domain"
	"github.com/mmcdole/podview/internal/genre"
)

// GenrePrefix switches the filter from titles to genre names
const GenrePrefix = "genre:"

// Match is one filtered podcast. Index points into the slice passed to Filter.
type Match struct {
	Index          int
	Podcast        domain.PodcastSummary
	MatchedIndexes []int // rune positions in Title, empty for genre matches
	Score          int
}

// Index implements fuzzy.Source over pre-lowered titles
type Index struct {
	podcasts    []domain.PodcastSummary
	lowerTitles []string
}

// NewIndex builds an index over podcasts. The slice is not copied.
func NewIndex(podcasts []domain.PodcastSummary) *Index {
	lower := make([]string, len(podcasts))
	for i, p := range podcasts {
		lower[i] = strings.ToLower(p.Title)
	}
	return &Index{podcasts: podcasts, lowerTitles: lower}
}

func (idx *Index) String(i int) string { return idx.lowerTitles[i] }
func (idx *Index) Len() int            { return len(idx.podcasts) }

// Filter returns the podcasts matching query, best first. An empty query
// matches everything in the original order.
func (idx *Index) Filter(query string, genres *genre.Table) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		return idx.all()
	}
	if rest, ok := cutPrefixFold(query, GenrePrefix); ok {
		return idx.byGenre(strings.TrimSpace(rest), genres)
	}

	found := fuzzy.FindFrom(strings.ToLower(query), idx)
	out := make([]Match, len(found))
	for i, f := range found {
		out[i] = Match{
			Index:          f.Index,
			Podcast:        idx.podcasts[f.Index],
			MatchedIndexes: f.MatchedIndexes,
			Score:          f.Score,
		}
	}
	return out
}

// Filter is a convenience for one-off filtering without keeping an Index
func Filter(query string, podcasts []domain.PodcastSummary, genres *genre.Table) []Match {
	return NewIndex(podcasts).Filter(query, genres)
}

func (idx *Index) all() []Match {
	out := make([]Match, len(idx.podcasts))
	for i, p := range idx.podcasts {
		out[i] = Match{Index: i, Podcast: p}
	}
	return out
}

func (idx *Index) byGenre(q string, genres *genre.Table) []Match {
	if q == "" {
		return idx.all()
	}
	if genres == nil {
		genres = genre.Default
	}
	wanted := make(map[string]bool)
	for _, g := range genres.Match(q) {
		wanted[g.Title] = true
	}

	var out []Match
	for i, p := range idx.podcasts {
		for _, name := range p.Genres {
			if wanted[name] || strings.EqualFold(name, q) {
				out = append(out, Match{Index: i, Podcast: p})
				break
			}
		}
	}
	return out
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):], true
	}
	return s, false
}
