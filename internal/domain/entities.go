package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	// GenreUncategorized labels a podcast that carries no genre ids at all
	GenreUncategorized = "Uncategorized"

	// GenreUnknown labels a genre id missing from the lookup table
	GenreUnknown = "Unknown"
)

// Genre is one entry of the compiled-in genre table
type Genre struct {
	ID    int
	Title string
}

// PodcastSummary is one catalog entry. Values are built once per catalog
// fetch and never mutated afterwards.
type PodcastSummary struct {
	ID          string
	Title       string
	ImageURL    string
	GenreIDs    []int
	UpdatedAt   time.Time // zero when the API omitted it
	SeasonCount int

	// Genres holds the enriched display names, one per GenreIDs entry
	Genres []string
}

// CardGenres returns the first two genre names joined for a grid card
func (p PodcastSummary) CardGenres() string {
	names := p.Genres
	if len(names) > 2 {
		names = names[:2]
	}
	return strings.Join(names, ", ")
}

// SeasonLabel returns "1 Season" or "N Seasons"
func (p PodcastSummary) SeasonLabel() string {
	return SeasonLabel(p.SeasonCount)
}

// PodcastDetail is the full record shown in the modal. It is refetched every
// time the modal opens and dropped when it closes.
type PodcastDetail struct {
	ID          string
	Title       string
	Description string
	ImageURL    string
	GenreIDs    []int
	UpdatedAt   time.Time
	Seasons     []Season

	Genres []string
}

// HasSeasons reports whether there is anything to list under "Seasons"
func (d PodcastDetail) HasSeasons() bool {
	return len(d.Seasons) > 0
}

// EpisodeCount sums episodes across all seasons
func (d PodcastDetail) EpisodeCount() int {
	total := 0
	for _, s := range d.Seasons {
		total += len(s.Episodes)
	}
	return total
}

// Season groups episodes. Owned by the PodcastDetail that contains it.
type Season struct {
	Number   int
	Title    string
	ImageURL string
	Episodes []Episode
}

// DisplayTitle falls back to "Season N" when the API sent no title
func (s Season) DisplayTitle() string {
	if strings.TrimSpace(s.Title) != "" {
		return s.Title
	}
	return fmt.Sprintf("Season %d", s.Number)
}

// EpisodeLabel returns "1 Episode" or "N Episodes" for this season
func (s Season) EpisodeLabel() string {
	return EpisodeLabel(len(s.Episodes))
}

// Episode is a single entry inside a season
type Episode struct {
	Number      int
	Title       string
	Description string
	FileURL     string
	Date        time.Time
}

// SeasonLabel pluralizes a season count. Zero is plural.
func SeasonLabel(n int) string {
	if n == 1 {
		return "1 Season"
	}
	return fmt.Sprintf("%d Seasons", n)
}

// EpisodeLabel pluralizes an episode count. Zero is plural.
func EpisodeLabel(n int) string {
	if n == 1 {
		return "1 Episode"
	}
	return fmt.Sprintf("%d Episodes", n)
}
