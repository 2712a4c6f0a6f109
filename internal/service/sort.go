package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mmcdole/podview/internal/domain"
)

// SortField selects how the grid orders the catalog
type SortField int

const (
	SortDefault SortField = iota // API order
	SortTitle
	SortUpdated
)

// String returns the label shown in the footer
func (f SortField) String() string {
	switch f {
	case SortTitle:
		return "Title A-Z"
	case SortUpdated:
		return "Recently updated"
	default:
		return "Default"
	}
}

// Next cycles through the sort fields
func (f SortField) Next() SortField {
	return (f + 1) % 3
}

// ParseSortField accepts the names used on the command line
func ParseSortField(name string) (SortField, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return SortDefault, nil
	case "title":
		return SortTitle, nil
	case "updated":
		return SortUpdated, nil
	default:
		return SortDefault, fmt.Errorf("unknown sort %q (want default, title or updated)", name)
	}
}

// SortPodcasts returns a sorted copy; the input slice is left untouched
func SortPodcasts(items []domain.PodcastSummary, field SortField) []domain.PodcastSummary {
	out := make([]domain.PodcastSummary, len(items))
	copy(out, items)

	switch field {
	case SortTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	case SortUpdated:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		})
	}
	return out
}
