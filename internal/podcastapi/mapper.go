package podcastapi

import (
	"strings"
	"time"

	"github.com/mmcdole/podview/internal/domain"
	"github.com/samber/lo"
)

// MapPreviews converts catalog DTOs to domain summaries
func MapPreviews(items []PreviewDTO) []domain.PodcastSummary {
	return lo.Map(items, func(item PreviewDTO, _ int) domain.PodcastSummary {
		return MapPreview(item)
	})
}

// MapPreview converts a single catalog DTO
func MapPreview(item PreviewDTO) domain.PodcastSummary {
	genres := mergeGenres(item.Genres, item.GenreIDs)
	seasons := item.Seasons
	if seasons < 0 {
		seasons = 0
	}
	return domain.PodcastSummary{
		ID:          strings.TrimSpace(string(item.ID)),
		Title:       strings.TrimSpace(item.Title),
		ImageURL:    item.Image,
		GenreIDs:    genres.IDs,
		UpdatedAt:   parseTimestamp(item.Updated),
		SeasonCount: seasons,
		Genres:      genres.Labels,
	}
}

// MapShow converts the detail DTO. Missing seasons or episodes become
// empty slices.
func MapShow(show ShowDTO) *domain.PodcastDetail {
	genres := mergeGenres(show.Genres, show.GenreIDs)
	return &domain.PodcastDetail{
		ID:          strings.TrimSpace(string(show.ID)),
		Title:       strings.TrimSpace(show.Title),
		Description: strings.TrimSpace(show.Description),
		ImageURL:    show.Image,
		GenreIDs:    genres.IDs,
		UpdatedAt:   parseTimestamp(show.Updated),
		Seasons:     mapSeasons(show.Seasons),
		Genres:      genres.Labels,
	}
}

func mapSeasons(seasons []SeasonDTO) []domain.Season {
	out := make([]domain.Season, 0, len(seasons))
	for i, s := range seasons {
		num := s.Season
		if num == 0 {
			num = i + 1
		}
		out = append(out, domain.Season{
			Number:   num,
			Title:    strings.TrimSpace(s.Title),
			ImageURL: s.Image,
			Episodes: mapEpisodes(s.Episodes),
		})
	}
	return out
}

func mapEpisodes(episodes []EpisodeDTO) []domain.Episode {
	return lo.Map(episodes, func(e EpisodeDTO, i int) domain.Episode {
		num := e.Episode
		if num == 0 {
			num = i + 1
		}
		return domain.Episode{
			Number:      num,
			Title:       strings.TrimSpace(e.Title),
			Description: strings.TrimSpace(e.Description),
			FileURL:     e.File,
			Date:        parseTimestamp(e.Date),
		}
	})
}

// parseTimestamp returns the zero time for empty or unparseable input;
// a bad timestamp renders as "Unknown" instead of failing the fetch.
func parseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
