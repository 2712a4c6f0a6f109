package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mmcdole/podview/internal/domain"
)

// CatalogService joins the podcast API with genre enrichment
type CatalogService struct {
	repo   domain.CatalogRepository
	genres domain.GenreLookup
	logger *slog.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	repo domain.CatalogRepository,
	genres domain.GenreLookup,
	logger *slog.Logger,
) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		repo:   repo,
		genres: genres,
		logger: logger,
	}
}

// LoadCatalog fetches the catalog and attaches genre names. An empty catalog
// is not an error.
func (s *CatalogService) LoadCatalog(ctx context.Context) ([]domain.PodcastSummary, error) {
	start := time.Now()

	items, err := s.repo.FetchCatalog(ctx)
	if err != nil {
		s.logFailure("catalog fetch failed", err, "elapsed", time.Since(start))
		return nil, err
	}

	enriched := make([]domain.PodcastSummary, len(items))
	for i, item := range items {
		item.Genres = s.names(item.GenreIDs, item.Genres)
		enriched[i] = item
	}

	s.logger.Info("loaded catalog", "count", len(enriched), "elapsed", time.Since(start))
	return enriched, nil
}

// LoadDetail fetches one podcast and attaches genre names
func (s *CatalogService) LoadDetail(ctx context.Context, id string) (*domain.PodcastDetail, error) {
	start := time.Now()

	detail, err := s.repo.FetchDetail(ctx, id)
	if err != nil {
		s.logFailure("detail fetch failed", err, "id", id, "elapsed", time.Since(start))
		return nil, err
	}

	out := *detail
	out.Genres = s.names(detail.GenreIDs, detail.Genres)

	s.logger.Info("loaded podcast detail",
		"id", id,
		"seasons", len(out.Seasons),
		"episodes", out.EpisodeCount(),
		"elapsed", time.Since(start),
	)
	return &out, nil
}

// names enriches ids; labels the server already resolved are kept when no
// ids were sent.
func (s *CatalogService) names(ids []int, labels []string) []string {
	if len(ids) == 0 && len(labels) > 0 {
		out := make([]string, len(labels))
		copy(out, labels)
		return out
	}
	return s.genres.Names(ids)
}

func (s *CatalogService) logFailure(msg string, err error, args ...any) {
	if errors.Is(err, context.Canceled) {
		s.logger.Debug(msg+" (cancelled)", args...)
		return
	}
	var fe *domain.FetchError
	if errors.As(err, &fe) {
		args = append(args, "kind", fe.Kind.String(), "status", fe.Status)
	}
	args = append(args, "error", err)
	s.logger.Error(msg, args...)
}
