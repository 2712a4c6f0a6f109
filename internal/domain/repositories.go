package domain

import (
	"context"
)

// CatalogRepository provides access to the remote podcast API
type CatalogRepository interface {
	// FetchCatalog returns every podcast summary. Genres is left empty;
	// enrichment happens in the service layer.
	FetchCatalog(ctx context.Context) ([]PodcastSummary, error)

	// FetchDetail returns one podcast with its seasons and episodes
	FetchDetail(ctx context.Context, id string) (*PodcastDetail, error)
}

// GenreLookup resolves genre ids to display names
type GenreLookup interface {
	// Names maps ids to names, never returning an empty slice
	Names(ids []int) []string
}
