package tui

import (
	"github.com/mmcdole/podview/internal/domain"
	"github.com/mmcdole/podview/internal/state"
)

// CatalogLoadedMsg carries the outcome of a catalog fetch
type CatalogLoadedMsg struct {
	Ticket   state.Ticket
	Podcasts []domain.PodcastSummary
	Err      error
}

// DetailLoadedMsg carries the outcome of a detail fetch
type DetailLoadedMsg struct {
	Ticket state.Ticket
	Detail *domain.PodcastDetail
	Err    error
}

// StatusMsg sets a temporary footer message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the footer message
type ClearStatusMsg struct{}
