package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/podview/internal/state"
)

// Command factories for async operations

// LoadCatalogCmd fetches the catalog for the request identified by ticket
func LoadCatalogCmd(svc CatalogLoader, ticket state.Ticket, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		podcasts, err := svc.LoadCatalog(ctx)
		return CatalogLoadedMsg{Ticket: ticket, Podcasts: podcasts, Err: err}
	}
}

// LoadDetailCmd fetches one podcast. ctx is owned by the model so that
// closing the modal can cancel the request; cancel releases it when done.
func LoadDetailCmd(ctx context.Context, cancel context.CancelFunc, svc CatalogLoader, ticket state.Ticket) tea.Cmd {
	return func() tea.Msg {
		defer cancel()

		detail, err := svc.LoadDetail(ctx, ticket.ID)
		return DetailLoadedMsg{Ticket: ticket, Detail: detail, Err: err}
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
