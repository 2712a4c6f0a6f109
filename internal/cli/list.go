package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmcdole/podview/internal/domain"
	"github.com/mmcdole/podview/internal/genre"
	"github.com/mmcdole/podview/internal/search"
	"github.com/mmcdole/podview/internal/service"
)

func newListCmd(app *App) *cobra.Command {
	var sortName, filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the podcast catalog",
		Long: `Print the podcast catalog as a table.

--filter takes the same queries as the grid filter: a fuzzy title match,
or "genre:<name>" to keep podcasts in matching genres.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			field, err := service.ParseSortField(sortName)
			if err != nil {
				return err
			}
			return app.printCatalog(cmd, field, filter)
		},
	}
	cmd.Flags().StringVar(&sortName, "sort", "default", "sort order: default, title or updated")
	cmd.Flags().StringVar(&filter, "filter", "", "filter query, e.g. \"history\" or \"genre:comedy\"")
	return cmd
}

func (a *App) printCatalog(cmd *cobra.Command, field service.SortField, filter string) error {
	podcasts, err := withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Loading podcasts...",
		func(ctx context.Context) ([]domain.PodcastSummary, error) {
			return a.Service.LoadCatalog(ctx)
		})
	if err != nil {
		return fmt.Errorf("failed to load podcasts: %s", domain.UserMessage(err))
	}

	sorted := service.SortPodcasts(podcasts, field)
	matches := search.Filter(filter, sorted, genre.Default)
	return RenderCatalog(cmd.OutOrStdout(), matches, len(podcasts), time.Now())
}
