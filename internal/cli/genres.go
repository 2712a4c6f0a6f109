package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmcdole/podview/internal/genre"
)

func newGenresCmd(*App) *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "Print the genre table used for enrichment and genre: filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RenderGenres(cmd.OutOrStdout(), genre.Default.All())
		},
	}
}
