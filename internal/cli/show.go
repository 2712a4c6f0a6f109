package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmcdole/podview/internal/domain"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one podcast with its seasons",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			detail, err := withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Loading podcast...",
				func(ctx context.Context) (*domain.PodcastDetail, error) {
					return app.Service.LoadDetail(ctx, id)
				})
			if err != nil {
				app.Logger.Error("show failed", "id", id, "error", err)
				return fmt.Errorf("failed to load podcast %s: %s", id, domain.UserMessage(err))
			}
			out := cmd.OutOrStdout()
			return RenderDetail(out, detail, outputWidth(out), time.Now())
		},
	}
}
