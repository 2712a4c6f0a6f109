package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmcdole/podview/internal/adapter"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}

	var dir string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to config.yaml",
		Long: `Write the effective configuration (defaults, config file, environment
and flags merged) to config.yaml so it can be edited.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := adapter.SaveConfig(app.Config, dir)
			if err != nil {
				return err
			}
			app.Logger.Info("wrote config", "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Configuration saved to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().StringVar(&dir, "dir", "", "directory to write config.yaml to (default is "+adapter.DefaultConfigDir()+")")

	cmd.AddCommand(initCmd)
	return cmd
}
