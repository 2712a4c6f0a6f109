// Package cli wires configuration, logging and the catalog service behind a
// cobra command tree. The bare command starts the TUI.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/mmcdole/podview/internal/adapter"
	"github.com/mmcdole/podview/internal/genre"
	"github.com/mmcdole/podview/internal/podcastapi"
	"github.com/mmcdole/podview/internal/service"
	"github.com/mmcdole/podview/internal/tui"
)

// App is the state shared by every subcommand once PersistentPreRunE ran
type App struct {
	version string
	v       *viper.Viper
	cfgFile string

	Config  *adapter.Config
	Logger  *slog.Logger
	Client  *podcastapi.Client
	Service *service.CatalogService

	closer io.Closer
}

// NewRootCmd builds the podview command tree
func NewRootCmd(version string) *cobra.Command {
	app := &App{version: version, v: viper.New()}

	root := &cobra.Command{
		Use:   "podview",
		Short: "Browse a podcast catalog in the terminal",
		Long: `podview loads the podcast catalog and shows it as a grid of cards.
Select a card to see its seasons and episodes.

Without a terminal on stdout the catalog is printed as a table instead.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: app.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return app.teardown()
		},
		RunE: app.runBrowse,
	}
	root.SetVersionTemplate("podview {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVar(&app.cfgFile, "config", "", "config file (default is "+adapter.DefaultConfigDir()+"/config.yaml)")
	flags.String("base-url", "", "podcast API base URL")
	flags.Duration("timeout", 0, "per-request timeout")
	flags.String("log-level", "", "log level (DEBUG, INFO, WARN, ERROR)")
	flags.String("log-file", "", "log file path")

	bindFlag(app.v, "api.base_url", root, "base-url")
	bindFlag(app.v, "api.timeout", root, "timeout")
	bindFlag(app.v, "logging.level", root, "log-level")
	bindFlag(app.v, "logging.file", root, "log-file")

	root.AddCommand(
		newListCmd(app),
		newShowCmd(app),
		newGenresCmd(app),
		newConfigCmd(app),
	)
	return root
}

func bindFlag(v *viper.Viper, key string, cmd *cobra.Command, name string) {
	if err := v.BindPFlag(key, cmd.PersistentFlags().Lookup(name)); err != nil {
		panic(fmt.Sprintf("bind %s: %v", name, err))
	}
}

func (a *App) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := adapter.LoadConfig(a.v, a.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.Config = cfg

	logger, closer, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Logging is best effort
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		logger, closer = adapter.NullLogger(), nil
	}
	a.Logger, a.closer = logger, closer
	slog.SetDefault(logger)

	logger.Info("starting podview", "version", a.version, "command", cmd.Name())

	client, err := podcastapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout, logger)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}
	a.Client = client
	a.Service = service.NewCatalogService(client, genre.Default, logger)
	return nil
}

func (a *App) teardown() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}

// runBrowse starts the TUI when stdout is a terminal and falls back to the
// plain catalog listing otherwise
func (a *App) runBrowse(cmd *cobra.Command, _ []string) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return a.printCatalog(cmd, service.SortDefault, "")
	}

	model := tui.NewModel(a.Service, tui.Options{
		Timeout:     a.Config.API.Timeout,
		GridColumns: a.Config.UI.GridColumns,
		Genres:      genre.Default,
		Logger:      a.Logger,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if a.Config.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	a.Logger.Info("starting TUI", "base_url", a.Client.BaseURL())
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		a.Logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}
	a.Logger.Info("shutting down")
	return nil
}

// isTerminal reports whether w is a terminal file
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// outputWidth is the width plain output is wrapped to
func outputWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}
