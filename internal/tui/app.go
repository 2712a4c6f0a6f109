package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/podview/internal/domain"
	"github.com/mmcdole/podview/internal/genre"
	"github.com/mmcdole/podview/internal/service"
	"github.com/mmcdole/podview/internal/state"
	"github.com/mmcdole/podview/internal/tui/components"
	"github.com/mmcdole/podview/internal/tui/styles"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
)

// Vertical chrome: one header line and one footer line
const (
	HeaderHeight = 1
	FooterHeight = 1
	ChromeHeight = HeaderHeight + FooterHeight
)

const defaultTimeout = 15 * time.Second

// CatalogLoader is the part of the service layer the UI depends on
type CatalogLoader interface {
	LoadCatalog(ctx context.Context) ([]domain.PodcastSummary, error)
	LoadDetail(ctx context.Context, id string) (*domain.PodcastDetail, error)
}

var _ CatalogLoader = (*service.CatalogService)(nil)

// Options tunes the model. Zero values pick defaults.
type Options struct {
	Timeout     time.Duration
	GridColumns int
	Genres      *genre.Table
	Logger      *slog.Logger
	Now         func() time.Time
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	Svc CatalogLoader

	// View and modal state machines
	Catalog *state.Catalog
	Modal   *state.Modal

	// UI Components
	Grid      components.Grid
	Detail    components.DetailModal
	SortModal components.SortModal
	Spinner   spinner.Model
	Help      help.Model

	Sort service.SortField

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool

	timeout      time.Duration
	logger       *slog.Logger
	startTicket  state.Ticket
	detailCancel context.CancelFunc
}

// NewModel creates the application model and starts the first catalog load
func NewModel(svc CatalogLoader, opts Options) Model {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(styles.SpinnerStyle),
	)

	h := help.New()
	h.Styles.ShortKey = styles.AccentStyle
	h.Styles.ShortDesc = styles.DimStyle
	h.Styles.FullKey = styles.AccentStyle
	h.Styles.FullDesc = styles.DimStyle

	m := Model{
		State:     StateBrowsing,
		Svc:       svc,
		Catalog:   state.NewCatalog(),
		Modal:     state.NewModal(),
		Grid:      components.NewGrid(opts.Genres, opts.GridColumns, opts.Now),
		Detail:    components.NewDetailModal(opts.Now),
		SortModal: components.NewSortModal(),
		Spinner:   sp,
		Help:      h,
		timeout:   opts.Timeout,
		logger:    opts.Logger,
	}
	m.startTicket, _ = m.Catalog.Begin()
	return m
}

// Init starts the spinner and the initial catalog fetch
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.Spinner.Tick,
		LoadCatalogCmd(m.Svc, m.startTicket, m.timeout),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case CatalogLoadedMsg:
		return m.handleCatalogLoaded(msg)

	case DetailLoadedMsg:
		return m.handleDetailLoaded(msg)

	case StatusMsg:
		m.StatusMsg = msg.Message
		m.StatusIsErr = msg.IsError
		return m, ClearStatusCmd(3 * time.Second)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	return m, nil
}

func (m Model) handleCatalogLoaded(msg CatalogLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.Catalog.Resolve(msg.Ticket, msg.Podcasts, msg.Err) {
		m.logger.Debug("dropping stale catalog result", "gen", msg.Ticket.Gen)
		return m, nil
	}
	if msg.Err != nil {
		return m, nil
	}

	m.Grid.SetPodcasts(service.SortPodcasts(m.Catalog.Podcasts(), m.Sort))
	return m, nil
}

func (m Model) handleDetailLoaded(msg DetailLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.Modal.Resolve(msg.Ticket, msg.Detail, msg.Err) {
		m.logger.Debug("dropping stale detail result", "id", msg.Ticket.ID, "gen", msg.Ticket.Gen)
		return m, nil
	}
	m.detailCancel = nil

	if m.Modal.Phase() == state.ModalShown {
		m.Detail.SetDetail(m.Modal.Detail())
	}
	return m, nil
}

// beginCatalogLoad starts a catalog fetch unless one is already running
func (m *Model) beginCatalogLoad() tea.Cmd {
	ticket, ok := m.Catalog.Begin()
	if !ok {
		return nil
	}
	return LoadCatalogCmd(m.Svc, ticket, m.timeout)
}

// openDetail opens the modal for p, superseding any earlier detail request
func (m *Model) openDetail(p domain.PodcastSummary) tea.Cmd {
	m.cancelDetail()

	ticket := m.Modal.Open(p.ID)
	m.Detail.Reset(p.Title)

	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	m.detailCancel = cancel
	return LoadDetailCmd(ctx, cancel, m.Svc, ticket)
}

// closeDetail is the single close action for esc, q and clicks outside the box
func (m *Model) closeDetail() {
	m.cancelDetail()
	m.Modal.Close()
}

func (m *Model) cancelDetail() {
	if m.detailCancel != nil {
		m.detailCancel()
		m.detailCancel = nil
	}
}

// applySort reorders the grid and reports the new order in the footer
func (m *Model) applySort(field service.SortField) tea.Cmd {
	m.Sort = field
	m.Grid.SetPodcasts(service.SortPodcasts(m.Catalog.Podcasts(), field))
	return func() tea.Msg {
		return StatusMsg{Message: "Sorted by " + field.String()}
	}
}
