// Package state holds the catalog view and detail modal state machines.
// Both are plain values owned by the TUI model; nothing here does I/O.
package state

import (
	"github.com/mmcdole/podview/internal/domain"
)

// Phase is the lifecycle position of a fetch-backed view
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Ticket identifies one request. A result is only applied if its ticket is
// still the current one.
type Ticket struct {
	Gen uint64
	ID  string // podcast id for detail requests, empty for the catalog
}

// Catalog is the main view: Idle -> Loading -> Loaded | Error.
type Catalog struct {
	phase    Phase
	gen      uint64
	podcasts []domain.PodcastSummary
	message  string
}

// NewCatalog returns a catalog in the Idle phase
func NewCatalog() *Catalog {
	return &Catalog{phase: PhaseIdle}
}

func (c *Catalog) Phase() Phase { return c.phase }

// Podcasts returns the last successfully loaded catalog. The slice is
// replaced wholesale on each load and must not be modified by callers.
func (c *Catalog) Podcasts() []domain.PodcastSummary { return c.podcasts }

// Message is the error text while in PhaseError
func (c *Catalog) Message() string { return c.message }

// Empty reports a successful load that returned no podcasts
func (c *Catalog) Empty() bool {
	return c.phase == PhaseLoaded && len(c.podcasts) == 0
}

// Begin starts a load. A Begin while already Loading is ignored and returns
// false so that no second fetch is issued.
func (c *Catalog) Begin() (Ticket, bool) {
	if c.phase == PhaseLoading {
		return Ticket{}, false
	}
	c.gen++
	c.phase = PhaseLoading
	c.message = ""
	return Ticket{Gen: c.gen}, true
}

// Resolve applies the outcome of the request identified by t. Stale tickets
// and results arriving outside Loading are dropped.
func (c *Catalog) Resolve(t Ticket, podcasts []domain.PodcastSummary, err error) bool {
	if t.Gen != c.gen || c.phase != PhaseLoading {
		return false
	}
	if err != nil {
		c.phase = PhaseError
		c.message = "Failed to load podcasts: " + domain.UserMessage(err)
		return true
	}
	if podcasts == nil {
		podcasts = []domain.PodcastSummary{}
	}
	c.phase = PhaseLoaded
	c.podcasts = podcasts
	c.message = ""
	return true
}
