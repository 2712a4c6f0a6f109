package state

import (
	"github.com/mmcdole/podview/internal/domain"
)

// ModalPhase is the position of the detail modal
type ModalPhase int

const (
	ModalClosed ModalPhase = iota
	ModalLoading
	ModalShown
	ModalError
)

func (p ModalPhase) String() string {
	switch p {
	case ModalClosed:
		return "closed"
	case ModalLoading:
		return "loading"
	case ModalShown:
		return "shown"
	case ModalError:
		return "error"
	default:
		return "unknown"
	}
}

// DetailErrorMessage is shown inside the modal when a detail fetch fails
const DetailErrorMessage = "Failed to load podcast details. Please try again."

// Modal tracks the podcast detail overlay. Every Open and Close bumps the
// generation, so a response belonging to an earlier open is never shown.
type Modal struct {
	phase  ModalPhase
	gen    uint64
	id     string
	detail *domain.PodcastDetail
	err    error
}

func NewModal() *Modal {
	return &Modal{phase: ModalClosed}
}

func (m *Modal) Phase() ModalPhase { return m.phase }

// Visible is true in every phase except Closed
func (m *Modal) Visible() bool { return m.phase != ModalClosed }

// PodcastID is the id the modal was last opened for
func (m *Modal) PodcastID() string { return m.id }

// Detail is non-nil only while Shown
func (m *Modal) Detail() *domain.PodcastDetail { return m.detail }

// Err is the cause of the last failure, for logging
func (m *Modal) Err() error { return m.err }

// Open moves to Loading(id) from any phase, superseding any request in flight.
func (m *Modal) Open(id string) Ticket {
	m.gen++
	m.phase = ModalLoading
	m.id = id
	m.detail = nil
	m.err = nil
	return Ticket{Gen: m.gen, ID: id}
}

// Close returns to Closed and discards whatever was loaded
func (m *Modal) Close() {
	m.gen++
	m.phase = ModalClosed
	m.detail = nil
	m.err = nil
}

// Current reports whether t still belongs to the open modal
func (m *Modal) Current(t Ticket) bool {
	return t.Gen == m.gen && t.ID == m.id && m.phase == ModalLoading
}

// Resolve applies a detail response. Returns false for stale tickets.
func (m *Modal) Resolve(t Ticket, detail *domain.PodcastDetail, err error) bool {
	if !m.Current(t) {
		return false
	}
	if err != nil || detail == nil {
		m.phase = ModalError
		m.err = err
		return true
	}
	m.phase = ModalShown
	m.detail = detail
	return true
}
