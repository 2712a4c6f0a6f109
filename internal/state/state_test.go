package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/podview/internal/domain"
)

func TestCatalogLoadSuccess(t *testing.T) {
	c := NewCatalog()
	assert.Equal(t, PhaseIdle, c.Phase())

	ticket, ok := c.Begin()
	require.True(t, ok)
	assert.Equal(t, PhaseLoading, c.Phase())

	podcasts := []domain.PodcastSummary{{ID: "10716", Title: "Something Was Wrong"}}
	assert.True(t, c.Resolve(ticket, podcasts, nil))
	assert.Equal(t, PhaseLoaded, c.Phase())
	assert.Len(t, c.Podcasts(), 1)
	assert.False(t, c.Empty())
}

func TestCatalogEmptyListIsLoaded(t *testing.T) {
	c := NewCatalog()
	ticket, _ := c.Begin()

	assert.True(t, c.Resolve(ticket, nil, nil))
	assert.Equal(t, PhaseLoaded, c.Phase())
	assert.True(t, c.Empty())
	assert.NotNil(t, c.Podcasts())
}

func TestCatalogErrorThenRetry(t *testing.T) {
	c := NewCatalog()
	ticket, _ := c.Begin()

	err := &domain.FetchError{Kind: domain.KindHTTP, Op: "catalog", Status: 500}
	assert.True(t, c.Resolve(ticket, nil, err))
	assert.Equal(t, PhaseError, c.Phase())
	assert.Equal(t, "Failed to load podcasts: HTTP error! status: 500", c.Message())

	retry, ok := c.Begin()
	require.True(t, ok)
	assert.Equal(t, PhaseLoading, c.Phase())
	assert.Empty(t, c.Message())

	assert.True(t, c.Resolve(retry, []domain.PodcastSummary{{ID: "1"}}, nil))
	assert.Equal(t, PhaseLoaded, c.Phase())
}

func TestCatalogDoubleRetryIssuesOneFetch(t *testing.T) {
	c := NewCatalog()
	first, _ := c.Begin()
	c.Resolve(first, nil, errors.New("offline"))

	retry, ok := c.Begin()
	require.True(t, ok)
	_, ok = c.Begin()
	assert.False(t, ok, "second retry while loading must be ignored")

	assert.True(t, c.Resolve(retry, []domain.PodcastSummary{{ID: "1"}}, nil))
	assert.Equal(t, PhaseLoaded, c.Phase())
}

func TestCatalogDropsStaleTicket(t *testing.T) {
	c := NewCatalog()
	old, _ := c.Begin()
	c.Resolve(old, []domain.PodcastSummary{{ID: "a"}}, nil)

	current, _ := c.Begin()
	assert.False(t, c.Resolve(old, nil, errors.New("late")))
	assert.Equal(t, PhaseLoading, c.Phase())

	assert.True(t, c.Resolve(current, []domain.PodcastSummary{{ID: "b"}}, nil))
	assert.Equal(t, "b", c.Podcasts()[0].ID)

	// a resolved ticket cannot be applied twice
	assert.False(t, c.Resolve(current, nil, errors.New("again")))
	assert.Equal(t, PhaseLoaded, c.Phase())
}

func TestCatalogRefreshKeepsSliceUntilResolved(t *testing.T) {
	c := NewCatalog()
	first, _ := c.Begin()
	loaded := []domain.PodcastSummary{{ID: "a"}}
	c.Resolve(first, loaded, nil)

	second, _ := c.Begin()
	assert.Equal(t, loaded, c.Podcasts())

	c.Resolve(second, []domain.PodcastSummary{{ID: "b"}, {ID: "c"}}, nil)
	assert.Len(t, c.Podcasts(), 2)
	assert.Equal(t, "a", loaded[0].ID)
}

func TestModalOpenShow(t *testing.T) {
	m := NewModal()
	assert.False(t, m.Visible())

	ticket := m.Open("10716")
	assert.Equal(t, ModalLoading, m.Phase())
	assert.True(t, m.Visible())
	assert.Equal(t, "10716", m.PodcastID())

	detail := &domain.PodcastDetail{ID: "10716", Title: "Something Was Wrong"}
	assert.True(t, m.Resolve(ticket, detail, nil))
	assert.Equal(t, ModalShown, m.Phase())
	assert.Same(t, detail, m.Detail())
}

func TestModalLateResponseFromEarlierOpenIsDropped(t *testing.T) {
	m := NewModal()
	first := m.Open("99")
	second := m.Open("10716")

	assert.False(t, m.Resolve(first, &domain.PodcastDetail{ID: "99"}, nil))
	assert.Equal(t, ModalLoading, m.Phase())

	assert.True(t, m.Resolve(second, &domain.PodcastDetail{ID: "10716"}, nil))
	assert.Equal(t, "10716", m.Detail().ID)
}

func TestModalCloseDropsInFlightResult(t *testing.T) {
	m := NewModal()
	ticket := m.Open("10716")
	m.Close()

	assert.False(t, m.Resolve(ticket, &domain.PodcastDetail{ID: "10716"}, nil))
	assert.Equal(t, ModalClosed, m.Phase())
	assert.Nil(t, m.Detail())
}

func TestModalReopenSameIDRefetches(t *testing.T) {
	m := NewModal()
	first := m.Open("10716")
	m.Resolve(first, &domain.PodcastDetail{ID: "10716"}, nil)
	m.Close()

	second := m.Open("10716")
	assert.NotEqual(t, first, second)
	assert.Equal(t, ModalLoading, m.Phase())
	assert.Nil(t, m.Detail())
	assert.False(t, m.Resolve(first, &domain.PodcastDetail{ID: "10716"}, nil))
}

func TestModalError(t *testing.T) {
	m := NewModal()
	ticket := m.Open("5")
	cause := &domain.FetchError{Kind: domain.KindNetwork, Op: "detail 5", Err: errors.New("refused")}

	assert.True(t, m.Resolve(ticket, nil, cause))
	assert.Equal(t, ModalError, m.Phase())
	assert.ErrorIs(t, m.Err(), domain.ErrNetwork)

	m.Close()
	assert.Equal(t, ModalClosed, m.Phase())
	assert.NoError(t, m.Err())
}

func TestModalIndependentOfCatalog(t *testing.T) {
	c := NewCatalog()
	m := NewModal()
	ct, _ := c.Begin()
	mt := m.Open("1")

	c.Resolve(ct, nil, errors.New("boom"))
	assert.Equal(t, PhaseError, c.Phase())
	assert.Equal(t, ModalLoading, m.Phase())
	assert.True(t, m.Resolve(mt, &domain.PodcastDetail{ID: "1"}, nil))
}
