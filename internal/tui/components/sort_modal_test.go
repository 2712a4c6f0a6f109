package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/podview/internal/service"
)

func TestSortModalSelect(t *testing.T) {
	m := NewSortModal()
	handled, sel := m.HandleKey("j")
	assert.False(t, handled, "hidden modal ignores keys")
	assert.Nil(t, sel)

	m.Show(service.SortTitle)
	assert.True(t, m.IsVisible())
	assert.Contains(t, m.View(), "✓ Title A-Z")

	m.HandleKey("j")
	handled, sel = m.HandleKey("enter")
	assert.True(t, handled)
	require.NotNil(t, sel)
	assert.Equal(t, service.SortUpdated, *sel)
	assert.False(t, m.IsVisible())
}

func TestSortModalDismiss(t *testing.T) {
	m := NewSortModal()
	m.Show(service.SortDefault)

	handled, sel := m.HandleKey("x")
	assert.True(t, handled)
	assert.Nil(t, sel)
	assert.True(t, m.IsVisible())

	m.HandleKey("esc")
	assert.False(t, m.IsVisible())
	assert.Empty(t, m.View())
}
