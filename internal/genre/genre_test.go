package genre

import (
	"testing"

	"github.com/mmcdole/podview/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamesPreservesOrderAndLength(t *testing.T) {
	inputs := [][]int{
		{1},
		{3, 1, 2},
		{9, 9, 4},
		{42, 1, -1, 7},
	}
	for _, ids := range inputs {
		names := Default.Names(ids)
		require.Len(t, names, len(ids))
		for i, id := range ids {
			if g, ok := Default.Lookup(id); ok {
				assert.Equal(t, g.Title, names[i])
			} else {
				assert.Equal(t, domain.GenreUnknown, names[i])
			}
		}
	}
}

func TestNamesEmptyInputIsUncategorized(t *testing.T) {
	assert.Equal(t, []string{"Uncategorized"}, Default.Names(nil))
	assert.Equal(t, []string{"Uncategorized"}, Default.Names([]int{}))
}

func TestNamesUnknownIDs(t *testing.T) {
	assert.Equal(t, []string{"Comedy", "Unknown", "News"}, Default.Names([]int{4, 99, 8}))
}

func TestAllIsSortedCopy(t *testing.T) {
	all := Default.All()
	require.Len(t, all, 9)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID)
	}

	all[0].Title = "mutated"
	g, _ := Default.Lookup(1)
	assert.Equal(t, "Personal Growth", g.Title)
}

func TestNewTableDuplicatesLastWins(t *testing.T) {
	tbl := NewTable([]domain.Genre{{ID: 1, Title: "A"}, {ID: 1, Title: "B"}})
	g, ok := tbl.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "B", g.Title)
	assert.Len(t, tbl.All(), 1)
}

func TestMatch(t *testing.T) {
	got := Default.Match("hist")
	require.NotEmpty(t, got)
	assert.Equal(t, "History", got[0].Title)

	got = Default.Match("KIDS")
	require.Len(t, got, 1)
	assert.Equal(t, 9, got[0].ID)

	assert.Empty(t, Default.Match("   "))
	assert.Empty(t, Default.Match("zzzz"))
}
