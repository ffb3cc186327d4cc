package helpbindings

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/timetable/internal/ui/action"
	"github.com/llehouerou/timetable/internal/ui/testutil"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestView_ListsBindings(t *testing.T) {
	m := New()
	m.SetSize(60, 40)

	view := testutil.StripANSI(m.View())
	assert.Contains(t, view, "Help")
	assert.Contains(t, view, "Timetable")
	assert.Contains(t, view, "Go to date")
	assert.Contains(t, view, "?/esc close")
	assert.NotContains(t, view, "j/k scroll")
}

func TestView_EmptyWithoutSize(t *testing.T) {
	m := New()
	assert.Empty(t, m.View())
}

func TestUpdate_Scrolls(t *testing.T) {
	m := New()
	m.SetSize(60, 8)
	require.Positive(t, m.maxScroll())

	m.Update(key("j"))
	assert.Equal(t, 1, m.scrollOffset)
	m.Update(key("k"))
	m.Update(key("k"))
	assert.Equal(t, 0, m.scrollOffset)

	for range 100 {
		m.Update(key("j"))
	}
	assert.Equal(t, m.maxScroll(), m.scrollOffset)
	assert.Contains(t, testutil.StripANSI(m.View()), "j/k scroll")
}

func TestUpdate_Close(t *testing.T) {
	m := New()
	m.SetSize(60, 40)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	msg, ok := cmd().(action.Msg)
	require.True(t, ok)
	assert.Equal(t, "helpbindings", msg.Source)
	assert.IsType(t, Close{}, msg.Action)
}
