package state

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetView_Empty(t *testing.T) {
	m, err := Open(":memory:")
	require.NoError(t, err)
	defer m.Close()

	v, err := m.GetView()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSaveView_FlushedOnClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "timetable.db")

	m, err := Open(path)
	require.NoError(t, err)
	m.SaveView(ViewState{Page: 10, VisibleDays: 3, RangeKind: "days"})
	m.SaveView(ViewState{Page: 19792.5, VisibleDays: 7, RangeKind: "week"})
	require.NoError(t, m.Close())

	m, err = Open(path)
	require.NoError(t, err)
	defer m.Close()

	v, err := m.GetView()
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, ViewState{Page: 19792.5, VisibleDays: 7, RangeKind: "week"}, *v)
}

func TestSaveView_Overwrites(t *testing.T) {
	m, err := Open(":memory:")
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, saveView(m.DB(), ViewState{Page: 1, VisibleDays: 1, RangeKind: "days"}))
	require.NoError(t, saveView(m.DB(), ViewState{Page: 2, VisibleDays: 2, RangeKind: "fixed"}))

	v, err := m.GetView()
	require.NoError(t, err)
	assert.Equal(t, ViewState{Page: 2, VisibleDays: 2, RangeKind: "fixed"}, *v)
}

func TestMock(t *testing.T) {
	m := NewMock()
	m.SaveView(ViewState{Page: 4})
	v, err := m.GetView()
	require.NoError(t, err)
	assert.InDelta(t, 4.0, v.Page, 0)
	assert.Equal(t, 1, m.Saves)
	require.NoError(t, m.Close())
	assert.True(t, m.Closed)
}

func TestSaveView_BackgroundFailureIsLogged(t *testing.T) {
	m, err := Open(":memory:")
	require.NoError(t, err)
	defer m.Close()

	core, logs := observer.New(zap.ErrorLevel)
	m.SetLogger(zap.New(core))

	_, err = m.DB().Exec(`DROP TABLE view_state`)
	require.NoError(t, err)

	m.SaveView(ViewState{Page: 3, VisibleDays: 1, RangeKind: "days"})
	m.flush()

	entries := logs.FilterMessage("save view").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap()["error"], "view_state")
}
