package multidayview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/timetable/internal/agenda"
	"github.com/llehouerou/timetable/internal/paging"
	"github.com/llehouerou/timetable/internal/ui/testutil"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2024, 3, day, hour, minute, 0, 0, time.UTC)
}

func TestAgendaBuilder(t *testing.T) {
	events := map[int][]agenda.Event{
		today: {
			{Title: "Standup", Start: at(13, 9, 0), End: at(13, 9, 15)},
			{Title: "Conference", Start: at(13, 0, 0), End: at(15, 0, 0), AllDay: true},
			{Title: "Night shift", Start: at(12, 22, 0), End: at(13, 6, 0)},
		},
	}
	build := AgendaBuilder(func(day int) []agenda.Event { return events[day] })

	lines := build(paging.DateForPage(today), 20)
	require.Len(t, lines, 3)
	assert.Equal(t, "Conference          ", testutil.StripANSI(lines[0]))
	assert.Equal(t, "09:00 Standup       ", testutil.StripANSI(lines[1]))
	assert.Equal(t, "  …   Night shift   ", testutil.StripANSI(lines[2]))
	for _, line := range lines {
		assert.Equal(t, 20, testutil.MeasureWidth(line))
	}
}

func TestAgendaBuilder_NarrowColumnDropsTime(t *testing.T) {
	events := []agenda.Event{{Title: "Standup", Start: at(13, 9, 0), End: at(13, 9, 15)}}
	build := AgendaBuilder(func(int) []agenda.Event { return events })

	lines := build(paging.DateForPage(today), 6)
	require.Len(t, lines, 1)
	assert.Equal(t, "Stand…", testutil.StripANSI(lines[0]))
}

func TestAgendaBuilder_EmptyDay(t *testing.T) {
	build := AgendaBuilder(func(int) []agenda.Event { return nil })
	assert.Nil(t, build(paging.DateForPage(today), 20))
}
