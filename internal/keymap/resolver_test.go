package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve(t *testing.T) {
	r := Default()

	tests := []struct {
		key  string
		want Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"left", ActionScrollLeft},
		{"l", ActionScrollRight},
		{"shift+right", ActionNextPage},
		{"pgup", ActionPrevPage},
		{"home", ActionToday},
		{"=", ActionMoreDays},
		{"r", ActionCycleRange},
		{"x", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.key))
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionToday, []string{"t", "home"}, "Today", "timetable"},
		{ActionToday, []string{"t", "T"}, "Today", "other"},
	})

	assert.Equal(t, []string{"t", "home", "T"}, r.KeysFor(ActionToday))
	assert.Nil(t, r.KeysFor(ActionQuit))
}

func TestResolver_LastBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionToday, []string{"t"}, "Today", "timetable"},
		{ActionGoto, []string{"t"}, "Go to", "timetable"},
	})
	assert.Equal(t, ActionGoto, r.Resolve("t"))
}
