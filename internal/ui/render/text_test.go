package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Standup", "Standup"},
		{"control chars", "Stand\x1bup\n", "Standup"},
		{"tab kept", "a\tb", "a\tb"},
		{"nbsp", "a\u00a0b", "a b"},
		{"invalid utf8", "a\xffb", "ab"},
		{"c1 control", "a\u0085b", "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Planning", 20, "Planning"},
		{"Planning", 5, "Plan…"},
		{"会議室予約", 5, "会議…"},
		{"x", 0, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Truncate(tt.in, tt.width), "Truncate(%q, %d)", tt.in, tt.width)
	}
}

func TestTruncateAndPad(t *testing.T) {
	for _, in := range []string{"", "ab", "a very long event title", "会議室予約"} {
		got := TruncateAndPad(in, 7)
		assert.Equal(t, 7, lipgloss.Width(got), "input %q", in)
	}
}

func TestFit(t *testing.T) {
	assert.Equal(t, "ab   ", Fit("ab", 5))
	assert.Equal(t, "abc", Fit("abcdef", 3))
	assert.Empty(t, Fit("abc", 0))

	styled := lipgloss.NewStyle().Bold(true).Render("abcdef")
	assert.Equal(t, 4, lipgloss.Width(Fit(styled, 4)))
}

func TestCutColumns(t *testing.T) {
	assert.Equal(t, "cde", CutColumns("abcdefg", 2, 5))
	assert.Empty(t, CutColumns("abc", 2, 2))
	assert.Equal(t, "abc", CutColumns("abc", 0, 10))
}

func TestRow(t *testing.T) {
	assert.Equal(t, "left   right", Row("left", "right", 12))
	assert.Equal(t, "left right", Row("left", "right", 3))
}

func TestEmptyLine(t *testing.T) {
	assert.Equal(t, "   ", EmptyLine(3))
	assert.Empty(t, EmptyLine(-1))
}
