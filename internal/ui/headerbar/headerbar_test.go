package headerbar

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/timetable/internal/ui/testutil"
)

func TestRender(t *testing.T) {
	out := Render("March 2024", "week", 60)

	plain := testutil.StripANSI(out)
	assert.Equal(t, 60, lipgloss.Width(out))
	assert.Contains(t, plain, "March 2024")
	assert.Contains(t, plain, "Days │ Week │ Fixed")
}

func TestRender_TooNarrow(t *testing.T) {
	assert.Empty(t, Render("March 2024", "days", 20))
}
