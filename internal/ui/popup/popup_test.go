package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestCompose_ReplacesOnlyOverlayColumns(t *testing.T) {
	base := strings.Repeat("a", 10) + "\n" + strings.Repeat("b", 10)
	overlay := "\n   XY"

	got := Compose(base, overlay, 10)

	lines := strings.Split(got, "\n")
	assert.Equal(t, "aaaaaaaaaa", lines[0])
	assert.Equal(t, "bbbXYbbbbb", ansi.Strip(lines[1]))
}

func TestCompose_PadsShortBaseLines(t *testing.T) {
	got := Compose("ab", "    Z", 6)
	assert.Equal(t, "ab  Z ", ansi.Strip(got))
}

func TestCenter(t *testing.T) {
	got := Center("xx", 6, 3)
	assert.Equal(t, "\n  xx", got)
}

func TestRenderBordered_FitsScreen(t *testing.T) {
	out := RenderBordered("Go to date", 40, 10, SizeAuto)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 40)
	}
	assert.Contains(t, ansi.Strip(out), "Go to date")
}
