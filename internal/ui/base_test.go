package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBase(t *testing.T) {
	var b Base
	b.SetSize(80, 24)
	b.SetFocused(true)

	w, h := b.Size()
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)
	assert.True(t, b.IsFocused())
	assert.Equal(t, 20, b.BodyHeight(HeaderHeight+StatusHeight+HelpHeight))
	assert.Equal(t, 0, b.BodyHeight(30))
}
