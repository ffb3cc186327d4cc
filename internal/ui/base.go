package ui

// Base carries the size and focus state shared by timetable components.
// Embed it in a model to get the accessors:
//
//	type Model struct {
//	    ui.Base
//	    dates *datecontroller.Controller
//	}
type Base struct {
	width, height int
	focused       bool
}

// SetFocused sets whether the component receives key input.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused returns whether the component receives key input.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the component dimensions in cells.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the component dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// BodyHeight returns the height left after overhead rows, never negative.
func (b Base) BodyHeight(overhead int) int {
	return max(b.height-overhead, 0)
}
